package engine

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/blink-runner/internal/core"
)

// GameState is the run lifecycle state.
type GameState int

const (
	StateReady GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Player is the runner character. It has no horizontal state: the player is
// anchored at a fixed x and the world scrolls past it.
//
// Sign convention, held everywhere: Offset 0 = grounded, negative = above
// ground. Positive offsets never survive a tick.
type Player struct {
	Offset   float64 // Vertical offset from the ground plane
	Velocity float64 // Vertical velocity, positive = falling
}

// Grounded reports whether the player is on the ground plane.
func (p Player) Grounded() bool {
	return p.Offset >= 0
}

// Obstacle is a ground obstacle scrolling toward the player.
type Obstacle struct {
	X      float64 // Left edge in virtual pixels
	Width  float64
	Height float64
	Passed bool // Set once the trailing edge clears the player anchor; never unset
}

// playerAnchorX is the fixed horizontal position of the player's left edge.
const playerAnchorX = 60.0

// cullMargin is how far past the left edge an obstacle's trailing edge may
// go before the obstacle is dropped.
const cullMargin = 20.0

// Sim is the whole simulation context. There are no package-level globals:
// every tick function is a method on this one owned struct, and the engine
// goroutine is the only code that ever touches it after construction.
type Sim struct {
	settings Settings
	palette  core.Palette
	surface  *core.Screen

	state     GameState
	player    Player
	obstacles []Obstacle
	world     World
	clock     float64 // Day/night time-of-day in [0,1)

	score      float64
	multiplier float64
	cleared    int
	highScore  float64
	lastShown  int // Last displayed score emitted to the host

	spawnElapsedMS float64 // Playing time since the last obstacle spawn
	playedMS       float64 // Wall-clock playing time of the current run
	lastTick       time.Time
	lastTrigger    time.Time

	rng *rand.Rand
}

// NewSim builds a simulation around a host-transferred surface. The settings
// are validated and the parallax pools populated so the scene looks lived-in
// from the first frame.
func NewSim(surface *core.Screen, settings Settings, palette core.Palette, highScore float64, seed int64) *Sim {
	settings.Validate()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim := &Sim{
		settings:   settings,
		palette:    palette,
		surface:    surface,
		state:      StateReady,
		multiplier: 1,
		highScore:  highScore,
		rng:        rand.New(rand.NewSource(seed)),
	}
	sim.world.populate(sim.settings, sim.rng)
	return sim
}

// Settings returns a copy of the current tuning.
func (sim *Sim) Settings() Settings {
	return sim.settings
}

// State returns the current run state.
func (sim *Sim) State() GameState {
	return sim.state
}

// Score returns the raw (unscaled) score of the current run.
func (sim *Sim) Score() float64 {
	return sim.score
}

// HighScore returns the best raw score seen so far.
func (sim *Sim) HighScore() float64 {
	return sim.highScore
}

// DisplayedScore returns the host-visible integer score.
func (sim *Sim) DisplayedScore() int {
	return int(sim.score / 10)
}

// ApplySettings merges a patch into the live settings. Takes effect on the
// next tick; the derived speed is never cached so the jump arc reshapes
// immediately.
func (sim *Sim) ApplySettings(p Patch) {
	prev := sim.settings
	sim.settings.Apply(p)
	if sim.settings.CanvasWidth != prev.CanvasWidth {
		sim.world.populate(sim.settings, sim.rng)
	}
}

// SetHighScore overrides the high score (host-side persistence authority).
func (sim *Sim) SetHighScore(hs float64) {
	sim.highScore = hs
}

// Resize adjusts the owned surface without resetting run state. The change
// lands between ticks, so the next tick's physics and draw see the new
// dimensions atomically.
func (sim *Sim) Resize(widthCells, heightCells int) {
	sim.surface.Resize(widthCells, heightCells)
}

// resetRun clears per-run state for a fresh start. The world pools and
// high score survive across runs.
func (sim *Sim) resetRun() {
	sim.player = Player{}
	sim.obstacles = sim.obstacles[:0]
	sim.score = 0
	sim.multiplier = 1
	sim.cleared = 0
	sim.lastShown = 0
	sim.spawnElapsedMS = 0
	sim.playedMS = 0
}

// Step advances the simulation to now and renders a frame. Returned events
// are for the host; ordering within a tick is score, then high-score, then
// game-over.
func (sim *Sim) Step(now time.Time) []Event {
	dtMS := baseFrameMS
	if !sim.lastTick.IsZero() {
		dtMS = float64(now.Sub(sim.lastTick)) / float64(time.Millisecond)
	}
	sim.lastTick = now

	var events []Event
	if sim.state == StatePlaying {
		tf := core.ClampF(dtMS/baseFrameMS, 0, maxTimeFactor)
		sim.playedMS += dtMS

		sim.advancePlayer(tf)
		sim.advanceObstacles(tf, dtMS)
		events = append(events, sim.accumulateScore(tf)...)
		sim.advanceClock(dtMS)
		sim.world.advance(sim.settings, tf, sim.settings.ScrollSpeed(), sim.rng)

		if sim.collides() {
			events = append(events, sim.finishRun()...)
		}
	}

	sim.render()
	return events
}

// finishRun transitions to GameOver, settling the high score first so the
// host always hears about a new record before the run-ended notification.
func (sim *Sim) finishRun() []Event {
	sim.state = StateGameOver
	var events []Event
	if sim.score > sim.highScore {
		sim.highScore = sim.score
		events = append(events, HighScoreEvent{HighScore: sim.highScore})
	}
	events = append(events, GameOverEvent{
		Score:    sim.score,
		Cleared:  sim.cleared,
		Duration: time.Duration(sim.playedMS * float64(time.Millisecond)),
	})
	return events
}
