package engine

import (
	"time"

	"github.com/vovakirdan/blink-runner/internal/core"
)

// Command is an inbound host message. Commands apply atomically between
// ticks; the engine goroutine is the only consumer.
type Command interface {
	command()
}

// InitCmd transfers the render surface, initial settings, palette and high
// score, and starts the tick loop. The surface transfer is one-time and
// irrevocable: after INIT only the engine draws to it.
type InitCmd struct {
	Surface   *core.Screen
	Settings  Settings
	Palette   core.Palette
	HighScore float64
	Seed      int64 // 0 = time-based
}

func (InitCmd) command() {}

// SettingsCmd merge-patches the live settings and optionally overrides the
// high score (the host is the persistence authority).
type SettingsCmd struct {
	Patch     Patch
	HighScore *float64
}

func (SettingsCmd) command() {}

// InputAction is the classified trigger action carried by an InputCmd.
type InputAction string

const (
	ActionJump  InputAction = "jump"  // A raw trigger; the engine disambiguates single/double
	ActionPause InputAction = "pause" // An already-classified pause/resume toggle
)

// InputCmd delivers one trigger event. At defaults to arrival time when
// zero; the disambiguator needs real timestamps for its double window.
type InputCmd struct {
	Action InputAction
	At     time.Time
}

func (InputCmd) command() {}

// ResizeCmd adjusts the surface dimensions without resetting run state.
type ResizeCmd struct {
	Width  int
	Height int
}

func (ResizeCmd) command() {}

// StopCmd halts the loop. Terminal for this engine instance: the pending
// tick is cancelled and nothing further is drawn or emitted.
type StopCmd struct{}

func (StopCmd) command() {}

// Event is an outbound notification to the host.
type Event interface {
	event()
}

// ScoreEvent reports the raw score. Emitted only when the displayed
// integer changes, not every tick.
type ScoreEvent struct {
	Score float64
}

func (ScoreEvent) event() {}

// HighScoreEvent reports a new best score. Always precedes the
// GameOverEvent of the run that set it.
type HighScoreEvent struct {
	HighScore float64
}

func (HighScoreEvent) event() {}

// GameOverEvent reports the final raw score of a run. Cleared and Duration
// ride along for host-side run records; only the score crosses the wire.
type GameOverEvent struct {
	Score    float64
	Cleared  int
	Duration time.Duration
}

func (GameOverEvent) event() {}

// InitFailedEvent is the one fault surfaced to the host: INIT without a
// usable surface means no visual output is possible, so the loop refuses
// to start.
type InitFailedEvent struct {
	Reason string
}

func (InitFailedEvent) event() {}

// FrameEvent publishes a rendered frame snapshot. Frames are best-effort:
// when the host falls behind they are dropped rather than blocking a tick.
type FrameEvent struct {
	Frame core.Frame
}

func (FrameEvent) event() {}
