// Package engine implements the runner simulation: physics, procedural
// world generation, scoring, the day/night cycle and the trigger-driven
// state machine. It runs on its own goroutine and talks to the host only
// through commands and events; see engine.go.
package engine

import "math"

// Baseline frame interval for a 60 Hz simulation, in milliseconds.
// All per-tick deltas are scaled by elapsed/baseFrameMS.
const baseFrameMS = 1000.0 / 60.0

// maxTimeFactor caps the per-tick scale so a stalled host delivering a huge
// delta cannot tunnel obstacles through the player.
const maxTimeFactor = 3.0

// fallbackSpeed is used when the jump strength is zero and the projectile
// relation would divide by zero.
const fallbackSpeed = 3.0

// Settings holds every tunable simulation parameter, in virtual pixels and
// milliseconds. The engine owns its copy; hosts replace or patch it through
// the SETTINGS command.
type Settings struct {
	Gravity      float64 // Downward acceleration, px per frame^2
	JumpStrength float64 // Upward impulse, negative = up
	JumpDistance float64 // Desired horizontal travel of one jump, px

	GroundOffset float64 // Ground plane height above the canvas bottom

	PlayerWidth  float64
	PlayerHeight float64

	ObstacleWidth     float64
	ObstacleMinHeight float64
	ObstacleMaxHeight float64
	SpawnIntervalMS   float64

	CanvasWidth  float64
	CanvasHeight float64

	CycleSeconds float64 // Full day/night cycle duration
	BonusFactor  float64 // Per-cleared-obstacle score multiplier step

	Trees  bool
	Bushes bool
}

// DefaultSettings returns the built-in tuning.
func DefaultSettings() Settings {
	return Settings{
		Gravity:           0.4,
		JumpStrength:      -10,
		JumpDistance:      150,
		GroundOffset:      30,
		PlayerWidth:       30,
		PlayerHeight:      40,
		ObstacleWidth:     18,
		ObstacleMinHeight: 30,
		ObstacleMaxHeight: 60,
		SpawnIntervalMS:   1400,
		CanvasWidth:       800,
		CanvasHeight:      300,
		CycleSeconds:      60,
		BonusFactor:       0.1,
		Trees:             true,
		Bushes:            true,
	}
}

// Validate clamps out-of-range values in place so the simulation never sees
// arithmetic it cannot survive. A zero jump strength is allowed here; the
// speed derivation substitutes a fallback instead (see ScrollSpeed).
func (s *Settings) Validate() {
	if s.Gravity <= 0 {
		s.Gravity = 0.1
	}
	if s.JumpStrength > 0 {
		// Upward impulses are negative by convention
		s.JumpStrength = -s.JumpStrength
	}
	if s.JumpDistance < 0 {
		s.JumpDistance = 0
	}
	if s.GroundOffset < 0 {
		s.GroundOffset = 0
	}
	if s.PlayerWidth < 1 {
		s.PlayerWidth = 1
	}
	if s.PlayerHeight < 1 {
		s.PlayerHeight = 1
	}
	if s.ObstacleWidth < 1 {
		s.ObstacleWidth = 1
	}
	if s.ObstacleMinHeight < 1 {
		s.ObstacleMinHeight = 1
	}
	if s.ObstacleMaxHeight < s.ObstacleMinHeight {
		s.ObstacleMaxHeight = s.ObstacleMinHeight
	}
	if s.SpawnIntervalMS < 100 {
		s.SpawnIntervalMS = 100
	}
	if s.CanvasWidth < 100 {
		s.CanvasWidth = 100
	}
	if s.CanvasHeight < 60 {
		s.CanvasHeight = 60
	}
	if s.CycleSeconds < 1 {
		s.CycleSeconds = 1
	}
	if s.BonusFactor < 0 {
		s.BonusFactor = 0
	}
}

// ScrollSpeed derives the horizontal world speed per unscaled frame from
// the idealized jump parabola: an impulse of |JumpStrength| under Gravity
// stays airborne for 2*|JumpStrength|/Gravity frames, so covering
// JumpDistance in that time needs JumpDistance*Gravity/(2*|JumpStrength|)
// px per frame. Recomputed every tick so live settings changes reshape the
// arc immediately.
func (s Settings) ScrollSpeed() float64 {
	vy := math.Abs(s.JumpStrength)
	if vy == 0 {
		return fallbackSpeed
	}
	speed := s.JumpDistance * s.Gravity / (2 * vy)
	if math.IsNaN(speed) || math.IsInf(speed, 0) {
		return fallbackSpeed
	}
	return speed
}

// Patch is a merge-patch for Settings: nil fields are left untouched.
// This is the full set of fields a host may change at runtime.
type Patch struct {
	Gravity           *float64 `json:"gravity,omitempty" yaml:"gravity,omitempty"`
	JumpStrength      *float64 `json:"jumpStrength,omitempty" yaml:"jump_strength,omitempty"`
	JumpDistance      *float64 `json:"jumpDistance,omitempty" yaml:"jump_distance,omitempty"`
	GroundOffset      *float64 `json:"groundOffset,omitempty" yaml:"ground_offset,omitempty"`
	PlayerWidth       *float64 `json:"playerWidth,omitempty" yaml:"player_width,omitempty"`
	PlayerHeight      *float64 `json:"playerHeight,omitempty" yaml:"player_height,omitempty"`
	ObstacleWidth     *float64 `json:"obstacleWidth,omitempty" yaml:"obstacle_width,omitempty"`
	ObstacleMinHeight *float64 `json:"obstacleMinHeight,omitempty" yaml:"obstacle_min_height,omitempty"`
	ObstacleMaxHeight *float64 `json:"obstacleMaxHeight,omitempty" yaml:"obstacle_max_height,omitempty"`
	SpawnIntervalMS   *float64 `json:"spawnInterval,omitempty" yaml:"spawn_interval_ms,omitempty"`
	CanvasWidth       *float64 `json:"canvasWidth,omitempty" yaml:"canvas_width,omitempty"`
	CanvasHeight      *float64 `json:"canvasHeight,omitempty" yaml:"canvas_height,omitempty"`
	CycleSeconds      *float64 `json:"cycleSeconds,omitempty" yaml:"cycle_seconds,omitempty"`
	BonusFactor       *float64 `json:"bonusFactor,omitempty" yaml:"bonus_factor,omitempty"`
	Trees             *bool    `json:"trees,omitempty" yaml:"trees,omitempty"`
	Bushes            *bool    `json:"bushes,omitempty" yaml:"bushes,omitempty"`
}

// Apply merges the patch into the settings and re-validates.
func (s *Settings) Apply(p Patch) {
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setF(&s.Gravity, p.Gravity)
	setF(&s.JumpStrength, p.JumpStrength)
	setF(&s.JumpDistance, p.JumpDistance)
	setF(&s.GroundOffset, p.GroundOffset)
	setF(&s.PlayerWidth, p.PlayerWidth)
	setF(&s.PlayerHeight, p.PlayerHeight)
	setF(&s.ObstacleWidth, p.ObstacleWidth)
	setF(&s.ObstacleMinHeight, p.ObstacleMinHeight)
	setF(&s.ObstacleMaxHeight, p.ObstacleMaxHeight)
	setF(&s.SpawnIntervalMS, p.SpawnIntervalMS)
	setF(&s.CanvasWidth, p.CanvasWidth)
	setF(&s.CanvasHeight, p.CanvasHeight)
	setF(&s.CycleSeconds, p.CycleSeconds)
	setF(&s.BonusFactor, p.BonusFactor)
	if p.Trees != nil {
		s.Trees = *p.Trees
	}
	if p.Bushes != nil {
		s.Bushes = *p.Bushes
	}
	s.Validate()
}
