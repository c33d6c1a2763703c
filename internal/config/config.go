// Package config provides YAML-based configuration loading for the runner:
// simulation tunables plus the day/night palette theme.
package config

import (
	"github.com/vovakirdan/blink-runner/internal/core"
	"github.com/vovakirdan/blink-runner/internal/engine"
)

// RunnerConfig is the on-disk configuration schema.
type RunnerConfig struct {
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Canvas    CanvasConfig   `yaml:"canvas"`
	Cycle     CycleConfig    `yaml:"cycle"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Scenery   SceneryConfig  `yaml:"scenery"`
	Palette   PaletteConfig  `yaml:"palette"`
}

// PhysicsConfig defines the jump/scroll parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"`
	JumpDistance float64 `yaml:"jump_distance"`
}

// PlayerConfig defines the player's box.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"`
}

// ObstacleConfig defines obstacle spawning parameters.
type ObstacleConfig struct {
	Width           float64 `yaml:"width"`
	MinHeight       float64 `yaml:"min_height"`
	MaxHeight       float64 `yaml:"max_height"`
	SpawnIntervalMS float64 `yaml:"spawn_interval_ms"`
}

// CanvasConfig defines the virtual canvas in pixels.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CycleConfig defines the day/night cycle.
type CycleConfig struct {
	Seconds float64 `yaml:"seconds"`
}

// ScoringConfig defines the clearance bonus.
type ScoringConfig struct {
	BonusFactor float64 `yaml:"bonus_factor"`
}

// SceneryConfig toggles decoration layers.
type SceneryConfig struct {
	Trees  bool `yaml:"trees"`
	Bushes bool `yaml:"bushes"`
}

// PaletteConfig carries theme colors as hex strings. Empty entries fall
// back to the built-in palette.
type PaletteConfig struct {
	SkyDay      string `yaml:"sky_day"`
	SkyNight    string `yaml:"sky_night"`
	GroundDay   string `yaml:"ground_day"`
	GroundNight string `yaml:"ground_night"`
	PlayerDay   string `yaml:"player_day"`
	PlayerNight string `yaml:"player_night"`
	CactusDay   string `yaml:"cactus_day"`
	CactusNight string `yaml:"cactus_night"`
}

// Settings converts the file schema to engine settings, validated.
func (c RunnerConfig) Settings() engine.Settings {
	s := engine.Settings{
		Gravity:           c.Physics.Gravity,
		JumpStrength:      c.Physics.JumpStrength,
		JumpDistance:      c.Physics.JumpDistance,
		GroundOffset:      c.Player.GroundOffset,
		PlayerWidth:       c.Player.Width,
		PlayerHeight:      c.Player.Height,
		ObstacleWidth:     c.Obstacles.Width,
		ObstacleMinHeight: c.Obstacles.MinHeight,
		ObstacleMaxHeight: c.Obstacles.MaxHeight,
		SpawnIntervalMS:   c.Obstacles.SpawnIntervalMS,
		CanvasWidth:       c.Canvas.Width,
		CanvasHeight:      c.Canvas.Height,
		CycleSeconds:      c.Cycle.Seconds,
		BonusFactor:       c.Scoring.BonusFactor,
		Trees:             c.Scenery.Trees,
		Bushes:            c.Scenery.Bushes,
	}
	s.Validate()
	return s
}

// ThemePalette converts the file colors to a palette, falling back to the
// default theme for anything unset or malformed.
func (c RunnerConfig) ThemePalette() core.Palette {
	p := core.DefaultPalette()
	assign := func(dst *core.RGB, hex string) {
		if hex == "" {
			return
		}
		if parsed, err := core.ParseHex(hex); err == nil {
			*dst = parsed
		}
	}
	assign(&p.SkyDay, c.Palette.SkyDay)
	assign(&p.SkyNight, c.Palette.SkyNight)
	assign(&p.GroundDay, c.Palette.GroundDay)
	assign(&p.GroundNight, c.Palette.GroundNight)
	assign(&p.PlayerDay, c.Palette.PlayerDay)
	assign(&p.PlayerNight, c.Palette.PlayerNight)
	assign(&p.CactusDay, c.Palette.CactusDay)
	assign(&p.CactusNight, c.Palette.CactusNight)
	return p
}
