package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded fallback configuration, used
// only when even the embedded YAML fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: PhysicsConfig{
			Gravity:      0.4,
			JumpStrength: -10,
			JumpDistance: 150,
		},
		Player: PlayerConfig{
			Width:        30,
			Height:       40,
			GroundOffset: 30,
		},
		Obstacles: ObstacleConfig{
			Width:           18,
			MinHeight:       30,
			MaxHeight:       60,
			SpawnIntervalMS: 1400,
		},
		Canvas: CanvasConfig{
			Width:  800,
			Height: 300,
		},
		Cycle: CycleConfig{
			Seconds: 60,
		},
		Scoring: ScoringConfig{
			BonusFactor: 0.1,
		},
		Scenery: SceneryConfig{
			Trees:  true,
			Bushes: true,
		},
	}
}
