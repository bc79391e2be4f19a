package config

import (
	_ "embed"
)

//go:embed defaults/flapdash.yaml
var defaultYAML []byte

// Default returns the built-in game configuration.
// Kept in sync with defaults/flapdash.yaml; used as the last-resort
// fallback if the embedded YAML somehow fails to parse.
func Default() GameConfig {
	return GameConfig{
		Playfield: PlayfieldConfig{
			Width:  360,
			Height: 500,
		},
		Player: PlayerConfig{
			X:    80,
			Size: 50,
		},
		Physics: PhysicsConfig{
			Gravity:    4,
			JumpHeight: 100,
			TiltUp:     -30,
			TiltMax:    90,
			TiltStep:   4,
		},
		Obstacles: ObstaclesConfig{
			Width:      80,
			GapSize:    200,
			Speed:      6,
			EdgeMargin: 50,
		},
		Tokens: TokensConfig{
			Size:        20,
			Clearance:   10,
			SpawnChance: 1.0,
			LeadOffset:  20,
		},
		Collision: CollisionConfig{
			PipeInset:  15,
			TokenInset: 20,
		},
		Timing: TimingConfig{
			SimTickMS:   30,
			ScoreTickMS: 10,
		},
	}
}
