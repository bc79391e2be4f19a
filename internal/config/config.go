// Package config provides YAML-based game configuration loading and
// validation for flapdash.
package config

import "fmt"

// GameConfig contains all tunables for a game session.
// All geometry is in playfield pixels; the renderer scales to the terminal.
type GameConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Tokens    TokensConfig    `yaml:"tokens"`
	Collision CollisionConfig `yaml:"collision"`
	Timing    TimingConfig    `yaml:"timing"`
}

// PlayfieldConfig defines the logical playfield dimensions.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player body. Horizontal position and size are
// fixed for the whole session; only vertical position and rotation move.
type PlayerConfig struct {
	X    float64 `yaml:"x"`
	Size float64 `yaml:"size"`
}

// PhysicsConfig defines the kinematics parameters.
// Gravity and jumps act on position directly; there is no velocity term.
type PhysicsConfig struct {
	Gravity    float64 `yaml:"gravity"`     // Pixels added to Y per tick
	JumpHeight float64 `yaml:"jump_height"` // Pixels subtracted from Y per jump
	TiltUp     float64 `yaml:"tilt_up"`     // Rotation set on jump (degrees, negative = nose up)
	TiltMax    float64 `yaml:"tilt_max"`    // Maximum nose-down rotation (degrees)
	TiltStep   float64 `yaml:"tilt_step"`   // Degrees added per tick while settling toward TiltMax
}

// ObstaclesConfig defines the recycled pipe pair.
type ObstaclesConfig struct {
	Width      float64 `yaml:"width"`       // Pipe width
	GapSize    float64 `yaml:"gap_size"`    // Vertical gap between top and bottom pipe
	Speed      float64 `yaml:"speed"`       // Pixels moved left per tick (shared with tokens)
	EdgeMargin float64 `yaml:"edge_margin"` // Minimum top/bottom pipe height at recycle
}

// TokensConfig defines collectible token spawning.
type TokensConfig struct {
	Size        float64 `yaml:"size"`         // Token box size
	Clearance   float64 `yaml:"clearance"`    // Minimum distance from either pipe edge at spawn
	SpawnChance float64 `yaml:"spawn_chance"` // Probability of a spawn per recycle, in [0, 1]
	LeadOffset  float64 `yaml:"lead_offset"`  // How far beyond the right edge a token enters
}

// CollisionConfig defines the player hitbox insets.
// The two insets were tuned separately and must stay independent.
type CollisionConfig struct {
	PipeInset  float64 `yaml:"pipe_inset"`  // Player box inset per side for pipe tests
	TokenInset float64 `yaml:"token_inset"` // Player box inset per side for token tests
}

// TimingConfig defines the two fixed tick periods.
type TimingConfig struct {
	SimTickMS   int `yaml:"sim_tick_ms"`   // Simulation step period (~33 Hz)
	ScoreTickMS int `yaml:"score_tick_ms"` // Score display refresh period (~100 Hz)
}

// Validate rejects malformed configuration at load time so that the tick
// pipeline never has to discover invalid geometry mid-run.
func (c GameConfig) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("config: playfield %gx%g must be positive", c.Playfield.Width, c.Playfield.Height)
	}
	if c.Player.Size <= 0 || c.Player.Size >= c.Playfield.Height {
		return fmt.Errorf("config: player size %g must fit the playfield height %g", c.Player.Size, c.Playfield.Height)
	}
	if c.Player.X < 0 || c.Player.X+c.Player.Size > c.Playfield.Width {
		return fmt.Errorf("config: player x %g puts the body outside the playfield", c.Player.X)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("config: gravity %g must be positive", c.Physics.Gravity)
	}
	if c.Physics.JumpHeight <= 0 {
		return fmt.Errorf("config: jump_height %g must be positive", c.Physics.JumpHeight)
	}
	if c.Physics.TiltStep <= 0 {
		return fmt.Errorf("config: tilt_step %g must be positive", c.Physics.TiltStep)
	}
	if c.Physics.TiltUp >= c.Physics.TiltMax {
		return fmt.Errorf("config: tilt_up %g must be below tilt_max %g", c.Physics.TiltUp, c.Physics.TiltMax)
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Speed <= 0 {
		return fmt.Errorf("config: obstacle width %g and speed %g must be positive", c.Obstacles.Width, c.Obstacles.Speed)
	}
	if c.Obstacles.GapSize <= 0 {
		return fmt.Errorf("config: gap_size %g must be positive", c.Obstacles.GapSize)
	}
	if c.Obstacles.EdgeMargin < 0 {
		return fmt.Errorf("config: edge_margin %g must not be negative", c.Obstacles.EdgeMargin)
	}
	// The gap-top range [margin, H - gap - margin] must be non-empty,
	// otherwise recycling has no legal gap position.
	if c.Obstacles.GapSize+2*c.Obstacles.EdgeMargin > c.Playfield.Height {
		return fmt.Errorf("config: gap_size %g plus margins does not fit playfield height %g",
			c.Obstacles.GapSize, c.Playfield.Height)
	}
	if c.Tokens.Size <= 0 {
		return fmt.Errorf("config: token size %g must be positive", c.Tokens.Size)
	}
	if c.Tokens.Clearance < 0 {
		return fmt.Errorf("config: token clearance %g must not be negative", c.Tokens.Clearance)
	}
	if c.Tokens.SpawnChance < 0 || c.Tokens.SpawnChance > 1 {
		return fmt.Errorf("config: spawn_chance %g must be in [0, 1]", c.Tokens.SpawnChance)
	}
	if c.Collision.PipeInset < 0 || c.Collision.TokenInset < 0 {
		return fmt.Errorf("config: collision insets must not be negative")
	}
	if c.Timing.SimTickMS <= 0 || c.Timing.ScoreTickMS <= 0 {
		return fmt.Errorf("config: tick periods must be positive")
	}
	return nil
}

// FloorY returns the highest legal player Y position (the ground clamp).
func (c GameConfig) FloorY() float64 {
	return c.Playfield.Height - c.Player.Size
}

// GapTopMin returns the smallest legal top-pipe height at recycle.
func (c GameConfig) GapTopMin() float64 {
	return c.Obstacles.EdgeMargin
}

// GapTopMax returns the largest legal top-pipe height at recycle.
func (c GameConfig) GapTopMax() float64 {
	return c.Playfield.Height - c.Obstacles.GapSize - c.Obstacles.EdgeMargin
}
