package game

import "github.com/dkoval/flapdash/internal/core"

// PlayerBody is the player's moving state: vertical position of the top of
// the body and its rotation in degrees. Horizontal position and size are
// fixed by configuration for the whole session.
type PlayerBody struct {
	Y        float64
	Rotation float64
}

// GravityStep returns the body after one gravity increment, clamped to the
// floor. Position-based: gravity adds to Y directly, there is no velocity.
func (p PlayerBody) GravityStep(gravity, floor float64) PlayerBody {
	p.Y = core.ClampF(p.Y+gravity, 0, floor)
	return p
}

// Jump returns the body after a jump impulse: Y moves up by jumpHeight,
// clamped at the ceiling, and rotation snaps to the nose-up tilt.
func (p PlayerBody) Jump(jumpHeight, tiltUp float64) PlayerBody {
	p.Y -= jumpHeight
	if p.Y < 0 {
		p.Y = 0
	}
	p.Rotation = tiltUp
	return p
}

// SettleRotation returns the body with rotation advanced toward the maximum
// nose-down tilt. Purely presentational: rotation never affects collision
// geometry.
func (p PlayerBody) SettleRotation(step, max float64) PlayerBody {
	p.Rotation += step
	if p.Rotation > max {
		p.Rotation = max
	}
	return p
}

// Rect returns the player's full (uninset) bounding box.
func (p PlayerBody) Rect(x, size float64) core.Rect {
	return core.NewRect(x, p.Y, size, size)
}
