package game

import (
	"testing"

	"github.com/dkoval/flapdash/internal/config"
)

func TestGravityStep(t *testing.T) {
	cfg := config.Default()
	p := PlayerBody{Y: 200}

	p = p.GravityStep(cfg.Physics.Gravity, cfg.FloorY())
	if p.Y != 200+cfg.Physics.Gravity {
		t.Errorf("gravity step: Y = %v, expected %v", p.Y, 200+cfg.Physics.Gravity)
	}
}

func TestGravityStepClampsToFloor(t *testing.T) {
	cfg := config.Default()
	p := PlayerBody{Y: cfg.FloorY() - 1}

	p = p.GravityStep(cfg.Physics.Gravity, cfg.FloorY())
	if p.Y != cfg.FloorY() {
		t.Errorf("gravity step should clamp at floor %v, got %v", cfg.FloorY(), p.Y)
	}

	// Further steps stay clamped.
	p = p.GravityStep(cfg.Physics.Gravity, cfg.FloorY())
	if p.Y != cfg.FloorY() {
		t.Errorf("clamped body should stay at floor, got %v", p.Y)
	}
}

func TestJump(t *testing.T) {
	// Jump at 250 moves to max(0, 250-100) = 150 with nose-up tilt.
	p := PlayerBody{Y: 250, Rotation: 45}
	p = p.Jump(100, -30)

	if p.Y != 150 {
		t.Errorf("jump: Y = %v, expected 150", p.Y)
	}
	if p.Rotation != -30 {
		t.Errorf("jump: rotation = %v, expected -30", p.Rotation)
	}
}

func TestJumpClampsAtCeiling(t *testing.T) {
	p := PlayerBody{Y: 40}
	p = p.Jump(100, -30)

	if p.Y != 0 {
		t.Errorf("jump near ceiling should clamp at 0, got %v", p.Y)
	}
}

func TestSettleRotation(t *testing.T) {
	p := PlayerBody{Rotation: -30}

	p = p.SettleRotation(4, 90)
	if p.Rotation != -26 {
		t.Errorf("settle: rotation = %v, expected -26", p.Rotation)
	}

	// Many steps saturate at the nose-down limit.
	for i := 0; i < 100; i++ {
		p = p.SettleRotation(4, 90)
	}
	if p.Rotation != 90 {
		t.Errorf("rotation should saturate at 90, got %v", p.Rotation)
	}
}

func TestPlayerRect(t *testing.T) {
	p := PlayerBody{Y: 120}
	r := p.Rect(80, 50)

	if r.X != 80 || r.Y != 120 || r.W != 50 || r.H != 50 {
		t.Errorf("Rect() = %+v, expected {80 120 50 50}", r)
	}
}
