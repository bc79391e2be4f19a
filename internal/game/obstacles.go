package game

import (
	"math/rand"

	"github.com/dkoval/flapdash/internal/config"
	"github.com/dkoval/flapdash/internal/core"
)

// ObstaclePair is the single recycled obstacle: a top and bottom pipe
// sharing one horizontal position and one gap. There is never more than
// one pair live, which keeps obstacle collision checks O(1) per tick.
type ObstaclePair struct {
	X      float64 // Left edge, decreases each tick
	GapTop float64 // Height of the top pipe (top of the gap), integer pixels
}

// Advance moves the pair left by the scroll speed.
func (o *ObstaclePair) Advance(speed float64) {
	o.X -= speed
}

// OffScreen reports whether the pair has fully scrolled off the left edge.
func (o ObstaclePair) OffScreen(pipeWidth float64) bool {
	return o.X < -pipeWidth
}

// Recycle re-enters the pair from the right edge with a re-randomized gap
// position. GapTop is drawn uniformly from [EdgeMargin, H - gap - EdgeMargin],
// which guarantees both pipes keep nonzero height and the gap stays fully
// on screen.
func (o *ObstaclePair) Recycle(rng *rand.Rand, cfg config.GameConfig) {
	o.X = cfg.Playfield.Width
	min := int(cfg.GapTopMin())
	max := int(cfg.GapTopMax())
	o.GapTop = float64(min)
	if max > min {
		o.GapTop = float64(min + rng.Intn(max-min+1))
	}
}

// TopRect returns the collision rectangle of the top pipe.
func (o ObstaclePair) TopRect(cfg config.GameConfig) core.Rect {
	return core.NewRect(o.X, 0, cfg.Obstacles.Width, o.GapTop)
}

// BottomRect returns the collision rectangle of the bottom pipe.
func (o ObstaclePair) BottomRect(cfg config.GameConfig) core.Rect {
	bottomY := o.GapTop + cfg.Obstacles.GapSize
	return core.NewRect(o.X, bottomY, cfg.Obstacles.Width, cfg.Playfield.Height-bottomY)
}
