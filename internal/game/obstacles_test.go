package game

import (
	"math/rand"
	"testing"

	"github.com/dkoval/flapdash/internal/config"
)

func TestRecycleGapTopBounds(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(7))

	var o ObstaclePair
	for i := 0; i < 1000; i++ {
		o.Recycle(rng, cfg)

		if o.X != cfg.Playfield.Width {
			t.Fatalf("recycle should re-enter at the right edge %v, got %v", cfg.Playfield.Width, o.X)
		}
		if o.GapTop < cfg.GapTopMin() || o.GapTop > cfg.GapTopMax() {
			t.Fatalf("gap top %v outside [%v, %v]", o.GapTop, cfg.GapTopMin(), cfg.GapTopMax())
		}
		if o.GapTop != float64(int(o.GapTop)) {
			t.Fatalf("gap top should be integer pixels, got %v", o.GapTop)
		}

		// Top pipe + gap + bottom pipe always sum to the playfield height.
		top := o.TopRect(cfg)
		bottom := o.BottomRect(cfg)
		if top.H+cfg.Obstacles.GapSize+bottom.H != cfg.Playfield.Height {
			t.Fatalf("pipe heights %v + gap %v + %v do not cover the playfield",
				top.H, cfg.Obstacles.GapSize, bottom.H)
		}
		if top.H <= 0 || bottom.H <= 0 {
			t.Fatalf("degenerate pipe: top %v bottom %v", top.H, bottom.H)
		}
	}
}

func TestRecycleAtMinimumDraw(t *testing.T) {
	// Height 500, gap 200: a minimum draw gives gapTop=50, bottom pipe
	// starting at 250 with height 250.
	cfg := config.Default()
	o := ObstaclePair{GapTop: cfg.GapTopMin()}

	bottom := o.BottomRect(cfg)
	if bottom.Y != 250 {
		t.Errorf("bottom pipe starts at %v, expected 250", bottom.Y)
	}
	if bottom.H != 250 {
		t.Errorf("bottom pipe height %v, expected 250", bottom.H)
	}
	if top := o.TopRect(cfg); top.H != 50 {
		t.Errorf("top pipe height %v, expected 50", top.H)
	}
}

func TestAdvanceAndOffScreen(t *testing.T) {
	cfg := config.Default()
	o := ObstaclePair{X: 10}

	o.Advance(cfg.Obstacles.Speed)
	if o.X != 10-cfg.Obstacles.Speed {
		t.Errorf("advance: X = %v, expected %v", o.X, 10-cfg.Obstacles.Speed)
	}

	o.X = -cfg.Obstacles.Width
	if o.OffScreen(cfg.Obstacles.Width) {
		t.Error("pair exactly at -width is still touching the edge")
	}
	o.X = -cfg.Obstacles.Width - 1
	if !o.OffScreen(cfg.Obstacles.Width) {
		t.Error("pair past -width should be off screen")
	}
}

func TestRecycleDeterministic(t *testing.T) {
	cfg := config.Default()

	var a, b ObstaclePair
	rngA := rand.New(rand.NewSource(99))
	rngB := rand.New(rand.NewSource(99))

	for i := 0; i < 50; i++ {
		a.Recycle(rngA, cfg)
		b.Recycle(rngB, cfg)
		if a.GapTop != b.GapTop {
			t.Fatalf("same seed should give same gaps, got %v vs %v", a.GapTop, b.GapTop)
		}
	}
}
