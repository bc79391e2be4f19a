package game

import (
	"math/rand"
	"testing"

	"github.com/dkoval/flapdash/internal/config"
)

func TestSpawnInsideSafeBand(t *testing.T) {
	cfg := config.Default()
	s := NewTokenSpawner(rand.New(rand.NewSource(3)))

	for i := 0; i < 500; i++ {
		gapTop := float64(50 + i%200)
		if !s.MaybeSpawn(gapTop, cfg) {
			t.Fatalf("spawn chance 1.0 should always spawn (gapTop=%v)", gapTop)
		}

		tok := s.Tokens()[len(s.Tokens())-1]
		if tok.Y < gapTop+cfg.Tokens.Clearance {
			t.Fatalf("token top %v above safe band (gapTop=%v)", tok.Y, gapTop)
		}
		if tok.Y+cfg.Tokens.Size > gapTop+cfg.Obstacles.GapSize-cfg.Tokens.Clearance {
			t.Fatalf("token bottom %v below safe band (gapTop=%v)", tok.Y+cfg.Tokens.Size, gapTop)
		}
		if tok.X != cfg.Playfield.Width+cfg.Tokens.LeadOffset {
			t.Fatalf("token should enter beyond the right edge, got x=%v", tok.X)
		}
	}
}

func TestSpawnSkipsTightBand(t *testing.T) {
	// Gap of 35 with 10px clearance on each side leaves a 15px band,
	// smaller than the 20px token...
	cfg := config.Default()
	cfg.Obstacles.GapSize = 35
	s := NewTokenSpawner(rand.New(rand.NewSource(1)))

	if s.MaybeSpawn(100, cfg) {
		t.Error("band tighter than the token should not spawn")
	}
	if len(s.Tokens()) != 0 {
		t.Error("no token should be live after a skipped spawn")
	}

	// ...while exactly-fitting bands still spawn at the single legal spot.
	cfg.Obstacles.GapSize = 2*cfg.Tokens.Clearance + cfg.Tokens.Size
	if !s.MaybeSpawn(100, cfg) {
		t.Error("exactly-fitting band should spawn")
	}
	if tok := s.Tokens()[0]; tok.Y != 100+cfg.Tokens.Clearance {
		t.Errorf("exact fit should pin Y to %v, got %v", 100+cfg.Tokens.Clearance, tok.Y)
	}
}

func TestSpawnChanceZeroNeverSpawns(t *testing.T) {
	cfg := config.Default()
	cfg.Tokens.SpawnChance = 0
	s := NewTokenSpawner(rand.New(rand.NewSource(1)))

	for i := 0; i < 100; i++ {
		if s.MaybeSpawn(100, cfg) {
			t.Fatal("spawn chance 0 should never spawn")
		}
	}
}

func TestSpawnChanceIsApproximatelyHonored(t *testing.T) {
	cfg := config.Default()
	cfg.Tokens.SpawnChance = 0.5
	s := NewTokenSpawner(rand.New(rand.NewSource(42)))

	spawned := 0
	for i := 0; i < 1000; i++ {
		if s.MaybeSpawn(100, cfg) {
			spawned++
		}
	}
	if spawned < 400 || spawned > 600 {
		t.Errorf("spawn chance 0.5 produced %d/1000 spawns", spawned)
	}
}

func TestAdvanceAllDropsOffscreenAndCollected(t *testing.T) {
	cfg := config.Default()
	s := NewTokenSpawner(rand.New(rand.NewSource(1)))

	// Two tokens alive, one fully off the left edge (x=-25, size 20).
	s.tokens = []Token{
		{ID: 1, X: -25, Y: 100},
		{ID: 2, X: 150, Y: 100},
	}

	s.AdvanceAll(cfg.Obstacles.Speed, 20)

	if len(s.Tokens()) != 1 {
		t.Fatalf("expected 1 live token, got %d", len(s.Tokens()))
	}
	if s.Tokens()[0].ID != 2 {
		t.Errorf("wrong token survived: %d", s.Tokens()[0].ID)
	}
	if s.Tokens()[0].X != 150-cfg.Obstacles.Speed {
		t.Errorf("surviving token should have advanced, x=%v", s.Tokens()[0].X)
	}

	// Collected tokens are dropped on the next advance regardless of position.
	s.tokens[0].Collected = true
	s.AdvanceAll(cfg.Obstacles.Speed, 20)
	if len(s.Tokens()) != 0 {
		t.Errorf("collected token should be removed, %d left", len(s.Tokens()))
	}
}

func TestTokenIDsStrictlyIncreasing(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(5))
	s := NewTokenSpawner(rng)

	var last int64
	for i := 0; i < 20; i++ {
		s.MaybeSpawn(100, cfg)
		tok := s.Tokens()[len(s.Tokens())-1]
		if tok.ID <= last {
			t.Fatalf("id %d not greater than previous %d", tok.ID, last)
		}
		last = tok.ID
	}

	// Ids keep increasing across session resets; they are never reused.
	s.Reset(rng)
	s.MaybeSpawn(100, cfg)
	if tok := s.Tokens()[0]; tok.ID <= last {
		t.Errorf("id %d after reset should exceed %d", tok.ID, last)
	}
}
