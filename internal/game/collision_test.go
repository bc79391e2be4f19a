package game

import (
	"testing"

	"github.com/dkoval/flapdash/internal/config"
)

func TestGroundHit(t *testing.T) {
	cfg := config.Default()

	if groundHit(PlayerBody{Y: cfg.FloorY() - 1}, cfg.FloorY()) {
		t.Error("body above the floor should not hit ground")
	}
	if !groundHit(PlayerBody{Y: cfg.FloorY()}, cfg.FloorY()) {
		t.Error("body at the floor clamp should hit ground")
	}
}

func TestPipeHit(t *testing.T) {
	cfg := config.Default()
	// Pipe pair over the player column, gap between 150 and 350.
	o := ObstaclePair{X: cfg.Player.X, GapTop: 150}

	inset := cfg.Collision.PipeInset
	mid := PlayerBody{Y: 225} // Centered in the gap

	if pipeHit(mid.Rect(cfg.Player.X, cfg.Player.Size).Inset(inset), o, cfg) {
		t.Error("player centered in the gap should clear both pipes")
	}

	high := PlayerBody{Y: 50} // Inside the top pipe
	if !pipeHit(high.Rect(cfg.Player.X, cfg.Player.Size).Inset(inset), o, cfg) {
		t.Error("player inside the top pipe should collide")
	}

	low := PlayerBody{Y: 400} // Inside the bottom pipe
	if !pipeHit(low.Rect(cfg.Player.X, cfg.Player.Size).Inset(inset), o, cfg) {
		t.Error("player inside the bottom pipe should collide")
	}
}

func TestPipeHitInsetForgiveness(t *testing.T) {
	cfg := config.Default()
	o := ObstaclePair{X: cfg.Player.X + cfg.Player.Size - 10, GapTop: 150}

	// Sprite grazes the pipe by 10px horizontally; the 15px inset forgives it.
	p := PlayerBody{Y: 100}
	full := p.Rect(cfg.Player.X, cfg.Player.Size)

	if !full.Intersects(o.TopRect(cfg)) {
		t.Fatal("full sprite box should graze the pipe")
	}
	if pipeHit(full.Inset(cfg.Collision.PipeInset), o, cfg) {
		t.Error("inset hitbox should forgive a graze")
	}
}

func TestCollectTokens(t *testing.T) {
	cfg := config.Default()
	p := PlayerBody{Y: 200}
	box := p.Rect(cfg.Player.X, cfg.Player.Size).Inset(cfg.Collision.TokenInset)

	tokens := []Token{
		{ID: 1, X: cfg.Player.X + 15, Y: 215}, // Overlapping the inset box
		{ID: 2, X: 300, Y: 215},               // Far away
	}

	got := collectTokens(box, tokens, cfg.Tokens.Size)
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected to collect token 1, got %v", got)
	}
	if !tokens[0].Collected {
		t.Error("collected flag should be set")
	}
	if tokens[1].Collected {
		t.Error("distant token should stay uncollected")
	}
}

func TestCollectTokensIdempotent(t *testing.T) {
	cfg := config.Default()
	p := PlayerBody{Y: 200}
	box := p.Rect(cfg.Player.X, cfg.Player.Size).Inset(cfg.Collision.TokenInset)

	tokens := []Token{{ID: 1, X: cfg.Player.X + 15, Y: 215}}

	first := collectTokens(box, tokens, cfg.Tokens.Size)
	second := collectTokens(box, tokens, cfg.Tokens.Size)

	if len(first) != 1 {
		t.Fatalf("first pass should collect, got %v", first)
	}
	if len(second) != 0 {
		t.Errorf("second pass on a collected token must be a no-op, got %v", second)
	}
}

func TestTokenInsetIndependentOfPipeInset(t *testing.T) {
	cfg := config.Default()
	if cfg.Collision.PipeInset == cfg.Collision.TokenInset {
		t.Fatal("the two insets are independent tunables and default differently")
	}

	// A token that only the smaller pipe-inset box would reach stays
	// uncollected under the token inset.
	p := PlayerBody{Y: 200}
	pipeBox := p.Rect(cfg.Player.X, cfg.Player.Size).Inset(cfg.Collision.PipeInset)
	tokenBox := p.Rect(cfg.Player.X, cfg.Player.Size).Inset(cfg.Collision.TokenInset)

	edge := Token{ID: 1, X: pipeBox.Right() - 1, Y: 215}
	if !pipeBox.Intersects(edge.Rect(cfg.Tokens.Size)) {
		t.Fatal("setup: token should touch the pipe-inset box")
	}
	if tokenBox.Intersects(edge.Rect(cfg.Tokens.Size)) {
		t.Error("token-inset box should be tighter than the pipe-inset box")
	}
}
