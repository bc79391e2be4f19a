package game

import (
	"github.com/dkoval/flapdash/internal/config"
	"github.com/dkoval/flapdash/internal/core"
)

// groundHit reports whether the body has reached the floor clamp.
// Kinematics already clamps Y there, so equality is the contact condition.
func groundHit(p PlayerBody, floor float64) bool {
	return p.Y >= floor
}

// pipeHit tests the player's inset box against both pipe rectangles.
// Any overlap with either is a terminal collision. Pipes use their full
// nominal size; only the player box is shrunk.
func pipeHit(playerBox core.Rect, o ObstaclePair, cfg config.GameConfig) bool {
	return playerBox.Intersects(o.TopRect(cfg)) || playerBox.Intersects(o.BottomRect(cfg))
}

// collectTokens tests the player's token-inset box against every live,
// uncollected token and flips the Collected flag on overlap. Returns the
// ids of newly collected tokens, one entry per token. Re-testing an
// already collected token is a no-op, so running this twice in one tick
// cannot double-count.
func collectTokens(playerBox core.Rect, tokens []Token, size float64) []int64 {
	var collected []int64
	for i := range tokens {
		if tokens[i].Collected {
			continue
		}
		if playerBox.Intersects(tokens[i].Rect(size)) {
			tokens[i].Collected = true
			collected = append(collected, tokens[i].ID)
		}
	}
	return collected
}
