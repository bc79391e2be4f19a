package game

import (
	"math/rand"

	"github.com/dkoval/flapdash/internal/config"
	"github.com/dkoval/flapdash/internal/core"
)

// Token is a collectible bonus positioned inside an obstacle gap.
// Collected is one-way: once true it stays true until the token expires.
type Token struct {
	ID        int64
	X, Y      float64
	Collected bool
}

// Rect returns the token's full bounding box. Tokens never get an inset.
func (t Token) Rect(size float64) core.Rect {
	return core.NewRect(t.X, t.Y, size, size)
}

// TokenSpawner owns the live token set. It spawns on obstacle recycle,
// advances tokens in lockstep with the pipes, and is the only component
// that removes tokens; the collision detector only flips Collected.
type TokenSpawner struct {
	rng    *rand.Rand
	tokens []Token
	nextID int64 // Strictly increasing, never reused across resets
}

// NewTokenSpawner creates a spawner using the given RNG.
func NewTokenSpawner(rng *rand.Rand) *TokenSpawner {
	return &TokenSpawner{
		rng:    rng,
		tokens: make([]Token, 0, 4),
	}
}

// Reset clears the live set for a new session. The id sequence keeps
// counting up so ids stay unique for the process lifetime.
func (s *TokenSpawner) Reset(rng *rand.Rand) {
	s.rng = rng
	s.tokens = s.tokens[:0]
}

// MaybeSpawn rolls the spawn chance and, on success, places a token inside
// the safe band of the just-generated gap: at least Clearance away from
// either pipe edge, with the full token height inside. If the band is too
// tight to fit the token, nothing spawns. Returns whether a token spawned.
func (s *TokenSpawner) MaybeSpawn(gapTop float64, cfg config.GameConfig) bool {
	if cfg.Tokens.SpawnChance < 1 && s.rng.Float64() >= cfg.Tokens.SpawnChance {
		return false
	}

	bandMin := gapTop + cfg.Tokens.Clearance
	bandMax := gapTop + cfg.Obstacles.GapSize - cfg.Tokens.Clearance - cfg.Tokens.Size
	if bandMax < bandMin {
		// Tight configurations never spawn; that is fine.
		return false
	}

	y := bandMin
	if bandMax > bandMin {
		y = bandMin + s.rng.Float64()*(bandMax-bandMin)
	}

	s.nextID++
	s.tokens = append(s.tokens, Token{
		ID: s.nextID,
		X:  cfg.Playfield.Width + cfg.Tokens.LeadOffset,
		Y:  y,
	})
	return true
}

// AdvanceAll moves every live token left by the same speed as the pipes
// (lockstep is a design invariant, not incidental), then drops tokens that
// are fully off the left edge or already collected.
func (s *TokenSpawner) AdvanceAll(speed, size float64) {
	live := s.tokens[:0]
	for _, t := range s.tokens {
		t.X -= speed
		if t.Collected || t.X+size <= 0 {
			continue
		}
		live = append(live, t)
	}
	s.tokens = live
}

// Tokens returns the live token set. The collision detector mutates the
// Collected flag through this slice; removal stays with the spawner.
func (s *TokenSpawner) Tokens() []Token {
	return s.tokens
}
