// Package game implements the flapdash simulation: position-based
// kinematics, a single recycled pipe pair, token spawning bounded by the
// gap, and the collision pipeline that ends a run.
//
// The Game struct owns every simulation entity; Step is the sole mutator.
// Collision detection always runs after all movement for the tick, never
// interleaved, so it only ever sees current positions.
package game

import (
	"math/rand"

	"github.com/dkoval/flapdash/internal/config"
	"github.com/dkoval/flapdash/internal/core"
)

// Game is one game session.
type Game struct {
	cfg config.GameConfig
	rng *rand.Rand

	phase    core.Phase
	paused   bool
	tick     uint64
	player   PlayerBody
	obstacle ObstaclePair
	spawner  *TokenSpawner
	session  *Session

	tokensCollected int
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.GameConfig) *Game {
	return &Game{
		cfg:     cfg,
		spawner: NewTokenSpawner(nil),
		session: NewSession(),
	}
}

// Reset initializes or restarts the session: player centered, obstacle at
// the right edge with a fresh random gap, no live tokens, score at zero,
// phase Idle until the first activate input.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.phase = core.PhaseIdle
	g.paused = false
	g.tick = 0
	g.tokensCollected = 0

	g.player = PlayerBody{
		Y:        (g.cfg.Playfield.Height - g.cfg.Player.Size) / 2,
		Rotation: 0,
	}
	g.obstacle.Recycle(g.rng, g.cfg)
	g.spawner.Reset(g.rng)
	g.session.Reset()
}

// Step advances the simulation by one fixed tick.
//
// Pipeline order is a contract: input, kinematics, obstacle advance and
// recycle, token spawn and advance, then collision over the updated
// positions. Outside the Running phase Step mutates nothing, so a stale
// pending tick after game over or reset is harmless.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case core.PhaseOver:
		return core.StepResult{Phase: g.phase}

	case core.PhaseIdle:
		if in.Has(core.ActionFlap) {
			g.phase = core.PhaseRunning
			g.session.Start()
			// The activating tap also flaps; without it the player
			// free-falls for a tick before they can react.
			g.player = g.player.Jump(g.cfg.Physics.JumpHeight, g.cfg.Physics.TiltUp)
		}
		return core.StepResult{Phase: g.phase}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			g.session.Pause()
		} else {
			g.session.Resume()
		}
	}
	if g.paused {
		return core.StepResult{Phase: g.phase}
	}

	g.tick++
	var events []core.Event

	// Kinematics
	g.player = g.player.GravityStep(g.cfg.Physics.Gravity, g.cfg.FloorY())
	if in.Has(core.ActionFlap) {
		g.player = g.player.Jump(g.cfg.Physics.JumpHeight, g.cfg.Physics.TiltUp)
	} else {
		g.player = g.player.SettleRotation(g.cfg.Physics.TiltStep, g.cfg.Physics.TiltMax)
	}

	// Obstacle advance and recycle; recycling may spawn a token into the
	// new gap.
	g.obstacle.Advance(g.cfg.Obstacles.Speed)
	if g.obstacle.OffScreen(g.cfg.Obstacles.Width) {
		g.obstacle.Recycle(g.rng, g.cfg)
		g.spawner.MaybeSpawn(g.obstacle.GapTop, g.cfg)
	}

	// Tokens move in lockstep with the pipes.
	g.spawner.AdvanceAll(g.cfg.Obstacles.Speed, g.cfg.Tokens.Size)

	// Collisions, over this tick's final positions.
	playerBox := g.player.Rect(g.cfg.Player.X, g.cfg.Player.Size)

	for _, id := range collectTokens(playerBox.Inset(g.cfg.Collision.TokenInset), g.spawner.Tokens(), g.cfg.Tokens.Size) {
		g.tokensCollected++
		events = append(events, core.Event{Kind: core.EventTokenCollected, TokenID: id})
	}

	// Multiple simultaneous causes still produce exactly one transition.
	if groundHit(g.player, g.cfg.FloorY()) || pipeHit(playerBox.Inset(g.cfg.Collision.PipeInset), g.obstacle, g.cfg) {
		g.phase = core.PhaseOver
		g.session.Freeze()
		events = append(events, core.Event{Kind: core.EventGameOver})
	}

	return core.StepResult{Phase: g.phase, Events: events}
}

// Phase returns the current session phase.
func (g *Game) Phase() core.Phase {
	return g.phase
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// ElapsedMS returns the current score in milliseconds. Safe to call from
// the score ticker at any time; it never mutates simulation state.
func (g *Game) ElapsedMS() int64 {
	return g.session.ElapsedMS()
}

// TokensCollected returns the token count for this session.
func (g *Game) TokensCollected() int {
	return g.tokensCollected
}

// Config returns the session's game configuration.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}
