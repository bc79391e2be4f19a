package game

import "github.com/dkoval/flapdash/internal/core"

// TokenView is a token as exposed to the renderer.
type TokenView struct {
	ID        int64
	X, Y      float64
	Collected bool
}

// Snapshot is the per-tick view of the simulation handed to the rendering
// collaborator. It carries logical positions and sizes only; how entities
// are drawn is not the simulation's concern.
type Snapshot struct {
	Tick   uint64
	Phase  core.Phase
	Paused bool

	FieldW, FieldH float64

	PlayerX        float64
	PlayerY        float64
	PlayerSize     float64
	PlayerRotation float64

	ObstacleX     float64
	ObstacleWidth float64
	GapTop        float64
	GapSize       float64

	Tokens    []TokenView
	TokenSize float64

	ElapsedMS       int64
	TokensCollected int
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	live := g.spawner.Tokens()
	tokens := make([]TokenView, len(live))
	for i, t := range live {
		tokens[i] = TokenView{ID: t.ID, X: t.X, Y: t.Y, Collected: t.Collected}
	}

	return Snapshot{
		Tick:   g.tick,
		Phase:  g.phase,
		Paused: g.paused,

		FieldW: g.cfg.Playfield.Width,
		FieldH: g.cfg.Playfield.Height,

		PlayerX:        g.cfg.Player.X,
		PlayerY:        g.player.Y,
		PlayerSize:     g.cfg.Player.Size,
		PlayerRotation: g.player.Rotation,

		ObstacleX:     g.obstacle.X,
		ObstacleWidth: g.cfg.Obstacles.Width,
		GapTop:        g.obstacle.GapTop,
		GapSize:       g.cfg.Obstacles.GapSize,

		Tokens:    tokens,
		TokenSize: g.cfg.Tokens.Size,

		ElapsedMS:       g.session.ElapsedMS(),
		TokensCollected: g.tokensCollected,
	}
}
