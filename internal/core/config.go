package core

// RuntimeConfig contains settings the platform passes to a game session
// at initialization. Seed makes a run fully deterministic.
type RuntimeConfig struct {
	ScreenW int    // Terminal width in characters
	ScreenH int    // Terminal height in characters
	Seed    int64  // RNG seed (0 means the platform picks a time-based seed)
	Player  string // Player identity for leaderboard submission
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
		Player:  "anon",
	}
}

// Phase is the lifecycle state of a game session.
//
// Transitions: Idle -> Running on the first activate input,
// Running -> Over on a terminal collision, Over -> Idle on reset.
type Phase int

const (
	PhaseIdle    Phase = iota // Session created or reset, simulation not advancing
	PhaseRunning              // Tick pipeline active
	PhaseOver                 // Terminal collision happened; score frozen
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// EventKind identifies an event emitted by the simulation tick pipeline.
type EventKind int

const (
	// EventTokenCollected fires once per newly collected token.
	EventTokenCollected EventKind = iota
	// EventGameOver fires exactly once per session, on the Running -> Over
	// transition, regardless of how many collision causes fired that tick.
	EventGameOver
)

// Event is a single occurrence emitted by one simulation step.
type Event struct {
	Kind    EventKind
	TokenID int64 // Set for EventTokenCollected
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	Phase  Phase
	Events []Event
}
