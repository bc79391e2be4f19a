package game

import "time"

// Session is the millisecond-precision score clock. It is read-only for
// everything except the session boundaries (start, pause, freeze, reset),
// so the fast score ticker can read it concurrently with the simulation
// tick without a lock.
type Session struct {
	now func() time.Time

	running     bool
	frozen      bool
	startedAt   time.Time
	pausedAt    time.Time
	pausedTotal time.Duration
	paused      bool
	finalMS     int64
}

// NewSession creates a session clock backed by the wall clock.
func NewSession() *Session {
	return &Session{now: time.Now}
}

// Reset returns the clock to the not-started state.
func (s *Session) Reset() {
	s.running = false
	s.frozen = false
	s.paused = false
	s.pausedTotal = 0
	s.finalMS = 0
}

// Start begins timing. Called on the Idle -> Running transition.
func (s *Session) Start() {
	s.running = true
	s.frozen = false
	s.paused = false
	s.pausedTotal = 0
	s.startedAt = s.now()
}

// Pause stops the clock; paused time is excluded from the score.
func (s *Session) Pause() {
	if !s.running || s.frozen || s.paused {
		return
	}
	s.paused = true
	s.pausedAt = s.now()
}

// Resume restarts the clock after a pause.
func (s *Session) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	s.pausedTotal += s.now().Sub(s.pausedAt)
}

// Freeze fixes the final score at game over. Further reads return the
// frozen value until Reset.
func (s *Session) Freeze() {
	if s.frozen {
		return
	}
	s.finalMS = s.ElapsedMS()
	s.frozen = true
}

// ElapsedMS returns elapsed milliseconds: zero before start, monotonically
// non-decreasing while running, and the frozen terminal value after Freeze.
func (s *Session) ElapsedMS() int64 {
	if s.frozen {
		return s.finalMS
	}
	if !s.running {
		return 0
	}
	end := s.now()
	if s.paused {
		end = s.pausedAt
	}
	return (end.Sub(s.startedAt) - s.pausedTotal).Milliseconds()
}
