package chamber

import (
	"time"

	"tobacco_drying/internal/models"
)

// Session is the automatic drying state machine of one chamber:
// IDLE -> ACTIVE -> COMPLETED, and back to IDLE only through Reset.
type Session struct {
	chamberID string
	status    models.SessionStatus
	startedAt time.Time
	total     int // seconds
	remaining int // seconds
}

func newSession(chamberID string) *Session {
	return &Session{chamberID: chamberID, status: models.SessionIdle}
}

// Status returns the current state.
func (s *Session) Status() models.SessionStatus { return s.status }

// Remaining returns the seconds left; zero while idle.
func (s *Session) Remaining() int { return s.remaining }

// Total returns the planned session length in seconds; zero while idle.
func (s *Session) Total() int { return s.total }

// Elapsed returns total minus remaining.
func (s *Session) Elapsed() int { return s.total - s.remaining }

// Progress returns the elapsed share of the session in whole percent.
func (s *Session) Progress() int {
	if s.status == models.SessionIdle {
		return 0
	}
	return ProgressPercent(s.total, s.remaining)
}

// Start snapshots settings and begins the countdown.
func (s *Session) Start(settings models.DryingSettings, now time.Time) error {
	switch s.status {
	case models.SessionActive:
		return &AlreadyActiveError{ChamberID: s.chamberID}
	case models.SessionCompleted:
		return &SessionCompletedError{ChamberID: s.chamberID}
	}
	if settings.DryingTime <= 0 {
		return &OutOfBoundsError{
			Field: FieldDryingTime,
			Value: float64(settings.DryingTime),
			Min:   MinDryingTime,
			Max:   MaxDryingTime,
		}
	}

	s.status = models.SessionActive
	s.startedAt = now.UTC()
	s.total = settings.DryingTime * 60
	s.remaining = s.total
	return nil
}

// Tick advances an active session by units seconds, never below zero.
// It reports whether this tick completed the session. Ticks outside ACTIVE
// and non-positive units change nothing.
func (s *Session) Tick(units int) bool {
	if s.status != models.SessionActive || units <= 0 {
		return false
	}
	if units >= s.remaining {
		s.remaining = 0
		s.status = models.SessionCompleted
		return true
	}
	s.remaining -= units
	return false
}

// Reset returns the session to IDLE and clears captured values.
func (s *Session) Reset() {
	s.status = models.SessionIdle
	s.startedAt = time.Time{}
	s.total = 0
	s.remaining = 0
}

// View builds the read model. settings feed the idle time estimate.
func (s *Session) View(settings models.DryingSettings) models.DryingSession {
	v := models.DryingSession{Status: s.status}
	if s.status == models.SessionIdle {
		v.TimeDisplay = EstimateDisplay(settings.DryingTime)
		return v
	}

	started := s.startedAt
	total, remaining := s.total, s.remaining
	v.StartedAt = &started
	v.TotalSeconds = &total
	v.RemainingSeconds = &remaining
	v.ElapsedSeconds = s.Elapsed()
	v.ProgressPercent = s.Progress()
	v.TimeDisplay = FormatHMS(remaining)
	return v
}
