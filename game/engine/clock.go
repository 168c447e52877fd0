package engine

import "time"

// RemainingTime returns max(0, duration - elapsed) for an active session.
// Inactive or missing sessions have no remaining time.
func RemainingTime(s *GameSession, now time.Time) time.Duration {
	if s == nil || !s.IsActive {
		return 0
	}
	remaining := s.Duration - now.Sub(s.StartTime)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RemainingSeconds returns the remaining time in whole seconds, rounded up
func RemainingSeconds(s *GameSession, now time.Time) int {
	remaining := RemainingTime(s, now)
	secs := remaining / time.Second
	if remaining%time.Second != 0 {
		secs++
	}
	return int(secs)
}

// Expired reports whether the session has run out of time
func Expired(s *GameSession, now time.Time) bool {
	return RemainingTime(s, now) == 0
}
