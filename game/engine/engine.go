package engine

import "time"

// CheckLocation decides the outcome of a check against a session without
// mutating it. Only OutcomeFound should lead to a score update.
func CheckLocation(s *GameSession, p Position, now time.Time) CheckOutcome {
	switch {
	case s == nil:
		return OutcomeNoGame
	case !s.IsActive:
		return OutcomeInactive
	case Expired(s, now):
		return OutcomeExpired
	case !InBounds(p):
		return OutcomeOutOfBounds
	case s.Treasure.Matches(p):
		return OutcomeFound
	default:
		return OutcomeMiss
	}
}

// DistanceSquared returns the squared Euclidean distance between two positions
func DistanceSquared(from, to Position) int {
	dx := from.X - to.X
	dy := from.Y - to.Y
	return dx*dx + dy*dy
}
