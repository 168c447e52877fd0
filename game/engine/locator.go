package engine

// CheckOutcome classifies a location check
type CheckOutcome string

const (
	OutcomeFound       CheckOutcome = "found"
	OutcomeMiss        CheckOutcome = "miss"
	OutcomeNoGame      CheckOutcome = "no_game"
	OutcomeInactive    CheckOutcome = "inactive"
	OutcomeExpired     CheckOutcome = "expired"
	OutcomeOutOfBounds CheckOutcome = "out_of_bounds"
)

// InBounds reports whether p lies on the map
func InBounds(p Position) bool {
	return p.X >= MapMin && p.X <= MapMax && p.Y >= MapMin && p.Y <= MapMax
}

// Matches reports whether p lies within the treasure's tolerance radius
func (t Treasure) Matches(p Position) bool {
	if !InBounds(p) {
		return false
	}
	return DistanceSquared(p, t.Position) <= t.Tolerance*t.Tolerance
}
