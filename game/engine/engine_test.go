package engine

import (
	"testing"
	"time"
)

func createTestSession(start time.Time) *GameSession {
	return &GameSession{
		GameID:    "game-1",
		ConfigID:  "test",
		StartTime: start,
		Duration:  60 * time.Second,
		IsActive:  true,
		Treasure:  Treasure{Position: Position{X: 50, Y: 50}, Tolerance: 0},
	}
}

func TestRemainingTime(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		session  *GameSession
		now      time.Time
		expected time.Duration
		seconds  int
	}{
		{"nil session", nil, start, 0, 0},
		{"just started", createTestSession(start), start, 60 * time.Second, 60},
		{"half way", createTestSession(start), start.Add(30 * time.Second), 30 * time.Second, 30},
		{"partial second rounds up", createTestSession(start), start.Add(59*time.Second + 500*time.Millisecond), 500 * time.Millisecond, 1},
		{"exactly elapsed", createTestSession(start), start.Add(60 * time.Second), 0, 0},
		{"long elapsed", createTestSession(start), start.Add(time.Hour), 0, 0},
		{"clock behind start", createTestSession(start), start.Add(-5 * time.Second), 65 * time.Second, 65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemainingTime(tt.session, tt.now); got != tt.expected {
				t.Errorf("Expected remaining %v, got %v", tt.expected, got)
			}
			if got := RemainingSeconds(tt.session, tt.now); got != tt.seconds {
				t.Errorf("Expected %d seconds, got %d", tt.seconds, got)
			}
		})
	}
}

func TestRemainingTime_InactiveSession(t *testing.T) {
	start := time.Now()
	sess := createTestSession(start)
	sess.IsActive = false

	if got := RemainingTime(sess, start); got != 0 {
		t.Errorf("Expected 0 for inactive session, got %v", got)
	}
	if !Expired(sess, start) {
		t.Error("Inactive session should report expired")
	}
}

func TestTreasureMatches(t *testing.T) {
	tests := []struct {
		name     string
		treasure Treasure
		pos      Position
		matches  bool
	}{
		{"exact hit with zero tolerance", Treasure{Position{50, 50}, 0}, Position{50, 50}, true},
		{"off by one with zero tolerance", Treasure{Position{50, 50}, 0}, Position{51, 50}, false},
		{"inside radius", Treasure{Position{50, 50}, 5}, Position{53, 54}, true},
		{"outside radius diagonal", Treasure{Position{50, 50}, 5}, Position{54, 54}, false},
		{"on the edge of the map", Treasure{Position{100, 0}, 2}, Position{99, 1}, true},
		{"negative coordinate never matches", Treasure{Position{0, 0}, 5}, Position{-1, 0}, false},
		{"coordinate above max never matches", Treasure{Position{100, 100}, 5}, Position{101, 100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.treasure.Matches(tt.pos); got != tt.matches {
				t.Errorf("Matches(%v) = %v, expected %v", tt.pos, got, tt.matches)
			}
		})
	}
}

func TestCheckLocation(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	ended := createTestSession(start)
	ended.IsActive = false

	tests := []struct {
		name     string
		session  *GameSession
		pos      Position
		now      time.Time
		expected CheckOutcome
	}{
		{"no session", nil, Position{50, 50}, start, OutcomeNoGame},
		{"inactive session", ended, Position{50, 50}, start, OutcomeInactive},
		{"expired session", createTestSession(start), Position{50, 50}, start.Add(61 * time.Second), OutcomeExpired},
		{"out of bounds", createTestSession(start), Position{150, 50}, start, OutcomeOutOfBounds},
		{"miss", createTestSession(start), Position{10, 10}, start, OutcomeMiss},
		{"found", createTestSession(start), Position{50, 50}, start.Add(10 * time.Second), OutcomeFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckLocation(tt.session, tt.pos, tt.now); got != tt.expected {
				t.Errorf("Expected outcome %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestCheckLocation_DoesNotMutate(t *testing.T) {
	start := time.Now()
	sess := createTestSession(start)
	before := *sess

	CheckLocation(sess, Position{50, 50}, start)

	if sess.Score != before.Score || sess.TreasuresFound != before.TreasuresFound || sess.Treasure != before.Treasure {
		t.Error("CheckLocation must not mutate the session")
	}
}

func TestSnapshot(t *testing.T) {
	var nilSession *GameSession
	if nilSession.Snapshot() != nil {
		t.Error("Snapshot of nil session should be nil")
	}

	ended := time.Now()
	sess := createTestSession(ended.Add(-time.Minute))
	sess.EndedAt = &ended

	snap := sess.Snapshot()
	snap.Score = 99
	*snap.EndedAt = snap.EndedAt.Add(time.Hour)

	if sess.Score != 0 {
		t.Error("Snapshot should not alias the score")
	}
	if !sess.EndedAt.Equal(ended) {
		t.Error("Snapshot should not alias EndedAt")
	}
}

func TestStateOf(t *testing.T) {
	if StateOf(nil, time.Now()) != nil {
		t.Error("StateOf(nil) should be nil")
	}

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sess := createTestSession(start)
	sess.Score = 20
	sess.TreasuresFound = 2

	state := StateOf(sess, start.Add(15*time.Second))
	if state.GameID != "game-1" {
		t.Errorf("Expected game id game-1, got %s", state.GameID)
	}
	if state.StartTime != start.Unix() {
		t.Errorf("Expected start time %d, got %d", start.Unix(), state.StartTime)
	}
	if state.RemainingSeconds != 45 {
		t.Errorf("Expected 45 remaining seconds, got %d", state.RemainingSeconds)
	}
	if state.DurationSeconds != 60 {
		t.Errorf("Expected duration 60, got %d", state.DurationSeconds)
	}
	if state.Tolerance != 0 {
		t.Errorf("Expected tolerance 0, got %d", state.Tolerance)
	}
	sess.Treasure.Tolerance = 4
	if got := StateOf(sess, start).Tolerance; got != 4 {
		t.Errorf("Expected tolerance 4, got %d", got)
	}
	if state.Score != 20 || state.TreasuresFound != 2 || !state.IsActive {
		t.Errorf("Unexpected state: %+v", state)
	}
}
