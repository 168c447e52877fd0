package leaderboard

import (
	"slices"
	"sync"
	"time"
)

// Entry is the final score of one completed game
type Entry struct {
	GameID     string    `json:"game_id"`
	Score      int       `json:"score"`
	RecordedAt time.Time `json:"recorded_at"`
	Seq        uint64    `json:"seq"`
}

// Board is an append-only ranked list of entries
type Board struct {
	entries []Entry
	nextSeq uint64
	mu      sync.RWMutex
}

// New creates an empty board
func New() *Board {
	return &Board{}
}

// Record appends one entry and returns it
func (b *Board) Record(gameID string, score int, at time.Time) Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextSeq++
	entry := Entry{
		GameID:     gameID,
		Score:      score,
		RecordedAt: at,
		Seq:        b.nextSeq,
	}
	b.entries = append(b.entries, entry)
	return entry
}

// TopScores returns entries by score descending, earlier records first on
// ties. A limit of zero or less returns every entry.
func (b *Board) TopScores(limit int) []Entry {
	b.mu.RLock()
	ranked := make([]Entry, len(b.entries))
	copy(ranked, b.entries)
	b.mu.RUnlock()

	slices.SortStableFunc(ranked, func(a, c Entry) int {
		if a.Score != c.Score {
			return c.Score - a.Score
		}
		switch {
		case a.Seq < c.Seq:
			return -1
		case a.Seq > c.Seq:
			return 1
		}
		return 0
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

// Len returns the number of recorded entries
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}
