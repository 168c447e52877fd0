package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/wricardo/mcp-training/treasurehunt/game/engine"
)

// IDGenerator produces game identifiers
type IDGenerator func() string

// maxIDAttempts bounds retries when the generator repeats the current ID
const maxIDAttempts = 8

// Manager holds the single game session
type Manager struct {
	current *engine.GameSession
	clock   clockwork.Clock
	newID   IDGenerator
	mu      sync.RWMutex
}

// NewManager creates a new session manager. A nil clock or generator falls
// back to the real clock and random UUIDs.
func NewManager(clock clockwork.Clock, ids IDGenerator) *Manager {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if ids == nil {
		ids = uuid.NewString
	}
	return &Manager{
		clock: clock,
		newID: ids,
	}
}

// Start replaces the held session with a fresh active one and returns a snapshot
func (m *Manager) Start(config *engine.GameConfig, configID string, treasure engine.Treasure) *engine.GameSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	prevID := ""
	if m.current != nil {
		prevID = m.current.GameID
	}

	m.current = &engine.GameSession{
		GameID:    m.generateGameID(prevID),
		ConfigID:  configID,
		StartTime: m.clock.Now(),
		Duration:  config.Duration(),
		IsActive:  true,
		Treasure:  treasure,
	}

	return m.current.Snapshot()
}

// Current returns a snapshot of the held session, or false if no game was ever started
func (m *Manager) Current() (*engine.GameSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil, false
	}
	return m.current.Snapshot(), true
}

// RecordFind credits a found treasure and hides the next one. It refuses
// inactive or missing sessions.
func (m *Manager) RecordFind(points int, next engine.Treasure) (*engine.GameSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil || !m.current.IsActive || points < 0 {
		return nil, false
	}

	m.current.Score += points
	m.current.TreasuresFound++
	m.current.Treasure = next

	return m.current.Snapshot(), true
}

// End deactivates the held session. It reports true only on the transition
// from active to ended; repeated calls are no-ops.
func (m *Manager) End() (*engine.GameSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil || !m.current.IsActive {
		return nil, false
	}

	now := m.clock.Now()
	m.current.IsActive = false
	m.current.EndedAt = &now

	return m.current.Snapshot(), true
}

// Now returns the manager's notion of the current time
func (m *Manager) Now() time.Time {
	return m.clock.Now()
}

// generateGameID returns an ID different from prev
func (m *Manager) generateGameID(prev string) string {
	id := m.newID()
	for attempt := 1; id == prev && attempt < maxIDAttempts; attempt++ {
		id = m.newID()
	}
	if id == prev {
		id = uuid.NewString()
	}
	return id
}
