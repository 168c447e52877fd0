package engine

import "time"

const (
	// Map bounds, inclusive, in integer percent.
	MapMin = 0
	MapMax = 100

	// Validation constants
	MinDurationSeconds = 5
	MaxDurationSeconds = 3600
	MaxTolerance       = 50
	MinPointsPerFind   = 1
	MaxPointsPerFind   = 1000

	// Defaults used when no preset is configured
	DefaultDurationSeconds = 60
	DefaultTolerance       = 3
	DefaultPointsPerFind   = 10
)

// Position represents x,y coordinates in percent of the map
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Treasure is the hidden target of a session
type Treasure struct {
	Position  Position `json:"position"`
	Tolerance int      `json:"tolerance"`
}

// GameConfig represents a game preset loaded from the config directory
type GameConfig struct {
	Name            string     `json:"name" yaml:"name"`
	Description     string     `json:"description" yaml:"description"`
	DurationSeconds int        `json:"duration_seconds" yaml:"duration_seconds"`
	Tolerance       int        `json:"tolerance" yaml:"tolerance"`
	PointsPerFind   int        `json:"points_per_find" yaml:"points_per_find"`
	Treasures       []Position `json:"treasures,omitempty" yaml:"treasures,omitempty"`
	Seed            uint64     `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// Duration returns the session length defined by the preset
func (c *GameConfig) Duration() time.Duration {
	return time.Duration(c.DurationSeconds) * time.Second
}

// GameSession represents one play-through, from start to end or expiry
type GameSession struct {
	GameID         string        `json:"game_id"`
	ConfigID       string        `json:"config_id"`
	StartTime      time.Time     `json:"start_time"`
	Duration       time.Duration `json:"duration"`
	Score          int           `json:"score"`
	TreasuresFound int           `json:"treasures_found"`
	IsActive       bool          `json:"is_active"`
	Treasure       Treasure      `json:"-"`
	EndedAt        *time.Time    `json:"ended_at,omitempty"`
}

// Snapshot returns a copy that does not alias the receiver
func (s *GameSession) Snapshot() *GameSession {
	if s == nil {
		return nil
	}
	cp := *s
	if s.EndedAt != nil {
		ended := *s.EndedAt
		cp.EndedAt = &ended
	}
	return &cp
}

// GameState is the externally visible state of a session
type GameState struct {
	GameID           string `json:"game_id"`
	ConfigID         string `json:"config_id,omitempty"`
	StartTime        int64  `json:"start_time"`
	TreasuresFound   int    `json:"treasures_found"`
	IsActive         bool   `json:"is_active"`
	Score            int    `json:"score"`
	RemainingSeconds int    `json:"remaining_seconds"`
	DurationSeconds  int    `json:"duration_seconds"`
	Tolerance        int    `json:"tolerance"`
}

// StateOf builds the external view of a session at the given instant
func StateOf(s *GameSession, now time.Time) *GameState {
	if s == nil {
		return nil
	}
	return &GameState{
		GameID:           s.GameID,
		ConfigID:         s.ConfigID,
		StartTime:        s.StartTime.Unix(),
		TreasuresFound:   s.TreasuresFound,
		IsActive:         s.IsActive,
		Score:            s.Score,
		RemainingSeconds: RemainingSeconds(s, now),
		DurationSeconds:  int(s.Duration / time.Second),
		Tolerance:        s.Treasure.Tolerance,
	}
}
