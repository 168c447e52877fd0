package service

import (
	"github.com/wricardo/mcp-training/treasurehunt/game/engine"
	"github.com/wricardo/mcp-training/treasurehunt/game/leaderboard"
)

// StartResult contains the newly started game
type StartResult struct {
	GameID   string            `json:"game_id"`
	ConfigID string            `json:"config_id"`
	State    *engine.GameState `json:"state"`
}

// CheckResult contains the outcome of a location check
type CheckResult struct {
	Found            bool                `json:"found"`
	Reason           engine.CheckOutcome `json:"reason"`
	Score            int                 `json:"score"`
	TreasuresFound   int                 `json:"treasures_found"`
	RemainingSeconds int                 `json:"remaining_seconds"`
	State            *engine.GameState   `json:"state"`
}

// EndResult reports whether ending the game recorded a score
type EndResult struct {
	Recorded bool               `json:"recorded"`
	Entry    *leaderboard.Entry `json:"entry,omitempty"`
	State    *engine.GameState  `json:"state"`
}

// ConfigInfo provides information about a game preset
type ConfigInfo struct {
	Filename        string `json:"filename"`
	ConfigID        string `json:"config_id"` // The identifier to use when starting a game
	Name            string `json:"name"`      // Display name
	Description     string `json:"description"`
	DurationSeconds int    `json:"duration_seconds"`
	Tolerance       int    `json:"tolerance"`
	PointsPerFind   int    `json:"points_per_find"`
	PinnedTreasures int    `json:"pinned_treasures"`
}
