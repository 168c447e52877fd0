package service

import (
	"context"
	"errors"
	"time"

	"github.com/wricardo/mcp-training/treasurehunt/game/engine"
	"github.com/wricardo/mcp-training/treasurehunt/game/leaderboard"
)

// ErrConfigNotFound is returned when a preset does not exist
var ErrConfigNotFound = errors.New("configuration not found")

// GameService defines all game-related operations
type GameService interface {
	// Game Lifecycle
	StartGame(ctx context.Context) (*StartResult, error)
	StartGameWithConfig(ctx context.Context, configID string) (*StartResult, error)
	CheckLocation(ctx context.Context, x, y int) (*CheckResult, error)
	EndGame(ctx context.Context) (*EndResult, error)

	// Queries
	GetGameState(ctx context.Context) (*engine.GameState, error)
	GetHighScores(ctx context.Context, limit int) ([]leaderboard.Entry, error)
	GetRemainingTime(ctx context.Context) (int, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configID string) (*engine.GameConfig, error)
}

// SessionManager holds the single game session
type SessionManager interface {
	Start(config *engine.GameConfig, configID string, treasure engine.Treasure) *engine.GameSession
	Current() (*engine.GameSession, bool)
	RecordFind(points int, next engine.Treasure) (*engine.GameSession, bool)
	End() (*engine.GameSession, bool)
	Now() time.Time
}

// ConfigManager handles game preset loading
type ConfigManager interface {
	LoadConfig(id string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	GetDefaultID() string
}

// Leaderboard stores final scores
type Leaderboard interface {
	Record(gameID string, score int, at time.Time) leaderboard.Entry
	TopScores(limit int) []leaderboard.Entry
}
