package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/wricardo/mcp-training/treasurehunt/game/engine"
	"github.com/wricardo/mcp-training/treasurehunt/game/events"
	"github.com/wricardo/mcp-training/treasurehunt/game/leaderboard"
)

// Option configures the game service
type Option func(*gameServiceImpl)

// WithNotifier sets where lifecycle events are delivered
func WithNotifier(n events.Notifier) Option {
	return func(s *gameServiceImpl) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithRand sets the random source used for treasure placement
func WithRand(rng *rand.Rand) Option {
	return func(s *gameServiceImpl) {
		s.rng = rng
	}
}

// WithConfigID selects the preset StartGame uses instead of the default one
func WithConfigID(id string) Option {
	return func(s *gameServiceImpl) {
		s.configID = id
	}
}

// activeGame pairs the current session with its preset and placer
type activeGame struct {
	gameID string
	config *engine.GameConfig
	placer engine.Placer
}

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	board    Leaderboard
	notifier events.Notifier
	rng      *rand.Rand
	configID string
	game     *activeGame
	mu       sync.Mutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager, board Leaderboard, opts ...Option) GameService {
	s := &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		board:    board,
		notifier: events.Nop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartGame starts a game with the service's preset
func (s *gameServiceImpl) StartGame(ctx context.Context) (*StartResult, error) {
	return s.StartGameWithConfig(ctx, "")
}

// StartGameWithConfig starts a game with the given preset, replacing any current game
func (s *gameServiceImpl) StartGameWithConfig(ctx context.Context, configID string) (*StartResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	config, configID, err := s.resolveConfig(configID)
	if err != nil {
		return nil, err
	}

	placer, err := engine.NewPlacer(config, s.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare config %s: %w", configID, err)
	}

	treasure := engine.Treasure{Position: placer.Place(nil), Tolerance: config.Tolerance}

	var replaced string
	if prev, ok := s.sessions.Current(); ok && prev.IsActive {
		replaced = prev.GameID
	}

	session := s.sessions.Start(config, configID, treasure)
	s.game = &activeGame{gameID: session.GameID, config: config, placer: placer}

	state := engine.StateOf(session, s.sessions.Now())

	logger := log.Info().
		Str("op", "start_game").
		Str("game_id", session.GameID).
		Str("config_id", configID).
		Int("duration_seconds", state.DurationSeconds)
	if replaced != "" {
		logger = logger.Str("replaced_game_id", replaced)
	}
	logger.Msg("game started")

	s.notify(ctx, events.Event{
		Type:   events.GameStarted,
		GameID: session.GameID,
		At:     session.StartTime,
		Data:   state,
	})

	return &StartResult{
		GameID:   session.GameID,
		ConfigID: configID,
		State:    state,
	}, nil
}

// CheckLocation tests a coordinate against the hidden treasure
func (s *gameServiceImpl) CheckLocation(ctx context.Context, x, y int) (*CheckResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pos := engine.Position{X: x, Y: y}
	now := s.sessions.Now()

	current, _ := s.sessions.Current()
	outcome := engine.CheckLocation(current, pos, now)

	if outcome == engine.OutcomeFound {
		game := s.gameFor(current)
		next := engine.Treasure{
			Position:  game.placer.Place(&current.Treasure),
			Tolerance: game.config.Tolerance,
		}
		if updated, ok := s.sessions.RecordFind(game.config.PointsPerFind, next); ok {
			current = updated
		} else {
			outcome = engine.OutcomeInactive
		}
	}

	result := &CheckResult{
		Found:  outcome == engine.OutcomeFound,
		Reason: outcome,
		State:  engine.StateOf(current, now),
	}
	if result.State != nil {
		result.Score = result.State.Score
		result.TreasuresFound = result.State.TreasuresFound
		result.RemainingSeconds = result.State.RemainingSeconds
	}

	event := log.Debug()
	if result.Found {
		event = log.Info()
	}
	event.
		Str("op", "check_location").
		Str("game_id", gameIDOf(current)).
		Int("x", x).
		Int("y", y).
		Bool("found", result.Found).
		Str("reason", string(outcome)).
		Int("score", result.Score).
		Msg("location checked")

	if result.Found {
		s.notify(ctx, events.Event{
			Type:   events.TreasureFound,
			GameID: current.GameID,
			At:     now,
			Data:   result.State,
		})
	}

	return result, nil
}

// EndGame ends the current game and records its score once
func (s *gameServiceImpl) EndGame(ctx context.Context) (*EndResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ended, ok := s.sessions.End()
	if !ok {
		current, _ := s.sessions.Current()
		log.Debug().
			Str("op", "end_game").
			Str("game_id", gameIDOf(current)).
			Msg("no active game to end")
		return &EndResult{
			Recorded: false,
			State:    engine.StateOf(current, s.sessions.Now()),
		}, nil
	}

	at := s.sessions.Now()
	if ended.EndedAt != nil {
		at = *ended.EndedAt
	}
	entry := s.board.Record(ended.GameID, ended.Score, at)
	s.game = nil

	log.Info().
		Str("op", "end_game").
		Str("game_id", ended.GameID).
		Int("score", ended.Score).
		Int("treasures_found", ended.TreasuresFound).
		Msg("game ended")

	s.notify(ctx, events.Event{
		Type:   events.GameEnded,
		GameID: ended.GameID,
		At:     at,
		Data:   entry,
	})

	return &EndResult{
		Recorded: true,
		Entry:    &entry,
		State:    engine.StateOf(ended, at),
	}, nil
}

// GetGameState returns the current game state, or nil when no game was started
func (s *gameServiceImpl) GetGameState(ctx context.Context) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	current, _ := s.sessions.Current()
	return engine.StateOf(current, s.sessions.Now()), nil
}

// GetHighScores returns the best scores, highest first
func (s *gameServiceImpl) GetHighScores(ctx context.Context, limit int) ([]leaderboard.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.board.TopScores(limit), nil
}

// GetRemainingTime returns the whole seconds left in the current game
func (s *gameServiceImpl) GetRemainingTime(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	current, _ := s.sessions.Current()
	return engine.RemainingSeconds(current, s.sessions.Now()), nil
}

// ListConfigs returns available presets
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.configs.ListConfigs()
}

// LoadConfig loads a preset by ID
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configID string) (*engine.GameConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	config, err := s.configs.LoadConfig(configID)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", configID, err)
	}
	return config, nil
}

// resolveConfig picks the preset for a new game: the requested one, then the
// service's preset, then the config manager's default
func (s *gameServiceImpl) resolveConfig(configID string) (*engine.GameConfig, string, error) {
	if configID == "" {
		configID = s.configID
	}
	if configID == "" {
		return s.configs.GetDefault(), s.configs.GetDefaultID(), nil
	}

	config, err := s.configs.LoadConfig(configID)
	if err == nil {
		return config, configID, nil
	}

	if errors.Is(err, ErrConfigNotFound) {
		// Provide helpful error message with available options
		available, listErr := s.configs.ListConfigs()
		if listErr == nil && len(available) > 0 {
			ids := make([]string, 0, len(available))
			for _, c := range available {
				ids = append(ids, c.ConfigID)
			}
			return nil, "", fmt.Errorf("config '%s' not found, available configs: %v: %w", configID, ids, err)
		}
	}
	return nil, "", fmt.Errorf("failed to load config %s: %w", configID, err)
}

// gameFor returns the preset and placer of the given session, rebuilding them
// when the session was not started through this service
func (s *gameServiceImpl) gameFor(session *engine.GameSession) *activeGame {
	if s.game != nil && s.game.gameID == session.GameID {
		return s.game
	}

	config, err := s.configs.LoadConfig(session.ConfigID)
	if err != nil {
		config = s.configs.GetDefault()
	}
	placer, err := engine.NewPlacer(config, s.rng)
	if err != nil {
		config = engine.DefaultGameConfig()
		placer, _ = engine.NewPlacer(config, s.rng)
	}

	s.game = &activeGame{gameID: session.GameID, config: config, placer: placer}
	return s.game
}

// notify delivers an event without letting request cancellation drop it
func (s *gameServiceImpl) notify(ctx context.Context, event events.Event) {
	if err := s.notifier.Notify(context.WithoutCancel(ctx), event); err != nil {
		log.Warn().
			Err(err).
			Str("event", string(event.Type)).
			Str("game_id", event.GameID).
			Msg("failed to deliver event")
	}
}

func gameIDOf(session *engine.GameSession) string {
	if session == nil {
		return ""
	}
	return session.GameID
}
