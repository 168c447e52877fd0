package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/wricardo/mcp-training/treasurehunt/game/engine"
	"github.com/wricardo/mcp-training/treasurehunt/game/leaderboard"
	"github.com/wricardo/mcp-training/treasurehunt/transport/rpc"
)

// GameClient is the subset of the RPC client the seeker drives
type GameClient interface {
	StartGame(ctx context.Context, configID string) (*rpc.StartGameResponse, error)
	CheckLocation(ctx context.Context, x, y int) (*rpc.CheckLocationResponse, error)
	EndGame(ctx context.Context) (*rpc.EndGameResponse, error)
	GetHighScores(ctx context.Context, limit int) ([]leaderboard.Entry, error)
}

// Options tunes a run
type Options struct {
	ConfigID string
	// Tolerance overrides the preset's search radius when set
	Tolerance *int
	MaxChecks int
	Delay     time.Duration
}

// Report summarizes a finished run
type Report struct {
	GameID   string
	Checks   int
	Finds    int
	Score    int
	Recorded bool
	Rank     int
}

// Seeker plays one game by scanning the map
type Seeker struct {
	client GameClient
	logger zerolog.Logger
}

// NewSeeker creates a seeker
func NewSeeker(client GameClient, logger zerolog.Logger) *Seeker {
	return &Seeker{client: client, logger: logger}
}

// Play starts a game, checks grid points until the game stops accepting
// checks or MaxChecks is reached, then ends the game and records the score.
func (s *Seeker) Play(ctx context.Context, opts Options) (*Report, error) {
	start, err := s.client.StartGame(ctx, opts.ConfigID)
	if err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}

	tolerance := sweepTolerance(start, opts)
	scan := NewGridScan(tolerance)
	report := &Report{GameID: start.GameID}
	s.logger.Info().
		Str("game_id", start.GameID).
		Str("config_id", start.ConfigID).
		Int("tolerance", tolerance).
		Int("step", engine.SweepStep(tolerance)).
		Int("points", scan.Len()).
		Msg("game started")

scan:
	for opts.MaxChecks <= 0 || report.Checks < opts.MaxChecks {
		p := scan.Next()
		result, err := s.client.CheckLocation(ctx, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("check (%d,%d): %w", p.X, p.Y, err)
		}
		report.Checks++

		switch result.Reason {
		case engine.OutcomeFound:
			report.Finds++
			report.Score = result.Score
			s.logger.Info().Int("x", p.X).Int("y", p.Y).Int("score", result.Score).Msg("treasure found")
		case engine.OutcomeMiss:
			s.logger.Debug().Int("x", p.X).Int("y", p.Y).Msg("miss")
		default:
			s.logger.Info().Str("reason", string(result.Reason)).Msg("game no longer accepts checks")
			break scan
		}

		if opts.Delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(opts.Delay):
			}
		}
	}

	end, err := s.client.EndGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("end game: %w", err)
	}
	report.Recorded = end.Recorded
	if end.State != nil {
		report.Score = end.State.Score
	}

	if end.Recorded {
		scores, err := s.client.GetHighScores(ctx, 0)
		if err != nil {
			return nil, fmt.Errorf("high scores: %w", err)
		}
		for i, entry := range scores {
			if entry.GameID == report.GameID {
				report.Rank = i + 1
				break
			}
		}
	}

	s.logger.Info().
		Int("checks", report.Checks).
		Int("finds", report.Finds).
		Int("score", report.Score).
		Int("rank", report.Rank).
		Msg("game finished")
	return report, nil
}

// sweepTolerance picks the radius the sweep is sized for. Without an override
// or a reported state it falls back to 0, which checks every point.
func sweepTolerance(start *rpc.StartGameResponse, opts Options) int {
	if opts.Tolerance != nil {
		return *opts.Tolerance
	}
	if start.State != nil {
		return start.State.Tolerance
	}
	return 0
}
