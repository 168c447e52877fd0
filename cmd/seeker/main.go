// Command seeker is an automated player. It starts a game over Connect RPC,
// sweeps the map on a grid sized to the tolerance the server reports, and ends the game
// so the score lands on the leaderboard.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/treasurehunt/transport/rpc"
)

func main() {
	cmd := &cli.Command{
		Name:  "seeker",
		Usage: "Play treasure hunt automatically",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Value: "http://localhost:8080", Usage: "Game server URL", Sources: cli.EnvVars("SEEKER_URL")},
			&cli.StringFlag{Name: "config", Usage: "Preset to play (server default when empty)"},
			&cli.IntFlag{Name: "tolerance", Usage: "Override the preset's tolerance when sizing the grid"},
			&cli.IntFlag{Name: "max-checks", Value: 0, Usage: "Stop after this many checks (0 = until the game ends)"},
			&cli.DurationFlag{Name: "delay", Value: 0, Usage: "Delay between checks"},
			&cli.BoolFlag{Name: "v", Usage: "Verbose output"},
		},
		Action: run,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "seeker: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	level := zerolog.InfoLevel
	if cmd.Bool("v") {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	url := cmd.String("url")
	logger.Info().Str("url", url).Msg("connecting to game server")
	client := rpc.NewClient(&http.Client{Timeout: 10 * time.Second}, url)

	opts := Options{
		ConfigID:  cmd.String("config"),
		MaxChecks: int(cmd.Int("max-checks")),
		Delay:     cmd.Duration("delay"),
	}
	if cmd.IsSet("tolerance") {
		tolerance := int(cmd.Int("tolerance"))
		opts.Tolerance = &tolerance
	}

	report, err := NewSeeker(client, logger).Play(ctx, opts)
	if err != nil {
		return err
	}

	fmt.Printf("game %s: %d points, %d treasures in %d checks", report.GameID, report.Score, report.Finds, report.Checks)
	if report.Rank > 0 {
		fmt.Printf(" (rank #%d)", report.Rank)
	}
	fmt.Println()
	return nil
}
