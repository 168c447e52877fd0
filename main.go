// Command treasurehunt starts the Treasure Hunt Game server.
//
// It supports two modes:
//  1. "server" (default) – runs the HTTP server exposing REST API, Connect RPC, WebSocket, and an /mcp HTTP endpoint
//  2. "stdio-mcp" – runs an MCP stdio server and spins up an internal HTTP API if none is available
//
// Flags control host/port, config directory, preset, debug logging, an
// optional NATS event bus, and optional ngrok tunneling (configured through
// NGROK_* environment variables) for easy external access during development.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Treasure Hunt Game Server"
)

// newCommand builds the CLI. Every flag can also be set from the environment.
// envErr is the result of loading .env; it is reported once logging is set up.
func newCommand(envErr error) *cli.Command {
	return &cli.Command{
		Name:      "treasurehunt",
		Usage:     AppName,
		Version:   Version,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Value:   8080,
				Usage:   "HTTP server port",
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:    "host",
				Value:   "localhost",
				Usage:   "HTTP server host",
				Sources: cli.EnvVars("HOST"),
			},
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "Directory containing game presets",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "preset",
				Usage:   "Preset used when a game is started without one (default: classic)",
				Sources: cli.EnvVars("GAME_PRESET"),
			},
			&cli.StringFlag{
				Name:    "static-dir",
				Value:   "./static/",
				Usage:   "Directory served as the browser client, empty to disable",
				Sources: cli.EnvVars("STATIC_DIR"),
			},
			&cli.StringFlag{
				Name:    "nats-url",
				Usage:   "Publish game events to this NATS server (optional)",
				Sources: cli.EnvVars("NATS_URL"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Enable debug logging",
				Sources: cli.EnvVars("DEBUG"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			setupLogging(cmd.ErrWriter, cmd.Bool("debug"))
			if envErr != nil {
				log.Warn().Err(envErr).Msg("error loading .env file")
			}
			return ctx, nil
		},
		Action: runServerCommand,
		Commands: []*cli.Command{
			{
				Name:    "server",
				Aliases: []string{"http"},
				Usage:   "Run HTTP server with API, Connect RPC, WebSocket, and MCP endpoint (default)",
				Action:  runServerCommand,
			},
			{
				Name:    "stdio-mcp",
				Aliases: []string{"mcp-stdio", "mcp"},
				Usage:   "Run MCP stdio server with internal HTTP server",
				Action:  runStdioCommand,
			},
		},
	}
}

// main loads .env, parses flags, and runs the selected mode.
func main() {
	// Load .env before flags are parsed so it can feed their env sources
	envErr := godotenv.Load()
	if os.IsNotExist(envErr) {
		envErr = nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newCommand(envErr)

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("treasurehunt failed")
	}
}

// setupLogging configures the global zerolog logger. Logs go to stderr so the
// stdio MCP transport keeps stdout to itself.
func setupLogging(w io.Writer, debug bool) {
	if w == nil {
		w = os.Stderr
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// settingsFrom reads the process settings from the parsed command
func settingsFrom(cmd *cli.Command) Settings {
	return Settings{
		Host:      cmd.String("host"),
		Port:      int(cmd.Int("port")),
		ConfigDir: cmd.String("config-dir"),
		Preset:    cmd.String("preset"),
		StaticDir: cmd.String("static-dir"),
		NATSURL:   cmd.String("nats-url"),
	}
}

func runServerCommand(ctx context.Context, cmd *cli.Command) error {
	settings := settingsFrom(cmd)
	log.Info().Str("version", Version).Str("mode", "server").Msgf("starting %s", AppName)

	app, err := initializeServices(ctx, settings)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	defer app.Close()

	tunnel, err := LoadTunnelConfig()
	if err != nil {
		return err
	}

	return runHTTPServer(ctx, app, settings, tunnel)
}

func runStdioCommand(ctx context.Context, cmd *cli.Command) error {
	settings := settingsFrom(cmd)
	log.Info().Str("version", Version).Str("mode", "stdio-mcp").Msgf("starting %s", AppName)

	app, err := initializeServices(ctx, settings)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	defer app.Close()

	return runStdioMCPWithInternalServer(ctx, app, settings)
}
