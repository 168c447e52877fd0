package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"github.com/wricardo/mcp-training/treasurehunt/api"
	"github.com/wricardo/mcp-training/treasurehunt/game/config"
	"github.com/wricardo/mcp-training/treasurehunt/game/events"
	"github.com/wricardo/mcp-training/treasurehunt/game/leaderboard"
	"github.com/wricardo/mcp-training/treasurehunt/game/service"
	"github.com/wricardo/mcp-training/treasurehunt/game/session"
	"github.com/wricardo/mcp-training/treasurehunt/transport/mcp"
	"github.com/wricardo/mcp-training/treasurehunt/transport/rpc"
	"github.com/wricardo/mcp-training/treasurehunt/transport/websocket"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Settings holds the process configuration collected from flags and env
type Settings struct {
	Host      string
	Port      int
	ConfigDir string
	Preset    string
	StaticDir string
	NATSURL   string
}

// Addr returns the host:port the HTTP server listens on
func (s Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// App bundles the wired services of one process
type App struct {
	Service service.GameService
	Hub     *websocket.Hub
	nats    *events.NATSPublisher
	cancel  context.CancelFunc
}

// Close stops the hub and the event bus connection
func (a *App) Close() {
	a.cancel()
	if a.nats != nil {
		if err := a.nats.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close NATS connection")
		}
	}
}

// initializeServices wires presets, session, leaderboard, notifications and the game service.
func initializeServices(ctx context.Context, settings Settings) (*App, error) {
	configManager, err := config.NewManager(settings.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	if settings.Preset != "" {
		if err := configManager.SetDefault(settings.Preset); err != nil {
			return nil, fmt.Errorf("failed to select preset %s: %w", settings.Preset, err)
		}
	}
	log.Info().
		Str("config_dir", settings.ConfigDir).
		Str("preset", configManager.GetDefaultID()).
		Msg("presets loaded")

	hubCtx, cancel := context.WithCancel(ctx)
	hub := websocket.NewHub()
	go hub.Run(hubCtx)

	app := &App{Hub: hub, cancel: cancel}
	notifiers := events.Multi{hub}

	if settings.NATSURL != "" {
		publisher, err := events.NewNATSPublisher(events.DefaultNATSConfig(settings.NATSURL))
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to connect event bus: %w", err)
		}
		app.nats = publisher
		notifiers = append(notifiers, publisher)
		log.Info().Str("url", settings.NATSURL).Msg("publishing game events to NATS")
	}

	app.Service = service.NewGameService(
		session.NewManager(clockwork.NewRealClock(), nil),
		configManager,
		leaderboard.New(),
		service.WithNotifier(notifiers),
	)

	return app, nil
}

// newHandler builds the full HTTP handler: REST, Connect RPC, MCP and static
// files behind CORS, with h2c so Connect clients can use HTTP/2 without TLS.
func newHandler(app *App, staticDir, baseURL string) http.Handler {
	rpcPath, rpcHandler := rpc.NewHandler(app.Service)
	mcpClient := mcp.NewClient(baseURL)

	apiServer := api.NewServer(app.Service, app.Hub,
		api.WithStaticDir(staticDir),
		api.WithMount(rpcPath, rpcHandler),
		api.WithMount("/mcp", mcpClient.HTTPHandler()),
	)

	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
	})

	return h2c.NewHandler(c.Handler(apiServer), &http2.Server{})
}

func isServerClosed(err error) bool {
	return err == nil || errors.Is(err, http.ErrServerClosed)
}
