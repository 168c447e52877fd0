package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
	"github.com/wricardo/mcp-training/treasurehunt/transport/mcp"
)

// externalProbeTimeout bounds the check for an already running server
const externalProbeTimeout = 2 * time.Second

// runStdioMCPWithInternalServer runs an MCP stdio server.
// It tries to reuse an API already listening on the configured address; if
// unavailable, it starts an internal HTTP API bound to a random loopback port
// and targets that.
func runStdioMCPWithInternalServer(ctx context.Context, app *App, settings Settings) error {
	externalURL := fmt.Sprintf("http://%s", settings.Addr())
	baseURL := externalURL

	if !apiAvailable(externalURL) {
		log.Info().Str("url", externalURL).Msg("no external API server found, starting internal HTTP server")

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return fmt.Errorf("failed to get available port: %w", err)
		}
		baseURL = fmt.Sprintf("http://%s", listener.Addr().String())

		httpServer := &http.Server{Handler: newHandler(app, "", baseURL)}
		go func() {
			if err := httpServer.Serve(listener); !isServerClosed(err) {
				log.Error().Err(err).Msg("internal HTTP server error")
			}
		}()
		defer httpServer.Close()
	} else {
		log.Info().Str("url", externalURL).Msg("external API server found, using it for MCP")
	}

	mcpClient := mcp.NewClient(baseURL)
	log.Info().Str("api", baseURL).Msg("MCP stdio server ready")

	if err := server.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}
	return nil
}

// apiAvailable reports whether a game server answers health checks at baseURL
func apiAvailable(baseURL string) bool {
	client := &http.Client{Timeout: externalProbeTimeout}
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
