package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

const testPreset = `name: Test Pinned
description: Fixed treasure for tests
duration_seconds: 60
tolerance: 0
points_per_find: 10
treasures:
  - x: 50
    y: 50
`

func writePresetDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pinned.yaml"), []byte(testPreset), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	return dir
}

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName != "Treasure Hunt Game Server" {
		t.Errorf("Expected app name %q, got %q", "Treasure Hunt Game Server", AppName)
	}
}

func TestNewCommand(t *testing.T) {
	cmd := newCommand(nil)

	for _, name := range []string{"port", "host", "config-dir", "preset", "static-dir", "nats-url", "debug"} {
		found := false
		for _, flag := range cmd.Flags {
			for _, n := range flag.Names() {
				if n == name {
					found = true
				}
			}
		}
		if !found {
			t.Errorf("missing flag %q", name)
		}
	}

	aliases := map[string][]string{
		"server":    {"http"},
		"stdio-mcp": {"mcp-stdio", "mcp"},
	}
	for name, want := range aliases {
		sub := cmd.Command(name)
		if sub == nil {
			t.Errorf("missing subcommand %q", name)
			continue
		}
		for _, alias := range want {
			if !sub.HasName(alias) {
				t.Errorf("subcommand %q missing alias %q", name, alias)
			}
		}
	}
}

func TestInitializeServices(t *testing.T) {
	app, err := initializeServices(context.Background(), Settings{ConfigDir: writePresetDir(t)})
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}
	defer app.Close()

	if app.Service == nil {
		t.Fatal("Expected game service to be initialized")
	}
	if app.Hub == nil {
		t.Fatal("Expected websocket hub to be initialized")
	}
}

func TestInitializeServices_Errors(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
	}{
		{"missing config dir", Settings{ConfigDir: "/non/existent/path"}},
		{"unknown preset", Settings{ConfigDir: writePresetDir(t), Preset: "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := initializeServices(context.Background(), tt.settings)
			if err == nil {
				app.Close()
				t.Fatal("Expected error")
			}
		})
	}
}

func TestLoadTunnelConfig(t *testing.T) {
	t.Setenv("NGROK_ENABLED", "true")
	t.Setenv("NGROK_AUTHTOKEN", "")
	t.Setenv("NGROK_AUTH_TOKEN", "alt-token")
	t.Setenv("NGROK_DOMAIN", "hunt.example.com")

	cfg, err := LoadTunnelConfig()
	if err != nil {
		t.Fatalf("LoadTunnelConfig: %v", err)
	}
	if !cfg.Enabled {
		t.Error("Expected tunnel to be enabled")
	}
	if cfg.Token() != "alt-token" {
		t.Errorf("Expected fallback token, got %q", cfg.Token())
	}
	if cfg.Domain != "hunt.example.com" {
		t.Errorf("Unexpected domain %q", cfg.Domain)
	}

	t.Setenv("NGROK_ENABLED", "maybe")
	if _, err := LoadTunnelConfig(); err == nil {
		t.Error("Expected error for malformed NGROK_ENABLED")
	}
}

func TestHandlerRoutes(t *testing.T) {
	app, err := initializeServices(context.Background(), Settings{ConfigDir: writePresetDir(t), Preset: "pinned"})
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}
	defer app.Close()

	ts := httptest.NewServer(newHandler(app, "", "http://127.0.0.1:0"))
	defer ts.Close()

	post := func(path, body string) *http.Response {
		t.Helper()
		resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("POST %s: %v", path, err)
		}
		return resp
	}

	resp := post("/api/games", `{"config_id":"pinned.yml"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("start: status %d", resp.StatusCode)
	}

	resp = post("/api/games/current/check", `{"x":50,"y":50}`)
	var check struct {
		Found bool `json:"found"`
		Score int  `json:"score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&check); err != nil {
		t.Fatalf("decode check: %v", err)
	}
	resp.Body.Close()
	if !check.Found || check.Score != 10 {
		t.Errorf("Expected a find worth 10, got %+v", check)
	}

	// Connect RPC shares the same service
	resp = post("/treasurehunt.v1.GameService/GetGameState", "{}")
	var state struct {
		State struct {
			Score int `json:"score"`
		} `json:"state"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		t.Fatalf("decode rpc state: %v", err)
	}
	resp.Body.Close()
	if state.State.Score != 10 {
		t.Errorf("Expected rpc score 10, got %d", state.State.Score)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	req.Header.Set("Origin", "http://elsewhere.test")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected CORS header *, got %q", got)
	}

	if !apiAvailable(ts.URL) {
		t.Error("Expected apiAvailable to report the test server")
	}
}

func TestAPIAvailableUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	if apiAvailable(url) {
		t.Error("Expected closed server to be unavailable")
	}
}

func TestEnvWarningUsesConsoleLogger(t *testing.T) {
	previous, level := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(level)
	})

	tests := []struct {
		name    string
		envErr  error
		wantLog bool
	}{
		{"load error reported", errors.New("unexpected character on line 3"), true},
		{"no error is silent", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cmd := newCommand(tt.envErr)
			cmd.ErrWriter = &buf
			cmd.Action = func(ctx context.Context, cmd *cli.Command) error { return nil }

			if err := cmd.Run(context.Background(), []string{"treasurehunt"}); err != nil {
				t.Fatalf("Run: %v", err)
			}

			out := buf.String()
			if got := strings.Contains(out, "error loading .env file"); got != tt.wantLog {
				t.Fatalf("Expected warning logged=%v, got output %q", tt.wantLog, out)
			}
			if tt.wantLog {
				if !strings.Contains(out, "line 3") {
					t.Errorf("Expected the load error in the warning, got %q", out)
				}
				if strings.Contains(out, `"level":"warn"`) {
					t.Errorf("Expected console output, got JSON %q", out)
				}
			}
		})
	}
}
