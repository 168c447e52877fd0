package rpc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/jonboulle/clockwork"
	"github.com/wricardo/mcp-training/treasurehunt/game/engine"
	"github.com/wricardo/mcp-training/treasurehunt/game/leaderboard"
	"github.com/wricardo/mcp-training/treasurehunt/game/service"
	"github.com/wricardo/mcp-training/treasurehunt/game/session"
)

// pinnedConfigs serves one preset with the treasure fixed at (50,50)
type pinnedConfigs struct{}

func (pinnedConfigs) LoadConfig(id string) (*engine.GameConfig, error) {
	if id != "pinned" {
		return nil, service.ErrConfigNotFound
	}
	return pinnedConfigs{}.GetDefault(), nil
}

func (pinnedConfigs) ListConfigs() ([]*service.ConfigInfo, error) {
	return []*service.ConfigInfo{{ConfigID: "pinned", Name: "Pinned"}}, nil
}

func (pinnedConfigs) GetDefault() *engine.GameConfig {
	return &engine.GameConfig{
		Name:            "Pinned",
		DurationSeconds: 60,
		Tolerance:       0,
		PointsPerFind:   10,
		Treasures:       []engine.Position{{X: 50, Y: 50}},
	}
}

func (pinnedConfigs) GetDefaultID() string { return "pinned" }

// stubService overrides single operations; others panic
type stubService struct {
	service.GameService
	startFunc func(ctx context.Context, configID string) (*service.StartResult, error)
}

func (s *stubService) StartGameWithConfig(ctx context.Context, configID string) (*service.StartResult, error) {
	return s.startFunc(ctx, configID)
}

func newTestServer(t *testing.T, svc service.GameService) *Client {
	t.Helper()
	path, handler := NewHandler(svc)
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return NewClient(server.Client(), server.URL)
}

func TestClientServerRoundTrip(t *testing.T) {
	clock := clockwork.NewFakeClock()
	n := 0
	ids := func() string {
		n++
		return fmt.Sprintf("game-%d", n)
	}
	svc := service.NewGameService(session.NewManager(clock, ids), pinnedConfigs{}, leaderboard.New())
	client := newTestServer(t, svc)
	ctx := context.Background()

	state, err := client.GetGameState(ctx)
	if err != nil {
		t.Fatalf("GetGameState failed: %v", err)
	}
	if state != nil {
		t.Errorf("Expected no state before start, got %+v", state)
	}

	start, err := client.StartGame(ctx, "")
	if err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	if start.GameID != "game-1" || start.ConfigID != "pinned" {
		t.Errorf("Unexpected start %+v", start)
	}

	miss, err := client.CheckLocation(ctx, -1, 50)
	if err != nil {
		t.Fatalf("CheckLocation failed: %v", err)
	}
	if miss.Found || miss.Reason != engine.OutcomeOutOfBounds {
		t.Errorf("Expected out_of_bounds, got %+v", miss)
	}

	hit, err := client.CheckLocation(ctx, 50, 50)
	if err != nil {
		t.Fatalf("CheckLocation failed: %v", err)
	}
	if !hit.Found || hit.Score != 10 {
		t.Errorf("Expected hit worth 10, got %+v", hit)
	}

	clock.Advance(30 * time.Second)
	remaining, err := client.GetRemainingTime(ctx)
	if err != nil || remaining != 30 {
		t.Errorf("Expected 30 seconds remaining, got %d, %v", remaining, err)
	}

	end, err := client.EndGame(ctx)
	if err != nil {
		t.Fatalf("EndGame failed: %v", err)
	}
	if !end.Recorded || end.Entry.Score != 10 {
		t.Errorf("Expected recorded score 10, got %+v", end)
	}

	again, _ := client.EndGame(ctx)
	if again.Recorded {
		t.Error("Second EndGame must not record")
	}

	scores, err := client.GetHighScores(ctx, 5)
	if err != nil {
		t.Fatalf("GetHighScores failed: %v", err)
	}
	if len(scores) != 1 || scores[0].GameID != "game-1" || scores[0].Score != 10 {
		t.Errorf("Unexpected scores %+v", scores)
	}
}

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode connect.Code
	}{
		{"config not found", fmt.Errorf("config 'x' not found: %w", service.ErrConfigNotFound), connect.CodeNotFound},
		{"canceled", context.Canceled, connect.CodeCanceled},
		{"deadline", context.DeadlineExceeded, connect.CodeDeadlineExceeded},
		{"internal", errors.New("boom"), connect.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, &stubService{
				startFunc: func(ctx context.Context, configID string) (*service.StartResult, error) {
					return nil, tt.err
				},
			})

			_, err := client.StartGame(context.Background(), "x")
			if got := connect.CodeOf(err); got != tt.wantCode {
				t.Errorf("Expected code %v, got %v (%v)", tt.wantCode, got, err)
			}
		})
	}
}

func TestNegativeLimitRejected(t *testing.T) {
	svc := service.NewGameService(session.NewManager(clockwork.NewFakeClock(), nil), pinnedConfigs{}, leaderboard.New())
	client := newTestServer(t, svc)

	_, err := client.GetHighScores(context.Background(), -1)
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("Expected invalid argument, got %v", err)
	}
}

func TestPlainJSONRequest(t *testing.T) {
	svc := service.NewGameService(session.NewManager(clockwork.NewFakeClock(), nil), pinnedConfigs{}, leaderboard.New())
	path, handler := NewHandler(svc)
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	defer server.Close()

	for _, contentType := range []string{"application/json", "application/json; charset=utf-8"} {
		resp, err := http.Post(server.URL+GetRemainingTimeProcedure, contentType, strings.NewReader("{}"))
		if err != nil {
			t.Fatalf("Post failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", contentType, resp.StatusCode)
		}
	}
}

func TestJSONCodec(t *testing.T) {
	codec := jsonCodec{name: codecNameJSON}

	var req CheckLocationRequest
	if err := codec.Unmarshal(nil, &req); err != nil {
		t.Errorf("Empty payload should decode to zero value, got %v", err)
	}
	if err := codec.Unmarshal([]byte(`{"x":3,"y":4}`), &req); err != nil || req.X != 3 || req.Y != 4 {
		t.Errorf("Unexpected decode %+v, %v", req, err)
	}
	if err := codec.Unmarshal([]byte(`{"x":"a"}`), &req); err == nil {
		t.Error("Expected error for wrong type")
	}
}
