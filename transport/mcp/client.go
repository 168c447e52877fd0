package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/mcp-training/treasurehunt/game/engine"
	"github.com/wricardo/mcp-training/treasurehunt/game/leaderboard"
	"github.com/wricardo/mcp-training/treasurehunt/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Treasure Hunt Game",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Treasure Hunt Game - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
A treasure is hidden somewhere on a 100x100 map. Check coordinates to find it
before the clock runs out. Every find scores points and hides a new treasure.

AVAILABLE TOOLS:
- start_game: Start a new game (optionally with a preset)
- check_location: Check whether the treasure is at (x, y)
- end_game: End the game and record the score
- game_state: Get the current game state
- remaining_time: Seconds left in the current game
- high_scores: Leaderboard, best first
- list_configs: List available presets
- game_instructions: Rules and strategy hints

NOTE: Time keeps running between calls. End the game to get on the leaderboard.`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Game lifecycle
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "start_game",
		Description: "Start a new game, replacing any game in progress",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Preset to play (optional, see list_configs)",
				},
			},
		},
	}, c.handleStartGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "check_location",
		Description: "Check whether the treasure is hidden at the given map coordinates",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"x": map[string]interface{}{
					"type":        "integer",
					"minimum":     engine.MapMin,
					"maximum":     engine.MapMax,
					"description": "Horizontal coordinate in percent of the map width",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"minimum":     engine.MapMin,
					"maximum":     engine.MapMax,
					"description": "Vertical coordinate in percent of the map height",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of why you picked this spot (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"x", "y"},
		},
	}, c.handleCheckLocation)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "end_game",
		Description: "End the current game and record its score on the leaderboard",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleEndGame)

	// Queries
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "remaining_time",
		Description: "Get the whole seconds left in the current game",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleRemainingTime)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "high_scores",
		Description: "Get the leaderboard, highest score first",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "integer",
					"minimum":     1,
					"description": "Maximum number of entries (optional, default all)",
				},
			},
		},
	}, c.handleHighScores)

	// Configuration
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available game presets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the game rules and strategy hints",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// HTTPHandler serves single JSON-RPC messages posted to it
func (c *Client) HTTPHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := c.mcpServer.HandleMessage(r.Context(), body)
		if response == nil {
			// Notifications have no response
			w.WriteHeader(http.StatusAccepted)
			return
		}

		data, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})
}

// Helper methods for API calls

func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var result service.StartResult
	if err := c.apiCall(ctx, "POST", "/api/games", body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text := fmt.Sprintf("Started game: %s\nPreset: %s\n%s", result.GameID, result.ConfigID, formatGameState(result.State))
	return mcp.NewToolResultText(text), nil
}

func (c *Client) handleCheckLocation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	x, err := intArg(args, "x")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	y, err := intArg(args, "y")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var result service.CheckResult
	if err := c.apiCall(ctx, "POST", "/api/games/current/check", map[string]int{"x": x, "y": y}, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatCheckResult(x, y, &result)), nil
}

func (c *Client) handleEndGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var result service.EndResult
	if err := c.apiCall(ctx, "POST", "/api/games/current/end", nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if !result.Recorded || result.Entry == nil {
		return mcp.NewToolResultText("No active game to end. Nothing was recorded."), nil
	}

	text := fmt.Sprintf("Game %s ended.\nFinal score: %d\nRecorded on the leaderboard.", result.Entry.GameID, result.Entry.Score)
	return mcp.NewToolResultText(text), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var resp struct {
		State *engine.GameState `json:"state"`
	}
	if err := c.apiCall(ctx, "GET", "/api/games/current", nil, &resp); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(resp.State)), nil
}

func (c *Client) handleRemainingTime(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var resp struct {
		RemainingSeconds int `json:"remaining_seconds"`
	}
	if err := c.apiCall(ctx, "GET", "/api/games/current/time", nil, &resp); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Remaining time: %ds", resp.RemainingSeconds)), nil
}

func (c *Client) handleHighScores(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	path := "/api/highscores"
	if _, ok := args["limit"]; ok {
		limit, err := intArg(args, "limit")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}

	var resp struct {
		Count  int                 `json:"count"`
		Scores []leaderboard.Entry `json:"scores"`
	}
	if err := c.apiCall(ctx, "GET", path, nil, &resp); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHighScores(resp.Scores)), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	if err := c.apiCall(ctx, "GET", "/api/configs", nil, &configs); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var sb strings.Builder
	sb.WriteString("Available presets:\n")
	for _, cfg := range configs {
		fmt.Fprintf(&sb, "- %s: %s (%ds, tolerance %d, %d pts/find)", cfg.ConfigID, cfg.Name, cfg.DurationSeconds, cfg.Tolerance, cfg.PointsPerFind)
		if cfg.Description != "" {
			fmt.Fprintf(&sb, " - %s", cfg.Description)
		}
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := fmt.Sprintf(`TREASURE HUNT - RULES

MAP:
- Coordinates are integers from %d to %d on both axes, in percent of the map.
- (0,0) is the top-left corner, (100,100) the bottom-right.

GAMEPLAY:
1. start_game hides a treasure and starts the clock.
2. check_location(x, y) reports a find when (x, y) is within the preset's
   tolerance of the treasure (straight-line distance).
3. Each find adds the preset's points and hides a new treasure elsewhere.
4. When the clock reaches 0, checks are refused. Call end_game to record
   your score; games are only recorded when ended.
5. Starting a new game discards the current one without recording it.

STRATEGY:
- A grid scan with spacing no larger than the tolerance covers the whole map.
- Watch remaining_time; end the game before you forget it.
- Coordinates outside the map are simply a miss.`, engine.MapMin, engine.MapMax)

	return mcp.NewToolResultText(instructions), nil
}

// intArg reads an integer argument. JSON numbers arrive as float64.
func intArg(args map[string]interface{}, name string) (int, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return 0, fmt.Errorf("%s is required", name)
	}

	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%s must be an integer, got %v", name, v)
		}
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer, got %s", name, v)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%s must be an integer, got %T", name, raw)
	}
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game has been started yet. Use start_game."
	}

	status := "ACTIVE"
	switch {
	case !state.IsActive:
		status = "ENDED"
	case state.RemainingSeconds == 0:
		status = "EXPIRED (call end_game to record the score)"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Game: %s\n", state.GameID)
	if state.ConfigID != "" {
		fmt.Fprintf(&sb, "Preset: %s\n", state.ConfigID)
	}
	fmt.Fprintf(&sb, "Status: %s\n", status)
	fmt.Fprintf(&sb, "Score: %d\n", state.Score)
	fmt.Fprintf(&sb, "Treasures found: %d\n", state.TreasuresFound)
	fmt.Fprintf(&sb, "Time: %ds left of %ds\n", state.RemainingSeconds, state.DurationSeconds)
	fmt.Fprintf(&sb, "Search radius: %d\n", state.Tolerance)
	return sb.String()
}

func formatCheckResult(x, y int, result *service.CheckResult) string {
	var headline string
	switch result.Reason {
	case engine.OutcomeFound:
		headline = fmt.Sprintf("FOUND! Treasure at (%d,%d). A new treasure has been hidden.", x, y)
	case engine.OutcomeMiss:
		headline = fmt.Sprintf("Nothing at (%d,%d).", x, y)
	case engine.OutcomeOutOfBounds:
		headline = fmt.Sprintf("(%d,%d) is outside the map [%d,%d]. Counted as a miss.", x, y, engine.MapMin, engine.MapMax)
	case engine.OutcomeExpired:
		headline = "Time is up. Call end_game to record your score."
	case engine.OutcomeInactive:
		headline = "The game has ended. Use start_game to play again."
	case engine.OutcomeNoGame:
		headline = "No game has been started yet. Use start_game."
	default:
		headline = fmt.Sprintf("Check at (%d,%d): %s", x, y, result.Reason)
	}

	if result.State == nil {
		return headline
	}
	return fmt.Sprintf("%s\nScore: %d | Found: %d | Time left: %ds",
		headline, result.Score, result.TreasuresFound, result.RemainingSeconds)
}

func formatHighScores(scores []leaderboard.Entry) string {
	if len(scores) == 0 {
		return "No scores recorded yet."
	}

	var sb strings.Builder
	sb.WriteString("High scores:\n")
	for i, entry := range scores {
		fmt.Fprintf(&sb, "%d. %d pts - game %s (%s)\n", i+1, entry.Score, entry.GameID, entry.RecordedAt.Format(time.RFC3339))
	}
	return sb.String()
}
