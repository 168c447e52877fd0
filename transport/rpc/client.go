package rpc

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	"github.com/wricardo/mcp-training/treasurehunt/game/engine"
	"github.com/wricardo/mcp-training/treasurehunt/game/leaderboard"
)

// Client is a typed Connect client for the game service
type Client struct {
	startGame        *connect.Client[StartGameRequest, StartGameResponse]
	checkLocation    *connect.Client[CheckLocationRequest, CheckLocationResponse]
	endGame          *connect.Client[EndGameRequest, EndGameResponse]
	getGameState     *connect.Client[GetGameStateRequest, GetGameStateResponse]
	getHighScores    *connect.Client[GetHighScoresRequest, GetHighScoresResponse]
	getRemainingTime *connect.Client[GetRemainingTimeRequest, GetRemainingTimeResponse]
}

// NewClient creates a client for the service hosted at baseURL
func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{name: codecNameJSON})}, opts...)

	return &Client{
		startGame:        connect.NewClient[StartGameRequest, StartGameResponse](httpClient, baseURL+StartGameProcedure, opts...),
		checkLocation:    connect.NewClient[CheckLocationRequest, CheckLocationResponse](httpClient, baseURL+CheckLocationProcedure, opts...),
		endGame:          connect.NewClient[EndGameRequest, EndGameResponse](httpClient, baseURL+EndGameProcedure, opts...),
		getGameState:     connect.NewClient[GetGameStateRequest, GetGameStateResponse](httpClient, baseURL+GetGameStateProcedure, opts...),
		getHighScores:    connect.NewClient[GetHighScoresRequest, GetHighScoresResponse](httpClient, baseURL+GetHighScoresProcedure, opts...),
		getRemainingTime: connect.NewClient[GetRemainingTimeRequest, GetRemainingTimeResponse](httpClient, baseURL+GetRemainingTimeProcedure, opts...),
	}
}

// StartGame starts a game with the given preset, or the server's preset when empty
func (c *Client) StartGame(ctx context.Context, configID string) (*StartGameResponse, error) {
	resp, err := c.startGame.CallUnary(ctx, connect.NewRequest(&StartGameRequest{ConfigID: configID}))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

// CheckLocation checks a coordinate
func (c *Client) CheckLocation(ctx context.Context, x, y int) (*CheckLocationResponse, error) {
	resp, err := c.checkLocation.CallUnary(ctx, connect.NewRequest(&CheckLocationRequest{X: x, Y: y}))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

// EndGame ends the current game
func (c *Client) EndGame(ctx context.Context) (*EndGameResponse, error) {
	resp, err := c.endGame.CallUnary(ctx, connect.NewRequest(&EndGameRequest{}))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

// GetGameState returns the current state, nil when no game was started
func (c *Client) GetGameState(ctx context.Context) (*engine.GameState, error) {
	resp, err := c.getGameState.CallUnary(ctx, connect.NewRequest(&GetGameStateRequest{}))
	if err != nil {
		return nil, err
	}
	return resp.Msg.State, nil
}

// GetHighScores returns up to limit scores, all when limit is 0
func (c *Client) GetHighScores(ctx context.Context, limit int) ([]leaderboard.Entry, error) {
	resp, err := c.getHighScores.CallUnary(ctx, connect.NewRequest(&GetHighScoresRequest{Limit: limit}))
	if err != nil {
		return nil, err
	}
	return resp.Msg.Scores, nil
}

// GetRemainingTime returns the remaining whole seconds
func (c *Client) GetRemainingTime(ctx context.Context) (int, error) {
	resp, err := c.getRemainingTime.CallUnary(ctx, connect.NewRequest(&GetRemainingTimeRequest{}))
	if err != nil {
		return 0, err
	}
	return resp.Msg.RemainingSeconds, nil
}
