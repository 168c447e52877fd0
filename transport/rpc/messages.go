package rpc

import (
	"github.com/wricardo/mcp-training/treasurehunt/game/engine"
	"github.com/wricardo/mcp-training/treasurehunt/game/leaderboard"
	"github.com/wricardo/mcp-training/treasurehunt/game/service"
)

// ServiceName is the fully qualified Connect service name
const ServiceName = "treasurehunt.v1.GameService"

// Procedure paths
const (
	StartGameProcedure        = "/" + ServiceName + "/StartGame"
	CheckLocationProcedure    = "/" + ServiceName + "/CheckLocation"
	EndGameProcedure          = "/" + ServiceName + "/EndGame"
	GetGameStateProcedure     = "/" + ServiceName + "/GetGameState"
	GetHighScoresProcedure    = "/" + ServiceName + "/GetHighScores"
	GetRemainingTimeProcedure = "/" + ServiceName + "/GetRemainingTime"
)

type StartGameRequest struct {
	ConfigID string `json:"config_id,omitempty"`
}

type StartGameResponse = service.StartResult

type CheckLocationRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type CheckLocationResponse = service.CheckResult

type EndGameRequest struct{}

type EndGameResponse = service.EndResult

type GetGameStateRequest struct{}

type GetGameStateResponse struct {
	State *engine.GameState `json:"state"`
}

type GetHighScoresRequest struct {
	Limit int `json:"limit,omitempty"`
}

type GetHighScoresResponse struct {
	Scores []leaderboard.Entry `json:"scores"`
}

type GetRemainingTimeRequest struct{}

type GetRemainingTimeResponse struct {
	RemainingSeconds int `json:"remaining_seconds"`
}
