package rpc

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"
	"github.com/wricardo/mcp-training/treasurehunt/game/service"
)

// Handler adapts a GameService to Connect procedures
type Handler struct {
	svc service.GameService
}

// NewHandler builds the Connect handler for the game service. It returns the
// path to mount the handler on.
func NewHandler(svc service.GameService, opts ...connect.HandlerOption) (string, http.Handler) {
	h := &Handler{svc: svc}
	opts = append([]connect.HandlerOption{
		connect.WithCodec(jsonCodec{name: codecNameJSON}),
		connect.WithCodec(jsonCodec{name: codecNameJSONCharset}),
	}, opts...)

	mux := http.NewServeMux()
	mux.Handle(StartGameProcedure, connect.NewUnaryHandler(StartGameProcedure, h.StartGame, opts...))
	mux.Handle(CheckLocationProcedure, connect.NewUnaryHandler(CheckLocationProcedure, h.CheckLocation, opts...))
	mux.Handle(EndGameProcedure, connect.NewUnaryHandler(EndGameProcedure, h.EndGame, opts...))
	mux.Handle(GetGameStateProcedure, connect.NewUnaryHandler(GetGameStateProcedure, h.GetGameState, opts...))
	mux.Handle(GetHighScoresProcedure, connect.NewUnaryHandler(GetHighScoresProcedure, h.GetHighScores, opts...))
	mux.Handle(GetRemainingTimeProcedure, connect.NewUnaryHandler(GetRemainingTimeProcedure, h.GetRemainingTime, opts...))

	return "/" + ServiceName + "/", mux
}

// StartGame starts a game
func (h *Handler) StartGame(ctx context.Context, req *connect.Request[StartGameRequest]) (*connect.Response[StartGameResponse], error) {
	result, err := h.svc.StartGameWithConfig(ctx, req.Msg.ConfigID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(result), nil
}

// CheckLocation checks a coordinate
func (h *Handler) CheckLocation(ctx context.Context, req *connect.Request[CheckLocationRequest]) (*connect.Response[CheckLocationResponse], error) {
	result, err := h.svc.CheckLocation(ctx, req.Msg.X, req.Msg.Y)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(result), nil
}

// EndGame ends the current game
func (h *Handler) EndGame(ctx context.Context, req *connect.Request[EndGameRequest]) (*connect.Response[EndGameResponse], error) {
	result, err := h.svc.EndGame(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(result), nil
}

// GetGameState returns the current state
func (h *Handler) GetGameState(ctx context.Context, req *connect.Request[GetGameStateRequest]) (*connect.Response[GetGameStateResponse], error) {
	state, err := h.svc.GetGameState(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetGameStateResponse{State: state}), nil
}

// GetHighScores returns the leaderboard
func (h *Handler) GetHighScores(ctx context.Context, req *connect.Request[GetHighScoresRequest]) (*connect.Response[GetHighScoresResponse], error) {
	if req.Msg.Limit < 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("limit must not be negative"))
	}
	scores, err := h.svc.GetHighScores(ctx, req.Msg.Limit)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetHighScoresResponse{Scores: scores}), nil
}

// GetRemainingTime returns the remaining whole seconds
func (h *Handler) GetRemainingTime(ctx context.Context, req *connect.Request[GetRemainingTimeRequest]) (*connect.Response[GetRemainingTimeResponse], error) {
	remaining, err := h.svc.GetRemainingTime(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetRemainingTimeResponse{RemainingSeconds: remaining}), nil
}

// toConnectError maps service errors onto Connect codes
func toConnectError(err error) error {
	switch {
	case errors.Is(err, service.ErrConfigNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
