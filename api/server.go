package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/wricardo/mcp-training/treasurehunt/game/engine"
	"github.com/wricardo/mcp-training/treasurehunt/game/leaderboard"
	"github.com/wricardo/mcp-training/treasurehunt/game/service"
	"github.com/wricardo/mcp-training/treasurehunt/transport/websocket"
)

// DefaultStaticDir is where the browser client is served from
const DefaultStaticDir = "./static/"

// Option configures the API server
type Option func(*Server)

// WithStaticDir serves static files from dir; an empty dir disables them
func WithStaticDir(dir string) Option {
	return func(s *Server) {
		s.staticDir = dir
	}
}

// WithMount routes every request under prefix to h. Mounts take precedence
// over static files.
func WithMount(prefix string, h http.Handler) Option {
	return func(s *Server) {
		s.mounts = append(s.mounts, mount{prefix: prefix, handler: h})
	}
}

type mount struct {
	prefix  string
	handler http.Handler
}

// Server represents the REST API server
type Server struct {
	service   service.GameService
	hub       *websocket.Hub
	router    *mux.Router
	staticDir string
	mounts    []mount
}

// NewServer creates a new API server
func NewServer(gameService service.GameService, hub *websocket.Hub, opts ...Option) *Server {
	s := &Server{
		service:   gameService,
		hub:       hub,
		router:    mux.NewRouter(),
		staticDir: DefaultStaticDir,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Game lifecycle
	s.router.HandleFunc("/api/games", s.handleStartGame).Methods("POST")
	s.router.HandleFunc("/api/games/current", s.handleGetGameState).Methods("GET")
	s.router.HandleFunc("/api/games/current/check", s.handleCheckLocation).Methods("POST")
	s.router.HandleFunc("/api/games/current/end", s.handleEndGame).Methods("POST")
	s.router.HandleFunc("/api/games/current/time", s.handleGetRemainingTime).Methods("GET")

	// Leaderboard
	s.router.HandleFunc("/api/highscores", s.handleGetHighScores).Methods("GET")

	// Configuration
	s.router.HandleFunc("/api/configs", s.handleListConfigs).Methods("GET")
	s.router.HandleFunc("/api/configs/{id}", s.handleGetConfig).Methods("GET")

	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")

	// WebSocket
	s.router.HandleFunc("/ws", s.handleWebSocket)

	for _, m := range s.mounts {
		s.router.PathPrefix(m.prefix).Handler(m.handler)
	}

	if s.staticDir != "" {
		s.router.PathPrefix("/").Handler(http.FileServer(http.Dir(s.staticDir)))
	}
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps service errors onto HTTP status codes
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrConfigNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusServiceUnavailable, err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeBody decodes an optional JSON body into v. An empty body is not an error.
func decodeBody(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Game Handlers

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ConfigID string `json:"config_id,omitempty"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.StartGameWithConfig(r.Context(), req.ConfigID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// CheckRequest is the body of a location check
type CheckRequest struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

func (s *Server) handleCheckLocation(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.X == nil || req.Y == nil {
		respondError(w, http.StatusBadRequest, "Both x and y are required")
		return
	}

	result, err := s.service.CheckLocation(r.Context(), *req.X, *req.Y)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleEndGame(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.EndGame(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetGameState(w http.ResponseWriter, r *http.Request) {
	state, err := s.service.GetGameState(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]*engine.GameState{
		"state": state,
	})
}

func (s *Server) handleGetRemainingTime(w http.ResponseWriter, r *http.Request) {
	remaining, err := s.service.GetRemainingTime(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{
		"remaining_seconds": remaining,
	})
}

// Leaderboard Handlers

func (s *Server) handleGetHighScores(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 0 {
			respondError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = l
	}

	scores, err := s.service.GetHighScores(r.Context(), limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if scores == nil {
		scores = []leaderboard.Entry{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":  len(scores),
		"scores": scores,
	})
}

// Configuration Handlers

func (s *Server) handleListConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := s.service.ListConfigs(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if configs == nil {
		configs = []*service.ConfigInfo{}
	}

	respondJSON(w, http.StatusOK, configs)
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	configID := mux.Vars(r)["id"]

	config, err := s.service.LoadConfig(r.Context(), configID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, config)
}

// WebSocket Handler

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.hub == nil {
		http.Error(w, "WebSocket push disabled", http.StatusServiceUnavailable)
		return
	}

	// Upgrade to WebSocket; an empty filter receives every game
	s.hub.ServeWS(w, r, r.URL.Query().Get("game"))
}

// Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
