// Package api provides HTTP REST API handlers for the Treasure Hunt Game.
//
// The api package implements:
//   - RESTful endpoints for the game lifecycle
//   - Leaderboard queries
//   - Preset listing
//   - WebSocket upgrade handling
//   - Static file serving for the browser client
//
// Endpoints:
//
// Game Lifecycle:
//   - POST /api/games - Start a game, optional body {"config_id": "easy"}
//   - GET /api/games/current - Current state, {"state": null} before any game
//   - POST /api/games/current/check - Check {"x": 42, "y": 17}
//   - POST /api/games/current/end - End the game and record the score
//   - GET /api/games/current/time - Remaining whole seconds
//
// Leaderboard:
//   - GET /api/highscores?limit=10 - Best scores, highest first
//
// Configuration:
//   - GET /api/configs - List available presets
//   - GET /api/configs/{id} - Get a preset
//
// Other:
//   - GET /health - Liveness
//   - GET /ws?game=<id> - WebSocket event stream, filter optional
//
// Request/Response Format:
//
// All endpoints accept and return JSON. A missing or ended game is never an
// HTTP error: checks answer {"found": false, "reason": "no_game"} and ending
// twice answers {"recorded": false}. Coordinates outside the map are a miss
// with reason "out_of_bounds".
//
// Usage:
//
//	server := api.NewServer(gameService, hub,
//		api.WithMount("/treasurehunt.v1.GameService/", rpcHandler))
//	http.ListenAndServe(":8080", server)
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
//
// Malformed bodies answer 400, unknown presets 404 and canceled requests 503.
package api
