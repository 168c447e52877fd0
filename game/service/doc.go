// Package service provides the business logic layer for the Treasure Hunt Game.
//
// The service package implements:
//   - The single-session game lifecycle (start, check, end)
//   - Treasure placement and relocation per game preset
//   - Score recording into the leaderboard
//   - Preset listing and loading
//   - Lifecycle notifications
//
// Core Interfaces:
//
// GameService is the main service interface providing the game operations.
// SessionManager holds the one current session.
// ConfigManager loads game presets.
// Leaderboard stores final scores.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/Connect/WebSocket/MCP)
// and the game engine. Every operation runs under a single mutex, so a start,
// a check and an end never interleave. Time comes from the session manager's
// clock, which tests replace with a fake clock.
//
// Usage:
//
//	sessions := session.NewManager(clockwork.NewRealClock(), nil)
//	configs, _ := config.NewManager("configs")
//	board := leaderboard.New()
//	gameService := service.NewGameService(sessions, configs, board,
//		service.WithNotifier(hub))
//
//	start, _ := gameService.StartGame(ctx)
//	result, _ := gameService.CheckLocation(ctx, 42, 17)
//	end, _ := gameService.EndGame(ctx)
//
// State Machine:
//
// A game moves from none to active on StartGame and from active to ended on
// EndGame. Expiry is observable through the remaining time and refused checks,
// but only EndGame records a score. Starting while a game is active discards
// the old game without recording it.
package service
