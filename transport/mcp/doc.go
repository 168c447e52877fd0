// Package mcp provides a Model Context Protocol server for the Treasure Hunt Game.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for every game operation
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - start_game: Start a game, optionally with a preset
//   - check_location: Check coordinates for the treasure
//   - end_game: End the game and record the score
//   - game_state: Get the current game state
//   - remaining_time: Seconds left in the current game
//   - high_scores: Leaderboard, best first
//   - list_configs: List available presets
//   - game_instructions: Rules and strategy hints
//
// Architecture:
//
// The MCP server is a thin client. Every tool calls the REST API, so the MCP
// view of the game is exactly what the browser sees.
//
// Transport Modes:
//   - Stdio: server.ServeStdio(client.GetMCPServer())
//   - HTTP: router.Handle("/mcp", client.HTTPHandler())
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	if err := server.ServeStdio(client.GetMCPServer()); err != nil {
//		log.Fatal(err)
//	}
package mcp
