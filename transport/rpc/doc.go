// Package rpc exposes the game service over Connect.
//
// The service is registered as treasurehunt.v1.GameService with one unary
// procedure per game operation:
//
//	/treasurehunt.v1.GameService/StartGame
//	/treasurehunt.v1.GameService/CheckLocation
//	/treasurehunt.v1.GameService/EndGame
//	/treasurehunt.v1.GameService/GetGameState
//	/treasurehunt.v1.GameService/GetHighScores
//	/treasurehunt.v1.GameService/GetRemainingTime
//
// Messages are plain Go structs carried by a JSON codec, so any Connect
// client speaking application/json can call the service, as can curl:
//
//	curl -H 'Content-Type: application/json' -d '{"x":42,"y":17}' \
//		http://localhost:8080/treasurehunt.v1.GameService/CheckLocation
//
// Usage:
//
//	path, handler := rpc.NewHandler(gameService)
//	mux.Handle(path, handler)
//
//	client := rpc.NewClient(http.DefaultClient, "http://localhost:8080")
//	start, err := client.StartGame(ctx, "")
package rpc
