// Package websocket pushes game lifecycle events to browsers.
//
// The websocket package implements:
//   - Push-only WebSocket connections
//   - Optional per-game filtering
//   - Connection lifecycle management with ping/pong keepalive
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub owns all client
// registrations. Registration, removal and broadcast requests are funneled
// through channels into the Run loop, so only that goroutine touches the
// client map. Each client has a read pump and a write pump goroutine.
//
// Message Protocol:
//
// Outgoing messages are JSON objects, one per frame:
//
//	{"event": "treasure_found", "game_id": "...", "data": {...}}
//
// Events are game_started, treasure_found and game_ended. Incoming messages
// are read and discarded; they only keep the connection alive.
//
// Filtering:
//
// Clients connecting with ?game=<id> receive only that game's events.
// Clients without a filter receive every event, which is what the browser
// client wants since a new game gets a new ID on each start.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run(ctx)
//
//	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, r.URL.Query().Get("game"))
//	})
//
//	// Hub implements events.Notifier
//	svc := service.NewGameService(sessions, configs, board, service.WithNotifier(hub))
package websocket
