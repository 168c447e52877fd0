// Package events describes game lifecycle events and delivers them to
// interested parties.
//
// The service emits an Event after every state transition that observers care
// about:
//   - game_started: a new session was started (data: the initial state)
//   - treasure_found: a check hit the treasure (data: the updated state)
//   - game_ended: an active session was ended (data: the leaderboard entry)
//
// Delivery goes through the Notifier interface. Multi fans an event out to
// several notifiers, the websocket hub implements Notifier for browsers and
// NATSPublisher forwards events to a NATS subject per event type:
//
//	treasurehunt.events.game_started
//	treasurehunt.events.treasure_found
//	treasurehunt.events.game_ended
//
// Notifications are best effort. Callers log failures and carry on.
package events
