// Package session holds the game session state for the Treasure Hunt Game.
//
// The session package implements:
//   - A single-slot holder for the one game session that may exist at a time
//   - Unique game ID generation
//   - The session lifecycle: start, record finds, end
//   - Concurrent access control
//
// Core Types:
//
// Manager owns the current engine.GameSession. Starting a game replaces
// whatever session was held before; ending a game is idempotent. Callers only
// ever receive snapshots, so the held session can only change through the
// Manager's methods.
//
// Session Identifiers:
//
// Game IDs are random UUIDs by default. The generator is injectable for tests,
// and the manager guarantees a new ID differs from the one it replaces.
//
// Concurrency:
//
// The manager is safe for concurrent use; an internal RWMutex guards the
// slot. Serialising whole game operations (check then record, end then
// record to the leaderboard) is the caller's job.
//
// Usage:
//
//	manager := session.NewManager(clockwork.NewRealClock(), nil)
//
//	sess := manager.Start(config, "classic", treasure)
//
//	if current, ok := manager.Current(); ok {
//		fmt.Println(current.GameID, current.Score)
//	}
//
//	if ended, ok := manager.End(); ok {
//		board.Record(ended.GameID, ended.Score, time.Now())
//	}
package session
