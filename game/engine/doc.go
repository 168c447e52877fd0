// Package engine provides the core game rules for the Treasure Hunt Game.
//
// The engine package implements:
//   - The game session and treasure data model
//   - Remaining-time computation from a start timestamp and fixed duration
//   - Treasure matching within a tolerance radius
//   - Treasure placement policies (random and pinned sequences)
//   - Game preset validation
//
// Core Types:
//
// GameSession holds one play-through: its identifier, start time, duration,
// score, number of treasures found, active flag and the hidden Treasure.
// GameState is the external read-only view of a session; it never exposes the
// treasure location. GameConfig describes a preset (duration, tolerance,
// points per find and optional pinned treasure spots).
//
// Usage:
//
//	cfg := engine.DefaultGameConfig()
//	placer, err := engine.NewPlacer(cfg, rand.New(rand.NewPCG(1, 2)))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	treasure := engine.Treasure{Position: placer.Place(nil), Tolerance: cfg.Tolerance}
//	outcome := engine.CheckLocation(sess, engine.Position{X: 40, Y: 12}, time.Now())
//	if outcome == engine.OutcomeFound {
//		// award points and relocate
//	}
//
// Game Rules:
//
// The map is addressed with integer percentages on both axes, from MapMin to
// MapMax inclusive. A check matches when it lies within the treasure's
// tolerance (Euclidean distance, tolerance 0 means exact). Coordinates outside
// the map never match and never fail. A session accepts checks only while it
// is active and has remaining time; everything in this package is pure and
// takes the current time as an argument.
package engine
