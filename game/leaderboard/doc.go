// Package leaderboard keeps the ranked record of completed games.
//
// The board is append-only: every completed session contributes exactly one
// Entry, and entries are never edited or removed. Ranking happens on read:
// TopScores orders by score descending and breaks ties by recording order,
// earliest first.
//
// The board lives in memory for the lifetime of the process.
package leaderboard
