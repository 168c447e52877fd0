package events

import (
	"context"
	"errors"
	"time"
)

// Type names a lifecycle event
type Type string

const (
	GameStarted   Type = "game_started"
	TreasureFound Type = "treasure_found"
	GameEnded     Type = "game_ended"
)

// Event is a single lifecycle notification
type Event struct {
	Type   Type      `json:"event"`
	GameID string    `json:"game_id"`
	At     time.Time `json:"at"`
	Data   any       `json:"data,omitempty"`
}

// Notifier delivers events to an observer
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(ctx context.Context, event Event) error

// Notify calls f(ctx, event)
func (f NotifierFunc) Notify(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Nop discards every event
type Nop struct{}

// Notify does nothing
func (Nop) Notify(context.Context, Event) error { return nil }

// Multi delivers each event to every notifier in order
type Multi []Notifier

// Notify forwards the event to all notifiers, even after a failure, and
// returns the joined errors
func (m Multi) Notify(ctx context.Context, event Event) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
