package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
)

type recordingPublisher struct {
	msgs []*nats.Msg
	err  error
}

func (r *recordingPublisher) PublishMsg(msg *nats.Msg) error {
	if r.err != nil {
		return r.err
	}
	r.msgs = append(r.msgs, msg)
	return nil
}

func TestMultiNotify(t *testing.T) {
	var got []string
	record := func(name string, err error) Notifier {
		return NotifierFunc(func(ctx context.Context, e Event) error {
			got = append(got, name+":"+string(e.Type))
			return err
		})
	}

	boom := errors.New("boom")
	m := Multi{record("a", nil), nil, record("b", boom), record("c", nil)}

	err := m.Notify(context.Background(), Event{Type: GameStarted, GameID: "g1"})
	if !errors.Is(err, boom) {
		t.Errorf("Expected joined error to contain boom, got %v", err)
	}

	want := []string{"a:game_started", "b:game_started", "c:game_started"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d deliveries, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Delivery %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	if err := (Multi{}).Notify(context.Background(), Event{}); err != nil {
		t.Errorf("Empty Multi should not fail, got %v", err)
	}
	if err := (Nop{}).Notify(context.Background(), Event{}); err != nil {
		t.Errorf("Nop should not fail, got %v", err)
	}
}

func TestNATSPublisherNotify(t *testing.T) {
	rec := &recordingPublisher{}
	p := newNATSPublisher(rec, "")

	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	event := Event{Type: TreasureFound, GameID: "game-1", At: at, Data: map[string]int{"score": 10}}

	if err := p.Notify(context.Background(), event); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if len(rec.msgs) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(rec.msgs))
	}

	msg := rec.msgs[0]
	if msg.Subject != "treasurehunt.events.treasure_found" {
		t.Errorf("Unexpected subject %q", msg.Subject)
	}
	if msg.Header.Get("Event-Type") != "treasure_found" || msg.Header.Get("Game-ID") != "game-1" {
		t.Errorf("Unexpected headers %v", msg.Header)
	}

	var decoded struct {
		Event  string         `json:"event"`
		GameID string         `json:"game_id"`
		Data   map[string]int `json:"data"`
	}
	if err := json.Unmarshal(msg.Data, &decoded); err != nil {
		t.Fatalf("Invalid payload: %v", err)
	}
	if decoded.Event != "treasure_found" || decoded.GameID != "game-1" || decoded.Data["score"] != 10 {
		t.Errorf("Unexpected payload %+v", decoded)
	}
}

func TestNATSPublisherErrors(t *testing.T) {
	rec := &recordingPublisher{err: nats.ErrConnectionClosed}
	p := newNATSPublisher(rec, "custom")

	if got := p.Subject(GameEnded); got != "custom.game_ended" {
		t.Errorf("Unexpected subject %q", got)
	}

	err := p.Notify(context.Background(), Event{Type: GameEnded})
	if !errors.Is(err, nats.ErrConnectionClosed) {
		t.Errorf("Expected wrapped connection error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Notify(ctx, Event{Type: GameEnded}); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}

	if err := p.Close(); err != nil {
		t.Errorf("Close without connection should not fail, got %v", err)
	}
}
