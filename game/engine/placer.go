package engine

import (
	"math/rand/v2"
	"sync"
)

// Placer decides where the next treasure is hidden. prev is nil for the first
// treasure of a session.
type Placer interface {
	Place(prev *Treasure) Position
}

// RandomPlacer hides treasures uniformly over the map
type RandomPlacer struct {
	rng *rand.Rand
	mu  sync.Mutex
}

// NewRandomPlacer creates a placer drawing from rng
func NewRandomPlacer(rng *rand.Rand) *RandomPlacer {
	return &RandomPlacer{rng: rng}
}

// Place returns a uniformly random in-bounds position different from prev
func (p *RandomPlacer) Place(prev *Treasure) Position {
	p.mu.Lock()
	defer p.mu.Unlock()

	span := MapMax - MapMin + 1
	for {
		pos := Position{
			X: MapMin + p.rng.IntN(span),
			Y: MapMin + p.rng.IntN(span),
		}
		if prev == nil || pos != prev.Position {
			return pos
		}
	}
}

// SequencePlacer cycles through a fixed list of positions
type SequencePlacer struct {
	spots []Position
	next  int
	mu    sync.Mutex
}

// NewSequencePlacer creates a placer for the given spots. spots must be non-empty.
func NewSequencePlacer(spots []Position) *SequencePlacer {
	cp := make([]Position, len(spots))
	copy(cp, spots)
	return &SequencePlacer{spots: cp}
}

// Place returns the next spot. The cycle restarts whenever a new session
// starts (prev == nil).
func (p *SequencePlacer) Place(prev *Treasure) Position {
	p.mu.Lock()
	defer p.mu.Unlock()

	if prev == nil {
		p.next = 0
	}
	pos := p.spots[p.next%len(p.spots)]
	p.next++
	return pos
}

// NewPlacer builds the placer described by a preset. Presets with pinned
// treasures use a SequencePlacer; otherwise treasures are random, seeded from
// the preset when it carries a seed and from rng otherwise.
func NewPlacer(config *GameConfig, rng *rand.Rand) (Placer, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	if len(config.Treasures) > 0 {
		return NewSequencePlacer(config.Treasures), nil
	}
	if config.Seed != 0 {
		rng = rand.New(rand.NewPCG(config.Seed, config.Seed^0x9e3779b97f4a7c15))
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return NewRandomPlacer(rng), nil
}
