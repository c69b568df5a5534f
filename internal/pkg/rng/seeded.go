// Package rng provides a reproducible dice.Roller for the CLI
package rng

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Seeded is a dice.Roller whose sequence is fixed by its seed
type Seeded struct {
	mu   sync.Mutex
	seed int64
	src  *rand.Rand
	pos  int64
}

var _ dice.Roller = (*Seeded)(nil)

// NewSeeded creates a roller from seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)), // #nosec G404 -- reproducible rolls, not secrets
	}
}

// Roll returns a value in [1, size]
func (r *Seeded) Roll(size int) (int, error) {
	if size < 1 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pos++
	return r.src.Intn(size) + 1, nil
}

// RollN returns count values in [1, size]
func (r *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid roll count %d", count)
	}
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Seed returns the seed
func (r *Seeded) Seed() int64 {
	return r.seed
}

// Position returns the number of rolls made
func (r *Seeded) Position() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pos
}
