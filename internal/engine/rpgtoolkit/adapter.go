// Package rpgtoolkit provides the concrete implementation of the engine
// interface using the rpg-toolkit dice roller.
package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rank"
	"github.com/KirkDiggler/msh-chargen/internal/engine/table"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

// Adapter implements the engine.Engine interface on a dice.Roller
type Adapter struct {
	diceRoller dice.Roller
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rules engine
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		diceRoller: cfg.DiceRoller,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// mutate runs fn against a copy of c and commits it only on success
func (a *Adapter) mutate(c *engine.Character, fn func(w *engine.Character) error) error {
	if c == nil {
		return errors.InvalidArgument("character is required")
	}
	w := c.Clone()
	if err := fn(w); err != nil {
		return err
	}
	*c = *w
	return nil
}

func (a *Adapter) roll(size int) (int, error) {
	v, err := a.diceRoller.Roll(size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", size)
	}
	return v, nil
}

// chance rolls d100 and succeeds when the roll is at most 100/n
func (a *Adapter) chance(n int) (bool, error) {
	v, err := a.roll(table.D100)
	if err != nil {
		return false, err
	}
	return v*n <= 100, nil
}

func rollOn[T any](a *Adapter, t *table.Table[T]) (T, error) {
	_, out, err := t.Roll(a.diceRoller)
	return out, err
}

// SetScoringMode switches between minimum and standard scores. Every
// score is derived, so nothing else changes.
func (a *Adapter) SetScoringMode(c *engine.Character, mode rank.Mode) error {
	if mode != rank.ModeMinimum && mode != rank.ModeStandard {
		return errors.InvalidArgumentf("unknown scoring mode %d", mode)
	}
	return a.mutate(c, func(w *engine.Character) error {
		w.ScoringMode = mode
		return nil
	})
}

// SetProfile replaces the sheet header
func (a *Adapter) SetProfile(c *engine.Character, profile engine.Profile) error {
	if profile.Secret && profile.Public {
		return errors.InvalidArgument("an identity cannot be both secret and public")
	}
	return a.mutate(c, func(w *engine.Character) error {
		w.Profile = profile
		return nil
	})
}

func gateClosed(action string) error {
	return errors.FailedPreconditionf("%s is not available in the current phase", action)
}

func removeAt[T any](in []T, i int) []T {
	out := make([]T, 0, len(in)-1)
	out = append(out, in[:i]...)
	return append(out, in[i+1:]...)
}
