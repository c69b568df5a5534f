// Package table resolves die rolls against ascending threshold lists.
//
// Every random choice the generator makes (ability ranks, physical forms,
// power classes and powers, talents, slot budgets, weaknesses) goes through
// a Table. A table maps a roll in [1, Die] to the outcome whose exclusive
// upper bound is the first one above the roll.
package table

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

// Common die sizes
const (
	D100 = 100
	D10  = 10
)

// Entry pairs an exclusive upper bound with an outcome
type Entry[T any] struct {
	Below   int
	Outcome T
}

// Table is an immutable weighted lookup
type Table[T any] struct {
	name       string
	die        int
	thresholds []int
	outcomes   []T
}

// New builds a table. Thresholds must strictly increase and the last one
// must exceed die so every roll resolves.
func New[T any](name string, die int, entries ...Entry[T]) (*Table[T], error) {
	thresholds := make([]int, len(entries))
	outcomes := make([]T, len(entries))
	for i, e := range entries {
		thresholds[i] = e.Below
		outcomes[i] = e.Outcome
	}
	return FromThresholds(name, die, thresholds, outcomes)
}

// FromThresholds builds a table from parallel threshold and outcome lists
func FromThresholds[T any](name string, die int, thresholds []int, outcomes []T) (*Table[T], error) {
	if die < 1 {
		return nil, errors.Configurationf("table %s: die size %d", name, die)
	}
	if len(thresholds) == 0 {
		return nil, errors.Configurationf("table %s: no entries", name)
	}
	if len(thresholds) != len(outcomes) {
		return nil, errors.Configurationf("table %s: %d thresholds for %d outcomes",
			name, len(thresholds), len(outcomes))
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] <= thresholds[i-1] {
			return nil, errors.Configurationf("table %s: threshold %d not above %d",
				name, thresholds[i], thresholds[i-1])
		}
	}
	if thresholds[0] <= 1 {
		return nil, errors.Configurationf("table %s: first threshold %d is unreachable", name, thresholds[0])
	}
	if last := thresholds[len(thresholds)-1]; last <= die {
		return nil, errors.Configurationf("table %s: rolls %d..%d are unmapped", name, last, die)
	}

	t := &Table[T]{
		name:       name,
		die:        die,
		thresholds: append([]int(nil), thresholds...),
		outcomes:   append([]T(nil), outcomes...),
	}
	return t, nil
}

// Must is New that panics, for static data
func Must[T any](name string, die int, entries ...Entry[T]) *Table[T] {
	t, err := New(name, die, entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// MustThresholds is FromThresholds that panics, for static data
func MustThresholds[T any](name string, die int, thresholds []int, outcomes []T) *Table[T] {
	t, err := FromThresholds(name, die, thresholds, outcomes)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the table name
func (t *Table[T]) Name() string {
	return t.name
}

// Die returns the die size rolled against this table
func (t *Table[T]) Die() int {
	return t.die
}

// Outcomes returns a copy of the outcomes in threshold order
func (t *Table[T]) Outcomes() []T {
	return append([]T(nil), t.outcomes...)
}

// Resolve maps roll to its outcome
func (t *Table[T]) Resolve(roll int) (T, error) {
	var zero T
	if roll < 1 || roll > t.die {
		return zero, errors.Configurationf("table %s: roll %d outside 1..%d", t.name, roll, t.die)
	}
	for i, below := range t.thresholds {
		if roll < below {
			return t.outcomes[i], nil
		}
	}
	return zero, errors.Configurationf("table %s: roll %d unmapped", t.name, roll)
}

// Roll draws from roller and resolves, returning the raw roll as well
func (t *Table[T]) Roll(roller dice.Roller) (int, T, error) {
	var zero T
	roll, err := roller.Roll(t.die)
	if err != nil {
		return 0, zero, errors.Wrapf(err, "table %s: roll failed", t.name)
	}
	out, err := t.Resolve(roll)
	if err != nil {
		return roll, zero, err
	}
	return roll, out, nil
}
