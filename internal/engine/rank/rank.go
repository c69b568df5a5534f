// Package rank holds the ordered rank scale every ability and power is
// measured against.
package rank

import (
	"strings"

	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

// Mode selects which of a rank's two scores is reported
type Mode int

const (
	// ModeMinimum reports the lowest score of each rank
	ModeMinimum Mode = iota
	// ModeStandard reports the standard score of each rank
	ModeStandard
)

// String returns the mode name used in config and on the wire
func (m Mode) String() string {
	if m == ModeStandard {
		return "standard"
	}
	return "minimum"
}

// ParseMode converts a config string to a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "minimum", "min":
		return ModeMinimum, nil
	case "standard", "std":
		return ModeStandard, nil
	default:
		return ModeMinimum, errors.InvalidArgumentf("unknown scoring mode %q", s)
	}
}

// Rank indexes used by the rules
const (
	ShiftZero = iota
	Feeble
	Poor
	Typical
	Good
	Excellent
	Remarkable
	Incredible
	Amazing
	Monstrous
	Unearthly
	ShiftX
	ShiftY
	ShiftZ
	Class1000
	Class3000
	Class5000
	Beyond
)

// Rank is one named tier of the scale
type Rank struct {
	Name     string
	Index    int
	MinScore int
	StdScore int
}

// Score returns the rank's score under the given mode
func (r Rank) Score(mode Mode) int {
	if mode == ModeStandard {
		return r.StdScore
	}
	return r.MinScore
}
