package rank

import (
	"strings"

	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

// Scale is an ordered catalog of ranks
type Scale struct {
	ranks  []Rank
	byName map[string]int
}

// NewScale builds a scale from ranks listed lowest first. Scores must not
// decrease as the index rises.
func NewScale(ranks []Rank) (*Scale, error) {
	if len(ranks) == 0 {
		return nil, errors.Configurationf("rank scale is empty")
	}

	s := &Scale{
		ranks:  make([]Rank, len(ranks)),
		byName: make(map[string]int, len(ranks)),
	}
	for i, r := range ranks {
		if i > 0 {
			prev := ranks[i-1]
			if r.MinScore < prev.MinScore || r.StdScore < prev.StdScore {
				return nil, errors.Configurationf("rank %q scores below %q", r.Name, prev.Name)
			}
		}
		key := strings.ToLower(r.Name)
		if _, dup := s.byName[key]; dup {
			return nil, errors.Configurationf("duplicate rank %q", r.Name)
		}
		r.Index = i
		s.ranks[i] = r
		s.byName[key] = i
	}

	return s, nil
}

// Standard is the 18-rank scale used by the generator
var Standard = mustScale([]Rank{
	{Name: "Shift 0", MinScore: 0, StdScore: 0},
	{Name: "Feeble", MinScore: 1, StdScore: 2},
	{Name: "Poor", MinScore: 3, StdScore: 4},
	{Name: "Typical", MinScore: 5, StdScore: 6},
	{Name: "Good", MinScore: 8, StdScore: 10},
	{Name: "Excellent", MinScore: 16, StdScore: 20},
	{Name: "Remarkable", MinScore: 26, StdScore: 30},
	{Name: "Incredible", MinScore: 36, StdScore: 40},
	{Name: "Amazing", MinScore: 46, StdScore: 50},
	{Name: "Monstrous", MinScore: 63, StdScore: 75},
	{Name: "Unearthly", MinScore: 88, StdScore: 100},
	{Name: "Shift X", MinScore: 126, StdScore: 150},
	{Name: "Shift Y", MinScore: 176, StdScore: 200},
	{Name: "Shift Z", MinScore: 351, StdScore: 500},
	{Name: "Class 1000", MinScore: 1000, StdScore: 1000},
	{Name: "Class 3000", MinScore: 3000, StdScore: 3000},
	{Name: "Class 5000", MinScore: 5000, StdScore: 5000},
	{Name: "Beyond", MinScore: 10000, StdScore: 10000},
})

func mustScale(ranks []Rank) *Scale {
	s, err := NewScale(ranks)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of ranks
func (s *Scale) Len() int {
	return len(s.ranks)
}

// Top returns the highest index
func (s *Scale) Top() int {
	return len(s.ranks) - 1
}

// At returns the rank at index
func (s *Scale) At(index int) (Rank, error) {
	if index < 0 || index >= len(s.ranks) {
		return Rank{}, errors.InvalidArgumentf("rank index %d out of range", index)
	}
	return s.ranks[index], nil
}

// Name returns the rank name at index, clamping out-of-range values
func (s *Scale) Name(index int) string {
	return s.ranks[s.bound(index)].Name
}

// Score returns the score at index under mode, clamping out-of-range values
func (s *Scale) Score(index int, mode Mode) int {
	return s.ranks[s.bound(index)].Score(mode)
}

// IndexOf converts a rank name to its index
func (s *Scale) IndexOf(name string) (int, error) {
	idx, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.NotFoundf("unknown rank %q", name)
	}
	return idx, nil
}

// ScoreOf returns the score of the named rank under mode
func (s *Scale) ScoreOf(name string, mode Mode) (int, error) {
	idx, err := s.IndexOf(name)
	if err != nil {
		return 0, err
	}
	return s.ranks[idx].Score(mode), nil
}

// Clamp keeps a column-shifted index between Feeble and the top rank.
// Shift 0 is only reachable as a raw table result, never through shifts.
func (s *Scale) Clamp(index int) int {
	if index < Feeble {
		return Feeble
	}
	if index > s.Top() {
		return s.Top()
	}
	return index
}

// Shift applies a column shift of cs to index
func (s *Scale) Shift(index, cs int) int {
	return s.Clamp(index + cs)
}

func (s *Scale) bound(index int) int {
	if index < 0 {
		return 0
	}
	if index > s.Top() {
		return s.Top()
	}
	return index
}
