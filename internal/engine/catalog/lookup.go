package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

const maxSuggestions = 3

// FindForm resolves a form from a numeric ID, an exact name or a unique
// name prefix, ignoring case. A miss returns NotFound carrying the closest
// names under the "suggestions" meta key.
func FindForm(query string) (*Form, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, errors.InvalidArgument("physical form is required")
	}
	if id, err := strconv.Atoi(q); err == nil {
		return FormByID(id)
	}
	if f, ok := FormByName(q); ok {
		return f, nil
	}

	lq := strings.ToLower(q)
	var prefixed []*Form
	for _, f := range Forms {
		if strings.HasPrefix(strings.ToLower(f.Name), lq) {
			prefixed = append(prefixed, f)
		}
	}
	if len(prefixed) == 1 {
		return prefixed[0], nil
	}

	err := errors.NotFoundf("physical form %q not found", q)
	if s := SuggestForms(q); len(s) > 0 {
		err = err.WithMeta("suggestions", s)
	}
	return nil, err
}

// SuggestForms returns form names within edit distance of query, closest
// first
func SuggestForms(query string) []string {
	lq := strings.ToLower(strings.TrimSpace(query))
	if len(lq) < 3 {
		return nil
	}

	type hit struct {
		name string
		dist int
	}
	var hits []hit
	for _, f := range Forms {
		name := strings.ToLower(f.Name)
		dist := levenshtein.ComputeDistance(lq, name)
		if dist > suggestionLimit(len(name)) {
			if !strings.Contains(name, lq) {
				continue
			}
			dist = len(name) - len(lq)
		}
		hits = append(hits, hit{name: f.Name, dist: dist})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].dist == hits[j].dist {
			return hits[i].name < hits[j].name
		}
		return hits[i].dist < hits[j].dist
	})

	out := make([]string, 0, maxSuggestions)
	for _, h := range hits {
		out = append(out, h.name)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
