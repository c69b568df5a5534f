package catalog

import (
	"strings"

	"github.com/KirkDiggler/msh-chargen/internal/engine/table"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

// Ability identifies one of the nine rolled abilities
type Ability string

// Abilities in roll order
const (
	AbilityFighting   Ability = "fighting"
	AbilityAgility    Ability = "agility"
	AbilityStrength   Ability = "strength"
	AbilityEndurance  Ability = "endurance"
	AbilityReason     Ability = "reason"
	AbilityIntuition  Ability = "intuition"
	AbilityPsyche     Ability = "psyche"
	AbilityResources  Ability = "resources"
	AbilityPopularity Ability = "popularity"
)

// AbilityOrder is the order abilities are rolled and printed
var AbilityOrder = []Ability{
	AbilityFighting, AbilityAgility, AbilityStrength, AbilityEndurance,
	AbilityReason, AbilityIntuition, AbilityPsyche,
	AbilityResources, AbilityPopularity,
}

// Primary reports whether the ability is one of FASE RIP
func (a Ability) Primary() bool {
	return a != AbilityResources && a != AbilityPopularity
}

// Physical reports whether the ability contributes to Health
func (a Ability) Physical() bool {
	switch a {
	case AbilityFighting, AbilityAgility, AbilityStrength, AbilityEndurance:
		return true
	}
	return false
}

// Mental reports whether the ability contributes to Karma
func (a Ability) Mental() bool {
	switch a {
	case AbilityReason, AbilityIntuition, AbilityPsyche:
		return true
	}
	return false
}

// Field returns the bonus accumulator for the ability
func (a Ability) Field() Field {
	switch a {
	case AbilityFighting:
		return FieldFighting
	case AbilityAgility:
		return FieldAgility
	case AbilityStrength:
		return FieldStrength
	case AbilityEndurance:
		return FieldEndurance
	case AbilityReason:
		return FieldReason
	case AbilityIntuition:
		return FieldIntuition
	case AbilityPsyche:
		return FieldPsyche
	case AbilityResources:
		return FieldResources
	default:
		return FieldPopularity
	}
}

// ParseAbility accepts an ability name in any case
func ParseAbility(s string) (Ability, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, a := range AbilityOrder {
		if string(a) == want {
			return a, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown ability %q", s)
}

var abilityTables = map[int]*table.Table[int]{
	1: table.MustThresholds("ability table 1", table.D100,
		[]int{6, 11, 21, 41, 61, 81, 97, 101}, []int{1, 2, 3, 4, 5, 6, 7, 8}),
	2: table.MustThresholds("ability table 2", table.D100,
		[]int{6, 26, 78, 96, 101}, []int{1, 2, 3, 4, 5}),
	3: table.MustThresholds("ability table 3", table.D100,
		[]int{6, 11, 41, 81, 96, 101}, []int{1, 2, 3, 4, 5, 6}),
	4: table.MustThresholds("ability table 4", table.D100,
		[]int{6, 11, 16, 41, 51, 71, 91, 99, 101}, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}),
	5: table.MustThresholds("ability table 5", table.D100,
		[]int{11, 21, 31, 41, 61, 71, 81, 96, 101}, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}),
}

// AbilityTable returns the rank table used for abilities and power ranks
func AbilityTable(n int) (*table.Table[int], error) {
	t, ok := abilityTables[n]
	if !ok {
		return nil, errors.Configurationf("ability table %d does not exist", n)
	}
	return t, nil
}
