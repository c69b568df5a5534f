package catalog

import "github.com/KirkDiggler/msh-chargen/internal/engine/table"

// Weakness effect outcomes
const (
	EffectPowerNegation  = "Power Negation"
	EffectIncapacitation = "Incapacitation"
	EffectFatal          = "Fatal"
)

// WeaknessStimulusTable is what triggers the weakness
var WeaknessStimulusTable = table.MustThresholds("weakness stimulus", table.D100,
	[]int{14, 19, 44, 69, 82, 95, 101},
	[]string{
		"Elemental Allergy", "Molecular Allergy", "Energy Allergy", "Energy Depletion",
		"Energy Dampening", "Finite Limit", "Psychological",
	},
)

// WeaknessEffectTable is the weakness effect. The top band is Fatal only
// for characters holding a power above Remarkable and otherwise falls back
// to Incapacitation.
var WeaknessEffectTable = table.MustThresholds("weakness effect", table.D100,
	[]int{51, 91, 101},
	[]string{EffectPowerNegation, EffectIncapacitation, EffectFatal},
)

// WeaknessDurationTable is how long the weakness lasts. Limited Duration
// after Contact has no band of its own.
var WeaknessDurationTable = table.MustThresholds("weakness duration", table.D100,
	[]int{41, 61, 101},
	[]string{"Continuous with Contact", "Limited Duration with Contact", "Permanent"},
)
