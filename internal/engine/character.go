package engine

import (
	"fmt"

	"github.com/KirkDiggler/msh-chargen/internal/engine/catalog"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rank"
)

// AbilitiesRolled reports whether the ability roll has happened
func (c *Character) AbilitiesRolled() bool {
	return len(c.Abilities) > 0
}

// Rank returns the current rank index of an ability, 0 before rolling
func (c *Character) Rank(a catalog.Ability) int {
	if s, ok := c.Abilities[a]; ok {
		return s.Rank
	}
	return 0
}

// Score returns the current score of an ability under the scoring mode
func (c *Character) Score(a catalog.Ability) int {
	if !c.AbilitiesRolled() {
		return 0
	}
	return rank.Standard.Score(c.Rank(a), c.ScoringMode)
}

// Health is the sum of the physical scores times the health multiplier
func (c *Character) Health() int {
	total := 0
	for _, a := range catalog.AbilityOrder {
		if a.Physical() {
			total += c.Score(a)
		}
	}
	return total * c.Bonus.HealthMultiplier
}

// Karma is the sum of the mental scores
func (c *Character) Karma() int {
	total := 0
	for _, a := range catalog.AbilityOrder {
		if a.Mental() {
			total += c.Score(a)
		}
	}
	return total
}

// Resources is the current Resources rank, the currency of every purchase
func (c *Character) Resources() int {
	return c.Rank(catalog.AbilityResources)
}

// SetResources sets the current Resources rank
func (c *Character) SetResources(idx int) {
	if s, ok := c.Abilities[catalog.AbilityResources]; ok {
		s.Rank = idx
	}
}

// AbilityTable returns the resolved ability table, 0 while undecided
func (c *Character) AbilityTable() int {
	if c.Form == nil {
		return 0
	}
	return c.Form.Table
}

// FormPending reports whether the form still needs an option or sub-form
// choice
func (c *Character) FormPending() bool {
	if c.Form == nil {
		return true
	}
	form, err := catalog.FormByID(c.Form.ID)
	if err != nil {
		return true
	}
	if len(form.Options) > 0 && c.Form.Option == NoneSelected {
		return true
	}
	if cs := c.Form.Compound; cs != nil {
		if cs.Pending != NoneSelected {
			return true
		}
		for _, sf := range cs.SubForms {
			if !sf.Resolved {
				return true
			}
		}
	}
	return false
}

// Display renders a power line under a scoring mode
func (p Power) Display(mode rank.Mode) string {
	r := rank.Standard.Name(p.Rank)
	score := rank.Standard.Score(p.Rank, mode)
	switch {
	case p.Option != "":
		return fmt.Sprintf("%s (%s) - %s (%d)", p.Name, p.Option, r, score)
	case p.Emission != "":
		return fmt.Sprintf("%s - %s (%d); emitted from %s", p.Name, r, score, p.Emission)
	default:
		return fmt.Sprintf("%s - %s (%d)", p.Name, r, score)
	}
}

// PowerLines renders every acquired power
func (c *Character) PowerLines() []string {
	out := make([]string, len(c.Powers.Acquired))
	for i, p := range c.Powers.Acquired {
		out[i] = p.Display(c.ScoringMode)
	}
	return out
}

// ContactNames lists contacts in order
func (c *Character) ContactNames() []string {
	out := make([]string, len(c.Contacts.Items))
	for i, ct := range c.Contacts.Items {
		out[i] = ct.Name
	}
	return out
}

// Apply dispatches one form effect delta onto its accumulator. Forced
// ranks, the initial contact count and the pre-seeded power flags assign;
// everything else adds.
func (a *Accumulators) Apply(d catalog.Delta) {
	switch d.Field {
	case catalog.FieldAbilityBonus:
		a.AbilityBonus += d.Value
	case catalog.FieldHealthMultiplier:
		a.HealthMultiplier += d.Value
	case catalog.FieldPowerBonus:
		a.PowerBonus += d.Value
	case catalog.FieldForcedResources:
		a.ForcedResources = d.Value
	case catalog.FieldForcedPopularity:
		a.ForcedPopularity = d.Value
	case catalog.FieldInitialContacts:
		a.InitialContacts = d.Value
	case catalog.FieldAnimalDetection:
		a.AnimalDetection = d.Value != 0
	case catalog.FieldEnergyForm:
		a.EnergyForm = d.Value != 0
	case catalog.FieldDeityTravelPower:
		a.DeityTravel = d.Value != 0
	case catalog.FieldWingsTravelPower:
		a.WingsTravel = d.Value != 0
	default:
		for _, ab := range catalog.AbilityOrder {
			if ab.Field() == d.Field {
				if a.Abilities == nil {
					a.Abilities = map[catalog.Ability]int{}
				}
				a.Abilities[ab] += d.Value
				return
			}
		}
	}
}
