package rpgtoolkit

import (
	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/engine/catalog"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rank"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

// RollAbilities rolls all nine abilities on the form's table. Spent
// ability bonuses are handed back first.
func (a *Adapter) RollAbilities(c *engine.Character) error {
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().RollAbilities {
			return gateClosed("rolling abilities")
		}
		t, err := catalog.AbilityTable(w.AbilityTable())
		if err != nil {
			return err
		}

		w.Bonus.AbilityBonus += w.BonusesSpent
		w.BonusesSpent = 0

		scores := make(map[catalog.Ability]*engine.AbilityScore, len(catalog.AbilityOrder))
		for _, ab := range catalog.AbilityOrder {
			roll, tableRank, err := t.Roll(a.diceRoller)
			if err != nil {
				return err
			}
			bonus := w.Bonus.Abilities[ab]
			idx := rank.Standard.Clamp(tableRank + bonus)

			switch {
			case ab == catalog.AbilityResources && w.Bonus.ForcedResources != engine.NoneSelected:
				idx = w.Bonus.ForcedResources
			case ab == catalog.AbilityPopularity && w.Bonus.ForcedPopularity != engine.NoneSelected:
				idx = w.Bonus.ForcedPopularity
			}

			scores[ab] = &engine.AbilityScore{
				Roll:      roll,
				TableRank: tableRank,
				Bonus:     bonus,
				Rank:      idx,
			}
		}
		w.Abilities = scores
		w.OriginalResources = scores[catalog.AbilityResources].Rank
		return nil
	})
}

// RaiseAbility spends one ability bonus to raise a primary ability one rank
func (a *Adapter) RaiseAbility(c *engine.Character, ability catalog.Ability) error {
	if !ability.Primary() {
		return errors.InvalidArgumentf("%s cannot be raised with an ability bonus", ability)
	}
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().RaiseAbility {
			return gateClosed("raising an ability")
		}
		s, ok := w.Abilities[ability]
		if !ok {
			return errors.InvalidArgumentf("unknown ability %q", ability)
		}
		s.Rank = rank.Standard.Shift(s.Rank, 1)
		s.Raised++
		w.Bonus.AbilityBonus--
		w.BonusesSpent++
		return nil
	})
}
