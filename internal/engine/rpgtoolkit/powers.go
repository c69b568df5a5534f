package rpgtoolkit

import (
	"fmt"

	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/engine/catalog"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rank"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

// RollPowerClasses opens the Powers phase: pre-seeds the powers granted by
// the form, rolls the slot budget and one class per minimum slot. Powers
// bought in an earlier roll are refunded.
func (a *Adapter) RollPowerClasses(c *engine.Character) error {
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().RollPowerClasses {
			return gateClosed("rolling power classes")
		}

		if n := w.Powers.Budget.Purchased; n > 0 {
			w.SetResources(w.Resources() + n*catalog.PowerCost)
		}
		w.Powers = engine.PowerState{Rolled: true}

		seeds, err := a.seedPowers(w)
		if err != nil {
			return err
		}
		w.Powers.Acquired = seeds

		row, err := rollOn(a, catalog.SlotTable)
		if err != nil {
			return err
		}
		budget := engine.Budget{Min: row.Powers.Min, Max: row.Powers.Max, Used: len(seeds)}
		if !(budget.Min == 1 && w.Bonus.PowerBonus == -1) {
			budget.Min += w.Bonus.PowerBonus
		}
		w.Powers.Budget = budget

		for i := 0; i < budget.Min; i++ {
			class, err := rollOn(a, catalog.PowerClassTable)
			if err != nil {
				return err
			}
			w.Powers.Pending = append(w.Powers.Pending, engine.PendingClass{Class: class})
		}
		return nil
	})
}

// maxRerolls bounds redraws for a distinct result
const maxRerolls = 100

func (a *Adapter) seedPowers(w *engine.Character) ([]engine.Power, error) {
	var seeds []engine.Power

	if w.Bonus.AnimalDetection {
		detection, err := catalog.PowerClassByName(catalog.ClassDetection)
		if err != nil {
			return nil, err
		}
		first, err := rollOn(a, detection.Powers)
		if err != nil {
			return nil, err
		}
		second := first
		for tries := 0; second.Name == first.Name; tries++ {
			if tries == maxRerolls {
				return nil, errors.Internal("could not draw a second detection power")
			}
			if second, err = rollOn(a, detection.Powers); err != nil {
				return nil, err
			}
		}
		seeds = append(seeds,
			engine.Power{Name: first.Name, Rank: rank.Good, Locked: true},
			engine.Power{Name: second.Name, Rank: rank.Good, Locked: true},
		)
	}

	if w.Bonus.EnergyForm {
		p, err := a.seedFromClass(w, catalog.ClassEnergyEmission)
		if err != nil {
			return nil, err
		}
		if p.Emission, err = rollOn(a, catalog.EmissionPointTable); err != nil {
			return nil, err
		}
		seeds = append(seeds, p)
	}

	if w.Bonus.DeityTravel {
		p, err := a.seedFromClass(w, catalog.ClassTravel)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, p)
	}

	if w.Bonus.WingsTravel {
		r, err := a.rollPowerRank(w)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, engine.Power{Name: catalog.WingedFlight, Rank: r, Locked: true})
	}
	return seeds, nil
}

func (a *Adapter) seedFromClass(w *engine.Character, className string) (engine.Power, error) {
	class, err := catalog.PowerClassByName(className)
	if err != nil {
		return engine.Power{}, err
	}
	power, err := rollOn(a, class.Powers)
	if err != nil {
		return engine.Power{}, err
	}
	r, err := a.rollPowerRank(w)
	if err != nil {
		return engine.Power{}, err
	}
	return engine.Power{Name: power.Name, Rank: r, Locked: true}, nil
}

// rollPowerRank rolls a power rank on the character's ability table
func (a *Adapter) rollPowerRank(w *engine.Character) (int, error) {
	t, err := catalog.AbilityTable(w.AbilityTable())
	if err != nil {
		return 0, err
	}
	return rollOn(a, t)
}

func canBuy(b engine.Budget, pending int) bool {
	return pending < b.Max && b.Min < b.Max
}

// BuyPower trades two Resources ranks for one more rolled power class
func (a *Adapter) BuyPower(c *engine.Character) error {
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().BuyPower {
			return gateClosed("buying a power")
		}
		if w.Resources()-catalog.PowerCost < 0 {
			return errors.InsufficientResources("not enough Resources to purchase another power")
		}
		if !canBuy(w.Powers.Budget, len(w.Powers.Pending)) {
			return errors.NoSlotAvailable("not enough power slots to purchase another power")
		}

		class, err := rollOn(a, catalog.PowerClassTable)
		if err != nil {
			return err
		}
		w.SetResources(w.Resources() - catalog.PowerCost)
		w.Powers.Pending = append(w.Powers.Pending, engine.PendingClass{Class: class, Purchased: true})
		w.Powers.Budget.Min++
		w.Powers.Budget.Purchased++
		return nil
	})
}

// RemovePowerClass drops a pending class, refunding it when it was bought
func (a *Adapter) RemovePowerClass(c *engine.Character, index int) error {
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().RemovePowerClass {
			return gateClosed("removing a power class")
		}
		if index < 0 || index >= len(w.Powers.Pending) {
			return errors.InvalidArgumentf("power class %d does not exist", index)
		}

		if w.Powers.Pending[index].Purchased {
			w.SetResources(w.Resources() + catalog.PowerCost)
			w.Powers.Budget.Min--
			w.Powers.Budget.Purchased--
		}
		w.Powers.Pending = removeAt(w.Powers.Pending, index)

		if cur := w.Powers.Current; cur != nil {
			switch {
			case cur.ClassIndex == index:
				w.Powers.Current = nil
			case cur.ClassIndex > index:
				cur.ClassIndex--
			}
		}
		return nil
	})
}

// RollPower draws a power from the pending class at classIndex
func (a *Adapter) RollPower(c *engine.Character, classIndex int) error {
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().RollPower {
			return gateClosed("rolling a power")
		}
		if classIndex < 0 || classIndex >= len(w.Powers.Pending) {
			return errors.InvalidArgumentf("power class %d does not exist", classIndex)
		}
		class, err := catalog.PowerClassByName(w.Powers.Pending[classIndex].Class)
		if err != nil {
			return err
		}
		power, err := rollOn(a, class.Powers)
		if err != nil {
			return err
		}
		w.Powers.Current = &engine.RolledPower{
			ClassIndex: classIndex,
			Class:      class.Name,
			Name:       power.Name,
			Bonus:      append([]string(nil), power.Bonus...),
			Options:    append([]string(nil), power.Options...),
		}
		return nil
	})
}

// AddPower takes the rolled power with the chosen bonus and option powers.
// Each gets its own rank roll. Options naming a power class go back to the
// pending list instead.
func (a *Adapter) AddPower(c *engine.Character, input *engine.AddPowerInput) error {
	if input == nil {
		input = &engine.AddPowerInput{}
	}
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().AddPower {
			return gateClosed("adding a power")
		}
		cur := w.Powers.Current

		if len(cur.Bonus) > 0 && len(input.Bonus) == 0 {
			return errors.NoSelectionMade("a bonus power must be selected")
		}
		if err := validateChoices("bonus power", input.Bonus, cur.Bonus); err != nil {
			return err
		}
		if err := validateChoices("option power", input.Options, cur.Options); err != nil {
			return err
		}

		cost := catalog.Weight(cur.Name)
		for _, b := range input.Bonus {
			cost += catalog.Weight(b)
		}
		for _, o := range input.Options {
			cost += catalog.Weight(o)
			if _, grant := catalog.ClassGrant(o); grant {
				cost--
			}
		}
		budget := &w.Powers.Budget
		if budget.Used+cost > budget.Max {
			return errors.NotEnoughSlotsf("adding %s needs %d slots, %d of %d used",
				cur.Name, cost, budget.Used, budget.Max)
		}

		needsBio := cur.Name == catalog.BiophysicalControl || contains(input.Options, catalog.BiophysicalControl)
		if needsBio {
			if input.Biophysical == "" {
				return errors.NoSelectionMade("a Biophysical Control option must be selected")
			}
			if !contains(catalog.BiophysicalOptions(), input.Biophysical) {
				return errors.InvalidArgumentf("unknown Biophysical Control option %q", input.Biophysical)
			}
		}

		var added []engine.Power
		var granted []string

		main, err := a.rollAcquired(w, cur.Name, cur.Class == catalog.ClassEnergyEmission, input.Biophysical)
		if err != nil {
			return err
		}
		added = append(added, main)

		for _, b := range input.Bonus {
			p, err := a.rollAcquired(w, b, catalog.IsEmissionPower(b), input.Biophysical)
			if err != nil {
				return err
			}
			added = append(added, p)
		}

		for _, o := range input.Options {
			if class, grant := catalog.ClassGrant(o); grant {
				if _, err := a.rollPowerRank(w); err != nil {
					return err
				}
				granted = append(granted, class)
				continue
			}
			p, err := a.rollAcquired(w, o, catalog.IsEmissionPower(o), input.Biophysical)
			if err != nil {
				return err
			}
			added = append(added, p)
		}

		for _, p := range added {
			if p.Rank > rank.Remarkable {
				w.Powers.AboveRemarkable = true
			}
		}
		w.Powers.Acquired = append(w.Powers.Acquired, added...)
		budget.Used += cost

		w.Powers.Pending = removeAt(w.Powers.Pending, cur.ClassIndex)
		for _, class := range granted {
			w.Powers.Pending = append(w.Powers.Pending, engine.PendingClass{Class: class})
		}
		w.Powers.Current = nil
		return nil
	})
}

func (a *Adapter) rollAcquired(w *engine.Character, name string, emission bool, bio string) (engine.Power, error) {
	r, err := a.rollPowerRank(w)
	if err != nil {
		return engine.Power{}, err
	}
	p := engine.Power{Name: name, Rank: r}
	switch {
	case emission:
		if p.Emission, err = rollOn(a, catalog.EmissionPointTable); err != nil {
			return engine.Power{}, err
		}
	case name == catalog.BiophysicalControl:
		p.Option = bio
		if bio == catalog.BiophysicalRandom {
			if p.Option, err = rollOn(a, catalog.BiophysicalTable); err != nil {
				return engine.Power{}, err
			}
		}
	}
	return p, nil
}

func validateChoices(kind string, chosen, offered []string) error {
	seen := make(map[string]bool, len(chosen))
	for _, name := range chosen {
		if !contains(offered, name) {
			return errors.InvalidArgumentf("%s %q is not offered", kind, name)
		}
		if seen[name] {
			return errors.InvalidArgumentf("%s %q selected twice", kind, name)
		}
		seen[name] = true
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// RemovePower drops an acquired power and frees its slot weight. Powers
// granted by the form are locked.
func (a *Adapter) RemovePower(c *engine.Character, index int) error {
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().RemovePower {
			return gateClosed("removing a power")
		}
		if index < 0 || index >= len(w.Powers.Acquired) {
			return errors.InvalidArgumentf("power %d does not exist", index)
		}
		p := w.Powers.Acquired[index]
		if p.Locked {
			return errors.FailedPreconditionf("%s is granted by the physical form", p.Name)
		}
		w.Powers.Budget.Used -= catalog.Weight(p.Name)
		if w.Powers.Budget.Used < 0 {
			w.Powers.Budget.Used = 0
		}
		w.Powers.Acquired = removeAt(w.Powers.Acquired, index)
		return nil
	})
}

// GenerateWeakness rolls stimulus, effect and duration and closes the
// Powers phase
func (a *Adapter) GenerateWeakness(c *engine.Character) error {
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().GenerateWeakness {
			return gateClosed("generating a weakness")
		}
		stimulus, err := rollOn(a, catalog.WeaknessStimulusTable)
		if err != nil {
			return err
		}
		effect, err := rollOn(a, catalog.WeaknessEffectTable)
		if err != nil {
			return err
		}
		if effect == catalog.EffectFatal && !w.Powers.AboveRemarkable {
			effect = catalog.EffectIncapacitation
		}
		duration, err := rollOn(a, catalog.WeaknessDurationTable)
		if err != nil {
			return err
		}

		w.Weakness = fmt.Sprintf("%s causes %s that is %s", stimulus, effect, duration)
		w.Effects.Weaknesses = append(w.Effects.Weaknesses, w.Weakness)
		w.Powers.Current = nil
		return nil
	})
}
