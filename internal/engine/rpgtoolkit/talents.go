package rpgtoolkit

import (
	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/engine/catalog"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

// RollTalentClasses opens the Talents phase with a fresh slot roll
func (a *Adapter) RollTalentClasses(c *engine.Character) error {
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().RollTalentClasses {
			return gateClosed("rolling talent classes")
		}
		if n := w.Talents.Budget.Purchased; n > 0 {
			w.SetResources(w.Resources() + n*catalog.TalentCost)
		}

		row, err := rollOn(a, catalog.SlotTable)
		if err != nil {
			return err
		}
		w.Talents = engine.TalentState{
			Rolled: true,
			Budget: engine.Budget{Min: row.Talents.Min, Max: row.Talents.Max},
		}
		for i := 0; i < row.Talents.Min; i++ {
			class, err := rollOn(a, catalog.TalentClassTable)
			if err != nil {
				return err
			}
			w.Talents.Pending = append(w.Talents.Pending, engine.PendingClass{Class: class})
		}
		return nil
	})
}

// BuyTalent trades one Resources rank for one more rolled talent class
func (a *Adapter) BuyTalent(c *engine.Character) error {
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().BuyTalent {
			return gateClosed("buying a talent")
		}
		if w.Resources()-catalog.TalentCost < 0 {
			return errors.InsufficientResources("not enough Resources to purchase another talent")
		}
		if !canBuy(w.Talents.Budget, len(w.Talents.Pending)) {
			return errors.NoSlotAvailable("not enough talent slots to purchase another talent")
		}

		class, err := rollOn(a, catalog.TalentClassTable)
		if err != nil {
			return err
		}
		w.SetResources(w.Resources() - catalog.TalentCost)
		w.Talents.Pending = append(w.Talents.Pending, engine.PendingClass{Class: class, Purchased: true})
		w.Talents.Budget.Min++
		w.Talents.Budget.Purchased++
		return nil
	})
}

// RemoveTalentClass drops a pending talent class, refunding a bought one
func (a *Adapter) RemoveTalentClass(c *engine.Character, index int) error {
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().RemoveTalentClass {
			return gateClosed("removing a talent class")
		}
		if index < 0 || index >= len(w.Talents.Pending) {
			return errors.InvalidArgumentf("talent class %d does not exist", index)
		}
		if w.Talents.Pending[index].Purchased {
			w.SetResources(w.Resources() + catalog.TalentCost)
			w.Talents.Budget.Min--
			w.Talents.Budget.Purchased--
		}
		w.Talents.Pending = removeAt(w.Talents.Pending, index)

		if cur := w.Talents.Current; cur != nil {
			switch {
			case cur.ClassIndex == index:
				w.Talents.Current = nil
			case cur.ClassIndex > index:
				cur.ClassIndex--
			}
		}
		return nil
	})
}

// RollTalent rolls the d10 table of a pending class
func (a *Adapter) RollTalent(c *engine.Character, classIndex int) error {
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().RollTalent {
			return gateClosed("rolling a talent")
		}
		if classIndex < 0 || classIndex >= len(w.Talents.Pending) {
			return errors.InvalidArgumentf("talent class %d does not exist", classIndex)
		}
		class := w.Talents.Pending[classIndex].Class
		t, err := catalog.TalentTable(class)
		if err != nil {
			return err
		}
		choices, err := rollOn(a, t)
		if err != nil {
			return err
		}
		w.Talents.Current = &engine.RolledTalent{
			ClassIndex: classIndex,
			Class:      class,
			Choices:    append([]string(nil), choices...),
		}
		return nil
	})
}

// AddTalent takes one of the offered talents, filling its class
func (a *Adapter) AddTalent(c *engine.Character, talent string) error {
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().AddTalent {
			return gateClosed("adding a talent")
		}
		cur := w.Talents.Current
		if talent == "" {
			return errors.NoSelectionMade("a talent must be selected")
		}
		if !contains(cur.Choices, talent) {
			return errors.InvalidArgumentf("talent %q is not offered", talent)
		}
		budget := &w.Talents.Budget
		cost := catalog.Weight(talent)
		if budget.Used+cost > budget.Max {
			return errors.NotEnoughSlotsf("adding %s needs %d slots, %d of %d used",
				talent, cost, budget.Used, budget.Max)
		}

		w.Talents.Acquired = append(w.Talents.Acquired, talent)
		budget.Used += cost
		w.Talents.Pending = removeAt(w.Talents.Pending, cur.ClassIndex)
		w.Talents.Current = nil
		return nil
	})
}

// RemoveTalent drops an acquired talent and frees its slot weight
func (a *Adapter) RemoveTalent(c *engine.Character, index int) error {
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().RemoveTalent {
			return gateClosed("removing a talent")
		}
		if index < 0 || index >= len(w.Talents.Acquired) {
			return errors.InvalidArgumentf("talent %d does not exist", index)
		}
		w.Talents.Budget.Used -= catalog.Weight(w.Talents.Acquired[index])
		if w.Talents.Budget.Used < 0 {
			w.Talents.Budget.Used = 0
		}
		w.Talents.Acquired = removeAt(w.Talents.Acquired, index)
		return nil
	})
}
