package rpgtoolkit

import (
	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/engine/catalog"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

// SelectForm starts a new character on the given physical form. Profile
// and scoring mode carry over; everything else is rebuilt.
func (a *Adapter) SelectForm(c *engine.Character, formID int) error {
	form, err := catalog.FormByID(formID)
	if err != nil {
		return err
	}

	return a.mutate(c, func(w *engine.Character) error {
		fresh := engine.NewCharacter(w.ScoringMode)
		fresh.Profile = w.Profile
		*w = *fresh

		origin, err := rollOn(a, catalog.OriginTable)
		if err != nil {
			return err
		}
		w.Origin = origin
		w.Form = &engine.FormState{
			ID:     form.ID,
			Table:  form.Table,
			Option: engine.NoneSelected,
		}

		if err := a.applyForm(w, form, 1); err != nil {
			return err
		}

		if form.Composite() {
			return a.drawSubForms(w)
		}
		return nil
	})
}

// RandomForm rolls the physical form table and selects the result
func (a *Adapter) RandomForm(c *engine.Character) error {
	id, err := rollOn(a, catalog.FormTable)
	if err != nil {
		return err
	}
	return a.SelectForm(c, id)
}

func (a *Adapter) drawSubForms(w *engine.Character) error {
	count, err := rollOn(a, catalog.CompoundCountTable)
	if err != nil {
		return err
	}

	cs := &engine.CompoundState{Pending: engine.NoneSelected}
	for tries := 0; len(cs.SubForms) < count; tries++ {
		if tries == count+maxRerolls {
			return errors.Internal("could not draw eligible sub-forms")
		}
		id, err := rollOn(a, catalog.FormTable)
		if err != nil {
			return err
		}
		sub, err := catalog.FormByID(id)
		if err != nil {
			return err
		}
		if !sub.CompoundEligible() {
			continue
		}
		cs.SubForms = append(cs.SubForms, engine.SubForm{ID: id, Option: engine.NoneSelected})
	}
	w.Form.Compound = cs
	return nil
}

// applyForm rolls each effect slot of form. A slot with a record applies
// when its chance roll is at most 100/n, where n is 1 for a directly chosen
// form and the sub-form count inside a composite.
func (a *Adapter) applyForm(w *engine.Character, form *catalog.Form, n int) error {
	for _, slot := range catalog.Slots {
		eff, ok := form.Effects[slot]
		if !ok && !slot.AlwaysRolled() {
			continue
		}
		hit, err := a.chance(n)
		if err != nil {
			return err
		}
		if !ok || !hit {
			continue
		}
		if err := a.applyEffect(w, slot.Section(), eff); err != nil {
			return err
		}
	}
	return nil
}

func (a *Adapter) applyEffect(w *engine.Character, section catalog.Section, eff catalog.Effect) error {
	showText := true
	if eff.CoinFlip {
		flip, err := a.roll(2)
		if err != nil {
			return err
		}
		showText = flip == 2
	}
	if showText && eff.Text != "" {
		appendEffectText(w, section, eff.Text)
	}
	for _, d := range eff.Deltas {
		w.Bonus.Apply(d)
	}
	if eff.Contact != "" && w.Bonus.InitialContacts > 0 {
		w.SeededContacts = append(w.SeededContacts, eff.Contact)
	}
	return nil
}

func appendEffectText(w *engine.Character, section catalog.Section, text string) {
	switch section {
	case catalog.SectionBonuses:
		w.Effects.Bonuses = append(w.Effects.Bonuses, text)
	case catalog.SectionPenalties:
		w.Effects.Penalties = append(w.Effects.Penalties, text)
	case catalog.SectionWeaknesses:
		w.Effects.Weaknesses = append(w.Effects.Weaknesses, text)
	default:
		w.Effects.Notes = append(w.Effects.Notes, text)
	}
}

// SelectOption chooses the pending option of the form, or of the sub-form
// awaiting one inside a composite
func (a *Adapter) SelectOption(c *engine.Character, option int) error {
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().SelectOption {
			return gateClosed("option selection")
		}
		if cs := w.Form.Compound; cs != nil {
			return a.selectSubFormOption(w, cs, option)
		}

		form, err := catalog.FormByID(w.Form.ID)
		if err != nil {
			return err
		}
		opt, err := optionAt(form, option)
		if err != nil {
			return err
		}
		if err := a.applyOption(w, opt, 1); err != nil {
			return err
		}
		if opt.Table > 0 {
			w.Form.Table = opt.Table
		}
		w.Form.Option = option
		return nil
	})
}

func (a *Adapter) selectSubFormOption(w *engine.Character, cs *engine.CompoundState, option int) error {
	sub := &cs.SubForms[cs.Pending]
	form, err := catalog.FormByID(sub.ID)
	if err != nil {
		return err
	}
	opt, err := optionAt(form, option)
	if err != nil {
		return err
	}

	if opt.Table > 0 {
		if err := a.fixCompoundTable(w, opt.Table); err != nil {
			return err
		}
	}
	if err := a.applyOption(w, opt, len(cs.SubForms)); err != nil {
		return err
	}

	sub.Option = option
	markResolved(cs, cs.Pending)
	cs.Pending = engine.NoneSelected
	return nil
}

func optionAt(form *catalog.Form, option int) (catalog.Option, error) {
	if option < 0 || option >= len(form.Options) {
		return catalog.Option{}, errors.InvalidArgumentf("%s has no option %d", form.Name, option)
	}
	return form.Options[option], nil
}

func (a *Adapter) applyOption(w *engine.Character, opt catalog.Option, n int) error {
	for _, oe := range opt.Effects {
		if oe.Chanced {
			hit, err := a.chance(n)
			if err != nil {
				return err
			}
			if !hit {
				continue
			}
		}
		if err := a.applyEffect(w, oe.Section, oe.Effect); err != nil {
			return err
		}
	}
	return nil
}

// ResolveSubForm applies one rolled sub-form of a composite. Sub-forms with
// options hold the composite until their option is chosen.
func (a *Adapter) ResolveSubForm(c *engine.Character, index int) error {
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().ResolveSubForm {
			return gateClosed("sub-form resolution")
		}
		cs := w.Form.Compound
		if index < 0 || index >= len(cs.SubForms) {
			return errors.InvalidArgumentf("sub-form %d does not exist", index)
		}
		if cs.SubForms[index].Resolved {
			return errors.InvalidArgumentf("sub-form %d is already resolved", index)
		}

		form, err := catalog.FormByID(cs.SubForms[index].ID)
		if err != nil {
			return err
		}
		if err := a.applyForm(w, form, len(cs.SubForms)); err != nil {
			return err
		}

		if !form.OptionTable() {
			if err := a.fixCompoundTable(w, form.Table); err != nil {
				return err
			}
		}

		if len(form.Options) > 0 {
			cs.Pending = index
			return nil
		}
		markResolved(cs, index)
		return nil
	})
}

// fixCompoundTable adopts t as the composite's ability table when none is
// fixed yet: always for the last unresolved sub-form, otherwise on a chance
// roll against the number still unresolved
func (a *Adapter) fixCompoundTable(w *engine.Character, t int) error {
	if w.Form.Table != 0 || t == 0 {
		return nil
	}
	remaining := 0
	for _, sf := range w.Form.Compound.SubForms {
		if !sf.Resolved {
			remaining++
		}
	}
	if remaining <= 1 {
		w.Form.Table = t
		return nil
	}
	hit, err := a.chance(remaining)
	if err != nil {
		return err
	}
	if hit {
		w.Form.Table = t
	}
	return nil
}

func markResolved(cs *engine.CompoundState, index int) {
	order := 0
	for _, sf := range cs.SubForms {
		if sf.Order > order {
			order = sf.Order
		}
	}
	cs.SubForms[index].Resolved = true
	cs.SubForms[index].Order = order + 1
}
