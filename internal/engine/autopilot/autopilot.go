// Package autopilot drives a complete generation with random choices.
package autopilot

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/engine/catalog"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

// maxSteps bounds the choice loops of one run
const maxSteps = 200

// Options configures a run
type Options struct {
	// Roller makes the choices a player would make
	Roller dice.Roller
	// Form selects the physical form by ID, name or prefix; empty rolls it
	Form string
}

// Validate checks the options
func (o *Options) Validate() error {
	if o.Roller == nil {
		return errors.InvalidArgument("roller is required")
	}
	return nil
}

type pilot struct {
	eng    engine.Engine
	c      *engine.Character
	roller dice.Roller
}

// Run takes c from an empty character to a completed one
func Run(eng engine.Engine, c *engine.Character, opts *Options) error {
	if eng == nil {
		return errors.InvalidArgument("engine is required")
	}
	if c == nil {
		return errors.InvalidArgument("character is required")
	}
	if opts == nil {
		return errors.InvalidArgument("options are required")
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	p := &pilot{eng: eng, c: c, roller: opts.Roller}
	steps := []func() error{
		func() error { return p.form(opts.Form) },
		p.abilities,
		p.powers,
		func() error { return eng.GenerateWeakness(c) },
		p.talents,
		p.contacts,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// pick returns a choice in 0..n-1
func (p *pilot) pick(n int) (int, error) {
	if n <= 1 {
		return 0, nil
	}
	v, err := p.roller.Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "failed to make a choice")
	}
	return v - 1, nil
}

func (p *pilot) form(query string) error {
	if query == "" {
		if err := p.eng.RandomForm(p.c); err != nil {
			return err
		}
	} else {
		form, err := catalog.FindForm(query)
		if err != nil {
			return err
		}
		if err := p.eng.SelectForm(p.c, form.ID); err != nil {
			return err
		}
	}

	for i := 0; i < maxSteps; i++ {
		g := p.c.Gates()
		switch {
		case g.SelectOption:
			n, err := p.optionCount()
			if err != nil {
				return err
			}
			choice, err := p.pick(n)
			if err != nil {
				return err
			}
			if err := p.eng.SelectOption(p.c, choice); err != nil {
				return err
			}
		case g.ResolveSubForm:
			if err := p.eng.ResolveSubForm(p.c, p.unresolved()); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return errors.Internal("physical form did not settle")
}

func (p *pilot) optionCount() (int, error) {
	id := p.c.Form.ID
	if cs := p.c.Form.Compound; cs != nil && cs.Pending != engine.NoneSelected {
		id = cs.SubForms[cs.Pending].ID
	}
	form, err := catalog.FormByID(id)
	if err != nil {
		return 0, err
	}
	return len(form.Options), nil
}

func (p *pilot) unresolved() int {
	for i, sf := range p.c.Form.Compound.SubForms {
		if !sf.Resolved {
			return i
		}
	}
	return engine.NoneSelected
}

func (p *pilot) abilities() error {
	if err := p.eng.RollAbilities(p.c); err != nil {
		return err
	}
	var primaries []catalog.Ability
	for _, ab := range catalog.AbilityOrder {
		if ab.Primary() {
			primaries = append(primaries, ab)
		}
	}
	for p.c.Gates().RaiseAbility {
		i, err := p.pick(len(primaries))
		if err != nil {
			return err
		}
		if err := p.eng.RaiseAbility(p.c, primaries[i]); err != nil {
			return err
		}
	}
	return nil
}

func (p *pilot) powers() error {
	if err := p.eng.RollPowerClasses(p.c); err != nil {
		return err
	}
	for i := 0; i < maxSteps && len(p.c.Powers.Pending) > 0; i++ {
		if err := p.eng.RollPower(p.c, 0); err != nil {
			return err
		}
		input, err := p.powerInput(p.c.Powers.Current)
		if err != nil {
			return err
		}
		err = p.eng.AddPower(p.c, input)
		if errors.IsNotEnoughSlots(err) {
			err = p.eng.RemovePowerClass(p.c, 0)
		}
		if err != nil {
			return err
		}
	}
	if len(p.c.Powers.Pending) > 0 {
		return errors.Internal("power classes did not settle")
	}
	return nil
}

// powerInput takes one bonus power when any are offered, each option on a
// coin flip
func (p *pilot) powerInput(cur *engine.RolledPower) (*engine.AddPowerInput, error) {
	input := &engine.AddPowerInput{Biophysical: catalog.BiophysicalRandom}
	if len(cur.Bonus) > 0 {
		i, err := p.pick(len(cur.Bonus))
		if err != nil {
			return nil, err
		}
		input.Bonus = []string{cur.Bonus[i]}
	}
	for _, o := range cur.Options {
		flip, err := p.pick(2)
		if err != nil {
			return nil, err
		}
		if flip == 1 {
			input.Options = append(input.Options, o)
		}
	}
	return input, nil
}

func (p *pilot) talents() error {
	if err := p.eng.RollTalentClasses(p.c); err != nil {
		return err
	}
	for i := 0; i < maxSteps && len(p.c.Talents.Pending) > 0; i++ {
		if err := p.eng.RollTalent(p.c, 0); err != nil {
			return err
		}
		choices := p.c.Talents.Current.Choices
		k, err := p.pick(len(choices))
		if err != nil {
			return err
		}
		err = p.eng.AddTalent(p.c, choices[k])
		if errors.IsNotEnoughSlots(err) {
			err = p.eng.RemoveTalentClass(p.c, 0)
		}
		if err != nil {
			return err
		}
	}
	if len(p.c.Talents.Pending) > 0 {
		return errors.Internal("talent classes did not settle")
	}
	return nil
}

func (p *pilot) contacts() error {
	if err := p.eng.RollContacts(p.c); err != nil {
		return err
	}
	for i := 0; i < maxSteps && p.c.Gates().AddContact; i++ {
		k, err := p.pick(len(catalog.ContactClasses))
		if err != nil {
			return err
		}
		class := catalog.ContactClasses[k]
		names, err := catalog.Contacts(class)
		if err != nil {
			return err
		}
		free := names[:0]
		for _, n := range names {
			if !hasContact(p.c, n) {
				free = append(free, n)
			}
		}
		if len(free) == 0 {
			continue
		}
		k, err = p.pick(len(free))
		if err != nil {
			return err
		}
		if err := p.eng.AddContact(p.c, &engine.AddContactInput{Class: class, Contact: free[k]}); err != nil {
			return err
		}
	}
	return nil
}

func hasContact(c *engine.Character, name string) bool {
	for _, ct := range c.Contacts.Items {
		if ct.Name == name {
			return true
		}
	}
	return false
}
