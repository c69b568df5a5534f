package session

import (
	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/engine/catalog"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rank"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

// dispatch runs one action against c through the engine
func (o *orchestrator) dispatch(c *engine.Character, a *Action) error {
	e := o.engine
	switch a.Type {
	case ActionSelectForm:
		form, err := catalog.FindForm(a.Form)
		if err != nil {
			return err
		}
		return e.SelectForm(c, form.ID)
	case ActionRandomForm:
		return e.RandomForm(c)
	case ActionSelectOption:
		return e.SelectOption(c, a.Index)
	case ActionResolveSubForm:
		return e.ResolveSubForm(c, a.Index)

	case ActionRollAbilities:
		return e.RollAbilities(c)
	case ActionRaiseAbility:
		ab, err := catalog.ParseAbility(a.Ability)
		if err != nil {
			return err
		}
		return e.RaiseAbility(c, ab)

	case ActionRollPowerClasses:
		return e.RollPowerClasses(c)
	case ActionBuyPower:
		return e.BuyPower(c)
	case ActionRemovePowerClass:
		return e.RemovePowerClass(c, a.Index)
	case ActionRollPower:
		return e.RollPower(c, a.Index)
	case ActionAddPower:
		return e.AddPower(c, &engine.AddPowerInput{
			Bonus:       a.Bonus,
			Options:     a.Options,
			Biophysical: a.Biophysical,
		})
	case ActionRemovePower:
		return e.RemovePower(c, a.Index)
	case ActionGenerateWeakness:
		return e.GenerateWeakness(c)

	case ActionRollTalentClasses:
		return e.RollTalentClasses(c)
	case ActionBuyTalent:
		return e.BuyTalent(c)
	case ActionRemoveTalentClass:
		return e.RemoveTalentClass(c, a.Index)
	case ActionRollTalent:
		return e.RollTalent(c, a.Index)
	case ActionAddTalent:
		return e.AddTalent(c, a.Talent)
	case ActionRemoveTalent:
		return e.RemoveTalent(c, a.Index)

	case ActionRollContacts:
		return e.RollContacts(c)
	case ActionBuyContact:
		return e.BuyContact(c)
	case ActionAddContact:
		return e.AddContact(c, &engine.AddContactInput{Class: a.Class, Contact: a.Contact})
	case ActionRemoveContact:
		return e.RemoveContact(c, a.Index)

	case ActionSetScoringMode:
		if a.ScoringMode == "" {
			return errors.InvalidArgument("scoring mode is required")
		}
		mode, err := rank.ParseMode(a.ScoringMode)
		if err != nil {
			return err
		}
		return e.SetScoringMode(c, mode)
	case ActionSetProfile:
		if a.Profile == nil {
			return errors.InvalidArgument("profile is required")
		}
		return e.SetProfile(c, *a.Profile)

	default:
		return errors.InvalidArgumentf("unknown action %q", a.Type)
	}
}
