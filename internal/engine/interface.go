// Package engine holds the character aggregate and the rules contract of
// the generator. The rules are implemented in engine/rpgtoolkit on top of
// the toolkit dice roller.
package engine

import (
	"github.com/KirkDiggler/msh-chargen/internal/engine/catalog"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rank"
)

// Engine applies generation rules to a Character. Every method either
// succeeds or returns an error with the character unchanged; dice already
// rolled for a rejected action are not replayed.
type Engine interface {
	// Physical form
	SelectForm(c *Character, formID int) error
	RandomForm(c *Character) error
	SelectOption(c *Character, option int) error
	ResolveSubForm(c *Character, index int) error

	// Abilities
	RollAbilities(c *Character) error
	RaiseAbility(c *Character, ability catalog.Ability) error

	// Powers and weakness
	RollPowerClasses(c *Character) error
	BuyPower(c *Character) error
	RemovePowerClass(c *Character, index int) error
	RollPower(c *Character, classIndex int) error
	AddPower(c *Character, input *AddPowerInput) error
	RemovePower(c *Character, index int) error
	GenerateWeakness(c *Character) error

	// Talents
	RollTalentClasses(c *Character) error
	BuyTalent(c *Character) error
	RemoveTalentClass(c *Character, index int) error
	RollTalent(c *Character, classIndex int) error
	AddTalent(c *Character, talent string) error
	RemoveTalent(c *Character, index int) error

	// Contacts
	RollContacts(c *Character) error
	BuyContact(c *Character) error
	AddContact(c *Character, input *AddContactInput) error
	RemoveContact(c *Character, index int) error

	// Presentation
	SetScoringMode(c *Character, mode rank.Mode) error
	SetProfile(c *Character, profile Profile) error
}
