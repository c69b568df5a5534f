package engine

import (
	"github.com/KirkDiggler/msh-chargen/internal/engine/catalog"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rank"
)

// NoneSelected marks an unset option or rank override
const NoneSelected = -1

// Character is the aggregate being generated. It holds only rolled and
// chosen state; scores, Health and Karma are derived from ranks and the
// scoring mode when read.
type Character struct {
	Profile     Profile      `json:"profile"`
	ScoringMode rank.Mode    `json:"scoring_mode"`
	Form        *FormState   `json:"form,omitempty"`
	Origin      string       `json:"origin,omitempty"`
	Bonus       Accumulators `json:"bonus"`
	Effects     EffectTexts  `json:"effects"`

	// SeededContacts are contacts granted by form notes
	SeededContacts []string `json:"seeded_contacts,omitempty"`

	Abilities         map[catalog.Ability]*AbilityScore `json:"abilities,omitempty"`
	OriginalResources int                               `json:"original_resources"`
	BonusesSpent      int                               `json:"bonuses_spent"`

	Powers   PowerState   `json:"powers"`
	Weakness string       `json:"weakness,omitempty"`
	Talents  TalentState  `json:"talents"`
	Contacts ContactState `json:"contacts"`
}

// Profile is the free-text header of the sheet
type Profile struct {
	Name     string `json:"name,omitempty"`
	Identity string `json:"identity,omitempty"`
	Secret   bool   `json:"secret,omitempty"`
	Public   bool   `json:"public,omitempty"`
	Sex      string `json:"sex,omitempty"`
	Age      string `json:"age,omitempty"`
	Group    string `json:"group,omitempty"`
	Base     string `json:"base,omitempty"`
}

// FormState is the selected physical form and its pending choices
type FormState struct {
	ID int `json:"id"`
	// Table is the resolved ability table, 0 while undecided
	Table    int            `json:"table"`
	Option   int            `json:"option"`
	Compound *CompoundState `json:"compound,omitempty"`
}

// CompoundState tracks the sub-forms of a Compound or Changeling
type CompoundState struct {
	SubForms []SubForm `json:"sub_forms"`
	// Pending is the sub-form awaiting an option choice
	Pending int `json:"pending"`
}

// SubForm is one rolled aspect of a composite form
type SubForm struct {
	ID       int  `json:"id"`
	Option   int  `json:"option"`
	Resolved bool `json:"resolved"`
	// Order is the position the sub-form was resolved in, from 1
	Order int `json:"order,omitempty"`
}

// Accumulators collect form effect deltas
type Accumulators struct {
	Abilities        map[catalog.Ability]int `json:"abilities,omitempty"`
	AbilityBonus     int                     `json:"ability_bonus"`
	HealthMultiplier int                     `json:"health_multiplier"`
	PowerBonus       int                     `json:"power_bonus"`
	ForcedResources  int                     `json:"forced_resources"`
	ForcedPopularity int                     `json:"forced_popularity"`
	InitialContacts  int                     `json:"initial_contacts"`
	AnimalDetection  bool                    `json:"animal_detection,omitempty"`
	EnergyForm       bool                    `json:"energy_form,omitempty"`
	DeityTravel      bool                    `json:"deity_travel,omitempty"`
	WingsTravel      bool                    `json:"wings_travel,omitempty"`
}

// EffectTexts are the sheet lines produced by form effects
type EffectTexts struct {
	Bonuses    []string `json:"bonuses,omitempty"`
	Penalties  []string `json:"penalties,omitempty"`
	Notes      []string `json:"notes,omitempty"`
	Weaknesses []string `json:"weaknesses,omitempty"`
}

// AbilityScore is one rolled ability
type AbilityScore struct {
	Roll      int `json:"roll"`
	TableRank int `json:"table_rank"`
	Bonus     int `json:"bonus"`
	Rank      int `json:"rank"`
	Raised    int `json:"raised,omitempty"`
}

// Budget is a slot allowance. Min starts at the rolled minimum and grows
// with purchases; Used counts consumed slot weight.
type Budget struct {
	Min       int `json:"min"`
	Max       int `json:"max"`
	Used      int `json:"used"`
	Purchased int `json:"purchased"`
}

// PendingClass is a rolled class awaiting an item
type PendingClass struct {
	Class     string `json:"class"`
	Purchased bool   `json:"purchased,omitempty"`
}

// PowerState is the Powers phase
type PowerState struct {
	Rolled   bool           `json:"rolled"`
	Budget   Budget         `json:"budget"`
	Pending  []PendingClass `json:"pending,omitempty"`
	Current  *RolledPower   `json:"current,omitempty"`
	Acquired []Power        `json:"acquired,omitempty"`
	// AboveRemarkable is set once any power is ranked above Remarkable
	AboveRemarkable bool `json:"above_remarkable,omitempty"`
}

// RolledPower is a power drawn from a pending class, not yet added
type RolledPower struct {
	ClassIndex int      `json:"class_index"`
	Class      string   `json:"class"`
	Name       string   `json:"name"`
	Bonus      []string `json:"bonus,omitempty"`
	Options    []string `json:"options,omitempty"`
}

// Power is an acquired power. Display text is rendered from these fields
// so a scoring mode change never loses information.
type Power struct {
	Name     string `json:"name"`
	Rank     int    `json:"rank"`
	Emission string `json:"emission,omitempty"`
	Option   string `json:"option,omitempty"`
	Locked   bool   `json:"locked,omitempty"`
}

// TalentState is the Talents phase
type TalentState struct {
	Rolled   bool           `json:"rolled"`
	Budget   Budget         `json:"budget"`
	Pending  []PendingClass `json:"pending,omitempty"`
	Current  *RolledTalent  `json:"current,omitempty"`
	Acquired []string       `json:"acquired,omitempty"`
}

// RolledTalent offers the talents of one class roll
type RolledTalent struct {
	ClassIndex int      `json:"class_index"`
	Class      string   `json:"class"`
	Choices    []string `json:"choices"`
}

// ContactState is the Contacts phase
type ContactState struct {
	Rolled bool   `json:"rolled"`
	Budget Budget `json:"budget"`
	// ClassListDisabled blocks adding contacts until one is bought
	ClassListDisabled bool      `json:"class_list_disabled,omitempty"`
	Items             []Contact `json:"items,omitempty"`
}

// Contact is one contact entry
type Contact struct {
	Name   string `json:"name"`
	Class  string `json:"class,omitempty"`
	Locked bool   `json:"locked,omitempty"`
}

// NewCharacter returns an empty character
func NewCharacter(mode rank.Mode) *Character {
	return &Character{
		ScoringMode: mode,
		Bonus:       newAccumulators(),
	}
}

func newAccumulators() Accumulators {
	return Accumulators{
		Abilities:        map[catalog.Ability]int{},
		HealthMultiplier: 1,
		ForcedResources:  NoneSelected,
		ForcedPopularity: NoneSelected,
		InitialContacts:  NoneSelected,
	}
}

// Clone returns a deep copy
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.Effects = EffectTexts{
		Bonuses:    cloneSlice(c.Effects.Bonuses),
		Penalties:  cloneSlice(c.Effects.Penalties),
		Notes:      cloneSlice(c.Effects.Notes),
		Weaknesses: cloneSlice(c.Effects.Weaknesses),
	}
	out.SeededContacts = cloneSlice(c.SeededContacts)
	if c.Form != nil {
		f := *c.Form
		if c.Form.Compound != nil {
			cs := *c.Form.Compound
			cs.SubForms = cloneSlice(c.Form.Compound.SubForms)
			f.Compound = &cs
		}
		out.Form = &f
	}
	if c.Bonus.Abilities != nil {
		out.Bonus.Abilities = make(map[catalog.Ability]int, len(c.Bonus.Abilities))
		for k, v := range c.Bonus.Abilities {
			out.Bonus.Abilities[k] = v
		}
	}
	if c.Abilities != nil {
		out.Abilities = make(map[catalog.Ability]*AbilityScore, len(c.Abilities))
		for k, v := range c.Abilities {
			a := *v
			out.Abilities[k] = &a
		}
	}

	out.Powers.Pending = cloneSlice(c.Powers.Pending)
	out.Powers.Acquired = cloneSlice(c.Powers.Acquired)
	if c.Powers.Current != nil {
		p := *c.Powers.Current
		p.Bonus = cloneSlice(p.Bonus)
		p.Options = cloneSlice(p.Options)
		out.Powers.Current = &p
	}
	out.Talents.Pending = cloneSlice(c.Talents.Pending)
	out.Talents.Acquired = cloneSlice(c.Talents.Acquired)
	if c.Talents.Current != nil {
		t := *c.Talents.Current
		t.Choices = cloneSlice(t.Choices)
		out.Talents.Current = &t
	}
	out.Contacts.Items = cloneSlice(c.Contacts.Items)
	return &out
}

// cloneSlice copies in, keeping nil and empty distinct
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	return append(make([]T, 0, len(in)), in...)
}

// Input types for operations that take more than one argument

// AddPowerInput selects the bonus and option powers to take with the
// rolled power. Biophysical names the Biophysical Control option when the
// power or a chosen option is Biophysical Control.
type AddPowerInput struct {
	Bonus       []string
	Options     []string
	Biophysical string
}

// AddContactInput picks a contact from a class list
type AddContactInput struct {
	Class   string
	Contact string
}
