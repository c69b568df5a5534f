package engine

// Phase is the stage of generation a character is in
type Phase string

// Phases in generation order
const (
	PhaseForm      Phase = "physical_form"
	PhaseAbilities Phase = "abilities"
	PhasePowers    Phase = "powers"
	PhaseTalents   Phase = "talents"
	PhaseContacts  Phase = "contacts"
	PhaseComplete  Phase = "complete"
)

// Phase derives the current phase from state
func (c *Character) Phase() Phase {
	switch {
	case c.Form == nil || c.FormPending():
		return PhaseForm
	case !c.Powers.Rolled:
		return PhaseAbilities
	case c.Weakness == "":
		return PhasePowers
	case !c.Contacts.Rolled:
		return PhaseTalents
	case len(c.Contacts.Items) < c.Contacts.Budget.Min:
		return PhaseContacts
	default:
		return PhaseComplete
	}
}

// Gates reports which actions are open. An action whose gate is closed
// fails with FailedPrecondition.
type Gates struct {
	SelectOption      bool `json:"select_option"`
	ResolveSubForm    bool `json:"resolve_sub_form"`
	RollAbilities     bool `json:"roll_abilities"`
	RaiseAbility      bool `json:"raise_ability"`
	RollPowerClasses  bool `json:"roll_power_classes"`
	BuyPower          bool `json:"buy_power"`
	RemovePowerClass  bool `json:"remove_power_class"`
	RollPower         bool `json:"roll_power"`
	AddPower          bool `json:"add_power"`
	RemovePower       bool `json:"remove_power"`
	GenerateWeakness  bool `json:"generate_weakness"`
	RollTalentClasses bool `json:"roll_talent_classes"`
	BuyTalent         bool `json:"buy_talent"`
	RemoveTalentClass bool `json:"remove_talent_class"`
	RollTalent        bool `json:"roll_talent"`
	AddTalent         bool `json:"add_talent"`
	RemoveTalent      bool `json:"remove_talent"`
	RollContacts      bool `json:"roll_contacts"`
	BuyContact        bool `json:"buy_contact"`
	AddContact        bool `json:"add_contact"`
	RemoveContact     bool `json:"remove_contact"`
}

// Gates computes the open actions
func (c *Character) Gates() Gates {
	var g Gates
	if c.Form == nil {
		return g
	}

	form := c.Form
	if cs := form.Compound; cs != nil {
		g.SelectOption = cs.Pending != NoneSelected
		if cs.Pending == NoneSelected {
			for _, sf := range cs.SubForms {
				if !sf.Resolved {
					g.ResolveSubForm = true
					break
				}
			}
		}
	} else {
		g.SelectOption = c.FormPending()
	}

	ready := !c.FormPending()
	g.RollAbilities = ready && !c.Powers.Rolled
	g.RaiseAbility = c.AbilitiesRolled() && c.Bonus.AbilityBonus > 0 && !c.Powers.Rolled
	g.RollPowerClasses = ready && c.AbilitiesRolled() && c.Bonus.AbilityBonus == 0 && c.Weakness == ""

	powersOpen := c.Powers.Rolled && c.Weakness == ""
	g.BuyPower = powersOpen
	g.RemovePowerClass = powersOpen && len(c.Powers.Pending) > 0
	g.RollPower = powersOpen && len(c.Powers.Pending) > 0
	g.AddPower = powersOpen && c.Powers.Current != nil
	g.RemovePower = powersOpen && hasUnlocked(c.Powers.Acquired)
	g.GenerateWeakness = powersOpen && len(c.Powers.Pending) == 0

	talentsOpen := c.Talents.Rolled && !c.Contacts.Rolled
	g.RollTalentClasses = c.Weakness != "" && !c.Contacts.Rolled
	g.BuyTalent = talentsOpen
	g.RemoveTalentClass = talentsOpen && len(c.Talents.Pending) > 0
	g.RollTalent = talentsOpen && len(c.Talents.Pending) > 0
	g.AddTalent = talentsOpen && c.Talents.Current != nil
	g.RemoveTalent = talentsOpen && len(c.Talents.Acquired) > 0

	g.RollContacts = c.Talents.Rolled && len(c.Talents.Pending) == 0
	g.BuyContact = c.Contacts.Rolled
	g.AddContact = c.Contacts.Rolled && !c.Contacts.ClassListDisabled &&
		len(c.Contacts.Items) < c.Contacts.Budget.Min
	g.RemoveContact = c.Contacts.Rolled && hasUnlockedContact(c.Contacts.Items)
	return g
}

func hasUnlocked(powers []Power) bool {
	for _, p := range powers {
		if !p.Locked {
			return true
		}
	}
	return false
}

func hasUnlockedContact(items []Contact) bool {
	for _, ct := range items {
		if !ct.Locked {
			return true
		}
	}
	return false
}
