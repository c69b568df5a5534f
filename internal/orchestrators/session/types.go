package session

import (
	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/entities"
)

// ActionType names one engine action
type ActionType string

// Actions accepted by Apply
const (
	ActionSelectForm        ActionType = "select_form"
	ActionRandomForm        ActionType = "random_form"
	ActionSelectOption      ActionType = "select_option"
	ActionResolveSubForm    ActionType = "resolve_sub_form"
	ActionRollAbilities     ActionType = "roll_abilities"
	ActionRaiseAbility      ActionType = "raise_ability"
	ActionRollPowerClasses  ActionType = "roll_power_classes"
	ActionBuyPower          ActionType = "buy_power"
	ActionRemovePowerClass  ActionType = "remove_power_class"
	ActionRollPower         ActionType = "roll_power"
	ActionAddPower          ActionType = "add_power"
	ActionRemovePower       ActionType = "remove_power"
	ActionGenerateWeakness  ActionType = "generate_weakness"
	ActionRollTalentClasses ActionType = "roll_talent_classes"
	ActionBuyTalent         ActionType = "buy_talent"
	ActionRemoveTalentClass ActionType = "remove_talent_class"
	ActionRollTalent        ActionType = "roll_talent"
	ActionAddTalent         ActionType = "add_talent"
	ActionRemoveTalent      ActionType = "remove_talent"
	ActionRollContacts      ActionType = "roll_contacts"
	ActionBuyContact        ActionType = "buy_contact"
	ActionAddContact        ActionType = "add_contact"
	ActionRemoveContact     ActionType = "remove_contact"
	ActionSetScoringMode    ActionType = "set_scoring_mode"
	ActionSetProfile        ActionType = "set_profile"
)

// Destructive reports whether the action discards a choice and needs
// confirmation
func (t ActionType) Destructive() bool {
	switch t {
	case ActionRemovePower, ActionRemoveTalent, ActionRemoveContact,
		ActionRemovePowerClass, ActionRemoveTalentClass:
		return true
	default:
		return false
	}
}

// Action is one request against a session. Only the fields the action
// type reads are consulted.
type Action struct {
	Type ActionType `json:"type"`

	// Form is a form ID, name or unique name prefix for select_form
	Form string `json:"form,omitempty"`
	// Index is the option, sub-form, class or item index
	Index   int    `json:"index,omitempty"`
	Ability string `json:"ability,omitempty"`
	Talent  string `json:"talent,omitempty"`

	Bonus       []string `json:"bonus,omitempty"`
	Options     []string `json:"options,omitempty"`
	Biophysical string   `json:"biophysical,omitempty"`

	Class   string `json:"class,omitempty"`
	Contact string `json:"contact,omitempty"`

	ScoringMode string          `json:"scoring_mode,omitempty"`
	Profile     *engine.Profile `json:"profile,omitempty"`

	Confirmed bool `json:"confirmed,omitempty"`
}

// AbilityView is one ability as shown to a client
type AbilityView struct {
	Name  string `json:"name"`
	Rank  string `json:"rank"`
	Score int    `json:"score"`
}

// View is a session with everything a client derives from it
type View struct {
	Session   *entities.Session `json:"session"`
	Phase     engine.Phase      `json:"phase"`
	Gates     engine.Gates      `json:"gates"`
	Abilities []AbilityView     `json:"abilities,omitempty"`
	Health    int               `json:"health"`
	Karma     int               `json:"karma"`
	Powers    []string          `json:"powers,omitempty"`
}

// CreateSessionInput defines the request for starting a session
type CreateSessionInput struct {
	// ScoringMode overrides the configured default when set
	ScoringMode string
}

// CreateSessionOutput defines the response for starting a session
type CreateSessionOutput struct {
	View *View
}

// GetSessionInput defines the request for reading a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput defines the response for reading a session
type GetSessionOutput struct {
	View *View
}

// ApplyInput defines the request for applying an action
type ApplyInput struct {
	SessionID string
	Action    Action
}

// ApplyOutput defines the response for applying an action
type ApplyOutput struct {
	View *View
	// Applied is false when a destructive action was not confirmed
	Applied bool
}

// ExportInput defines the request for exporting a sheet
type ExportInput struct {
	SessionID string
}

// ExportOutput defines the response for exporting a sheet
type ExportOutput struct {
	Text string
}

// DeleteSessionInput defines the request for deleting a session
type DeleteSessionInput struct {
	SessionID string
}

// DeleteSessionOutput defines the response for deleting a session
type DeleteSessionOutput struct{}
