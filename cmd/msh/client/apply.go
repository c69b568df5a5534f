package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/msh-chargen/internal/handlers/generator/v1alpha1"
)

var (
	actionForm        string
	actionIndex       int
	actionAbility     string
	actionTalent      string
	actionBonus       []string
	actionOptions     []string
	actionBiophysical string
	actionClass       string
	actionContact     string
	actionScoring     string
	actionConfirm     bool

	profileName     string
	profileIdentity string
	profileSecret   bool
	profilePublic   bool
	profileSex      string
	profileAge      string
	profileGroup    string
	profileBase     string
)

var applyCmd = &cobra.Command{
	Use:   "apply <action>",
	Short: "Apply one action to a session",
	Long: `Apply one action such as select_form, roll_abilities, buy_power or add_contact.
Destructive remove_* actions are ignored unless --confirm is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	requireSession(applyCmd)
	f := applyCmd.Flags()
	f.StringVar(&actionForm, "form", "", "Physical form ID or name (select_form)")
	f.IntVar(&actionIndex, "index", 0, "Option, sub-form, class or item index")
	f.StringVar(&actionAbility, "ability", "", "Primary ability (raise_ability)")
	f.StringVar(&actionTalent, "talent", "", "Talent name (add_talent)")
	f.StringSliceVar(&actionBonus, "bonus", nil, "Bonus powers (add_power)")
	f.StringSliceVar(&actionOptions, "options", nil, "Option powers (add_power)")
	f.StringVar(&actionBiophysical, "biophysical", "", "Biophysical Control option (add_power)")
	f.StringVar(&actionClass, "class", "", "Contact class (add_contact)")
	f.StringVar(&actionContact, "contact", "", "Contact name (add_contact)")
	f.StringVar(&actionScoring, "scoring", "", "Scoring mode (set_scoring_mode)")
	f.BoolVar(&actionConfirm, "confirm", false, "Confirm a destructive action")

	f.StringVar(&profileName, "name", "", "Name (set_profile)")
	f.StringVar(&profileIdentity, "identity", "", "Identity (set_profile)")
	f.BoolVar(&profileSecret, "secret", false, "Secret identity (set_profile)")
	f.BoolVar(&profilePublic, "public", false, "Public identity (set_profile)")
	f.StringVar(&profileSex, "sex", "", "Sex (set_profile)")
	f.StringVar(&profileAge, "age", "", "Age (set_profile)")
	f.StringVar(&profileGroup, "group", "", "Group affiliation (set_profile)")
	f.StringVar(&profileBase, "base", "", "Base of operations (set_profile)")
}

func runApply(cmd *cobra.Command, args []string) error {
	action := map[string]interface{}{
		"type":         args[0],
		"form":         actionForm,
		"index":        actionIndex,
		"ability":      actionAbility,
		"talent":       actionTalent,
		"bonus":        toList(actionBonus),
		"options":      toList(actionOptions),
		"biophysical":  actionBiophysical,
		"class":        actionClass,
		"contact":      actionContact,
		"scoring_mode": actionScoring,
		"confirmed":    actionConfirm,
	}
	if args[0] == "set_profile" {
		action["profile"] = map[string]interface{}{
			"name":     profileName,
			"identity": profileIdentity,
			"secret":   profileSecret,
			"public":   profilePublic,
			"sex":      profileSex,
			"age":      profileAge,
			"group":    profileGroup,
			"base":     profileBase,
		}
	}

	resp, err := call(v1alpha1.MethodApply, map[string]interface{}{
		"session_id": sessionID,
		"action":     action,
	})
	if err != nil {
		return err
	}
	return printJSON(cmd, resp)
}

func toList(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
