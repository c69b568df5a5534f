package catalog

import "github.com/KirkDiggler/msh-chargen/internal/errors"

// Contact classes in display order
var ContactClasses = []string{"Professional", "Scientific", "Political", "Mystic"}

var contactLists = map[string][]string{
	"Professional": {
		"Lawyer", "Doctor", "Police Detective", "Newspaper Reporter", "Business Executive",
		"Private Investigator", "Test Pilot", "Military Officer", "Street Informant",
	},
	"Scientific": {
		"Research Scientist", "University Professor", "Engineer", "Computer Specialist",
		"Medical Researcher", "Government Laboratory", "Inventor",
	},
	"Political": {
		"City Council Member", "Senator", "Diplomat", "Mayor's Office", "Federal Agent",
		"Foreign Dignitary", "Intelligence Agency",
	},
	"Mystic": {
		"Sorcerer", "Occult Scholar", "Psychic", "Mystic Order", "Monastery",
		"Spirit Guide",
	},
}

// Contacts returns the static list for a contact class
func Contacts(class string) ([]string, error) {
	list, ok := contactLists[class]
	if !ok {
		return nil, errors.InvalidArgumentf("contact class %q does not exist", class)
	}
	return append([]string(nil), list...), nil
}

// ContactInClass reports list membership
func ContactInClass(class, contact string) bool {
	for _, c := range contactLists[class] {
		if c == contact {
			return true
		}
	}
	return false
}
