package catalog

import (
	"github.com/KirkDiggler/msh-chargen/internal/engine/table"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

// TalentClassTable is the talent class roll
var TalentClassTable = table.MustThresholds("talent class", table.D100,
	[]int{21, 46, 66, 86, 91, 101},
	[]string{
		"Weapon Skills", "Fighting Skills", "Professional Skills", "Scientific Skills",
		"Mystical and Mental Skills", "Other Skills",
	},
)

// Talent tables are rolled on a d10. A result may offer several talents,
// any one of which fills the class.
var talentTables = map[string]*table.Table[[]string]{
	"Weapon Skills": table.MustThresholds("weapon skills", table.D10,
		[]int{3, 6, 7, 9, 10, 11},
		[][]string{
			{"Guns"}, {"Thrown Weapons"}, {"Bows"}, {"Blunt Weapons"}, {"Sharp Weapons"},
			{"Oriental Weapons", "Marksman*", "Weapons Master*", "Weapon Specialist*"},
		}),
	"Fighting Skills": table.MustThresholds("fighting skills", table.D10,
		[]int{2, 3, 4, 5, 6, 7, 8, 9, 11},
		[][]string{
			{"Martial Arts A"}, {"Martial Arts B"}, {"Martial Arts C"}, {"Martial Arts D"},
			{"Martial Arts E"}, {"Wrestling"}, {"Thrown Objects"}, {"Tumbling"}, {"Acrobatics"},
		}),
	"Professional Skills": table.MustThresholds("professional skills", table.D10,
		[]int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		[][]string{
			{"Medicine*"}, {"Law", "Law Enforcement"}, {"Pilot"}, {"Military"},
			{"Business/Finance"}, {"Journalism"}, {"Engineering"}, {"Crime"},
			{"Psychiatry"}, {"Detective/Espionage"},
		}),
	"Scientific Skills": table.MustThresholds("scientific skills", table.D10,
		[]int{3, 5, 7, 8, 9, 10, 11},
		[][]string{
			{"Chemistry"}, {"Biology"}, {"Geology"}, {"Genetics"}, {"Archeology"},
			{"Physics", "Computers"}, {"Electronics"},
		}),
	"Mystical and Mental Skills": table.MustThresholds("mystical and mental skills", table.D10,
		[]int{3, 6, 8, 10, 11},
		[][]string{
			{"Trance"}, {"Mesmerism and Hypnosis"}, {"Sleight of Hand"},
			{"Resist Domination", "Mystic Origin*"}, {"Occult Lore"},
		}),
	"Other Skills": table.MustThresholds("other skills", table.D10,
		[]int{3, 5, 7, 9, 11},
		[][]string{
			{"Artist"}, {"Languages"}, {"First Aid"}, {"Repair/Tinkering"},
			{"Trivia", "Performer", "Animal Training*", "Heir to Fortune*", "Student*", "Leadership*"},
		}),
}

// TalentTable returns the item table of a talent class
func TalentTable(class string) (*table.Table[[]string], error) {
	t, ok := talentTables[class]
	if !ok {
		return nil, errors.InvalidArgumentf("talent class %q does not exist", class)
	}
	return t, nil
}
