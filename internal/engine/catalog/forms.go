package catalog

import (
	"strings"

	"github.com/KirkDiggler/msh-chargen/internal/engine/table"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

// Form IDs referenced by the rules
const (
	FormNormalHuman           = 0
	FormSurgicalComposite     = 6
	FormExtraParts            = 10
	FormDemihumanAvian        = 16
	FormMechanicallyAugmented = 24
	FormRobotMetamorphic      = 27
	FormAngelDemon            = 29
	FormDeity                 = 30
	FormAnimal                = 31
	FormEnergy                = 37
	FormCompound              = 40
	FormChangeling            = 41

	// ChangelingAbilityTable is used by a Changeling whatever its aspects
	ChangelingAbilityTable = 5
)

// Option is one sub-variant choice of a form
type Option struct {
	Name    string
	Table   int
	Effects []OptionEffect
}

// Form is one physical form
type Form struct {
	ID      int
	Name    string
	Table   int
	Options []Option
	Effects map[Slot]Effect
}

// Composite reports whether the form is built from rolled sub-forms
func (f *Form) Composite() bool {
	return f.ID == FormCompound || f.ID == FormChangeling
}

// CompoundEligible reports whether the form may appear inside a composite
func (f *Form) CompoundEligible() bool {
	return f.ID != FormRobotMetamorphic && !f.Composite()
}

// OptionTable reports whether the ability table comes from the option
func (f *Form) OptionTable() bool {
	for _, o := range f.Options {
		if o.Table > 0 {
			return true
		}
	}
	return false
}

var formNames = []struct {
	name  string
	table int
}{
	{"Normal Human", 2}, {"Mutant-Induced", 1}, {"Mutant-Random", 1},
	{"Mutant-Breed", 1}, {"Android", 4}, {"Humanoid Race", 5},
	{"Surgical Composite", 2}, {"Modified Human-Organic", 1},
	{"Modified Human-Muscular", 1}, {"Modified Human-Skeletal", 1},
	{"Modified Human-Extra Parts", 1}, {"Demihuman-Centaur", 5},
	{"Demihuman-Equiman", 3}, {"Demihuman-Faun", 2},
	{"Demihuman-Felinoid", 1}, {"Demihuman-Lupinoid", 4},
	{"Demihuman-Avian", 0},
	{"Demihuman-Chiropteran", 2}, {"Demihuman-Lamian", 3},
	{"Demihuman-Merhuman", 2}, {"Demihuman-Other", 3},
	{"Cyborg-Artificial limbs/organs", 4}, {"Cyborg-Exoskeleton", 4},
	{"Cyborg-Mechanical Body", 4}, {"Cyborg-Mechanically Augmented", 3},
	{"Robot-Human Shape", 4}, {"Robot-Usuform", 4}, {"Robot-Metamorphic", 4},
	{"Robot-Computer", 4}, {"Angel/Demon", 5}, {"Deity", 5},
	{"Animal", 0},
	{"Vegetable", 1}, {"Abnormal Chemistry", 2}, {"Mineral", 2},
	{"Gaseous", 5}, {"Liquid", 5}, {"Energy", 5}, {"Ethereal", 1},
	{"Undead", 1}, {"Compound", 0}, {"Changeling", ChangelingAbilityTable}, {"Collective Mass", 1},
}

func metamorphicOptions() []Option {
	opts := make([]Option, 0, 4)
	for shift := 0; shift < 4; shift++ {
		var deltas []Delta
		if shift > 0 {
			for _, f := range PrimaryFields {
				deltas = append(deltas, Delta{Field: f, Value: -shift})
			}
		}
		opts = append(opts, Option{
			Name:    []string{"2 forms", "3 forms", "4 forms", "5 forms"}[shift],
			Effects: []OptionEffect{{Section: SectionPenalties, Effect: Effect{Deltas: deltas}}},
		})
	}
	return opts
}

var formOptions = map[int][]Option{
	FormExtraParts: {
		{Name: "Extra arms raise Fighting +1CS", Effects: []OptionEffect{
			{Effect: Effect{Deltas: []Delta{{Field: FieldFighting, Value: 1}}}},
		}},
		{Name: "Duplicate organs doubles Health", Effects: []OptionEffect{
			{Effect: Effect{Deltas: []Delta{{Field: FieldHealthMultiplier, Value: 1}}}},
		}},
		{Name: "Tails give the hero +1 attack"},
		{Name: "Wings give the hero Flight", Effects: []OptionEffect{
			{Effect: Effect{Deltas: []Delta{{Field: FieldWingsTravelPower, Value: 1}}}},
		}},
		{Name: "Extra legs give +1 area movement"},
	},
	FormDemihumanAvian: {
		{Name: "Angelic", Table: 3, Effects: []OptionEffect{
			{Section: SectionBonuses, Chanced: true, Effect: Effect{
				Text: "Popularity +1CS; ", Deltas: []Delta{{Field: FieldPopularity, Value: 1}},
			}},
		}},
		{Name: "Harpy", Table: 2, Effects: []OptionEffect{
			{Section: SectionBonuses, Chanced: true, Effect: Effect{
				Text: "+1CS Fighting; ", Deltas: []Delta{{Field: FieldFighting, Value: 1}},
			}},
			{Section: SectionNotes, Chanced: true, Effect: Effect{
				Text: "Harpies possess arms that are modified to also serve as wings and feather-covered legs that end in bird Claws; ",
			}},
		}},
	},
	FormMechanicallyAugmented: {
		{Name: "Resources are Good", Effects: []OptionEffect{
			{Effect: Effect{Deltas: []Delta{{Field: FieldForcedResources, Value: 4}}}},
		}},
		{Name: "Resources are optionally rolled"},
	},
	FormRobotMetamorphic: metamorphicOptions(),
	FormAngelDemon: {
		{Name: "Angel", Effects: []OptionEffect{
			{Section: SectionBonuses, Chanced: true, Effect: Effect{
				Text: "Popularity +2CS; ", Deltas: []Delta{{Field: FieldPopularity, Value: 2}},
			}},
			{Section: SectionNotes, Chanced: true, Effect: Effect{
				Text: "Angels automatically possess a specific form of Artifact Creation that produces a magical sword that does Excellent damage; ",
			}},
		}},
		{Name: "Demon", Effects: []OptionEffect{
			{Section: SectionPenalties, Chanced: true, Effect: Effect{
				Text: "Popularity -2CS; ", Deltas: []Delta{{Field: FieldPopularity, Value: -2}},
			}},
			{Section: SectionNotes, Chanced: true, Effect: Effect{
				Text: "Demons automatically possess Good Fire Generation and Specific Invulnerability to Heat and Fire; ",
			}},
		}},
	},
	FormAnimal: {
		{Name: "Terrestrial Animal", Table: 1},
		{Name: "Extraterrestrial Animal", Table: 5},
	},
}

// PrimaryFields are the accumulators of the seven primary abilities
var PrimaryFields = []Field{
	FieldFighting, FieldAgility, FieldStrength, FieldEndurance,
	FieldReason, FieldIntuition, FieldPsyche,
}

// Forms is the full catalog in list order
var Forms = buildForms()

func buildForms() []*Form {
	forms := make([]*Form, len(formNames))
	for id, fn := range formNames {
		forms[id] = &Form{
			ID:      id,
			Name:    fn.name,
			Table:   fn.table,
			Options: formOptions[id],
			Effects: formEffects[id],
		}
	}
	return forms
}

// FormByID returns a form
func FormByID(id int) (*Form, error) {
	if id < 0 || id >= len(Forms) {
		return nil, errors.InvalidArgumentf("physical form %d does not exist", id)
	}
	return Forms[id], nil
}

// FormByName returns the form with exactly this name, ignoring case
func FormByName(name string) (*Form, bool) {
	for _, f := range Forms {
		if strings.EqualFold(f.Name, strings.TrimSpace(name)) {
			return f, true
		}
	}
	return nil, false
}

// FormTable is the random physical form roll. Surgical Composite and
// Demihuman-Other are only reachable by direct choice.
var FormTable = table.MustThresholds("physical form", table.D100,
	[]int{27, 31, 34, 36, 39, 47, 50, 52, 54, 58, 59, 60, 61, 63, 65, 67, 68, 69, 70, 73, 75,
		77, 80, 83, 85, 86, 87, 88, 89, 90, 91, 92, 93, 94, 95, 96, 97, 98, 99, 100, 101},
	[]int{0, 1, 2, 3, 4, 5, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 21, 22,
		23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42},
)

// OriginTable is the origin of power roll
var OriginTable = table.MustThresholds("origin", table.D100,
	[]int{11, 21, 31, 36, 51, 61, 66, 77, 88, 99, 101},
	[]string{
		"Natal", "Maturity", "Self-Achievement", "Endowment", "Technical Mishap",
		"Technical Procedure", "Creation", "Biological Exposure", "Chemical Exposure",
		"Energy Exposure", "Rebirth",
	},
)

// CompoundCountTable is the number of sub-forms in a composite
var CompoundCountTable = table.Must("compound count", table.D100,
	table.Entry[int]{Below: 51, Outcome: 2},
	table.Entry[int]{Below: 76, Outcome: 3},
	table.Entry[int]{Below: 96, Outcome: 4},
	table.Entry[int]{Below: 101, Outcome: 5},
)
