package catalog

// Field names one bonus accumulator on the character being built
type Field int

// Accumulators a form effect can touch
const (
	FieldFighting Field = iota
	FieldAgility
	FieldStrength
	FieldEndurance
	FieldReason
	FieldIntuition
	FieldPsyche
	FieldResources
	FieldPopularity
	FieldAbilityBonus
	FieldHealthMultiplier
	FieldPowerBonus
	FieldForcedResources
	FieldForcedPopularity
	FieldInitialContacts
	FieldAnimalDetection
	FieldEnergyForm
	FieldDeityTravelPower
	FieldWingsTravelPower
)

// Delta is a typed update to one accumulator
type Delta struct {
	Field Field
	Value int
}

// Section groups effect text on the character sheet
type Section int

// Sheet sections
const (
	SectionBonuses Section = iota
	SectionPenalties
	SectionNotes
	SectionWeaknesses
)

// Slot is one effect category of a form. Slots are rolled in declaration
// order when a form is resolved.
type Slot int

// Effect slots
const (
	SlotBonusA Slot = iota
	SlotBonusB
	SlotPenaltyA
	SlotNoteA
	SlotNoteB
	SlotNoteC
	SlotWeaknessA
	SlotBonusC
	SlotPenaltyB
	SlotWeaknessB
)

// Slots lists every slot in roll order
var Slots = []Slot{
	SlotBonusA, SlotBonusB, SlotPenaltyA, SlotNoteA, SlotNoteB, SlotNoteC,
	SlotWeaknessA, SlotBonusC, SlotPenaltyB, SlotWeaknessB,
}

// AlwaysRolled reports whether the slot consumes a chance roll even when
// the form has no record for it. Only the trailing single-form slots do.
func (s Slot) AlwaysRolled() bool {
	return s >= SlotBonusC
}

// Section returns where the slot's text is printed
func (s Slot) Section() Section {
	switch s {
	case SlotBonusA, SlotBonusB, SlotBonusC:
		return SectionBonuses
	case SlotPenaltyA, SlotPenaltyB:
		return SectionPenalties
	case SlotWeaknessA, SlotWeaknessB:
		return SectionWeaknesses
	default:
		return SectionNotes
	}
}

// Effect is one record: sheet text plus accumulator deltas. A non-empty
// Contact is pre-seeded into the contact list when the form grants initial
// contacts. CoinFlip effects roll a second time and print their text only
// on an even result.
type Effect struct {
	Text     string
	Deltas   []Delta
	Contact  string
	CoinFlip bool
}

// OptionEffect is an effect attached to an option choice. Chanced effects
// need a successful chance roll; the rest always apply.
type OptionEffect struct {
	Section Section
	Effect  Effect
	Chanced bool
}
