package catalog

import (
	"strings"

	"github.com/KirkDiggler/msh-chargen/internal/engine/table"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

// Names the rules refer to directly
const (
	ClassEnergyControl  = "Energy Control"
	ClassEnergyEmission = "Energy Emission"
	ClassMagical        = "Magical"
	ClassDetection      = "Detection"
	ClassTravel         = "Travel"

	BiophysicalControl = "Biophysical Control*"
	WingedFlight       = "Winged Flight"
	BiophysicalRandom  = "Random"
)

// Power is one entry of a power class list. Bonus powers come with the
// power and one must be taken; option powers may be added alongside.
type Power struct {
	Name    string
	Bonus   []string
	Options []string
}

// Weight is the slot cost of a power, talent or contact by name. Names
// marked with an asterisk cost two.
func Weight(name string) int {
	if strings.Contains(name, "*") {
		return 2
	}
	return 1
}

// ClassGrant reports whether an option power name stands for a whole power
// class, returning the class to add to the pending list
func ClassGrant(option string) (string, bool) {
	switch option {
	case ClassEnergyControl, ClassEnergyEmission:
		return option, true
	case "Magical Power":
		return ClassMagical, true
	}
	return "", false
}

// PowerClass is a named power list with its roll table
type PowerClass struct {
	Name   string
	Powers *table.Table[Power]
}

// Find returns the power with this exact name
func (c *PowerClass) Find(name string) (Power, bool) {
	for _, p := range c.Powers.Outcomes() {
		if p.Name == name {
			return p, true
		}
	}
	return Power{}, false
}

// Contains reports whether name is in the class list
func (c *PowerClass) Contains(name string) bool {
	_, ok := c.Find(name)
	return ok
}

func powerClass(name string, thresholds []int, powers []Power) *PowerClass {
	return &PowerClass{
		Name:   name,
		Powers: table.MustThresholds(strings.ToLower(name)+" powers", table.D100, thresholds, powers),
	}
}

func plain(names ...string) []Power {
	out := make([]Power, len(names))
	for i, n := range names {
		out[i] = Power{Name: n}
	}
	return out
}

func with(powers []Power, name string, bonus, options []string) []Power {
	for i := range powers {
		if powers[i].Name == name {
			powers[i].Bonus = bonus
			powers[i].Options = options
			return powers
		}
	}
	panic("power " + name + " not in list")
}

var powerClasses = []*PowerClass{
	powerClass("Defensive",
		[]int{16, 21, 24, 31, 36, 41, 49, 51, 54, 66, 71, 78, 83, 88, 95, 98, 101},
		with(with(plain(
			"Absorption Power*", "Body Armor", "Force Field", "Force Field vs. Emotion",
			"Force Field vs. Energy", "Force Field vs. Magic", "Force Field vs. Mental",
			"Force Field vs. Physical", "Force Field vs. Power Manipulation", "Reflection",
			"Resist: Emotion Attacks", "Resist: Energy", "Resist: Magic",
			"Resist: Mental Attacks", "Resist: Physical Attacks",
			"Resist: Power Manipulation", "Resist: Toxins",
		),
			"Body Armor", nil, []string{"Resist: Physical Attacks"}),
			"Force Field", nil, []string{"Force Field vs. Energy", "Reflection"}),
	),
	powerClass(ClassDetection,
		[]int{3, 5, 11, 15, 21, 29, 35, 41, 43, 45, 51, 55, 57, 59, 60, 63, 70, 80, 91, 95, 99, 101},
		plain(
			"Abnormal Sensitivity", "Astral Detection", "Circular Vision", "Energy Detection",
			"Environmental Awareness", "Extradimensional Detection", "Hyperhearing",
			"Hypersmell", "Hypertouch", "Infravision", "Life Detection", "Magic Detection",
			"Microscopic Vision", "Penetration Vision", "Protected Senses",
			"Psionic Detection", "Radarsense", "Sonar", "Spirit Detection",
			"Telescopic Vision", "Tracking Ability", "Ultravision",
		),
	),
	powerClass(ClassEnergyControl,
		[]int{8, 11, 16, 19, 26, 29, 32, 37, 39, 46, 50, 54, 60, 67, 74, 78, 81, 85, 91, 98, 101},
		with(plain(
			"Absorption", "Coldshaping", "Darkforce Manipulation*", "Electrical Control",
			"Energy Conversion*", "Energy Reflection", "Energy Solidification",
			"Energy Sponge", "Energy Vampirism", "Fire Control", "Gravity Manipulation",
			"Hard Radiation Control", "Kinetic Control", "Light Control",
			"Magnetic Manipulation", "Plasma Control", "Radiowave Manipulation",
			"Shadowshaping", "Sound Control", "Thermal Control", "Vibration Control",
		),
			"Fire Control", nil, []string{"Fire Generation"}),
	),
	powerClass(ClassEnergyEmission,
		[]int{11, 21, 23, 35, 38, 43, 53, 63, 73, 76, 79, 84, 94, 101},
		with(with(with(plain(
			"Cold Generation", "Darkforce Generation", "Electrical Generation",
			"Energy Doppleganger", "Fire Generation", "Hard Radiation", "Heat",
			"Kinetic Bolt", "Light Emission", "Magnetic Generation", "Plasma Generation",
			"Radiowave Generation", "Sonic Generation", "Vibration",
		),
			"Cold Generation", nil, []string{"Coldshaping"}),
			"Electrical Generation", nil, []string{"Electrical Control"}),
			"Sonic Generation", nil, []string{"Sound Control"}),
	),
	powerClass("Fighting",
		[]int{21, 61, 76, 81, 99, 101},
		plain(
			"Berserker", "Blind-fighting", "Martial Supremacy", "Natural Weaponry",
			"Weapons Creation", "Weapons Tinkering",
		),
	),
	powerClass("Illusory",
		[]int{16, 71, 86, 101},
		plain("Animated Illusions", "Illusion-Casting", "Illusory Invisibility", "Illusion-Projecting*"),
	),
	powerClass("Lifeform Control",
		[]int{15, 16, 19, 27, 33, 35, 36, 40, 52, 61, 63, 66, 67, 70, 72, 81, 84, 90, 91, 96, 101},
		with(with(plain(
			"Animal Control", "Animal Transformation-Others", "Banishment", BiophysicalControl,
			"Body Transformation-Others", "Death Touch*", "Dispersal", "Domination",
			"Emotion Control", "Exorcism", "Genetic Regression", "Hate Control",
			"Insect Control", "Lifeform Duplication", "Mind Control", "Neural Manipulation",
			"Plant Control", "Plant Growth", "Sleep-Others", "Spirit Vampirism*",
			"Vampiric Transformation",
		),
			"Domination", nil, []string{"Mind Control"}),
			"Plant Control", nil, []string{"Plant Growth"}),
	),
	powerClass(ClassMagical,
		[]int{9, 16, 18, 26, 29, 34, 40, 42, 72, 78, 80, 96, 99, 101},
		with(plain(
			"Dimensional Aperture", "Enchantment*", "Magic Bolts", "Magic Control",
			"Magic Detection", "Magic Domination", "Magic Generation", "Magic Shield",
			"Magic Sourcing*", "Magic Transformation", "Magical Artifact Creation",
			"Mystic Amplification", "Spell Creation*", "Warding",
		),
			"Magic Control", nil, []string{"Magical Power"}),
	),
	powerClass("Matter Control",
		[]int{6, 18, 23, 30, 40, 47, 52, 62, 69, 74, 84, 94, 101},
		plain(
			"Air Control", "Density Manipulation-Others", "Earth Control", "Glass Control",
			"Ice Control", "Machine Animation", "Matter Animation", "Metal Control",
			"Molecular Disruption", "Sand Control", "Stone Control", "Water Control",
			"Weather Control",
		),
	),
	powerClass("Matter Conversion",
		[]int{11, 26, 46, 71, 81, 101},
		plain(
			"Coating", "Elemental Conversion", "Energy-Matter Conversion*",
			"Matter Duplication", "Molecular Conversion", "Rearrange Elements",
		),
	),
	powerClass("Matter Creation",
		[]int{11, 25, 30, 36, 60, 70, 89, 101},
		plain(
			"Artifact Creation*", "Ectoplasm Generation", "Energy Construct", "Force-Shaping",
			"Matter Creation", "Spray Generation", "Sticky Secretion", "Web Generation",
		),
	),
	powerClass("Mental Enhancement",
		[]int{5, 9, 12, 13, 14, 16, 17, 23, 24, 27, 28, 32, 41, 48, 49, 59, 66, 67, 68, 70, 73, 74, 75,
			76, 77, 79, 80, 81, 82, 86, 87, 97, 99, 101},
		with(with(plain(
			"Animal Communication", "Clairaudience", "Clairvoyance",
			"Communicate with Machines", "Communicate with Plants", "Cosmic Awareness*",
			"Danger Sense", "Dreamtravel", "Empathy", "Free Spirit", "Hallucinations",
			"Image Projection", "Incarnation Awareness", "Linguistics", "Mental Invisibility",
			"Mental Probe", "Mind Blast", "Mind Drain", "Mind Transferral", "Postcognition",
			"Precognition", "Psionic Vampirism", "Psi-Screen", "Psychometry",
			"Remote Sensing", "Sensory Link", "Serial Immortality", "Spirit Storage",
			"Spirit Summoning", "Telekinesis", "Telelocation", "Telepathy",
			"Thought Control", "True Sight",
		),
			"Telepathy", nil, []string{"Mental Probe", "Psi-Screen"}),
			"Telekinesis", nil, []string{"Force Field"}),
	),
	powerClass("Physical Enhancement",
		[]int{15, 29, 31, 34, 41, 43, 46, 48, 61, 63, 68, 72, 77, 79, 83, 91, 95, 97, 99, 101},
		with(with(plain(
			"Armor Skin", "Blending", "Body Adaptation", "Body Resistance", "Chemical Touch",
			"Digestive Adaptation", "Enhanced Senses", "Hyper-Breath", "Hyper-Invention",
			"Hyper-Speed", "Hyper-Strength", "Immortality*", "Invulnerability", "Longevity",
			"Lung Adaptation", "Pheromones", "Regeneration", "Self-Revival*",
			"Self-Sustenance", "Waterbreathing",
		),
			"Hyper-Speed", nil, []string{"Hyper-Running", "Lightning Speed"}),
			"Regeneration", nil, []string{"Self-Revival*", BiophysicalControl}),
	),
	powerClass("Power Control",
		[]int{9, 13, 19, 24, 38, 40, 50, 56, 61, 65, 74, 84, 97, 101},
		plain(
			"Amplification", "Bestow Powers*", "Cancellation", "Catalyst", "Dampening",
			"Gestalt", "Nemesis", "Power Boost", "Power Duplication", "Power Focus",
			"Power Transferral", "Power Vampirism*", "Protected Power", "Shield-Other",
		),
	),
	powerClass("Self-Alteration",
		[]int{3, 10, 11, 14, 20, 21, 28, 31, 34, 38, 39, 43, 45, 50, 56, 58, 59, 61, 62, 63, 64, 68,
			71, 72, 75, 79, 82, 85, 91, 95, 100, 101},
		with(with(with(with(plain(
			"Alter Ego*", "Anatomical Separation", "Animal Mimicry",
			"Animal Transformation-Self", "Body Coating", "Body Transformation-Self",
			"Bouncing Ball", "Chemical Form", "Disguise", "Elongation", "Energy Body",
			"Fire Form", "Gaseous Form", "Ice Form", "Invisibility", "Lightning Form",
			"Liquid Form", "Metal Form", "Omnimorphism*", "Phasing", "Plant Form",
			"Plasticity", "Self-Duplication*", "Shadow Form", "Shapeshifting",
			"Size Change-Self", "Skin Sheath", "Split Personality", "Stone Form",
			"Two-Dimensional", "Vaporization", "Water Form",
		),
			"Energy Body", []string{"Flight"}, []string{ClassEnergyEmission, ClassEnergyControl}),
			"Fire Form", []string{"Fire Generation", "Resist: Energy"}, []string{"Flight"}),
			"Ice Form", []string{"Cold Generation"}, []string{"Coldshaping"}),
			"Gaseous Form", []string{"Phasing"}, []string{"Flight"}),
	),
	powerClass(ClassTravel,
		[]int{3, 7, 11, 13, 15, 20, 27, 29, 35, 43, 47, 52, 57, 59, 65, 73, 77, 79, 81, 83, 94, 98, 99, 101},
		with(with(plain(
			"Astral Body", "Carrier Wave", "Dimensional Travel", "Floating", "Gliding",
			"Hyper-Digging", "Hyper-Leaping", "Hyper-Running", "Hyper-Swimming",
			"Levitation", "Lightning Speed", "Portal", "Rocket", "Space Flight", "Swinging",
			"Teleport Self", "Teleport Others*", "Time Travel", "Tunneling", "Wall-Crawling",
			"Flight", "Water Walking", "Whirlwind", WingedFlight,
		),
			"Astral Body", []string{"Spirit Detection"}, nil),
			"Flight", nil, []string{"Gliding"}),
	),
}

// PowerClasses returns every class in table order
func PowerClasses() []*PowerClass {
	return append([]*PowerClass(nil), powerClasses...)
}

// PowerClassByName returns a class
func PowerClassByName(name string) (*PowerClass, error) {
	for _, c := range powerClasses {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, errors.InvalidArgumentf("power class %q does not exist", name)
}

// IsEmissionPower reports whether a power name belongs to Energy Emission
func IsEmissionPower(name string) bool {
	c, _ := PowerClassByName(ClassEnergyEmission)
	return c.Contains(name)
}

// PowerClassTable is the power class roll
var PowerClassTable = table.MustThresholds("power class", table.D100,
	[]int{6, 12, 17, 25, 30, 32, 36, 41, 48, 54, 58, 72, 86, 89, 93, 101},
	[]string{
		"Defensive", ClassDetection, ClassEnergyControl, ClassEnergyEmission, "Fighting",
		"Illusory", "Lifeform Control", ClassMagical, "Matter Control", "Matter Conversion",
		"Matter Creation", "Mental Enhancement", "Physical Enhancement", "Power Control",
		"Self-Alteration", ClassTravel,
	},
)

// EmissionPointTable is where an emission power leaves the body
var EmissionPointTable = table.MustThresholds("emission point", table.D100,
	[]int{15, 23, 31, 39, 47, 55, 63, 68, 71, 74, 77, 82, 87, 101},
	[]string{
		"Entire body", "Head", "Eyes", "Mouth and nose", "Torso", "Arms", "Hands",
		"Fingers", "Legs", "Feet", "Wings", "Antennae/horns", "Tail", "Any location",
	},
)

// BiophysicalTable resolves a Random Biophysical Control option
var BiophysicalTable = table.MustThresholds("biophysical control", table.D100,
	[]int{25, 45, 49, 69, 77, 93, 101},
	[]string{"Healing", "Regeneration", "Revival", "Damage Transferral", "Decay", "Disruption", "Aging"},
)

// BiophysicalOptions are the choices offered for Biophysical Control
func BiophysicalOptions() []string {
	return append(BiophysicalTable.Outcomes(), BiophysicalRandom)
}
