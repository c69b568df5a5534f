package catalog

// formEffects holds the sparse per-form effect records, keyed by form ID.
var formEffects = map[int]map[Slot]Effect{
	0: {
		SlotBonusA: {Text: "Normal Humans get +1CS Resources; ", Deltas: []Delta{{Field: FieldResources, Value: 1}}},
	},
	1: {
		SlotBonusA: {Text: "Induced Mutants can raise any one Primary Ability +1CS; ", Deltas: []Delta{{Field: FieldAbilityBonus, Value: 1}}},
	},
	2: {
		SlotBonusA: {Text: "Endurance is raised +1CS; ", Deltas: []Delta{{Field: FieldEndurance, Value: 1}}},
		SlotBonusB: {Text: "Random Mutants gain +1 Power; ", Deltas: []Delta{{Field: FieldPowerBonus, Value: 1}}},
		SlotPenaltyA: {Text: "Random Mutants start with -1CS Resources; ", Deltas: []Delta{{Field: FieldResources, Value: -1}}},
	},
	3: {
		SlotBonusA: {Text: "Endurance is raised +1CS; ", Deltas: []Delta{{Field: FieldEndurance, Value: 1}}},
		SlotBonusB: {Text: "Intuition is raised +1CS; ", Deltas: []Delta{{Field: FieldIntuition, Value: 1}}},
		SlotNoteA: {Text: "Breed Mutants must have at least one Contact, usually their tribe; ", Deltas: []Delta{{Field: FieldInitialContacts, Value: 2}}, Contact: "Breed Mutant's tribe"},
	},
	4: {
		SlotBonusA: {Text: "Androids may raise any one Ability +1CS; ", Deltas: []Delta{{Field: FieldAbilityBonus, Value: 1}}},
		SlotBonusB: {Text: "Androids gain +1 Power; ", Deltas: []Delta{{Field: FieldPowerBonus, Value: 1}}},
		SlotPenaltyA: {Text: "Popularity is initially lowered -1CS; ", Deltas: []Delta{{Field: FieldPopularity, Value: -1}}},
		SlotNoteA: {Text: "Androids have at least one Contact, the lab tech or scientist who created them; ", Deltas: []Delta{{Field: FieldInitialContacts, Value: 2}}, Contact: "Android's creator"},
	},
	5: {
		SlotBonusA: {Text: "Can raise any one Ability +1CS; ", Deltas: []Delta{{Field: FieldAbilityBonus, Value: 1}}},
		SlotPenaltyA: {Text: "Starting Resources are set at Poor; ", Deltas: []Delta{{Field: FieldForcedResources, Value: 2}}},
		SlotNoteA: {Text: "A Humanoid starts out with only one Contact, his race; ", Deltas: []Delta{{Field: FieldInitialContacts, Value: 1}}, Contact: "Humanoid's race"},
	},
	6: {
		SlotBonusA: {Text: "Strength, Fighting, and Endurance are all increased +1CS; ", Deltas: []Delta{{Field: FieldFighting, Value: 1}, {Field: FieldStrength, Value: 1}, {Field: FieldEndurance, Value: 1}}},
		SlotPenaltyA: {Text: "Starting Resources are set at Poor; ", Deltas: []Delta{{Field: FieldForcedResources, Value: 2}}},
		SlotNoteA: {Text: "Composites heal twice as quickly as Normal Humans; "},
		SlotNoteB: {Text: "The Composite initially possesses one Contact - the hospital or person responsible for their creation; ", Deltas: []Delta{{Field: FieldInitialContacts, Value: 1}}, Contact: "hospital/person responsible for the character's creation"},
		SlotWeaknessA: {Text: "Resistance to Mental Domination is reduced -1CS; "},
		SlotPenaltyB: {Text: "Popularity is set to 0; ", Deltas: []Delta{{Field: FieldForcedPopularity, Value: 0}}},
	},
	7: {
		SlotPenaltyA: {Text: "All Modified Humans gain -1 Power initially; ", Deltas: []Delta{{Field: FieldPowerBonus, Value: -1}}},
		SlotNoteA: {Text: "Organics heal twice as fast as Normal Humans; "},
		SlotNoteB: {Text: "At least one Contact should be the organization responsible for the modification; ", Deltas: []Delta{{Field: FieldInitialContacts, Value: 2}}, Contact: "organization responsible for the modification of the character"},
	},
	8: {
		SlotBonusA: {Text: "Musculars gain +1CS Strength and Endurance; ", Deltas: []Delta{{Field: FieldStrength, Value: 1}, {Field: FieldEndurance, Value: 1}}},
		SlotPenaltyA: {Text: "All Modified Humans gain -1 Power initially; ", Deltas: []Delta{{Field: FieldPowerBonus, Value: -1}}},
		SlotNoteB: {Text: "At least one Contact should be the organization responsible for the modification; ", Deltas: []Delta{{Field: FieldInitialContacts, Value: 2}}, Contact: "organization responsible for the modification of the character"},
	},
	9: {
		SlotPenaltyA: {Text: "All Modified Humans gain -1 Power initially; ", Deltas: []Delta{{Field: FieldPowerBonus, Value: -1}}},
		SlotNoteA: {Text: "Skeletals gain +1CS Resistance to Physical Attacks; "},
		SlotNoteB: {Text: "At least one Contact should be the organization responsible for the modification; ", Deltas: []Delta{{Field: FieldInitialContacts, Value: 2}}, Contact: "organization responsible for the modification of the character"},
	},
	10: {
		SlotPenaltyA: {Text: "All Modified Humans gain -1 Power initially; ", Deltas: []Delta{{Field: FieldPowerBonus, Value: -1}}},
		SlotNoteB: {Text: "At least one Contact should be the organization responsible for the modification; ", Deltas: []Delta{{Field: FieldInitialContacts, Value: 2}}, Contact: "organization responsible for the modification of the character"},
	},
	11: {
		SlotBonusA: {Text: "Demihuman-Centaurs get +1 Strength; ", Deltas: []Delta{{Field: FieldStrength, Value: 1}}},
		SlotPenaltyA: {Text: "Centaurs have Feeble Climbing ability; "},
		SlotNoteA: {Text: "Can move quickly over horizontal ground (4 areas/turn), and can fight with their hooves; "},
	},
	12: {
		SlotNoteA: {Text: "Kicking does +1CS damage; "},
	},
	13: {
		SlotPenaltyA: {Text: "Popularity set to 0; gains Popularity more slowly than other Demihumans; ", Deltas: []Delta{{Field: FieldForcedPopularity, Value: 0}}},
		SlotNoteA: {Text: "Feeble Mental Domination over females of any human(oid) race; "},
	},
	14: {
		SlotNoteA: {Text: "A felinoid can see in the dark with Excellent night vision; "},
		SlotNoteB: {Text: "A felinoid possesses +1CS Climbing ability; "},
	},
	15: {
		SlotPenaltyA: {Text: "-1CS Popularity; ", Deltas: []Delta{{Field: FieldPopularity, Value: -1}}},
		SlotNoteA: {Text: "A lupinoid possesses an Excellent sense of smell; "},
	},
	17: {
		SlotPenaltyA: {Text: "Initial Popularity is Feeble; ", Deltas: []Delta{{Field: FieldForcedPopularity, Value: 1}}},
		SlotNoteA: {Text: "Chiropterans possess the Power of Active Sonar at Good rank; "},
	},
	18: {
		SlotPenaltyA: {Text: "Initial Popularity is 0; ", Deltas: []Delta{{Field: FieldForcedPopularity, Value: 0}}},
		SlotNoteA: {Text: "Venomous (Excellent Intensity poison); ", CoinFlip: true},
		SlotNoteB: {Text: "Lamians are difficult to bind (+1CS to escape); "},
	},
	19: {
		SlotBonusA: {Text: "Merhumans gain +1CS Popularity; ", Deltas: []Delta{{Field: FieldPopularity, Value: 1}}},
		SlotNoteA: {Text: "Merhumans possess both lungs and gills, but can only stay away from water a limited time because their bodies quickly dry out. Movement on dry land is limited to crawling or dependence on vehicles. Merhumans also possess Water Freedom; "},
	},
	20: {
		SlotNoteA: {Text: "A player can combine any animal with a human to create a new Demihuman, then work with the Judge to provide it with reasonable statistics; "},
	},
	21: {
		SlotPenaltyA: {Text: "-1CS Intuition; ", Deltas: []Delta{{Field: FieldIntuition, Value: -1}}},
		SlotNoteA: {Text: "At least one Contact must be either the lab or hospital that created him or a facility that provides maintenance services; ", Deltas: []Delta{{Field: FieldInitialContacts, Value: 2}}, Contact: "Lab or hospital responsible for creating or maintaining the cyborg"},
	},
	23: {
		SlotPenaltyA: {Text: "-1CS Intuition and Psyche; ", Deltas: []Delta{{Field: FieldIntuition, Value: -1}, {Field: FieldPsyche, Value: -1}}},
		SlotNoteA: {Text: "Monstrous Resistance to Disease and Poisons of all sorts; "},
		SlotNoteB: {Text: "Mech Bodies initially have only one Contact—the lab where they were created; ", Deltas: []Delta{{Field: FieldInitialContacts, Value: 1}}, Contact: "lab where character was created"},
		SlotWeaknessA: {Text: "Prone to things that never harm a flesh-bound character, like Magnetic attacks and rust; "},
	},
	24: {
		SlotPenaltyA: {Text: "Augmenteds receive -1 Power; ", Deltas: []Delta{{Field: FieldPowerBonus, Value: -1}}},
	},
	25: {
		SlotPenaltyA: {Text: "Popularity set to 0; ", Deltas: []Delta{{Field: FieldForcedPopularity, Value: 0}}},
		SlotNoteA: {Text: "The average Human Shape Robot weighs 500 to 2,000 pounds; "},
	},
	27: {
		SlotNoteA: {Text: "Generate separate Physical abilities for each form and assign Powers to either or multiple forms. Metamorphs have a minimum of two forms. -1CS to all Primary Abilities for each additional form; "},
	},
	28: {
		SlotBonusA: {Text: "+2CS Reason; ", Deltas: []Delta{{Field: FieldReason, Value: 2}}},
		SlotBonusB: {Text: "+1CS Resources; ", Deltas: []Delta{{Field: FieldResources, Value: 1}}},
		SlotPenaltyA: {Text: "Fighting is decreased -1CS; ", Deltas: []Delta{{Field: FieldFighting, Value: -1}}},
		SlotNoteA: {Text: "Assume that all sentient computers have a minimum of one remotely controlled industrial robot. The owners think this robot is only used for self-maintenance and experimentation; Loss of all electrical power to the mainframe causes deactivation and loss of some of the computer's abilities and all of its Karma. Abilities and Powers are reduced -1CS across the board; "},
		SlotWeaknessA: {Text: "Computers have a decreased Resistance to Electrical and Magnetic Attacks and also to Phasing; "},
	},
	29: {
		SlotBonusA: {Text: "All Physical Abilities (FASE) are raised +1CS; ", Deltas: []Delta{{Field: FieldFighting, Value: 1}, {Field: FieldAgility, Value: 1}, {Field: FieldStrength, Value: 1}, {Field: FieldEndurance, Value: 1}}},
		SlotNoteA: {Text: "Angels and demons have no initial Contacts but will soon be sought out by groups who see them as symbols or tools; ", Deltas: []Delta{{Field: FieldInitialContacts, Value: 0}}},
		SlotWeaknessA: {Text: "Such beings possess a Psychological Weakness that Negates their Power; "},
	},
	30: {
		SlotBonusA: {Text: "All primary abilities (FASERIP) are raised +2CS; ", Deltas: []Delta{{Field: FieldFighting, Value: 2}, {Field: FieldAgility, Value: 2}, {Field: FieldStrength, Value: 2}, {Field: FieldEndurance, Value: 2}, {Field: FieldReason, Value: 2}, {Field: FieldIntuition, Value: 2}, {Field: FieldPsyche, Value: 2}}},
		SlotBonusB: {Text: "+2 Powers; ", Deltas: []Delta{{Field: FieldPowerBonus, Value: 2}}},
		SlotPenaltyA: {Text: "0 Popularity with the hierarchy of the major established Earth religions; "},
		SlotNoteA: {Text: "Deities cannot really die in the Earth Dimension unless the slayer is another deity. Each deity has a home dimension; on that plane the deity loses his special protection from death; "},
		SlotNoteB: {Text: "Deities eventually attract any remaining living worshippers they still have. All of these people serve as Contacts; "},
		SlotNoteC: {Text: "Deities automatically possess at least one Travel Power; ", Deltas: []Delta{{Field: FieldDeityTravelPower, Value: 1}}},
		SlotBonusC: {Text: "+2CS Popularity with the public; "},
	},
	31: {
		SlotPenaltyA: {Text: "Animals have -1 Power; ", Deltas: []Delta{{Field: FieldPowerBonus, Value: -1}}},
		SlotNoteA: {Text: "Animals automatically have two Detection Powers at Good rank; ", Deltas: []Delta{{Field: FieldAnimalDetection, Value: 1}}},
		SlotNoteB: {Text: "Animals have to have a human Contact; ", Deltas: []Delta{{Field: FieldInitialContacts, Value: 2}}, Contact: "Human contact"},
		SlotNoteC: {Text: "Resources are zero unless the animal has attached himself to a human. In this case, the Resource rank is assigned to that human; "},
	},
	32: {
		SlotBonusA: {Text: "Plants gain +2CS Endurance; ", Deltas: []Delta{{Field: FieldEndurance, Value: 2}}},
		SlotPenaltyA: {Text: "Plants have -2CS Fighting; ", Deltas: []Delta{{Field: FieldFighting, Value: -2}}},
		SlotNoteA: {Text: "Plants have 0 Resources; ", Deltas: []Delta{{Field: FieldForcedResources, Value: 0}}},
		SlotNoteB: {Text: "Plants automatically possess Absorption Power of Good rank in the form of enhanced photosynthesis; "},
		SlotNoteC: {Text: "Plants have no initial Contacts; the exception is if the Plant was created by scientific means, in which case its creator might be a Contact; "},
		SlotWeaknessA: {Text: "Prolonged deprivation of light and water reduces the hero's Strength and Endurance -1CS per day after an initial three days; "},
	},
	33: {
		SlotBonusA: {Text: "Endurance is raised +1CS; ", Deltas: []Delta{{Field: FieldEndurance, Value: 1}}},
	},
	34: {
		SlotBonusA: {Text: "Initial Health is doubled; ", Deltas: []Delta{{Field: FieldHealthMultiplier, Value: 1}}},
		SlotPenaltyA: {Text: "Movement rate is decreased -1CS; "},
		SlotNoteA: {Text: "Mineral Life is immune to all Poisons and Diseases that harm Normal Humans; "},
		SlotWeaknessA: {Text: "Mineral Life is vulnerable to attacks with special effects on the body materials. For example, an iron golem is prone to rust; "},
	},
	35: {
		SlotPenaltyA: {Text: "Gas Bodies have 0 Resources and no initial Contacts; ", Deltas: []Delta{{Field: FieldForcedResources, Value: 0}, {Field: FieldInitialContacts, Value: 0}}},
		SlotNoteA: {Text: "Gas Bodies possess a natural form of Phasing that permits them to penetrate solids; "},
		SlotNoteB: {Text: "The Gas Body is a coherent cloud that retains its integrity even in the face of Amazing Intensity winds; "},
		SlotNoteC: {Text: "The only way to destroy a Gas Body is to alter its composition through Powers like Matter Conversion and Matter Control; "},
		SlotWeaknessA: {Text: "Cannot freely move in a vacuum unless it possesses a Travel or Energy Power; "},
	},
	36: {
		SlotNoteA: {Text: "If the liquid life possesses Endurance and Psyche ranks of Excellent or better, the Fluid Body can form an erect simulation of a human body; "},
		SlotNoteB: {Text: "Fluid Bodies have a natural variation of Phasing that permits them to permeate any porous material; "},
		SlotNoteC: {Text: "Fluid Bodies have no initial Contacts except their own race, if one exists; "},
		SlotWeaknessA: {Text: "If the Fluid Body is frozen, the character is immobilized until they can melt. Vaporization is a fatal act for most Fluid Bodies; "},
	},
	37: {
		SlotNoteA: {Text: "Energy Beings have a Bonus Power of Energy Emission. Energy Control is an Optional Power; ", Deltas: []Delta{{Field: FieldEnergyForm, Value: 1}}},
		SlotNoteB: {Text: "Physical contact with an Energy Being does Feeble damage; The Energy Body possesses an Intensity rank of its own; this is how the Health points apply to this being; "},
		SlotNoteC: {Text: "The only way to destroy an Energy Body is to completely Negate or solidify its energy; "},
		SlotWeaknessA: {Text: "Energy Bodies possess a special vulnerability to Plasma Control (-1CS Resistance); "},
		SlotWeaknessB: {Text: "Energy Bodies can be contained within special storage batteries; this is the only way to immobilize these beings; "},
	},
	38: {
		SlotBonusA: {Text: "Physical attacks have a decreased effect on Ethereals (-9CS); "},
		SlotPenaltyA: {Text: "Fighting rank is zero in the Earth Dimension, unless the Ethereal is fighting another Ethereal; "},
		SlotNoteA: {Text: "The visibility of an Ethereal varies according to their whim; They can be invisible, transparent, translucent, or opaque; "},
		SlotNoteB: {Text: "While Ethereals are intangible on the Earth Dimension, they regain solidity in other Dimensions. In such realms Ethereals are vulnerable to all Powers except those that specifically affect Ethereals and other disembodied beings; these Powers are Spirit Summoning and Storage, Reincarnation, and Exorcism; "},
		SlotWeaknessA: {Text: "Spirit Vampirism completely destroys Ethereals. Psi-Vampirism destroys the self-image and reduces the Ethereal to a mindless Poltergeist; "},
	},
	39: {
		SlotBonusA: {Text: "Strength and Endurance are increased by +1CS; ", Deltas: []Delta{{Field: FieldStrength, Value: 1}, {Field: FieldEndurance, Value: 1}}},
		SlotNoteA: {Text: "Special means are required to maintain the reunion of mind and body. This can be anything from being frequently re-embalmed to utilizing any of the Vampiric Powers. If the Undead fails to follow his required - maintenance procedures, he begins to fall apart. In Undead terms, this is what Health points are used for. Health is the structural integrity of the Undead's own corpse.; "},
		SlotWeaknessA: {Text: "Undead possess a Psychological Weakness; their Power is negated within 10' of a religious symbol. If the symbol is that of a religion the Undead practiced while alive, they suffer Excellent damage; "},
	},
	40: {
		SlotPenaltyA: {Text: "-1CS Popularity; ", Deltas: []Delta{{Field: FieldPopularity, Value: -1}}},
		SlotNoteA: {Text: "Click each Compound form to determine which Table to use to roll Abilities and which Bonuses, Penalties, etc. are part of the Compound Form; "},
	},
	41: {
		SlotNoteA: {Text: "Rolled Abilities are the base rank and score. Any Bonuses, Penalties, etc. only apply when the Changeling is in that form; Powers can be assigned to any or all Aspects. Each Aspect must have a unique Power not shared with other Aspects; "},
	},
	42: {
		SlotBonusA: {Text: "A Collective Mass gains +2CS Resistance to physical or directed energy attacks (lasers, for example); "},
		SlotNoteA: {Text: "Because of its peculiar dual nature, a Collective Mass has two sets of primary abilities. The first set represents the average abilities possessed by the individual component entities; the second set is that of the Collective Mass. The majority of powers can only be manifested by the Collective Mass. Individual entities can at best exhibit Feeble-rank versions of the available powers; Ordinarily, the number of individuals composing the Collective Mass is less than the rank number of the Collective Mass's Reason, multiplied by 100; "},
		SlotWeaknessA: {Text: "A successful Grappling attack breaks the body into two masses. The body can automatically rejoin in 1-4 turns unless something prevents this; "},
	},
}
