package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/msh-chargen/internal/engine/catalog"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) TestFormsAreIndexedByID() {
	s.Require().Len(catalog.Forms, 43)
	for id, f := range catalog.Forms {
		s.Assert().Equal(id, f.ID)
		s.Assert().NotEmpty(f.Name)
	}

	deity, err := catalog.FormByID(catalog.FormDeity)
	s.Require().NoError(err)
	s.Assert().Equal("Deity", deity.Name)
	s.Assert().Equal(5, deity.Table)

	_, err = catalog.FormByID(43)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestCompoundEligibility() {
	for _, id := range []int{catalog.FormRobotMetamorphic, catalog.FormCompound, catalog.FormChangeling} {
		f, err := catalog.FormByID(id)
		s.Require().NoError(err)
		s.Assert().False(f.CompoundEligible(), f.Name)
	}
	human, _ := catalog.FormByID(catalog.FormNormalHuman)
	s.Assert().True(human.CompoundEligible())
}

func (s *CatalogTestSuite) TestOptionTables() {
	avian, _ := catalog.FormByID(catalog.FormDemihumanAvian)
	s.Assert().True(avian.OptionTable())
	s.Require().Len(avian.Options, 2)
	s.Assert().Equal(3, avian.Options[0].Table)
	s.Assert().Equal(2, avian.Options[1].Table)

	animal, _ := catalog.FormByID(catalog.FormAnimal)
	s.Assert().True(animal.OptionTable())

	extra, _ := catalog.FormByID(catalog.FormExtraParts)
	s.Assert().False(extra.OptionTable())
	s.Assert().Len(extra.Options, 5)

	meta, _ := catalog.FormByID(catalog.FormRobotMetamorphic)
	s.Require().Len(meta.Options, 4)
	s.Assert().Empty(meta.Options[0].Effects[0].Effect.Deltas)
	s.Assert().Len(meta.Options[3].Effects[0].Effect.Deltas, 7)
	s.Assert().Equal(-3, meta.Options[3].Effects[0].Effect.Deltas[0].Value)
}

func (s *CatalogTestSuite) TestFormTableSkipsDirectOnlyForms() {
	seen := map[int]bool{}
	for _, id := range catalog.FormTable.Outcomes() {
		seen[id] = true
	}
	s.Assert().False(seen[catalog.FormSurgicalComposite])
	s.Assert().False(seen[20])
	s.Assert().True(seen[catalog.FormCompound])
	s.Assert().True(seen[catalog.FormChangeling])

	id, err := catalog.FormTable.Resolve(100)
	s.Require().NoError(err)
	s.Assert().Equal(42, id)
}

func (s *CatalogTestSuite) TestSingleFormExtraSlots() {
	deity, _ := catalog.FormByID(catalog.FormDeity)
	_, ok := deity.Effects[catalog.SlotBonusC]
	s.Assert().True(ok)

	surgical, _ := catalog.FormByID(catalog.FormSurgicalComposite)
	pen, ok := surgical.Effects[catalog.SlotPenaltyB]
	s.Require().True(ok)
	s.Assert().Equal(catalog.FieldForcedPopularity, pen.Deltas[0].Field)

	energy, _ := catalog.FormByID(catalog.FormEnergy)
	_, ok = energy.Effects[catalog.SlotWeaknessB]
	s.Assert().True(ok)

	s.Assert().True(catalog.SlotBonusC.AlwaysRolled())
	s.Assert().False(catalog.SlotWeaknessA.AlwaysRolled())
}

func (s *CatalogTestSuite) TestAbilityTables() {
	for n := 1; n <= 5; n++ {
		t, err := catalog.AbilityTable(n)
		s.Require().NoError(err)
		low, err := t.Resolve(1)
		s.Require().NoError(err)
		s.Assert().Equal(1, low)
	}

	t5, _ := catalog.AbilityTable(5)
	top, err := t5.Resolve(100)
	s.Require().NoError(err)
	s.Assert().Equal(9, top)

	_, err = catalog.AbilityTable(0)
	s.Assert().True(errors.IsConfiguration(err))
}

func (s *CatalogTestSuite) TestParseAbility() {
	a, err := catalog.ParseAbility(" Psyche ")
	s.Require().NoError(err)
	s.Assert().Equal(catalog.AbilityPsyche, a)
	s.Assert().True(a.Mental())
	s.Assert().False(a.Physical())

	_, err = catalog.ParseAbility("luck")
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestSlotTable() {
	row, err := catalog.SlotTable.Resolve(10)
	s.Require().NoError(err)
	s.Assert().Equal(catalog.Range{Min: 1, Max: 3}, row.Powers)
	s.Assert().Equal(catalog.Range{Min: 0, Max: 3}, row.Talents)
	s.Assert().Equal(catalog.Range{Min: 0, Max: 2}, row.Contacts)

	row, err = catalog.SlotTable.Resolve(100)
	s.Require().NoError(err)
	s.Assert().Equal(catalog.Range{Min: 14, Max: 18}, row.Powers)
}

func (s *CatalogTestSuite) TestPowerClasses() {
	classes := catalog.PowerClasses()
	s.Require().Len(classes, 16)
	s.Assert().Equal(catalog.PowerClassTable.Outcomes(), func() []string {
		names := make([]string, len(classes))
		for i, c := range classes {
			names[i] = c.Name
		}
		return names
	}())

	travel, err := catalog.PowerClassByName(catalog.ClassTravel)
	s.Require().NoError(err)
	p, err := travel.Powers.Resolve(90)
	s.Require().NoError(err)
	s.Assert().Equal("Flight", p.Name)

	_, err = catalog.PowerClassByName("Cooking")
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestWeights() {
	s.Assert().Equal(2, catalog.Weight("Cosmic Awareness*"))
	s.Assert().Equal(1, catalog.Weight("Flight"))

	class, ok := catalog.ClassGrant("Magical Power")
	s.Assert().True(ok)
	s.Assert().Equal(catalog.ClassMagical, class)
	_, ok = catalog.ClassGrant("Flight")
	s.Assert().False(ok)
}

func (s *CatalogTestSuite) TestEmissionPowers() {
	s.Assert().True(catalog.IsEmissionPower("Fire Generation"))
	s.Assert().False(catalog.IsEmissionPower("Fire Control"))

	point, err := catalog.EmissionPointTable.Resolve(14)
	s.Require().NoError(err)
	s.Assert().Equal("Entire body", point)
	point, err = catalog.EmissionPointTable.Resolve(87)
	s.Require().NoError(err)
	s.Assert().Equal("Any location", point)
}

func (s *CatalogTestSuite) TestBiophysicalOptions() {
	opts := catalog.BiophysicalOptions()
	s.Assert().Len(opts, 8)
	s.Assert().Equal(catalog.BiophysicalRandom, opts[7])
}

func (s *CatalogTestSuite) TestTalentTables() {
	weapons, err := catalog.TalentTable("Weapon Skills")
	s.Require().NoError(err)
	choices, err := weapons.Resolve(10)
	s.Require().NoError(err)
	s.Assert().Len(choices, 4)

	other, _ := catalog.TalentTable("Other Skills")
	choices, err = other.Resolve(9)
	s.Require().NoError(err)
	s.Assert().Contains(choices, "Leadership*")

	_, err = catalog.TalentTable("Cooking Skills")
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestContacts() {
	for _, class := range catalog.ContactClasses {
		list, err := catalog.Contacts(class)
		s.Require().NoError(err)
		s.Assert().NotEmpty(list)
		s.Assert().True(catalog.ContactInClass(class, list[0]))
	}
	_, err := catalog.Contacts("Criminal")
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestFindForm() {
	f, err := catalog.FindForm("deity")
	s.Require().NoError(err)
	s.Assert().Equal(catalog.FormDeity, f.ID)

	f, err = catalog.FindForm("41")
	s.Require().NoError(err)
	s.Assert().Equal("Changeling", f.Name)

	f, err = catalog.FindForm("Demihuman-Cent")
	s.Require().NoError(err)
	s.Assert().Equal(11, f.ID)
}

func (s *CatalogTestSuite) TestFindFormSuggests() {
	_, err := catalog.FindForm("Dieity")
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
	meta := errors.GetMeta(err)
	s.Require().Contains(meta, "suggestions")
	s.Assert().Equal("Deity", meta["suggestions"].([]string)[0])
}
