package rpgtoolkit_test

import (
	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/engine/catalog"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rank"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

func (s *AdapterTestSuite) TestRollPowerClassesAppliesPowerBonus() {
	testCases := []struct {
		name    string
		bonus   int
		slot    int
		wantMin int
	}{
		{name: "no bonus", bonus: 0, slot: 30, wantMin: 3},
		{name: "plus one", bonus: 1, slot: 30, wantMin: 4},
		{name: "minus one", bonus: -1, slot: 30, wantMin: 2},
		{name: "minus one keeps a floor of one", bonus: -1, slot: 1, wantMin: 1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.script(tc.slot)
			c := rolledCharacter(2, rank.Good)
			c.Bonus.PowerBonus = tc.bonus

			s.Require().NoError(s.adapter.RollPowerClasses(c))
			s.Assert().Equal(tc.wantMin, c.Powers.Budget.Min)
			s.Assert().Len(c.Powers.Pending, tc.wantMin)
			s.Assert().LessOrEqual(c.Powers.Budget.Min, c.Powers.Budget.Max)
		})
	}
}

func (s *AdapterTestSuite) TestRollPowerClassesSeedsAnimalDetection() {
	s.script(1, 1, 3, 1, 1)
	c := rolledCharacter(1, rank.Good)
	c.Bonus.AnimalDetection = true

	s.Require().NoError(s.adapter.RollPowerClasses(c))
	s.Assert().Equal([]engine.Power{
		{Name: "Abnormal Sensitivity", Rank: rank.Good, Locked: true},
		{Name: "Astral Detection", Rank: rank.Good, Locked: true},
	}, c.Powers.Acquired)
	s.Assert().Equal(2, c.Powers.Budget.Used)
	s.Assert().Equal(0, s.roller.Remaining())
}

func (s *AdapterTestSuite) TestRollPowerClassesSeedsEnergyEmission() {
	c := rolledCharacter(2, rank.Good)
	c.Bonus.EnergyForm = true

	s.Require().NoError(s.adapter.RollPowerClasses(c))
	s.Require().Len(c.Powers.Acquired, 1)
	s.Assert().Equal(engine.Power{
		Name: "Cold Generation", Rank: rank.Feeble, Emission: "Entire body", Locked: true,
	}, c.Powers.Acquired[0])
	s.Assert().Equal("Cold Generation - Feeble (1); emitted from Entire body", c.PowerLines()[0])
}

func (s *AdapterTestSuite) TestRollPowerClassesSeedsWingedFlight() {
	s.script(100, 1, 1)
	c := rolledCharacter(2, rank.Good)
	c.Bonus.WingsTravel = true

	s.Require().NoError(s.adapter.RollPowerClasses(c))
	s.Assert().Equal([]engine.Power{
		{Name: catalog.WingedFlight, Rank: rank.Excellent, Locked: true},
	}, c.Powers.Acquired)

	err := s.adapter.RemovePower(c, 0)
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().Len(c.Powers.Acquired, 1)
}

func (s *AdapterTestSuite) TestBuyAndRemovePowerClassAreSymmetric() {
	s.script(10, 1, 50)
	c := rolledCharacter(2, rank.Good)

	s.Require().NoError(s.adapter.RollPowerClasses(c))
	s.Assert().Equal(engine.Budget{Min: 1, Max: 3}, c.Powers.Budget)
	s.Assert().Equal([]engine.PendingClass{{Class: "Defensive"}}, c.Powers.Pending)
	before := c.Clone()

	s.Require().NoError(s.adapter.BuyPower(c))
	s.Assert().Equal(rank.Poor, c.Resources())
	s.Assert().Equal(engine.Budget{Min: 2, Max: 3, Purchased: 1}, c.Powers.Budget)
	s.Assert().Equal(engine.PendingClass{Class: "Matter Conversion", Purchased: true}, c.Powers.Pending[1])

	s.Require().NoError(s.adapter.RemovePowerClass(c, 1))
	s.Assert().Equal(before, c)
}

func (s *AdapterTestSuite) TestRerollRefundsPurchases() {
	s.script(10, 1, 50, 10, 1)
	c := rolledCharacter(2, rank.Good)

	s.Require().NoError(s.adapter.RollPowerClasses(c))
	s.Require().NoError(s.adapter.BuyPower(c))
	s.Require().Equal(rank.Poor, c.Resources())

	s.Require().NoError(s.adapter.RollPowerClasses(c))
	s.Assert().Equal(rank.Good, c.Resources())
	s.Assert().Equal(engine.Budget{Min: 1, Max: 3}, c.Powers.Budget)
	s.Assert().Len(c.Powers.Pending, 1)
}

func (s *AdapterTestSuite) TestBuyPowerLimits() {
	s.Run("insufficient resources", func() {
		c := powersOpen(rank.Feeble, engine.Budget{Min: 1, Max: 3}, "Defensive")
		before := c.Clone()
		err := s.adapter.BuyPower(c)
		s.Assert().True(errors.IsInsufficientResources(err))
		s.assertUnchanged(before, c)
	})

	s.Run("pending classes at max", func() {
		s.script(50, 50)
		c := powersOpen(rank.Remarkable, engine.Budget{Min: 1, Max: 3}, "Defensive")
		s.Require().NoError(s.adapter.BuyPower(c))
		s.Require().NoError(s.adapter.BuyPower(c))
		s.Require().Len(c.Powers.Pending, 3)

		before := c.Clone()
		err := s.adapter.BuyPower(c)
		s.Assert().True(errors.IsNoSlotAvailable(err))
		s.assertUnchanged(before, c)
		s.Assert().Equal(rank.Poor, c.Resources())
	})

	s.Run("minimum already at max", func() {
		c := powersOpen(rank.Good, engine.Budget{Min: 3, Max: 3}, "Defensive")
		err := s.adapter.BuyPower(c)
		s.Assert().True(errors.IsNoSlotAvailable(err))
	})
}

func (s *AdapterTestSuite) TestRemovePowerClassTracksRolledPower() {
	c := powersOpen(rank.Good, engine.Budget{Min: 2, Max: 3}, "Defensive", catalog.ClassTravel)
	s.Require().NoError(s.adapter.RollPower(c, 1))
	s.Require().NotNil(c.Powers.Current)
	s.Assert().Equal(catalog.ClassTravel, c.Powers.Current.Class)

	s.Require().NoError(s.adapter.RemovePowerClass(c, 0))
	s.Require().NotNil(c.Powers.Current)
	s.Assert().Equal(0, c.Powers.Current.ClassIndex)

	s.Require().NoError(s.adapter.RemovePowerClass(c, 0))
	s.Assert().Nil(c.Powers.Current)
	s.Assert().Empty(c.Powers.Pending)
}

func (s *AdapterTestSuite) TestAddPowerWithOption() {
	s.script(16, 100, 1)
	c := powersOpen(rank.Good, engine.Budget{Min: 1, Max: 3}, "Defensive")

	s.Require().NoError(s.adapter.RollPower(c, 0))
	s.Assert().Equal(&engine.RolledPower{
		ClassIndex: 0,
		Class:      "Defensive",
		Name:       "Body Armor",
		Options:    []string{"Resist: Physical Attacks"},
	}, c.Powers.Current)

	s.Require().NoError(s.adapter.AddPower(c, &engine.AddPowerInput{
		Options: []string{"Resist: Physical Attacks"},
	}))
	s.Assert().Equal([]engine.Power{
		{Name: "Body Armor", Rank: rank.Excellent},
		{Name: "Resist: Physical Attacks", Rank: rank.Feeble},
	}, c.Powers.Acquired)
	s.Assert().Equal(2, c.Powers.Budget.Used)
	s.Assert().Empty(c.Powers.Pending)
	s.Assert().Nil(c.Powers.Current)
	s.Assert().False(c.Powers.AboveRemarkable)

	g := c.Gates()
	s.Assert().True(g.GenerateWeakness)
	s.Assert().True(g.RemovePower)
	s.Assert().False(g.AddPower)

	s.Require().NoError(s.adapter.RemovePower(c, 1))
	s.Assert().Equal(1, c.Powers.Budget.Used)
	s.Assert().Len(c.Powers.Acquired, 1)
}

func (s *AdapterTestSuite) TestAddPowerNotEnoughSlots() {
	s.script(16)
	c := powersOpen(rank.Good, engine.Budget{Min: 1, Max: 1}, "Defensive")
	s.Require().NoError(s.adapter.RollPower(c, 0))

	before := c.Clone()
	err := s.adapter.AddPower(c, &engine.AddPowerInput{Options: []string{"Resist: Physical Attacks"}})
	s.Assert().True(errors.IsNotEnoughSlots(err))
	s.assertUnchanged(before, c)

	s.Require().NoError(s.adapter.AddPower(c, nil))
	s.Assert().Equal(1, c.Powers.Budget.Used)
}

func energyBody(c *engine.Character) {
	c.Powers.Current = &engine.RolledPower{
		ClassIndex: 0,
		Class:      "Self-Alteration",
		Name:       "Energy Body",
		Bonus:      []string{"Flight"},
		Options:    []string{catalog.ClassEnergyEmission, catalog.ClassEnergyControl},
	}
}

func (s *AdapterTestSuite) TestAddPowerRequiresBonusSelection() {
	c := powersOpen(rank.Good, engine.Budget{Min: 1, Max: 3}, "Self-Alteration")
	energyBody(c)
	before := c.Clone()

	err := s.adapter.AddPower(c, nil)
	s.Assert().True(errors.IsNoSelectionMade(err))
	s.assertUnchanged(before, c)

	err = s.adapter.AddPower(c, &engine.AddPowerInput{Bonus: []string{"Telepathy"}})
	s.Assert().True(errors.IsInvalidArgument(err))

	err = s.adapter.AddPower(c, &engine.AddPowerInput{
		Bonus:   []string{"Flight"},
		Options: []string{catalog.ClassEnergyControl, catalog.ClassEnergyControl},
	})
	s.Assert().True(errors.IsInvalidArgument(err))
	s.assertUnchanged(before, c)
}

func (s *AdapterTestSuite) TestAddPowerClassGrantOption() {
	c := powersOpen(rank.Good, engine.Budget{Min: 1, Max: 3}, "Self-Alteration")
	energyBody(c)

	s.Require().NoError(s.adapter.AddPower(c, &engine.AddPowerInput{
		Bonus:   []string{"Flight"},
		Options: []string{catalog.ClassEnergyEmission},
	}))
	s.Assert().Equal([]engine.Power{
		{Name: "Energy Body", Rank: rank.Feeble},
		{Name: "Flight", Rank: rank.Feeble},
	}, c.Powers.Acquired)
	s.Assert().Equal([]engine.PendingClass{{Class: catalog.ClassEnergyEmission}}, c.Powers.Pending)
	s.Assert().Equal(2, c.Powers.Budget.Used)
	s.Assert().False(c.Gates().GenerateWeakness)
}

func (s *AdapterTestSuite) TestAddPowerBiophysicalControl() {
	c := powersOpen(rank.Good, engine.Budget{Min: 1, Max: 3}, "Lifeform Control")
	c.Powers.Current = &engine.RolledPower{Class: "Lifeform Control", Name: catalog.BiophysicalControl}

	err := s.adapter.AddPower(c, nil)
	s.Assert().True(errors.IsNoSelectionMade(err))

	err = s.adapter.AddPower(c, &engine.AddPowerInput{Biophysical: "Bogus"})
	s.Assert().True(errors.IsInvalidArgument(err))

	s.script(1, 30)
	s.Require().NoError(s.adapter.AddPower(c, &engine.AddPowerInput{Biophysical: catalog.BiophysicalRandom}))
	s.Assert().Equal([]string{"Biophysical Control* (Regeneration) - Feeble (1)"}, c.PowerLines())
	s.Assert().Equal(2, c.Powers.Budget.Used)
}

func (s *AdapterTestSuite) TestAddPowerEmissionPoint() {
	s.script(1, 15)
	c := powersOpen(rank.Good, engine.Budget{Min: 1, Max: 3}, catalog.ClassEnergyEmission)
	c.Powers.Current = &engine.RolledPower{Class: catalog.ClassEnergyEmission, Name: "Electrical Generation"}

	s.Require().NoError(s.adapter.AddPower(c, nil))
	s.Assert().Equal([]string{"Electrical Generation - Feeble (1); emitted from Head"}, c.PowerLines())
}

func (s *AdapterTestSuite) TestWeaknessFatalNeedsPowerAboveRemarkable() {
	s.script(16, 100, 1, 95, 1)
	c := powersOpen(rank.Good, engine.Budget{Min: 1, Max: 3}, "Defensive")
	c.Form.Table = 1

	s.Require().NoError(s.adapter.RollPower(c, 0))
	s.Require().NoError(s.adapter.AddPower(c, nil))
	s.Require().True(c.Powers.AboveRemarkable)

	s.Require().NoError(s.adapter.GenerateWeakness(c))
	s.Assert().Equal("Elemental Allergy causes Fatal that is Continuous with Contact", c.Weakness)
	s.Assert().Contains(c.Effects.Weaknesses, c.Weakness)
	s.Assert().Equal(engine.PhaseTalents, c.Phase())
}

func (s *AdapterTestSuite) TestWeaknessFatalFallsBackToIncapacitation() {
	s.script(1, 95, 100)
	c := powersOpen(rank.Good, engine.Budget{Min: 1, Max: 3})

	s.Require().NoError(s.adapter.GenerateWeakness(c))
	s.Assert().Equal("Elemental Allergy causes Incapacitation that is Permanent", c.Weakness)

	g := c.Gates()
	s.Assert().False(g.RollPowerClasses)
	s.Assert().False(g.BuyPower)
	s.Assert().False(g.GenerateWeakness)
	s.Assert().True(g.RollTalentClasses)
}

func (s *AdapterTestSuite) TestWeaknessWaitsForPendingClasses() {
	c := powersOpen(rank.Good, engine.Budget{Min: 1, Max: 3}, "Defensive")
	err := s.adapter.GenerateWeakness(c)
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().Empty(c.Weakness)
}

func (s *AdapterTestSuite) TestRollPowerClassesResetsAboveRemarkable() {
	c := rolledCharacter(2, rank.Good)
	c.Powers.AboveRemarkable = true
	s.Require().NoError(s.adapter.RollPowerClasses(c))
	s.Assert().False(c.Powers.AboveRemarkable)
}
