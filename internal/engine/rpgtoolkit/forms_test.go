package rpgtoolkit_test

import (
	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/engine/catalog"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rank"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

func (s *AdapterTestSuite) TestSelectFormDeity() {
	c := engine.NewCharacter(rank.ModeMinimum)

	s.Require().NoError(s.adapter.SelectForm(c, catalog.FormDeity))

	s.Assert().Equal("Natal", c.Origin)
	s.Assert().Equal(5, c.AbilityTable())
	s.Assert().False(c.FormPending())
	s.Assert().Equal(engine.PhaseAbilities, c.Phase())
	s.Assert().Equal(2, c.Bonus.PowerBonus)
	s.Assert().True(c.Bonus.DeityTravel)
	for _, ab := range catalog.AbilityOrder {
		if ab.Primary() {
			s.Assert().Equal(2, c.Bonus.Abilities[ab], ab)
		}
	}
	s.Assert().Len(c.Effects.Bonuses, 3)
	s.Assert().Len(c.Effects.Penalties, 1)
	s.Assert().Len(c.Effects.Notes, 3)

	s.Require().NoError(s.adapter.RollAbilities(c))
	s.Assert().Equal(rank.Typical, c.Rank(catalog.AbilityFighting))
	s.Assert().Equal(rank.Feeble, c.Resources())

	s.Require().NoError(s.adapter.RollPowerClasses(c))
	s.Require().Len(c.Powers.Acquired, 1)
	s.Assert().Equal(engine.Power{Name: "Astral Body", Rank: rank.Feeble, Locked: true}, c.Powers.Acquired[0])
	s.Assert().Equal(engine.Budget{Min: 3, Max: 3, Used: 1}, c.Powers.Budget)
	s.Assert().Len(c.Powers.Pending, 3)
	s.Assert().Equal(engine.PhasePowers, c.Phase())
}

func (s *AdapterTestSuite) TestSelectFormRejectsUnknownForm() {
	c := engine.NewCharacter(rank.ModeMinimum)
	err := s.adapter.SelectForm(c, 99)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Nil(c.Form)
}

func (s *AdapterTestSuite) TestSelectFormResetsLaterPhases() {
	c := powersOpen(rank.Good, engine.Budget{Min: 1, Max: 3}, "Defensive")
	c.Profile.Name = "Kestrel"
	c.ScoringMode = rank.ModeStandard

	s.Require().NoError(s.adapter.SelectForm(c, catalog.FormNormalHuman))

	s.Assert().Equal("Kestrel", c.Profile.Name)
	s.Assert().Equal(rank.ModeStandard, c.ScoringMode)
	s.Assert().False(c.AbilitiesRolled())
	s.Assert().False(c.Powers.Rolled)
	s.Assert().Equal(1, c.Bonus.Abilities[catalog.AbilityResources])
}

func (s *AdapterTestSuite) TestRandomForm() {
	s.script(100)
	c := engine.NewCharacter(rank.ModeMinimum)

	s.Require().NoError(s.adapter.RandomForm(c))
	s.Assert().Equal(42, c.Form.ID)
}

func (s *AdapterTestSuite) TestCoinFlipGatesTextOnly() {
	s.Run("odd flip hides the text", func() {
		s.script(1, 1, 1, 1, 1, 1, 1, 1)
		c := engine.NewCharacter(rank.ModeMinimum)
		s.Require().NoError(s.adapter.SelectForm(c, 18))
		s.Assert().Equal([]string{"Lamians are difficult to bind (+1CS to escape); "}, c.Effects.Notes)
		s.Assert().Equal(0, c.Bonus.ForcedPopularity)
	})

	s.Run("even flip shows the text", func() {
		s.script(1, 1, 1, 2, 1, 1, 1, 1)
		c := engine.NewCharacter(rank.ModeMinimum)
		s.Require().NoError(s.adapter.SelectForm(c, 18))
		s.Assert().Len(c.Effects.Notes, 2)
		s.Assert().Equal(0, s.roller.Remaining())
	})
}

func (s *AdapterTestSuite) TestOptionSetsAbilityTable() {
	c := engine.NewCharacter(rank.ModeMinimum)
	s.Require().NoError(s.adapter.SelectForm(c, catalog.FormDemihumanAvian))
	s.Assert().True(c.FormPending())
	s.Assert().True(c.Gates().SelectOption)

	err := s.adapter.RollAbilities(c)
	s.Assert().True(errors.IsFailedPrecondition(err))

	before := c.Clone()
	err = s.adapter.SelectOption(c, 5)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.assertUnchanged(before, c)

	s.Require().NoError(s.adapter.SelectOption(c, 1))
	s.Assert().Equal(1, c.Form.Option)
	s.Assert().Equal(2, c.AbilityTable())
	s.Assert().Equal(1, c.Bonus.Abilities[catalog.AbilityFighting])
	s.Assert().False(c.FormPending())
	s.Assert().False(c.Gates().SelectOption)
	s.Assert().True(c.Gates().RollAbilities)
}

func (s *AdapterTestSuite) TestCompoundLastSubFormFixesTable() {
	s.script(
		// origin, five form slots, sub-form count 3
		1, 100, 100, 100, 100, 100, 60,
		// Normal Human, Mutant-Induced, Mutant-Breed
		1, 30, 35,
		// first sub-form: four slots, table chance misses
		100, 100, 100, 100, 100,
		// second sub-form: four slots, table chance misses
		100, 100, 100, 100, 100,
		// last sub-form: six slots, table forced
		100, 100, 100, 100, 100, 100,
	)
	c := engine.NewCharacter(rank.ModeMinimum)

	s.Require().NoError(s.adapter.SelectForm(c, catalog.FormCompound))
	cs := c.Form.Compound
	s.Require().NotNil(cs)
	s.Require().Len(cs.SubForms, 3)
	s.Assert().Equal([]int{0, 1, 3}, []int{cs.SubForms[0].ID, cs.SubForms[1].ID, cs.SubForms[2].ID})
	s.Assert().Equal(0, c.AbilityTable())
	s.Assert().Equal(-1, c.Bonus.Abilities[catalog.AbilityPopularity])

	g := c.Gates()
	s.Assert().True(g.ResolveSubForm)
	s.Assert().False(g.SelectOption)
	s.Assert().False(g.RollAbilities)

	s.Require().NoError(s.adapter.ResolveSubForm(c, 1))
	s.Require().NoError(s.adapter.ResolveSubForm(c, 0))
	s.Assert().Equal(0, c.AbilityTable())

	err := s.adapter.ResolveSubForm(c, 0)
	s.Assert().True(errors.IsInvalidArgument(err))

	s.Require().NoError(s.adapter.ResolveSubForm(c, 2))
	s.Assert().Equal(1, c.AbilityTable())
	s.Assert().Equal(0, s.roller.Remaining())

	cs = c.Form.Compound
	s.Assert().Equal(2, cs.SubForms[0].Order)
	s.Assert().Equal(1, cs.SubForms[1].Order)
	s.Assert().Equal(3, cs.SubForms[2].Order)
	s.Assert().False(c.FormPending())
	s.Assert().True(c.Gates().RollAbilities)
	s.Assert().Empty(c.Effects.Bonuses)
}

func (s *AdapterTestSuite) TestCompoundTableFixedByChance() {
	s.script(
		1, 100, 100, 100, 100, 100, 60,
		1, 30, 35,
		// first sub-form wins the table at 33 of 100
		100, 100, 100, 100, 33,
		// later sub-forms roll no table chance
		100, 100, 100, 100,
		100, 100, 100, 100, 100, 100,
	)
	c := engine.NewCharacter(rank.ModeMinimum)

	s.Require().NoError(s.adapter.SelectForm(c, catalog.FormCompound))
	for i := range c.Form.Compound.SubForms {
		s.Require().NoError(s.adapter.ResolveSubForm(c, i))
	}
	s.Assert().Equal(2, c.AbilityTable())
	s.Assert().Equal(0, s.roller.Remaining())
}

func (s *AdapterTestSuite) TestCompoundSubFormOption() {
	s.script(
		// origin, five slots, two sub-forms: Demihuman-Avian, Normal Human
		1, 100, 100, 100, 100, 100, 1, 66, 1,
		// Avian has only the three trailing slots
		100, 100, 100,
		// Angelic: table chance at 50 of 2 wins, then its chanced bonus misses
		50, 100,
		// Normal Human slots
		100, 100, 100, 100,
	)
	c := engine.NewCharacter(rank.ModeMinimum)
	s.Require().NoError(s.adapter.SelectForm(c, catalog.FormCompound))

	s.Require().NoError(s.adapter.ResolveSubForm(c, 0))
	g := c.Gates()
	s.Assert().True(g.SelectOption)
	s.Assert().False(g.ResolveSubForm)
	s.Assert().Equal(0, c.Form.Compound.Pending)
	s.Assert().Equal(0, c.AbilityTable())

	s.Require().NoError(s.adapter.SelectOption(c, 0))
	s.Assert().Equal(3, c.AbilityTable())
	s.Assert().Equal(engine.NoneSelected, c.Form.Compound.Pending)
	s.Assert().True(c.Form.Compound.SubForms[0].Resolved)
	s.Assert().Equal(0, c.Form.Compound.SubForms[0].Option)
	s.Assert().Equal(-1, c.Bonus.Abilities[catalog.AbilityPopularity])

	s.Require().NoError(s.adapter.ResolveSubForm(c, 1))
	s.Assert().Equal(3, c.AbilityTable())
	s.Assert().False(c.FormPending())
	s.Assert().Equal(0, s.roller.Remaining())
}

func (s *AdapterTestSuite) TestChangelingKeepsItsTable() {
	c := engine.NewCharacter(rank.ModeMinimum)
	s.Require().NoError(s.adapter.SelectForm(c, catalog.FormChangeling))
	s.Assert().Equal(catalog.ChangelingAbilityTable, c.AbilityTable())
	s.Require().Len(c.Form.Compound.SubForms, 2)

	s.Require().NoError(s.adapter.ResolveSubForm(c, 0))
	s.Require().NoError(s.adapter.ResolveSubForm(c, 1))
	s.Assert().Equal(catalog.ChangelingAbilityTable, c.AbilityTable())
	s.Assert().Len(c.Effects.Bonuses, 2)
	s.Assert().False(c.FormPending())
}
