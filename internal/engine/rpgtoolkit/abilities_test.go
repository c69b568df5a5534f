package rpgtoolkit_test

import (
	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/engine/catalog"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rank"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

func (s *AdapterTestSuite) TestRollAbilitiesClampsAtFeeble() {
	c := engine.NewCharacter(rank.ModeMinimum)
	s.Require().NoError(s.adapter.SelectForm(c, 32))
	s.Require().NoError(s.adapter.RollAbilities(c))

	fighting := c.Abilities[catalog.AbilityFighting]
	s.Assert().Equal(rank.Feeble, fighting.TableRank)
	s.Assert().Equal(-2, fighting.Bonus)
	s.Assert().Equal(rank.Feeble, fighting.Rank)
	s.Assert().Equal(rank.Typical, c.Rank(catalog.AbilityEndurance))

	// a forced rank is assigned, not clamped
	s.Assert().Equal(rank.ShiftZero, c.Resources())
	s.Assert().Equal(rank.ShiftZero, c.OriginalResources)
}

func (s *AdapterTestSuite) TestRollAbilitiesScores() {
	s.script(1, 1, 1, 1, 1, 97, 41, 61, 81, 11, 6, 1, 1)
	c := engine.NewCharacter(rank.ModeMinimum)
	s.Require().NoError(s.adapter.SelectForm(c, 1))
	s.Require().NoError(s.adapter.RollAbilities(c))

	s.Assert().Equal(rank.Amazing, c.Rank(catalog.AbilityFighting))
	s.Assert().Equal(rank.Excellent, c.Rank(catalog.AbilityAgility))
	s.Assert().Equal(rank.Remarkable, c.Rank(catalog.AbilityStrength))
	s.Assert().Equal(rank.Incredible, c.Rank(catalog.AbilityEndurance))
	s.Assert().Equal(rank.Typical, c.Rank(catalog.AbilityReason))
	s.Assert().Equal(rank.Poor, c.Rank(catalog.AbilityIntuition))
	s.Assert().Equal(46+16+26+36, c.Health())
	s.Assert().Equal(5+3+1, c.Karma())

	s.Require().NoError(s.adapter.SetScoringMode(c, rank.ModeStandard))
	s.Assert().Equal(50+20+30+40, c.Health())
	s.Assert().Equal(6+4+2, c.Karma())
}

func (s *AdapterTestSuite) TestHealthMultiplier() {
	c := rolledCharacter(2, rank.Good)
	c.Bonus.HealthMultiplier = 2
	s.Assert().Equal(2*4*5, c.Health())
}

func (s *AdapterTestSuite) TestRaiseAbility() {
	c := engine.NewCharacter(rank.ModeMinimum)
	s.Require().NoError(s.adapter.SelectForm(c, 1))
	s.Require().Equal(1, c.Bonus.AbilityBonus)

	err := s.adapter.RaiseAbility(c, catalog.AbilityStrength)
	s.Assert().True(errors.IsFailedPrecondition(err))

	s.Require().NoError(s.adapter.RollAbilities(c))
	g := c.Gates()
	s.Assert().True(g.RaiseAbility)
	s.Assert().False(g.RollPowerClasses)

	err = s.adapter.RaiseAbility(c, catalog.AbilityResources)
	s.Assert().True(errors.IsInvalidArgument(err))

	s.Require().NoError(s.adapter.RaiseAbility(c, catalog.AbilityStrength))
	s.Assert().Equal(rank.Poor, c.Rank(catalog.AbilityStrength))
	s.Assert().Equal(0, c.Bonus.AbilityBonus)
	s.Assert().Equal(1, c.BonusesSpent)
	s.Assert().True(c.Gates().RollPowerClasses)

	before := c.Clone()
	err = s.adapter.RaiseAbility(c, catalog.AbilityStrength)
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.assertUnchanged(before, c)

	s.Require().NoError(s.adapter.RollAbilities(c))
	s.Assert().Equal(1, c.Bonus.AbilityBonus)
	s.Assert().Equal(0, c.BonusesSpent)
	s.Assert().Equal(rank.Feeble, c.Rank(catalog.AbilityStrength))
}

func (s *AdapterTestSuite) TestRollAbilitiesClosedAfterPowers() {
	c := powersOpen(rank.Good, engine.Budget{Min: 1, Max: 3}, "Defensive")
	err := s.adapter.RollAbilities(c)
	s.Assert().True(errors.IsFailedPrecondition(err))
}
