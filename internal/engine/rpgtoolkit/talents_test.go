package rpgtoolkit_test

import (
	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rank"
	"github.com/KirkDiggler/msh-chargen/internal/engine/table"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

func (s *AdapterTestSuite) TestRollTalentClassesNeedsWeakness() {
	c := powersOpen(rank.Good, engine.Budget{Min: 1, Max: 3})
	err := s.adapter.RollTalentClasses(c)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *AdapterTestSuite) TestTalentFlow() {
	s.script(30, 1, 10)
	c := powersOpen(rank.Good, engine.Budget{Min: 1, Max: 3})
	c.Weakness = "Psychological causes Power Negation that is Permanent"

	s.Require().NoError(s.adapter.RollTalentClasses(c))
	s.Assert().Equal(engine.Budget{Min: 1, Max: 6}, c.Talents.Budget)
	s.Assert().Equal([]engine.PendingClass{{Class: "Weapon Skills"}}, c.Talents.Pending)
	s.Assert().False(c.Gates().RollContacts)

	s.Require().NoError(s.adapter.RollTalent(c, 0))
	sizes := s.roller.Sizes()
	s.Assert().Equal(table.D10, sizes[len(sizes)-1])
	s.Require().NotNil(c.Talents.Current)
	s.Assert().Equal([]string{"Oriental Weapons", "Marksman*", "Weapons Master*", "Weapon Specialist*"},
		c.Talents.Current.Choices)

	before := c.Clone()
	err := s.adapter.AddTalent(c, "")
	s.Assert().True(errors.IsNoSelectionMade(err))
	err = s.adapter.AddTalent(c, "Guns")
	s.Assert().True(errors.IsInvalidArgument(err))
	s.assertUnchanged(before, c)

	s.Require().NoError(s.adapter.AddTalent(c, "Marksman*"))
	s.Assert().Equal([]string{"Marksman*"}, c.Talents.Acquired)
	s.Assert().Equal(2, c.Talents.Budget.Used)
	s.Assert().Empty(c.Talents.Pending)
	s.Assert().Nil(c.Talents.Current)
	s.Assert().True(c.Gates().RollContacts)

	s.Require().NoError(s.adapter.RemoveTalent(c, 0))
	s.Assert().Equal(0, c.Talents.Budget.Used)
	s.Assert().Empty(c.Talents.Acquired)
}

func (s *AdapterTestSuite) TestBuyAndRemoveTalentClassAreSymmetric() {
	s.script(30)
	c := talentsOpen(rank.Good, engine.Budget{Min: 1, Max: 6}, "Weapon Skills")
	before := c.Clone()

	s.Require().NoError(s.adapter.BuyTalent(c))
	s.Assert().Equal(rank.Typical, c.Resources())
	s.Assert().Equal(engine.Budget{Min: 2, Max: 6, Purchased: 1}, c.Talents.Budget)
	s.Assert().Equal(engine.PendingClass{Class: "Fighting Skills", Purchased: true}, c.Talents.Pending[1])

	s.Require().NoError(s.adapter.RemoveTalentClass(c, 1))
	s.Assert().Equal(before, c)
}

func (s *AdapterTestSuite) TestBuyTalentLimits() {
	s.Run("insufficient resources", func() {
		c := talentsOpen(rank.ShiftZero, engine.Budget{Min: 1, Max: 6}, "Weapon Skills")
		err := s.adapter.BuyTalent(c)
		s.Assert().True(errors.IsInsufficientResources(err))
	})

	s.Run("no slot", func() {
		c := talentsOpen(rank.Good, engine.Budget{Min: 4, Max: 4}, "Weapon Skills")
		before := c.Clone()
		err := s.adapter.BuyTalent(c)
		s.Assert().True(errors.IsNoSlotAvailable(err))
		s.assertUnchanged(before, c)
	})
}

func (s *AdapterTestSuite) TestAddTalentNotEnoughSlots() {
	c := talentsOpen(rank.Good, engine.Budget{Min: 1, Max: 1}, "Weapon Skills")
	c.Talents.Current = &engine.RolledTalent{
		Class:   "Weapon Skills",
		Choices: []string{"Oriental Weapons", "Marksman*"},
	}
	before := c.Clone()

	err := s.adapter.AddTalent(c, "Marksman*")
	s.Assert().True(errors.IsNotEnoughSlots(err))
	s.assertUnchanged(before, c)

	s.Require().NoError(s.adapter.AddTalent(c, "Oriental Weapons"))
	s.Assert().Equal(1, c.Talents.Budget.Used)
}

func (s *AdapterTestSuite) TestTalentsCloseOnceContactsRoll() {
	c := talentsOpen(rank.Good, engine.Budget{Min: 0, Max: 3})
	s.Require().NoError(s.adapter.RollContacts(c))

	g := c.Gates()
	s.Assert().False(g.BuyTalent)
	s.Assert().False(g.RollTalentClasses)
	err := s.adapter.RollTalentClasses(c)
	s.Assert().True(errors.IsFailedPrecondition(err))
}
