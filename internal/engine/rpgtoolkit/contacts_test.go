package rpgtoolkit_test

import (
	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/engine/catalog"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rank"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

func (s *AdapterTestSuite) TestFormSeedsContacts() {
	c := engine.NewCharacter(rank.ModeMinimum)
	s.Require().NoError(s.adapter.SelectForm(c, 5))
	s.Assert().Equal(1, c.Bonus.InitialContacts)
	s.Assert().Equal([]string{"Humanoid's race"}, c.SeededContacts)
	s.Assert().Equal(2, c.Bonus.ForcedResources)
}

func (s *AdapterTestSuite) TestSingleInitialContactDisablesClassList() {
	s.script(30)
	c := talentsOpen(rank.Good, engine.Budget{Min: 1, Max: 3})
	c.Bonus.InitialContacts = 1
	c.SeededContacts = []string{"Humanoid's race"}

	s.Require().NoError(s.adapter.RollContacts(c))
	s.Assert().Equal(engine.Budget{Min: 1, Max: 4}, c.Contacts.Budget)
	s.Assert().True(c.Contacts.ClassListDisabled)
	s.Assert().Equal([]engine.Contact{{Name: "Humanoid's race", Locked: true}}, c.Contacts.Items)
	s.Assert().Equal(engine.PhaseComplete, c.Phase())

	input := &engine.AddContactInput{Class: "Professional", Contact: "Lawyer"}
	err := s.adapter.AddContact(c, input)
	s.Assert().True(errors.IsFailedPrecondition(err))

	s.Require().NoError(s.adapter.BuyContact(c))
	s.Assert().False(c.Contacts.ClassListDisabled)
	s.Assert().Equal(engine.Budget{Min: 2, Max: 4, Purchased: 1}, c.Contacts.Budget)
	s.Assert().Equal(rank.Typical, c.Resources())
	s.Assert().Equal(engine.PhaseContacts, c.Phase())

	s.Require().NoError(s.adapter.AddContact(c, input))
	s.Assert().Equal([]string{"Humanoid's race", "Lawyer"}, c.ContactNames())
	s.Assert().Equal(engine.PhaseComplete, c.Phase())

	err = s.adapter.AddContact(c, &engine.AddContactInput{Class: "Professional", Contact: "Doctor"})
	s.Assert().True(errors.IsNotEnoughSlots(err))

	err = s.adapter.RemoveContact(c, 0)
	s.Assert().True(errors.IsFailedPrecondition(err))

	s.Require().NoError(s.adapter.RemoveContact(c, 1))
	s.Assert().Equal(engine.Budget{Min: 1, Max: 4}, c.Contacts.Budget)
	s.Assert().Equal(rank.Good, c.Resources())
	s.Assert().Len(c.Contacts.Items, 1)
}

func (s *AdapterTestSuite) TestNoInitialContactsForcesMinimumToZero() {
	s.script(50)
	c := talentsOpen(rank.Good, engine.Budget{Min: 1, Max: 3})
	c.Bonus.InitialContacts = 0

	s.Require().NoError(s.adapter.RollContacts(c))
	s.Assert().Equal(engine.Budget{Min: 0, Max: 4}, c.Contacts.Budget)
	s.Assert().False(c.Contacts.ClassListDisabled)
	s.Assert().Empty(c.Contacts.Items)

	err := s.adapter.AddContact(c, &engine.AddContactInput{Class: "Mystic", Contact: "Psychic"})
	s.Assert().True(errors.IsNotEnoughSlots(err))
}

func (s *AdapterTestSuite) TestFormWithoutContactNoteKeepsRolledMinimum() {
	c := engine.NewCharacter(rank.ModeMinimum)
	s.Require().NoError(s.adapter.SelectForm(c, catalog.FormNormalHuman))
	s.Require().Equal(engine.NoneSelected, c.Bonus.InitialContacts)

	s.script(50)
	ready := talentsOpen(rank.Good, engine.Budget{Min: 1, Max: 3})
	ready.Bonus = c.Bonus
	s.Require().NoError(s.adapter.RollContacts(ready))
	s.Assert().Equal(engine.Budget{Min: 2, Max: 4}, ready.Contacts.Budget)
	s.Assert().False(ready.Contacts.ClassListDisabled)
	s.Assert().Empty(ready.Contacts.Items)
	s.Assert().Equal(engine.PhaseContacts, ready.Phase())

	s.Require().NoError(s.adapter.AddContact(ready, &engine.AddContactInput{Class: "Mystic", Contact: "Psychic"}))
	s.Assert().Equal(engine.PhaseContacts, ready.Phase())
}

func (s *AdapterTestSuite) TestSeveralInitialContacts() {
	s.Run("rolled minimum is kept", func() {
		s.script(50)
		c := talentsOpen(rank.Good, engine.Budget{Min: 1, Max: 3})
		c.Bonus.InitialContacts = 2
		c.SeededContacts = []string{"Android's creator"}

		s.Require().NoError(s.adapter.RollContacts(c))
		s.Assert().Equal(engine.Budget{Min: 2, Max: 4}, c.Contacts.Budget)
		s.Assert().False(c.Contacts.ClassListDisabled)
		s.Assert().Equal([]engine.Contact{{Name: "Android's creator", Locked: true}}, c.Contacts.Items)
		s.Assert().Equal(engine.PhaseContacts, c.Phase())
	})

	s.Run("granted contact covers a minimum of one", func() {
		s.script(30)
		c := talentsOpen(rank.Good, engine.Budget{Min: 1, Max: 3})
		c.Bonus.InitialContacts = 2
		c.SeededContacts = []string{"Human contact"}

		s.Require().NoError(s.adapter.RollContacts(c))
		s.Assert().Equal(engine.Budget{Min: 1, Max: 4}, c.Contacts.Budget)
		s.Assert().True(c.Contacts.ClassListDisabled)
		s.Assert().Equal(engine.PhaseComplete, c.Phase())

		err := s.adapter.AddContact(c, &engine.AddContactInput{Class: "Mystic", Contact: "Psychic"})
		s.Assert().True(errors.IsFailedPrecondition(err))
	})
}

func (s *AdapterTestSuite) TestAddContactValidatesMembership() {
	s.script(50)
	c := talentsOpen(rank.Good, engine.Budget{Min: 1, Max: 3})
	c.Bonus.InitialContacts = 2
	c.SeededContacts = []string{"Android's creator"}

	s.Require().NoError(s.adapter.RollContacts(c))
	s.Assert().Equal(engine.Budget{Min: 2, Max: 4}, c.Contacts.Budget)
	before := c.Clone()

	testCases := []struct {
		name  string
		input *engine.AddContactInput
		check func(error) bool
	}{
		{name: "nothing chosen", input: &engine.AddContactInput{Class: "Mystic"}, check: errors.IsNoSelectionMade},
		{name: "unknown class", input: &engine.AddContactInput{Class: "Cosmic", Contact: "Psychic"}, check: errors.IsInvalidArgument},
		{name: "wrong class", input: &engine.AddContactInput{Class: "Political", Contact: "Psychic"}, check: errors.IsInvalidArgument},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.adapter.AddContact(c, tc.input)
			s.Assert().True(tc.check(err), "got %v", err)
			s.assertUnchanged(before, c)
		})
	}

	s.Require().NoError(s.adapter.AddContact(c, &engine.AddContactInput{Class: "Mystic", Contact: "Psychic"}))
	s.Assert().Equal("Mystic", c.Contacts.Items[1].Class)
}

func (s *AdapterTestSuite) TestAddContactRejectsDuplicates() {
	s.script(90)
	c := talentsOpen(rank.Good, engine.Budget{Min: 1, Max: 3})
	c.Bonus.InitialContacts = 2

	s.Require().NoError(s.adapter.RollContacts(c))
	input := &engine.AddContactInput{Class: "Scientific", Contact: "Inventor"}
	s.Require().NoError(s.adapter.AddContact(c, input))
	err := s.adapter.AddContact(c, input)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *AdapterTestSuite) TestBuyContactLimits() {
	s.Run("minimum at max", func() {
		s.script(70)
		c := talentsOpen(rank.Good, engine.Budget{Min: 1, Max: 3})
		c.Bonus.InitialContacts = 2
		s.Require().NoError(s.adapter.RollContacts(c))
		s.Require().Equal(engine.Budget{Min: 3, Max: 3}, c.Contacts.Budget)

		err := s.adapter.BuyContact(c)
		s.Assert().True(errors.IsNoSlotAvailable(err))
	})

	s.Run("insufficient resources", func() {
		s.script(50)
		c := talentsOpen(rank.ShiftZero, engine.Budget{Min: 1, Max: 3})
		s.Require().NoError(s.adapter.RollContacts(c))

		before := c.Clone()
		err := s.adapter.BuyContact(c)
		s.Assert().True(errors.IsInsufficientResources(err))
		s.assertUnchanged(before, c)
	})
}
