package autopilot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/engine/autopilot"
	"github.com/KirkDiggler/msh-chargen/internal/engine/catalog"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rank"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
	"github.com/KirkDiggler/msh-chargen/internal/testutils"
)

type AutopilotTestSuite struct {
	suite.Suite
	roller *testutils.ScriptedRoller
	eng    engine.Engine
}

func TestAutopilotSuite(t *testing.T) {
	suite.Run(t, new(AutopilotTestSuite))
}

func (s *AutopilotTestSuite) SetupTest() {
	s.roller = testutils.NewScriptedRoller()
	eng, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: s.roller})
	s.Require().NoError(err)
	s.eng = eng
}

func (s *AutopilotTestSuite) TestDeityDropsClassesThatDoNotFit() {
	c := engine.NewCharacter(rank.ModeMinimum)

	err := autopilot.Run(s.eng, c, &autopilot.Options{Roller: s.roller, Form: "Deity"})
	s.Require().NoError(err)

	s.Assert().Equal(engine.PhaseComplete, c.Phase())
	s.Assert().Equal([]string{"Astral Body", "Absorption Power*"},
		[]string{c.Powers.Acquired[0].Name, c.Powers.Acquired[1].Name})
	s.Assert().Equal(3, c.Powers.Budget.Used)
	s.Assert().Empty(c.Powers.Pending)
	s.Assert().Equal("Elemental Allergy causes Power Negation that is Continuous with Contact", c.Weakness)
}

func (s *AutopilotTestSuite) TestSpendsAbilityBonusAndKeepsSeededContact() {
	c := engine.NewCharacter(rank.ModeMinimum)

	err := autopilot.Run(s.eng, c, &autopilot.Options{Roller: s.roller, Form: "humanoid"})
	s.Require().NoError(err)

	s.Assert().Equal(engine.PhaseComplete, c.Phase())
	s.Assert().Equal(0, c.Bonus.AbilityBonus)
	s.Assert().Equal(1, c.Abilities[catalog.AbilityFighting].Raised)
	s.Assert().Equal(rank.Poor, c.Resources())
	s.Assert().Equal([]string{"Humanoid's race"}, c.ContactNames())
}

func (s *AutopilotTestSuite) TestRandomCompoundSettles() {
	// physical form roll lands on Compound, two sub-forms: Demihuman-Avian, Normal Human
	s.roller.Push(98, 1, 1, 1, 1, 1, 1, 1, 66, 1)
	c := engine.NewCharacter(rank.ModeMinimum)

	err := autopilot.Run(s.eng, c, &autopilot.Options{Roller: s.roller})
	s.Require().NoError(err)

	s.Assert().Equal(catalog.FormCompound, c.Form.ID)
	s.Assert().False(c.FormPending())
	s.Assert().NotZero(c.AbilityTable())
	s.Assert().Equal(engine.PhaseComplete, c.Phase())
}

func (s *AutopilotTestSuite) TestValidation() {
	c := engine.NewCharacter(rank.ModeMinimum)

	err := autopilot.Run(s.eng, c, nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	err = autopilot.Run(s.eng, c, &autopilot.Options{})
	s.Assert().True(errors.IsInvalidArgument(err))

	err = autopilot.Run(nil, c, &autopilot.Options{Roller: s.roller})
	s.Assert().True(errors.IsInvalidArgument(err))

	err = autopilot.Run(s.eng, c, &autopilot.Options{Roller: s.roller, Form: "Nothing Like It"})
	s.Assert().True(errors.IsNotFound(err))
}
