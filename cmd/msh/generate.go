package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/engine/autopilot"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rank"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/msh-chargen/internal/engine/sheet"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
	"github.com/KirkDiggler/msh-chargen/internal/pkg/rng"
)

var (
	genSeed    int64
	genForm    string
	genScoring string
	genName    string
	genOut     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a complete character and print its sheet",
	Long:  `Generate a character with random choices at every step. --seed makes the result reproducible.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "Seed for reproducible rolls")
	generateCmd.Flags().StringVar(&genForm, "form", "", "Physical form ID, name or prefix (rolled when empty)")
	generateCmd.Flags().StringVar(&genScoring, "scoring", "minimum", "Scoring mode: minimum or standard")
	generateCmd.Flags().StringVar(&genName, "name", "", "Character name")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "Write the sheet to a file instead of stdout")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	mode, err := rank.ParseMode(genScoring)
	if err != nil {
		return err
	}

	var roller dice.Roller = dice.DefaultRoller
	if cmd.Flags().Changed("seed") {
		roller = rng.NewSeeded(genSeed)
	}

	c := engine.NewCharacter(mode)
	c.Profile.Name = genName
	if err := generate(roller, c, genForm); err != nil {
		return err
	}

	if genOut == "" {
		return sheet.Write(cmd.OutOrStdout(), c)
	}
	return writeSheetFile(genOut, c)
}

// generate runs the autopilot on c with roller driving both the rules and
// the choices
func generate(roller dice.Roller, c *engine.Character, form string) error {
	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: roller})
	if err != nil {
		return err
	}
	return autopilot.Run(adapter, c, &autopilot.Options{Roller: roller, Form: form})
}

func writeSheetFile(path string, c *engine.Character) (err error) {
	f, err := os.Create(path) // #nosec G304 -- path is the user's own output flag
	if err != nil {
		return errors.SaveFailed(err, fmt.Sprintf("could not create %s", path))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.SaveFailed(cerr, fmt.Sprintf("could not close %s", path))
		}
	}()

	if err := sheet.Write(f, c); err != nil {
		return errors.SaveFailed(err, fmt.Sprintf("could not write %s", path))
	}
	return nil
}
