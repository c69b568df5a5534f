// Package sheet renders a character as the flat text character sheet.
package sheet

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/engine/catalog"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rank"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

const gap = "     "

var title = cases.Title(language.English)

// Render returns the sheet text
func Render(c *engine.Character) (string, error) {
	var b strings.Builder
	if err := Write(&b, c); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Write prints the sheet of c to w
func Write(w io.Writer, c *engine.Character) error {
	if c == nil {
		return errors.InvalidArgument("character is required")
	}
	form, err := FormName(c)
	if err != nil {
		return err
	}

	p := &printer{w: w}
	p.linef("NAME: %s", c.Profile.Name)
	p.line(strings.TrimRight(fmt.Sprintf("IDENTITY: %s   %s", c.Profile.Identity, identityStatus(c.Profile)), " "))
	p.linef("SEX: %s%sAGE: %s", c.Profile.Sex, gap, c.Profile.Age)
	p.linef("GROUP AFFILIATION: %s%sBASE OF OPERATIONS: %s", c.Profile.Group, gap, c.Profile.Base)
	p.line("")
	p.linef("PHYSICAL FORM: %s", form)
	p.linef("ORIGIN OF POWER: %s", c.Origin)
	p.linef("Bonuses: %s", joinEffects(c.Effects.Bonuses))
	p.linef("Penalties: %s", joinEffects(c.Effects.Penalties))
	p.linef("Weaknesses: %s", joinEffects(c.Effects.Weaknesses))
	p.linef("Notes: %s", joinEffects(c.Effects.Notes))
	p.line("")
	p.line("")

	p.line("ATTRIBUTES:")
	for _, ab := range catalog.AbilityOrder {
		if ab.Primary() {
			p.linef("%s: %s", title.String(string(ab)), rankText(c, ab))
		}
	}
	p.line("")
	p.linef("Health: %d%sKarma: %d%sResources: %s%sPopularity: %s",
		c.Health(), gap, c.Karma(), gap,
		rankText(c, catalog.AbilityResources), gap,
		rankText(c, catalog.AbilityPopularity))

	p.section("POWERS", c.PowerLines())
	p.section("TALENTS", c.Talents.Acquired)
	p.section("CONTACTS", c.ContactNames())
	return p.err
}

// FormName renders the physical form with its option, or a composite with
// its sub-forms in the order they were resolved
func FormName(c *engine.Character) (string, error) {
	if c.Form == nil {
		return "", nil
	}
	form, err := catalog.FormByID(c.Form.ID)
	if err != nil {
		return "", err
	}

	if cs := c.Form.Compound; cs != nil {
		subs := make([]engine.SubForm, 0, len(cs.SubForms))
		for _, sf := range cs.SubForms {
			if sf.Resolved {
				subs = append(subs, sf)
			}
		}
		sort.SliceStable(subs, func(i, j int) bool { return subs[i].Order < subs[j].Order })

		parts := make([]string, 0, len(subs))
		for _, sf := range subs {
			sub, err := catalog.FormByID(sf.ID)
			if err != nil {
				return "", err
			}
			parts = append(parts, withOption(sub, sf.Option))
		}
		return fmt.Sprintf("%s Form: %s", form.Name, strings.Join(parts, ", ")), nil
	}
	return withOption(form, c.Form.Option), nil
}

func withOption(f *catalog.Form, option int) string {
	if option < 0 || option >= len(f.Options) {
		return f.Name
	}
	return fmt.Sprintf("%s (%s)", f.Name, f.Options[option].Name)
}

// identityStatus is blank until the player picks one
func identityStatus(p engine.Profile) string {
	switch {
	case p.Secret:
		return "(Secret)"
	case p.Public:
		return "(Public)"
	default:
		return ""
	}
}

func rankText(c *engine.Character, ab catalog.Ability) string {
	if !c.AbilitiesRolled() {
		return ""
	}
	idx := c.Rank(ab)
	return fmt.Sprintf("%s (%d)", rank.Standard.Name(idx), rank.Standard.Score(idx, c.ScoringMode))
}

func joinEffects(texts []string) string {
	return strings.TrimSpace(strings.Join(texts, ""))
}

// printer keeps the first write error
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s+"\n")
}

func (p *printer) linef(format string, args ...interface{}) {
	p.line(fmt.Sprintf(format, args...))
}

func (p *printer) section(name string, lines []string) {
	p.line("")
	p.line("")
	p.line(name + ":")
	for _, l := range lines {
		p.line(l)
	}
}
