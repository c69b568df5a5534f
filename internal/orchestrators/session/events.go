package session

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/entities"
)

// Phase events published when a session first reaches a milestone. The
// session is the event source.
const (
	EventFormSelected      = "msh.phase.form_selected"
	EventAbilitiesRolled   = "msh.phase.abilities_rolled"
	EventPowersReady       = "msh.phase.powers_ready"
	EventWeaknessGenerated = "msh.phase.weakness_generated"
	EventTalentsReady      = "msh.phase.talents_ready"
	EventContactsReady     = "msh.phase.contacts_ready"
)

// PhaseEvents lists the phase events in generation order
var PhaseEvents = []string{
	EventFormSelected,
	EventAbilitiesRolled,
	EventPowersReady,
	EventWeaknessGenerated,
	EventTalentsReady,
	EventContactsReady,
}

// milestones reports, per entry of PhaseEvents, whether c has reached it
func milestones(c *engine.Character) []bool {
	return []bool{
		c.Form != nil && !c.FormPending(),
		c.AbilitiesRolled(),
		c.Powers.Rolled && len(c.Powers.Pending) == 0,
		c.Weakness != "",
		c.Talents.Rolled && len(c.Talents.Pending) == 0,
		c.Phase() == engine.PhaseComplete,
	}
}

// publishReached publishes every milestone reached since before. Publish
// failures are logged; the action has already been saved.
func (o *orchestrator) publishReached(ctx context.Context, sess *entities.Session, before []bool) {
	after := milestones(sess.Character)
	for i, reached := range after {
		if !reached || before[i] {
			continue
		}
		event := events.NewGameEvent(PhaseEvents[i], sess, nil)
		if err := o.eventBus.Publish(ctx, event); err != nil {
			o.logger.WarnContext(ctx, "failed to publish phase event",
				"session_id", sess.ID, "event", PhaseEvents[i], "error", err)
		}
	}
}

// LogPhaseEvents subscribes logger to every phase event and returns the
// subscription IDs
func LogPhaseEvents(bus events.EventBus, logger *slog.Logger) []string {
	ids := make([]string, 0, len(PhaseEvents))
	for _, name := range PhaseEvents {
		ids = append(ids, bus.SubscribeFunc(name, 0, func(ctx context.Context, e events.Event) error {
			sessionID := ""
			if src := e.Source(); src != nil {
				sessionID = src.GetID()
			}
			logger.InfoContext(ctx, "phase reached", "event", e.Type(), "session_id", sessionID)
			return nil
		}))
	}
	return ids
}
