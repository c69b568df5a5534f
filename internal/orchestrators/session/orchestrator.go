// Package session implements the generation session orchestrator. It
// loads a session, applies one engine action, persists the result and
// announces completed phases on the event bus.
package session

//go:generate mockgen -destination=mock/mock_service.go -package=sessionmock github.com/KirkDiggler/msh-chargen/internal/orchestrators/session Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/engine/catalog"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rank"
	"github.com/KirkDiggler/msh-chargen/internal/engine/sheet"
	"github.com/KirkDiggler/msh-chargen/internal/entities"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
	"github.com/KirkDiggler/msh-chargen/internal/pkg/clock"
	"github.com/KirkDiggler/msh-chargen/internal/pkg/idgen"
	sessionrepo "github.com/KirkDiggler/msh-chargen/internal/repositories/session"
)

// Service defines the session operations
type Service interface {
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
	Apply(ctx context.Context, input *ApplyInput) (*ApplyOutput, error)
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)
	DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error)
}

// Config holds the dependencies for the session orchestrator
type Config struct {
	Engine      engine.Engine
	Repository  sessionrepo.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
	EventBus    events.EventBus
	Logger      *slog.Logger

	// ScoringMode is used when a session is created without one
	ScoringMode rank.Mode
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	engine   engine.Engine
	repo     sessionrepo.Repository
	idGen    idgen.Generator
	clock    clock.Clock
	eventBus events.EventBus
	logger   *slog.Logger
	mode     rank.Mode
	locks    *keyedMutex
}

// NewOrchestrator creates a session orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &orchestrator{
		engine:   cfg.Engine,
		repo:     cfg.Repository,
		idGen:    cfg.IDGenerator,
		clock:    clk,
		eventBus: cfg.EventBus,
		logger:   logger,
		mode:     cfg.ScoringMode,
		locks:    newKeyedMutex(),
	}, nil
}

func (o *orchestrator) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	mode := o.mode
	if input.ScoringMode != "" {
		m, err := rank.ParseMode(input.ScoringMode)
		if err != nil {
			return nil, err
		}
		mode = m
	}

	now := o.clock.Now()
	sess := &entities.Session{
		ID:        o.idGen.Generate(),
		Character: engine.NewCharacter(mode),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := o.repo.Create(ctx, sessionrepo.CreateInput{Session: sess}); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	o.logger.InfoContext(ctx, "session created", "session_id", sess.ID, "scoring_mode", mode.String())

	return &CreateSessionOutput{View: newView(sess)}, nil
}

func (o *orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	sess, err := o.load(ctx, input.sessionID())
	if err != nil {
		return nil, err
	}
	return &GetSessionOutput{View: newView(sess)}, nil
}

func (o *orchestrator) Apply(ctx context.Context, input *ApplyInput) (*ApplyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if input.Action.Type == "" {
		return nil, errors.InvalidArgument("action type is required")
	}

	unlock := o.locks.Lock(input.SessionID)
	defer unlock()

	sess, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	action := input.Action
	if action.Type.Destructive() && !action.Confirmed {
		o.logger.DebugContext(ctx, "destructive action not confirmed",
			"session_id", sess.ID, "action", action.Type)
		return &ApplyOutput{View: newView(sess), Applied: false}, nil
	}

	before := milestones(sess.Character)
	if err := o.dispatch(sess.Character, &action); err != nil {
		if errors.IsRecoverable(err) {
			o.logger.DebugContext(ctx, "action rejected",
				"session_id", sess.ID, "action", action.Type, "code", errors.GetCode(err))
		} else {
			o.logger.ErrorContext(ctx, "action failed",
				"session_id", sess.ID, "action", action.Type, "error", err)
		}
		return nil, err
	}

	sess.UpdatedAt = o.clock.Now()
	if _, err := o.repo.Update(ctx, sessionrepo.UpdateInput{Session: sess}); err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}

	o.publishReached(ctx, sess, before)

	return &ApplyOutput{View: newView(sess), Applied: true}, nil
}

func (o *orchestrator) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	sess, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	text, err := sheet.Render(sess.Character)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render sheet")
	}

	return &ExportOutput{Text: text}, nil
}

func (o *orchestrator) DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	unlock := o.locks.Lock(input.SessionID)
	defer unlock()

	if _, err := o.repo.Delete(ctx, sessionrepo.DeleteInput{ID: input.SessionID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete session")
	}

	o.logger.InfoContext(ctx, "session deleted", "session_id", input.SessionID)
	return &DeleteSessionOutput{}, nil
}

func (o *orchestrator) load(ctx context.Context, id string) (*entities.Session, error) {
	if id == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	out, err := o.repo.Get(ctx, sessionrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}
	if out.Session.Character == nil {
		return nil, errors.Internalf("session %s has no character", id)
	}
	return out.Session, nil
}

func (i *GetSessionInput) sessionID() string {
	if i == nil {
		return ""
	}
	return i.SessionID
}

func newView(sess *entities.Session) *View {
	c := sess.Character
	v := &View{
		Session: sess,
		Phase:   c.Phase(),
		Gates:   c.Gates(),
		Health:  c.Health(),
		Karma:   c.Karma(),
		Powers:  c.PowerLines(),
	}
	if c.AbilitiesRolled() {
		for _, ab := range catalog.AbilityOrder {
			v.Abilities = append(v.Abilities, AbilityView{
				Name:  string(ab),
				Rank:  rank.Standard.Name(c.Rank(ab)),
				Score: c.Score(ab),
			})
		}
	}
	return v
}
