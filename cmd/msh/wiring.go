package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/msh-chargen/internal/config"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/msh-chargen/internal/orchestrators/session"
	"github.com/KirkDiggler/msh-chargen/internal/pkg/clock"
	"github.com/KirkDiggler/msh-chargen/internal/pkg/idgen"
	"github.com/KirkDiggler/msh-chargen/internal/redis"
	sessionrepo "github.com/KirkDiggler/msh-chargen/internal/repositories/session"
)

// newLogger builds the process logger at the configured level
func newLogger(cfg *config.Config) *slog.Logger {
	level, err := cfg.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newRepository selects Redis when an address is configured and memory
// otherwise. The returned cleanup closes the Redis client.
func newRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (sessionrepo.Repository, func(), error) {
	if cfg.RedisAddr == "" {
		logger.Info("using in-memory session store")
		return sessionrepo.NewInMemory(clock.New(), cfg.SessionTTL), func() {}, nil
	}

	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}
	if err := redis.Ping(ctx, client); err != nil {
		cleanup()
		return nil, nil, err
	}

	logger.Info("using redis session store", "addr", cfg.RedisAddr)
	return sessionrepo.NewRedisRepository(client, cfg.SessionTTL), cleanup, nil
}

// newService wires the session orchestrator over the real dice roller
func newService(repo sessionrepo.Repository, bus events.EventBus, cfg *config.Config, logger *slog.Logger) (session.Service, error) {
	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: dice.DefaultRoller})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	svc, err := session.NewOrchestrator(&session.Config{
		Engine:      adapter,
		Repository:  repo,
		IDGenerator: idgen.NewUUID("sess"),
		Clock:       clock.New(),
		EventBus:    bus,
		Logger:      logger,
		ScoringMode: cfg.Mode(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}
	return svc, nil
}
