package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/msh-chargen/internal/config"
	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/engine/rank"
	"github.com/KirkDiggler/msh-chargen/internal/engine/sheet"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
	"github.com/KirkDiggler/msh-chargen/internal/orchestrators/session"
	"github.com/KirkDiggler/msh-chargen/internal/pkg/rng"
	sessionrepo "github.com/KirkDiggler/msh-chargen/internal/repositories/session"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNewRepositoryInMemory(t *testing.T) {
	cfg := config.Default()
	repo, cleanup, err := newRepository(context.Background(), &cfg, discard)
	require.NoError(t, err)
	defer cleanup()

	_, ok := repo.(*sessionrepo.InMemoryRepository)
	assert.True(t, ok)
}

func TestNewRepositoryRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cfg := config.Default()
	cfg.RedisAddr = mr.Addr()

	repo, cleanup, err := newRepository(context.Background(), &cfg, discard)
	require.NoError(t, err)
	defer cleanup()

	svc, err := newService(repo, events.NewBus(), &cfg, discard)
	require.NoError(t, err)

	out, err := svc.CreateSession(context.Background(), &session.CreateSessionInput{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.View.Session.ID, "sess_"))
	assert.True(t, mr.Exists("msh:session:"+out.View.Session.ID))
}

func TestNewRepositoryRedisUnreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	cfg := config.Default()
	cfg.RedisAddr = addr

	_, _, err = newRepository(context.Background(), &cfg, discard)
	assert.Error(t, err)
}

func TestGenerateIsReproducible(t *testing.T) {
	run := func(seed int64) (string, error) {
		c := engine.NewCharacter(rank.ModeStandard)
		c.Profile.Name = "Seeded"
		if err := generate(rng.NewSeeded(seed), c, ""); err != nil {
			return "", err
		}
		assert.Equal(t, engine.PhaseComplete, c.Phase())
		return sheet.Render(c)
	}

	for _, seed := range []int64{1, 7, 42} {
		first, firstErr := run(seed)
		second, secondErr := run(seed)
		assert.Equal(t, first, second, "seed %d", seed)
		if firstErr != nil {
			require.Error(t, secondErr)
			assert.Equal(t, firstErr.Error(), secondErr.Error(), "seed %d", seed)
			continue
		}
		require.NoError(t, secondErr)
		assert.True(t, strings.HasPrefix(first, "NAME: Seeded\n"))
		assert.Contains(t, first, "\nPOWERS:\n")
	}
}

// generated returns the first character the autopilot completes, trying a
// handful of seeds so one awkward roll sequence cannot fail the test.
func generated(t *testing.T, form string) *engine.Character {
	t.Helper()
	var err error
	for seed := int64(1); seed <= 25; seed++ {
		c := engine.NewCharacter(rank.ModeMinimum)
		if err = generate(rng.NewSeeded(seed), c, form); err == nil {
			return c
		}
	}
	require.NoError(t, err)
	return nil
}

func TestGenerateWithForm(t *testing.T) {
	c := generated(t, "Normal Human")
	assert.Equal(t, 0, c.Form.ID)
	assert.Equal(t, engine.PhaseComplete, c.Phase())
}

func TestWriteSheetFile(t *testing.T) {
	c := generated(t, "Normal Human")

	path := filepath.Join(t.TempDir(), "hero.txt")
	require.NoError(t, writeSheetFile(path, c))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var want bytes.Buffer
	require.NoError(t, sheet.Write(&want, c))
	assert.Equal(t, want.String(), string(data))

	err = writeSheetFile(filepath.Join(t.TempDir(), "missing", "hero.txt"), c)
	assert.True(t, errors.IsSaveFailed(err))
}
