package session

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/msh-chargen/internal/entities"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
	"github.com/KirkDiggler/msh-chargen/internal/pkg/clock"
)

type inMemoryEntry struct {
	session   *entities.Session
	expiresAt time.Time
}

// InMemoryRepository implements Repository in process memory. Stored
// sessions are copied in and out.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]inMemoryEntry
	clock clock.Clock
	ttl   time.Duration
}

// NewInMemory creates an in-memory repository. A nil clock selects the
// real clock and a zero ttl selects DefaultTTL.
func NewInMemory(clk clock.Clock, ttl time.Duration) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &InMemoryRepository{
		store: make(map[string]inMemoryEntry),
		clock: clk,
		ttl:   ttl,
	}
}

// Create stores a new session
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.live(input.Session.ID); ok {
		return nil, errors.Newf(errors.CodeAlreadyExists, "session %s already exists", input.Session.ID)
	}

	r.store[input.Session.ID] = inMemoryEntry{
		session:   input.Session.Clone(),
		expiresAt: r.clock.Now().Add(r.ttl),
	}

	return &CreateOutput{Session: input.Session}, nil
}

// Get retrieves a session by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.live(input.ID)
	if !ok {
		return nil, errors.NotFoundf("session %s not found", input.ID)
	}

	return &GetOutput{Session: entry.session.Clone()}, nil
}

// Update replaces an existing session
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.live(input.Session.ID); !ok {
		return nil, errors.NotFoundf("session %s not found", input.Session.ID)
	}

	r.store[input.Session.ID] = inMemoryEntry{
		session:   input.Session.Clone(),
		expiresAt: r.clock.Now().Add(r.ttl),
	}

	return &UpdateOutput{Session: input.Session}, nil
}

// Delete removes a session
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.live(input.ID)
	delete(r.store, input.ID)
	if !ok {
		return nil, errors.NotFoundf("session %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

// live returns an unexpired entry. Callers hold the lock.
func (r *InMemoryRepository) live(id string) (inMemoryEntry, bool) {
	entry, ok := r.store[id]
	if !ok || clock.Expired(r.clock, entry.expiresAt) {
		return inMemoryEntry{}, false
	}
	return entry, true
}
