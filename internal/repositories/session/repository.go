// Package session defines persistence for generation sessions
package session

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/KirkDiggler/msh-chargen/internal/repositories/session Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/msh-chargen/internal/entities"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

// DefaultTTL is how long an untouched session is kept
const DefaultTTL = 24 * time.Hour

// Repository stores sessions by ID. Every write refreshes the TTL.
type Repository interface {
	// Create stores a new session
	// Returns errors.InvalidArgument for a nil session or empty ID
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session by ID
	// Returns errors.NotFound if the session doesn't exist or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing session
	// Returns errors.NotFound if the session doesn't exist or expired
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a session
	// Returns errors.NotFound if the session doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a session
type CreateInput struct {
	Session *entities.Session
}

// CreateOutput defines the output for creating a session
type CreateOutput struct {
	Session *entities.Session
}

// GetInput defines the input for getting a session
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a session
type GetOutput struct {
	Session *entities.Session
}

// UpdateInput defines the input for updating a session
type UpdateInput struct {
	Session *entities.Session
}

// UpdateOutput defines the output for updating a session
type UpdateOutput struct {
	Session *entities.Session
}

// DeleteInput defines the input for deleting a session
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a session
type DeleteOutput struct{}

const (
	errSessionNil     = "session cannot be nil"
	errSessionIDEmpty = "session ID cannot be empty"
)

func validateSession(s *entities.Session) error {
	if s == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if s.ID == "" {
		return errors.InvalidArgument(errSessionIDEmpty)
	}
	return nil
}
