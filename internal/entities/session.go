// Package entities provides core data structures for msh-chargen.
package entities

import (
	"time"

	"github.com/KirkDiggler/msh-chargen/internal/engine"
)

// SessionType is the entity type reported to the event bus
const SessionType = "chargen_session"

// Session is one character in generation
type Session struct {
	ID        string            `json:"id"`
	Character *engine.Character `json:"character"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// GetID returns the session ID
func (s *Session) GetID() string {
	return s.ID
}

// GetType returns the entity type
func (s *Session) GetType() string {
	return SessionType
}

// Clone returns a deep copy
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	if s.Character != nil {
		out.Character = s.Character.Clone()
	}
	return &out
}
