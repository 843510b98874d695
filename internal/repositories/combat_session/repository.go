// Package combatsession provides the repository interface and types for
// combat session storage.
package combatsession

import (
	"context"
	"time"

	"github.com/wanderforge/wander-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=combatsessionmock github.com/wanderforge/wander-api/internal/repositories/combat_session Repository

// CreateInput contains parameters for creating a combat session
type CreateInput struct {
	Session *entities.CombatSession
	TTL     time.Duration // session lifetime; zero means the default
}

// CreateOutput contains the stored session with timestamps populated
type CreateOutput struct {
	Session *entities.CombatSession
}

// GetInput contains parameters for retrieving a session by ID
type GetInput struct {
	SessionID string
}

// GetOutput contains the retrieved session
type GetOutput struct {
	Session *entities.CombatSession
}

// GetUserActiveInput contains parameters for finding a user's live session
type GetUserActiveInput struct {
	UserID string
}

// GetUserActiveOutput contains the user's live session
type GetUserActiveOutput struct {
	Session *entities.CombatSession
}

// UpdateInput contains the session to persist after a combat turn
type UpdateInput struct {
	Session *entities.CombatSession
}

// UpdateOutput contains the persisted session
type UpdateOutput struct {
	Session *entities.CombatSession
}

// CompleteInput contains parameters for closing a session
type CompleteInput struct {
	SessionID string
}

// CompleteOutput contains the final state of the closed session
type CompleteOutput struct {
	Session *entities.CombatSession
}

// Repository defines the interface for combat session storage.
//
// Create is an atomic insert-if-absent per user: a user can hold at most one
// active session, and concurrent creates race safely (exactly one wins, the
// rest get AlreadyExists). Sessions expire at the storage layer; expired
// sessions are indistinguishable from missing ones.
type Repository interface {
	// Create stores a new session, claiming the user's active slot.
	// Returns errors.AlreadyExists if the user already has a live session.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session by ID.
	// Returns errors.NotFound for missing or expired sessions.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetUserActive retrieves the live session for a user, if any.
	// Returns errors.NotFound if the user is not in combat.
	GetUserActive(ctx context.Context, input GetUserActiveInput) (*GetUserActiveOutput, error)

	// Update persists a mutated session, preserving its expiry.
	// Returns errors.NotFound if the session no longer exists.
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Complete closes a session and releases the user's active slot.
	// Returns errors.NotFound if the session was already closed, which
	// makes completion idempotent-failing rather than re-runnable.
	Complete(ctx context.Context, input CompleteInput) (*CompleteOutput, error)
}
