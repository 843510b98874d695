// Package combathistory provides the repository interface and types for
// per-(user, location) combat history records.
package combathistory

import (
	"context"

	"github.com/wanderforge/wander-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=combathistorymock github.com/wanderforge/wander-api/internal/repositories/combat_history Repository

// GetInput contains parameters for retrieving a history record
type GetInput struct {
	UserID     string
	LocationID string
}

// GetOutput contains the retrieved history record
type GetOutput struct {
	History *entities.PlayerCombatHistory
}

// UpsertInput contains the history record to persist. IdempotencyKey scopes
// the write: retrying with the same key keeps the first record instead of
// applying the update again.
type UpsertInput struct {
	History        *entities.PlayerCombatHistory
	IdempotencyKey string
}

// UpsertOutput contains the authoritative stored record
type UpsertOutput struct {
	History *entities.PlayerCombatHistory
	Applied bool // false when the idempotency key was already consumed
}

// Repository defines the interface for combat history storage. Records are
// created lazily: Get returns NotFound until the first Upsert for a
// (user, location) pair.
type Repository interface {
	// Get retrieves the history record for a user at a location.
	// Returns errors.NotFound if the user has never fought there.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Upsert stores the history record, creating it if absent. With an
	// idempotency key the write applies at most once; a repeat returns
	// the already-stored record.
	Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error)
}
