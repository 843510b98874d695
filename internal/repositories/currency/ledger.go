// Package currency provides the ledger interface and types for granting
// gold and experience.
package currency

import (
	"context"
)

//go:generate mockgen -destination=mock/mock_ledger.go -package=currencymock github.com/wanderforge/wander-api/internal/repositories/currency Ledger

// Well-known currencies
const (
	Gold = "gold"
	XP   = "xp"
)

// AddInput contains parameters for granting currency. IdempotencyKey scopes
// the grant: retrying with the same key never double-grants.
type AddInput struct {
	UserID         string
	Currency       string
	Amount         int64
	Reason         string
	IdempotencyKey string
}

// AddOutput contains the balance after the grant
type AddOutput struct {
	Balance int64
	Applied bool // false when the idempotency key was already consumed
}

// GetBalanceInput contains parameters for reading a balance
type GetBalanceInput struct {
	UserID   string
	Currency string
}

// GetBalanceOutput contains the current balance
type GetBalanceOutput struct {
	Balance int64
}

// Ledger defines the interface for currency grants and balance reads
type Ledger interface {
	// AddCurrency grants an amount to a user. Grants sharing an
	// idempotency key are applied at most once.
	AddCurrency(ctx context.Context, input AddInput) (*AddOutput, error)

	// GetBalance reads a user's balance for a currency; a user who has
	// never been granted anything has balance zero.
	GetBalance(ctx context.Context, input GetBalanceInput) (*GetBalanceOutput, error)
}
