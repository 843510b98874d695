package currency_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderforge/wander-api/internal/errors"
	"github.com/wanderforge/wander-api/internal/repositories/currency"
	"github.com/wanderforge/wander-api/internal/testutils"
)

func newLedger(t *testing.T) currency.Ledger {
	t.Helper()
	client, _ := testutils.CreateTestRedisClient(t)

	ledger, err := currency.NewRedisLedger(&currency.Config{Client: client})
	require.NoError(t, err)
	return ledger
}

func TestAddCurrency_Accumulates(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()

	out, err := ledger.AddCurrency(ctx, currency.AddInput{
		UserID:   "user_1",
		Currency: currency.Gold,
		Amount:   100,
		Reason:   "combat victory",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), out.Balance)
	assert.True(t, out.Applied)

	out, err = ledger.AddCurrency(ctx, currency.AddInput{
		UserID:   "user_1",
		Currency: currency.Gold,
		Amount:   33,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(133), out.Balance)
}

func TestAddCurrency_IdempotencyKeyAppliesOnce(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()

	grant := currency.AddInput{
		UserID:         "user_1",
		Currency:       currency.Gold,
		Amount:         50,
		Reason:         "combat victory",
		IdempotencyKey: "sess_1",
	}

	first, err := ledger.AddCurrency(ctx, grant)
	require.NoError(t, err)
	assert.Equal(t, int64(50), first.Balance)
	assert.True(t, first.Applied)

	// Retrying the settlement must not double-grant.
	second, err := ledger.AddCurrency(ctx, grant)
	require.NoError(t, err)
	assert.Equal(t, int64(50), second.Balance)
	assert.False(t, second.Applied)
}

func TestAddCurrency_SameKeyDifferentCurrency(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()

	// One settlement grants both gold and xp under the session key.
	_, err := ledger.AddCurrency(ctx, currency.AddInput{
		UserID: "user_1", Currency: currency.Gold, Amount: 50, IdempotencyKey: "sess_1",
	})
	require.NoError(t, err)

	out, err := ledger.AddCurrency(ctx, currency.AddInput{
		UserID: "user_1", Currency: currency.XP, Amount: 120, IdempotencyKey: "sess_1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(120), out.Balance)
	assert.True(t, out.Applied)
}

func TestGetBalance_DefaultsToZero(t *testing.T) {
	ledger := newLedger(t)

	out, err := ledger.GetBalance(context.Background(), currency.GetBalanceInput{
		UserID:   "user_unknown",
		Currency: currency.Gold,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Balance)
}

func TestAddCurrency_Validation(t *testing.T) {
	ledger := newLedger(t)
	ctx := context.Background()

	_, err := ledger.AddCurrency(ctx, currency.AddInput{Currency: currency.Gold, Amount: 1})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = ledger.AddCurrency(ctx, currency.AddInput{UserID: "user_1", Amount: 1})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = ledger.AddCurrency(ctx, currency.AddInput{UserID: "user_1", Currency: currency.Gold, Amount: -5})
	assert.True(t, errors.IsInvalidArgument(err))
}
