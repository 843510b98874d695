package currency

import (
	"context"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/wanderforge/wander-api/internal/errors"
	redisclient "github.com/wanderforge/wander-api/internal/redis"
)

const (
	// Key patterns: currency:{user_id}:{currency} holds the balance;
	// currency_grant:{idempotency_key}:{currency} marks a consumed grant.
	balanceKeyPrefix = "currency:"
	grantKeyPrefix   = "currency_grant:"

	// Grant markers only need to outlive plausible retry windows.
	grantMarkerTTL = 24 * time.Hour
)

// Config holds the configuration for the Redis ledger
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisLedger struct {
	client redisclient.Client
}

// NewRedisLedger creates a new Redis-backed currency ledger
func NewRedisLedger(cfg *Config) (Ledger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisLedger{client: cfg.Client}, nil
}

var _ Ledger = (*redisLedger)(nil)

// AddCurrency grants an amount to a user, at most once per idempotency key
func (l *redisLedger) AddCurrency(ctx context.Context, input AddInput) (*AddOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}
	if input.Currency == "" {
		return nil, errors.InvalidArgument("currency cannot be empty")
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgumentf("amount cannot be negative, got %d", input.Amount)
	}

	balanceKey := l.balanceKey(input.UserID, input.Currency)

	if input.IdempotencyKey != "" {
		grantKey := grantKeyPrefix + input.IdempotencyKey + ":" + input.Currency
		claimed, err := l.client.SetNX(ctx, grantKey, input.Reason, grantMarkerTTL).Result()
		if err != nil {
			return nil, errors.Wrap(err, "failed to claim grant marker")
		}
		if !claimed {
			balance, err := l.readBalance(ctx, balanceKey)
			if err != nil {
				return nil, err
			}
			return &AddOutput{Balance: balance, Applied: false}, nil
		}
	}

	balance, err := l.client.IncrBy(ctx, balanceKey, input.Amount).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to increment balance")
	}

	return &AddOutput{Balance: balance, Applied: true}, nil
}

// GetBalance reads a user's balance for a currency
func (l *redisLedger) GetBalance(ctx context.Context, input GetBalanceInput) (*GetBalanceOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}
	if input.Currency == "" {
		return nil, errors.InvalidArgument("currency cannot be empty")
	}

	balance, err := l.readBalance(ctx, l.balanceKey(input.UserID, input.Currency))
	if err != nil {
		return nil, err
	}

	return &GetBalanceOutput{Balance: balance}, nil
}

func (l *redisLedger) readBalance(ctx context.Context, key string) (int64, error) {
	val, err := l.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, errors.Wrap(err, "failed to read balance")
	}

	balance, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "corrupt balance value")
	}
	return balance, nil
}

func (l *redisLedger) balanceKey(userID, cur string) string {
	return balanceKeyPrefix + userID + ":" + cur
}
