package combathistory

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/wanderforge/wander-api/internal/entities"
	"github.com/wanderforge/wander-api/internal/errors"
	redisclient "github.com/wanderforge/wander-api/internal/redis"
)

const (
	// Key patterns: combat_history:{user_id}:{location_id} holds the record;
	// combat_history_record:{idempotency_key} marks a consumed update.
	historyKeyPrefix = "combat_history:"
	recordKeyPrefix  = "combat_history_record:"

	// Markers only need to outlive plausible retry windows.
	recordMarkerTTL = 24 * time.Hour
)

// Config holds the configuration for the Redis repository
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

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for combat history
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

// Get retrieves the history record for a user at a location
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}
	if input.LocationID == "" {
		return nil, errors.InvalidArgument("location ID cannot be empty")
	}

	historyJSON, err := r.client.Get(ctx, r.key(input.UserID, input.LocationID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no combat history for user at location").
				WithMeta("user_id", input.UserID).
				WithMeta("location_id", input.LocationID)
		}
		return nil, errors.Wrap(err, "failed to get history from Redis")
	}

	var h entities.PlayerCombatHistory
	if err := json.Unmarshal([]byte(historyJSON), &h); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal history")
	}

	return &GetOutput{History: &h}, nil
}

// Upsert stores the history record, creating it if absent. With an
// idempotency key the write applies at most once; a repeat returns the
// already-stored record untouched.
func (r *redisRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	if input.History == nil {
		return nil, errors.InvalidArgument("history cannot be nil")
	}
	if input.History.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}
	if input.History.LocationID == "" {
		return nil, errors.InvalidArgument("location ID cannot be empty")
	}

	key := r.key(input.History.UserID, input.History.LocationID)

	if input.IdempotencyKey != "" {
		markerKey := recordKeyPrefix + input.IdempotencyKey
		claimed, err := r.client.SetNX(ctx, markerKey, key, recordMarkerTTL).Result()
		if err != nil {
			return nil, errors.Wrap(err, "failed to claim record marker")
		}
		if !claimed {
			got, err := r.Get(ctx, GetInput{
				UserID:     input.History.UserID,
				LocationID: input.History.LocationID,
			})
			if err != nil {
				return nil, err
			}
			return &UpsertOutput{History: got.History, Applied: false}, nil
		}
	}

	historyJSON, err := json.Marshal(input.History)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal history")
	}

	if err := r.client.Set(ctx, key, historyJSON, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store history in Redis")
	}

	return &UpsertOutput{History: input.History, Applied: true}, nil
}

func (r *redisRepository) key(userID, locationID string) string {
	return historyKeyPrefix + userID + ":" + locationID
}
