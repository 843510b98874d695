package combatsession

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/wanderforge/wander-api/internal/entities"
	"github.com/wanderforge/wander-api/internal/errors"
	"github.com/wanderforge/wander-api/internal/pkg/clock"
	redisclient "github.com/wanderforge/wander-api/internal/redis"
)

const (
	// Key patterns: combat_session:{session_id} holds the session JSON;
	// combat_active:{user_id} holds the session ID and acts as the
	// one-active-session-per-user lock.
	sessionKeyPrefix = "combat_session:"
	activeKeyPrefix  = "combat_active:"

	defaultTTL = 30 * time.Minute

	errSessionNil     = "session cannot be nil"
	errSessionIDEmpty = "session ID cannot be empty"
	errUserIDEmpty    = "user ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for combat sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Create stores a new session, claiming the user's active slot atomically.
// SETNX on the active key is the insert-if-absent: under concurrent creates
// for the same user exactly one call wins.
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.Session.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	session := *input.Session
	session.CreatedAt = now
	session.ExpiresAt = now.Add(ttl)

	activeKey := r.activeKey(session.UserID)
	claimed, err := r.client.SetNX(ctx, activeKey, session.ID, ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to claim active session slot")
	}
	if !claimed {
		existingID, _ := r.client.Get(ctx, activeKey).Result()
		return nil, errors.AlreadyExists("user already has an active combat session").
			WithMeta("user_id", session.UserID).
			WithMeta("session_id", existingID)
	}

	sessionJSON, err := json.Marshal(&session)
	if err != nil {
		_ = r.client.Del(ctx, activeKey)
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	if err := r.client.Set(ctx, r.sessionKey(session.ID), sessionJSON, ttl).Err(); err != nil {
		// Release the slot so the user is not locked out of combat.
		_ = r.client.Del(ctx, activeKey)
		return nil, errors.Wrap(err, "failed to store session in Redis")
	}

	return &CreateOutput{Session: &session}, nil
}

// Get retrieves a session by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	session, err := r.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Session: session}, nil
}

// GetUserActive retrieves the live session for a user, if any
func (r *redisRepository) GetUserActive(ctx context.Context, input GetUserActiveInput) (*GetUserActiveOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	sessionID, err := r.client.Get(ctx, r.activeKey(input.UserID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("user has no active combat session").
				WithMeta("user_id", input.UserID)
		}
		return nil, errors.Wrap(err, "failed to look up active session")
	}

	session, err := r.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &GetUserActiveOutput{Session: session}, nil
}

// Update persists a mutated session, preserving its original expiry
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	remaining := input.Session.ExpiresAt.Sub(r.clock.Now())
	if remaining <= 0 {
		return nil, errors.NotFound("combat session has expired").
			WithMeta("session_id", input.Session.ID)
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	// SetXX only writes if the key still exists, so an update can never
	// resurrect a completed or expired session.
	stored, err := r.client.SetXX(ctx, r.sessionKey(input.Session.ID), sessionJSON, remaining).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to update session in Redis")
	}
	if !stored {
		return nil, errors.NotFound("combat session not found").
			WithMeta("session_id", input.Session.ID)
	}

	return &UpdateOutput{Session: input.Session}, nil
}

// Complete closes a session and releases the user's active slot
func (r *redisRepository) Complete(ctx context.Context, input CompleteInput) (*CompleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	session, err := r.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.sessionKey(input.SessionID))
	pipe.Del(ctx, r.activeKey(session.UserID))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to close session in Redis")
	}

	return &CompleteOutput{Session: session}, nil
}

func (r *redisRepository) load(ctx context.Context, sessionID string) (*entities.CombatSession, error) {
	key := r.sessionKey(sessionID)

	sessionJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("combat session not found").
				WithMeta("session_id", sessionID)
		}
		return nil, errors.Wrap(err, "failed to get session from Redis")
	}

	var session entities.CombatSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}

	// Redis TTL usually handles expiry; the clock check covers drift.
	if r.clock.Now().After(session.ExpiresAt) {
		pipe := r.client.TxPipeline()
		pipe.Del(ctx, key)
		pipe.Del(ctx, r.activeKey(session.UserID))
		_, _ = pipe.Exec(ctx)
		return nil, errors.NotFound("combat session has expired").
			WithMeta("session_id", sessionID)
	}

	return &session, nil
}

func (r *redisRepository) sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func (r *redisRepository) activeKey(userID string) string {
	return activeKeyPrefix + userID
}
