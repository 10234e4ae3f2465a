package wizardsession

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/storynest/storynest-api/internal/entities/story"
	"github.com/storynest/storynest-api/internal/errors"
	redisclient "github.com/storynest/storynest-api/internal/redis"
)

const (
	sessionKeyPrefix   = "wizard:"
	ownerMappingPrefix = "wizard:owner:"
	defaultTTL         = 24 * time.Hour

	// Error messages
	errSessionNil     = "session cannot be nil"
	errSessionIDEmpty = "session ID cannot be empty"
	errOwnerIDEmpty   = "owner ID cannot be empty"
	errSessionExpired = "session has already expired"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed wizard session repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{
		client: client,
	}
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.Session.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	// Check expiration before any Redis operations
	if input.Session.ExpiresAt > 0 {
		expiresAt := time.Unix(input.Session.ExpiresAt, 0)
		if time.Until(expiresAt) <= 0 {
			return nil, errors.InvalidArgument(errSessionExpired)
		}
	}

	// Check for an existing session for this owner
	ownerKey := ownerMappingPrefix + input.Session.OwnerID
	existingSessionID, err := r.client.Get(ctx, ownerKey).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to check existing session")
	}

	pipe := r.client.TxPipeline()

	// Starting a new wizard replaces any session already in flight
	if existingSessionID != "" && err != redis.Nil {
		pipe.Del(ctx, sessionKeyPrefix+existingSessionID)
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	ttl := defaultTTL
	if input.Session.ExpiresAt > 0 {
		ttl = time.Until(time.Unix(input.Session.ExpiresAt, 0))
	}

	pipe.Set(ctx, sessionKeyPrefix+input.Session.ID, data, ttl)
	pipe.Set(ctx, ownerKey, input.Session.ID, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create session")
	}

	return &CreateOutput{Session: input.Session}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	result, err := r.client.Get(ctx, sessionKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("wizard session with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get session")
	}

	var session story.WizardSession
	if err := json.Unmarshal([]byte(result), &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	return &GetOutput{Session: &session}, nil
}

func (r *redisRepository) GetByOwnerID(ctx context.Context, input GetByOwnerIDInput) (*GetByOwnerIDOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	ownerKey := ownerMappingPrefix + input.OwnerID
	sessionID, err := r.client.Get(ctx, ownerKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no wizard session found for owner %s", input.OwnerID)
		}
		return nil, errors.Wrapf(err, "failed to get owner session mapping")
	}

	getOutput, err := r.Get(ctx, GetInput{ID: sessionID})
	if err != nil {
		// The session TTL may have fired while the mapping stayed behind
		if errors.IsNotFound(err) {
			r.client.Del(ctx, ownerKey)
		}
		return nil, err
	}

	return &GetByOwnerIDOutput{Session: getOutput.Session}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	key := sessionKeyPrefix + input.Session.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("wizard session with ID %s not found", input.Session.ID)
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	ttl := defaultTTL
	if input.Session.ExpiresAt > 0 {
		ttl = time.Until(time.Unix(input.Session.ExpiresAt, 0))
		if ttl <= 0 {
			return nil, errors.InvalidArgument(errSessionExpired)
		}
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update session")
	}

	return &UpdateOutput{Session: input.Session}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sessionKeyPrefix+input.ID)
	if getOutput.Session.OwnerID != "" {
		pipe.Del(ctx, ownerMappingPrefix+getOutput.Session.OwnerID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete session")
	}

	return &DeleteOutput{}, nil
}
