package children

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/storynest/storynest-api/internal/entities/story"
	"github.com/storynest/storynest-api/internal/errors"
	redisclient "github.com/storynest/storynest-api/internal/redis"
)

const (
	childKeyPrefix   = "child:"
	ownerIndexPrefix = "children:owner:"

	errChildNil     = "child cannot be nil"
	errChildIDEmpty = "child ID cannot be empty"
	errOwnerIDEmpty = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed child profile repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{
		client: client,
	}
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Child == nil {
		return nil, errors.InvalidArgument(errChildNil)
	}
	if input.Child.ID == "" {
		return nil, errors.InvalidArgument(errChildIDEmpty)
	}
	if input.Child.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	data, err := json.Marshal(input.Child)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal child")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, childKeyPrefix+input.Child.ID, data, 0)
	pipe.SAdd(ctx, ownerIndexPrefix+input.Child.OwnerID, input.Child.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create child")
	}

	return &CreateOutput{Child: input.Child}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errChildIDEmpty)
	}

	result, err := r.client.Get(ctx, childKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("child with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get child")
	}

	var child story.Child
	if err := json.Unmarshal([]byte(result), &child); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal child")
	}

	return &GetOutput{Child: &child}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, ownerIndexPrefix+input.OwnerID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list children")
	}

	children := make([]*story.Child, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// A profile deleted out-of-band leaves a dangling index entry
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, ownerIndexPrefix+input.OwnerID, id)
				continue
			}
			return nil, err
		}
		children = append(children, out.Child)
	}

	return &ListByOwnerOutput{Children: children}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Child == nil {
		return nil, errors.InvalidArgument(errChildNil)
	}
	if input.Child.ID == "" {
		return nil, errors.InvalidArgument(errChildIDEmpty)
	}

	key := childKeyPrefix + input.Child.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("child with ID %s not found", input.Child.ID)
	}

	data, err := json.Marshal(input.Child)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal child")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update child")
	}

	return &UpdateOutput{Child: input.Child}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errChildIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, childKeyPrefix+input.ID)
	pipe.SRem(ctx, ownerIndexPrefix+getOutput.Child.OwnerID, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete child")
	}

	return &DeleteOutput{}, nil
}
