package stories

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/storynest/storynest-api/internal/entities/story"
	"github.com/storynest/storynest-api/internal/errors"
	redisclient "github.com/storynest/storynest-api/internal/redis"
)

const (
	storyKeyPrefix   = "story:"
	ownerIndexPrefix = "stories:owner:"

	errStoryNil     = "story cannot be nil"
	errStoryIDEmpty = "story ID cannot be empty"
	errOwnerIDEmpty = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed story library repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{
		client: client,
	}
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Story == nil {
		return nil, errors.InvalidArgument(errStoryNil)
	}
	if input.Story.ID == "" {
		return nil, errors.InvalidArgument(errStoryIDEmpty)
	}
	if input.Story.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	data, err := json.Marshal(input.Story)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal story")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, storyKeyPrefix+input.Story.ID, data, 0)
	pipe.SAdd(ctx, ownerIndexPrefix+input.Story.OwnerID, input.Story.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create story")
	}

	return &CreateOutput{Story: input.Story}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errStoryIDEmpty)
	}

	result, err := r.client.Get(ctx, storyKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("story with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get story")
	}

	var st story.Story
	if err := json.Unmarshal([]byte(result), &st); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal story")
	}

	return &GetOutput{Story: &st}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, ownerIndexPrefix+input.OwnerID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list stories")
	}

	result := make([]*story.Story, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, ownerIndexPrefix+input.OwnerID, id)
				continue
			}
			return nil, err
		}
		result = append(result, out.Story)
	}

	// Library screens show the newest story first
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt > result[j].CreatedAt
	})

	return &ListByOwnerOutput{Stories: result}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Story == nil {
		return nil, errors.InvalidArgument(errStoryNil)
	}
	if input.Story.ID == "" {
		return nil, errors.InvalidArgument(errStoryIDEmpty)
	}

	key := storyKeyPrefix + input.Story.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("story with ID %s not found", input.Story.ID)
	}

	data, err := json.Marshal(input.Story)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal story")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update story")
	}

	return &UpdateOutput{Story: input.Story}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errStoryIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, storyKeyPrefix+input.ID)
	pipe.SRem(ctx, ownerIndexPrefix+getOutput.Story.OwnerID, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete story")
	}

	return &DeleteOutput{}, nil
}
