package credits

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/storynest/storynest-api/internal/entities/story"
	"github.com/storynest/storynest-api/internal/errors"
	redisclient "github.com/storynest/storynest-api/internal/redis"
)

const (
	balanceKeyPrefix = "credits:balance:"
	metaKeyPrefix    = "credits:meta:"
	appliedKeyPrefix = "credits:applied:"
	ledgerKeyPrefix  = "credits:ledger:"

	errOwnerIDEmpty = "owner ID cannot be empty"
	errEventNil     = "event cannot be nil"
	errEventIDEmpty = "event ID cannot be empty"
)

// planMeta is the non-numeric part of a balance, stored beside the counter
type planMeta struct {
	Plan       string `json:"plan,omitempty"`
	PlanActive bool   `json:"plan_active,omitempty"`
	UpdatedAt  int64  `json:"updated_at"`
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed credits repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{
		client: client,
	}
}

func (r *redisRepository) GetBalance(ctx context.Context, input GetBalanceInput) (*GetBalanceOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	balance, err := r.readBalance(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	return &GetBalanceOutput{Balance: balance}, nil
}

func (r *redisRepository) ApplyEvent(ctx context.Context, input ApplyEventInput) (*ApplyEventOutput, error) {
	if input.Event == nil {
		return nil, errors.InvalidArgument(errEventNil)
	}
	if input.Event.ID == "" {
		return nil, errors.InvalidArgument(errEventIDEmpty)
	}
	if input.Event.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	// SADD is the dedupe guard: the first caller to mark the event ID owns
	// the apply, replays see 0 and leave the balance alone.
	added, err := r.client.SAdd(ctx, appliedKeyPrefix+input.Event.OwnerID, input.Event.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to mark event applied")
	}

	if added == 0 {
		balance, err := r.readBalance(ctx, input.Event.OwnerID)
		if err != nil {
			return nil, err
		}
		return &ApplyEventOutput{Applied: false, Balance: balance}, nil
	}

	data, err := json.Marshal(input.Event)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal event")
	}

	pipe := r.client.TxPipeline()
	incr := pipe.IncrBy(ctx, balanceKeyPrefix+input.Event.OwnerID, input.Event.Delta)
	pipe.HSet(ctx, ledgerKeyPrefix+input.Event.OwnerID, input.Event.ID, data)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to apply event")
	}

	balance, err := r.readBalance(ctx, input.Event.OwnerID)
	if err != nil {
		return nil, err
	}
	balance.StoryCredits = incr.Val()

	return &ApplyEventOutput{Applied: true, Balance: balance}, nil
}

func (r *redisRepository) SetPlan(ctx context.Context, input SetPlanInput) (*SetPlanOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	data, err := json.Marshal(planMeta{
		Plan:       input.Plan,
		PlanActive: input.PlanActive,
		UpdatedAt:  input.UpdatedAt,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal plan")
	}

	if err := r.client.Set(ctx, metaKeyPrefix+input.OwnerID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to set plan")
	}

	return &SetPlanOutput{}, nil
}

func (r *redisRepository) ListEvents(ctx context.Context, input ListEventsInput) (*ListEventsOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	entries, err := r.client.HGetAll(ctx, ledgerKeyPrefix+input.OwnerID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list events")
	}

	events := make([]*story.CreditEvent, 0, len(entries))
	for _, raw := range entries {
		var event story.CreditEvent
		if err := json.Unmarshal([]byte(raw), &event); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal event")
		}
		events = append(events, &event)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt > events[j].CreatedAt
	})

	return &ListEventsOutput{Events: events}, nil
}

func (r *redisRepository) readBalance(ctx context.Context, ownerID string) (*story.CreditBalance, error) {
	balance := &story.CreditBalance{OwnerID: ownerID}

	raw, err := r.client.Get(ctx, balanceKeyPrefix+ownerID).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to get balance")
	}
	if err == nil {
		credits, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			return nil, errors.Wrapf(parseErr, "corrupt balance for owner %s", ownerID)
		}
		balance.StoryCredits = credits
	}

	metaRaw, err := r.client.Get(ctx, metaKeyPrefix+ownerID).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to get plan")
	}
	if err == nil {
		var meta planMeta
		if err := json.Unmarshal([]byte(metaRaw), &meta); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal plan")
		}
		balance.Plan = meta.Plan
		balance.PlanActive = meta.PlanActive
		balance.UpdatedAt = meta.UpdatedAt
	}

	return balance, nil
}
