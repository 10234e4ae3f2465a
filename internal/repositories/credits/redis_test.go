package credits_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/storynest/storynest-api/internal/entities/story"
	"github.com/storynest/storynest-api/internal/errors"
	"github.com/storynest/storynest-api/internal/repositories/credits"
	"github.com/storynest/storynest-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo credits.Repository
	ctx  context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, _ := testutils.CreateTestRedisClient(s.T())
	s.repo = credits.NewRedisRepository(client)
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TestZeroBalanceForNewOwner() {
	out, err := s.repo.GetBalance(s.ctx, credits.GetBalanceInput{OwnerID: "owner_1"})
	s.Require().NoError(err)
	s.Equal(int64(0), out.Balance.StoryCredits)
	s.Equal("owner_1", out.Balance.OwnerID)
}

func (s *RedisRepositoryTestSuite) TestApplyEventAdjustsBalance() {
	out, err := s.repo.ApplyEvent(s.ctx, credits.ApplyEventInput{
		Event: &story.CreditEvent{ID: "evt_1", OwnerID: "owner_1", Delta: 5, Source: "purchase", CreatedAt: 100},
	})
	s.Require().NoError(err)
	s.True(out.Applied)
	s.Equal(int64(5), out.Balance.StoryCredits)

	out, err = s.repo.ApplyEvent(s.ctx, credits.ApplyEventInput{
		Event: &story.CreditEvent{ID: "evt_2", OwnerID: "owner_1", Delta: -1, Source: "spend", CreatedAt: 200},
	})
	s.Require().NoError(err)
	s.True(out.Applied)
	s.Equal(int64(4), out.Balance.StoryCredits)
}

func (s *RedisRepositoryTestSuite) TestApplyEventIsIdempotent() {
	event := &story.CreditEvent{ID: "evt_1", OwnerID: "owner_1", Delta: 5, Source: "purchase", CreatedAt: 100}

	first, err := s.repo.ApplyEvent(s.ctx, credits.ApplyEventInput{Event: event})
	s.Require().NoError(err)
	s.True(first.Applied)

	replay, err := s.repo.ApplyEvent(s.ctx, credits.ApplyEventInput{Event: event})
	s.Require().NoError(err)
	s.False(replay.Applied)
	s.Equal(int64(5), replay.Balance.StoryCredits)
}

func (s *RedisRepositoryTestSuite) TestSetPlanSurvivesBalanceChanges() {
	_, err := s.repo.SetPlan(s.ctx, credits.SetPlanInput{
		OwnerID:    "owner_1",
		Plan:       "family_monthly",
		PlanActive: true,
		UpdatedAt:  100,
	})
	s.Require().NoError(err)

	_, err = s.repo.ApplyEvent(s.ctx, credits.ApplyEventInput{
		Event: &story.CreditEvent{ID: "evt_1", OwnerID: "owner_1", Delta: 3, Source: "subscription_grant", CreatedAt: 200},
	})
	s.Require().NoError(err)

	out, err := s.repo.GetBalance(s.ctx, credits.GetBalanceInput{OwnerID: "owner_1"})
	s.Require().NoError(err)
	s.Equal(int64(3), out.Balance.StoryCredits)
	s.Equal("family_monthly", out.Balance.Plan)
	s.True(out.Balance.PlanActive)
}

func (s *RedisRepositoryTestSuite) TestListEventsNewestFirst() {
	for _, event := range []*story.CreditEvent{
		{ID: "evt_1", OwnerID: "owner_1", Delta: 5, Source: "purchase", CreatedAt: 100},
		{ID: "evt_2", OwnerID: "owner_1", Delta: -1, Source: "spend", CreatedAt: 300},
		{ID: "evt_3", OwnerID: "owner_1", Delta: 2, Source: "referral", CreatedAt: 200},
	} {
		_, err := s.repo.ApplyEvent(s.ctx, credits.ApplyEventInput{Event: event})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListEvents(s.ctx, credits.ListEventsInput{OwnerID: "owner_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Events, 3)
	s.Equal("evt_2", out.Events[0].ID)
	s.Equal("evt_3", out.Events[1].ID)
	s.Equal("evt_1", out.Events[2].ID)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.GetBalance(s.ctx, credits.GetBalanceInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.ApplyEvent(s.ctx, credits.ApplyEventInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.ApplyEvent(s.ctx, credits.ApplyEventInput{
		Event: &story.CreditEvent{OwnerID: "owner_1", Delta: 1},
	})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
