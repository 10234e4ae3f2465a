package wizardsession_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/storynest/storynest-api/internal/entities/story"
	"github.com/storynest/storynest-api/internal/errors"
	wizardsession "github.com/storynest/storynest-api/internal/repositories/wizard_session"
	"github.com/storynest/storynest-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo wizardsession.Repository
	ctx  context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, _ := testutils.CreateTestRedisClient(s.T())
	s.repo = wizardsession.NewRedisRepository(client)
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) testSession() *story.WizardSession {
	now := time.Now().Unix()
	return &story.WizardSession{
		ID:      "wizard_123",
		OwnerID: "owner_456",
		Mode:    story.ModeCustom,
		SelectedCharacters: []*story.Character{
			{Name: "Maya", IsChild: true, ChildID: "child_1"},
			{ID: "oneoff_1", Name: "Dragon", IsOneOff: true},
		},
		OneOffCharacters: []*story.Character{
			{ID: "oneoff_1", Name: "Dragon", IsOneOff: true},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	session := s.testSession()

	_, err := s.repo.Create(s.ctx, wizardsession.CreateInput{Session: session})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, wizardsession.GetInput{ID: session.ID})
	s.Require().NoError(err)
	s.Equal(session.ID, got.Session.ID)
	s.Equal(story.ModeCustom, got.Session.Mode)
	s.Require().Len(got.Session.SelectedCharacters, 2)
	s.Equal("child_1", got.Session.SelectedCharacters[0].ChildID)
	s.Require().Len(got.Session.OneOffCharacters, 1)
	s.Equal("oneoff_1", got.Session.OneOffCharacters[0].ID)
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, wizardsession.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, wizardsession.CreateInput{Session: &story.WizardSession{OwnerID: "o"}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, wizardsession.CreateInput{Session: &story.WizardSession{ID: "w"}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateRejectsExpiredSession() {
	session := s.testSession()
	session.ExpiresAt = time.Now().Add(-time.Hour).Unix()

	_, err := s.repo.Create(s.ctx, wizardsession.CreateInput{Session: session})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateReplacesExistingSession() {
	first := s.testSession()
	_, err := s.repo.Create(s.ctx, wizardsession.CreateInput{Session: first})
	s.Require().NoError(err)

	second := s.testSession()
	second.ID = "wizard_789"
	_, err = s.repo.Create(s.ctx, wizardsession.CreateInput{Session: second})
	s.Require().NoError(err)

	// Old session is gone, owner mapping points at the new one
	_, err = s.repo.Get(s.ctx, wizardsession.GetInput{ID: first.ID})
	s.True(errors.IsNotFound(err))

	got, err := s.repo.GetByOwnerID(s.ctx, wizardsession.GetByOwnerIDInput{OwnerID: "owner_456"})
	s.Require().NoError(err)
	s.Equal("wizard_789", got.Session.ID)
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, wizardsession.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetByOwnerIDNotFound() {
	_, err := s.repo.GetByOwnerID(s.ctx, wizardsession.GetByOwnerIDInput{OwnerID: "nobody"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetByOwnerIDCleansStaleMapping() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	repo := wizardsession.NewRedisRepository(client)

	session := s.testSession()
	_, err := repo.Create(s.ctx, wizardsession.CreateInput{Session: session})
	s.Require().NoError(err)

	// Simulate the session TTL firing while the owner mapping survives
	mr.FastForward(25 * time.Hour)

	_, err = repo.GetByOwnerID(s.ctx, wizardsession.GetByOwnerIDInput{OwnerID: session.OwnerID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	session := s.testSession()
	_, err := s.repo.Create(s.ctx, wizardsession.CreateInput{Session: session})
	s.Require().NoError(err)

	session.Mode = story.ModeSurprise
	_, err = s.repo.Update(s.ctx, wizardsession.UpdateInput{Session: session})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, wizardsession.GetInput{ID: session.ID})
	s.Require().NoError(err)
	s.Equal(story.ModeSurprise, got.Session.Mode)
	// The selection rides along untouched by the mode change
	s.Len(got.Session.SelectedCharacters, 2)
}

func (s *RedisRepositoryTestSuite) TestUpdateNotFound() {
	session := s.testSession()
	_, err := s.repo.Update(s.ctx, wizardsession.UpdateInput{Session: session})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	session := s.testSession()
	_, err := s.repo.Create(s.ctx, wizardsession.CreateInput{Session: session})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, wizardsession.DeleteInput{ID: session.ID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, wizardsession.GetInput{ID: session.ID})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.GetByOwnerID(s.ctx, wizardsession.GetByOwnerIDInput{OwnerID: session.OwnerID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteNotFound() {
	_, err := s.repo.Delete(s.ctx, wizardsession.DeleteInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
