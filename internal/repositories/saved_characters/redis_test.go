package savedcharacters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/storynest/storynest-api/internal/entities/story"
	"github.com/storynest/storynest-api/internal/errors"
	savedcharacters "github.com/storynest/storynest-api/internal/repositories/saved_characters"
	"github.com/storynest/storynest-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo savedcharacters.Repository
	ctx  context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, _ := testutils.CreateTestRedisClient(s.T())
	s.repo = savedcharacters.NewRedisRepository(client)
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TestCreateGetUpdateDelete() {
	character := &story.SavedCharacter{
		ID:          "saved_1",
		OwnerID:     "owner_1",
		Name:        "Captain Whiskers",
		Description: "a seafaring cat",
	}

	_, err := s.repo.Create(s.ctx, savedcharacters.CreateInput{Character: character})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, savedcharacters.GetInput{ID: "saved_1"})
	s.Require().NoError(err)
	s.Equal("Captain Whiskers", got.Character.Name)

	character.Appearance = "tricorn hat, eye patch"
	_, err = s.repo.Update(s.ctx, savedcharacters.UpdateInput{Character: character})
	s.Require().NoError(err)

	got, err = s.repo.Get(s.ctx, savedcharacters.GetInput{ID: "saved_1"})
	s.Require().NoError(err)
	s.Equal("tricorn hat, eye patch", got.Character.Appearance)

	_, err = s.repo.Delete(s.ctx, savedcharacters.DeleteInput{ID: "saved_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, savedcharacters.GetInput{ID: "saved_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByOwner() {
	for _, c := range []*story.SavedCharacter{
		{ID: "saved_1", OwnerID: "owner_1", Name: "Hero"},
		{ID: "saved_2", OwnerID: "owner_1", Name: "Hero"}, // same name, distinct entity
		{ID: "saved_3", OwnerID: "owner_2", Name: "Villain"},
	} {
		_, err := s.repo.Create(s.ctx, savedcharacters.CreateInput{Character: c})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListByOwner(s.ctx, savedcharacters.ListByOwnerInput{OwnerID: "owner_1"})
	s.Require().NoError(err)
	s.Len(out.Characters, 2)

	ids := map[string]bool{}
	for _, c := range out.Characters {
		ids[c.ID] = true
	}
	s.True(ids["saved_1"])
	s.True(ids["saved_2"])
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Create(s.ctx, savedcharacters.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, savedcharacters.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.ListByOwner(s.ctx, savedcharacters.ListByOwnerInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
