package wizard_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	storygenmock "github.com/storynest/storynest-api/internal/clients/storygen/mock"
	"github.com/storynest/storynest-api/internal/entities/story"
	"github.com/storynest/storynest-api/internal/errors"
	wizardorch "github.com/storynest/storynest-api/internal/orchestrators/wizard"
	clockmock "github.com/storynest/storynest-api/internal/pkg/clock/mock"
	"github.com/storynest/storynest-api/internal/pkg/idgen"
	childrenrepo "github.com/storynest/storynest-api/internal/repositories/children"
	childrenmock "github.com/storynest/storynest-api/internal/repositories/children/mock"
	savedrepo "github.com/storynest/storynest-api/internal/repositories/saved_characters"
	savedcharactersmock "github.com/storynest/storynest-api/internal/repositories/saved_characters/mock"
	storiesrepo "github.com/storynest/storynest-api/internal/repositories/stories"
	storiesmock "github.com/storynest/storynest-api/internal/repositories/stories/mock"
	sessionrepo "github.com/storynest/storynest-api/internal/repositories/wizard_session"
	wizardsessionmock "github.com/storynest/storynest-api/internal/repositories/wizard_session/mock"
	creditssvc "github.com/storynest/storynest-api/internal/services/credits"
	creditsmock "github.com/storynest/storynest-api/internal/services/credits/mock"
	wizardsvc "github.com/storynest/storynest-api/internal/services/wizard"
	"github.com/storynest/storynest-api/internal/clients/storygen"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	sessionRepo    *wizardsessionmock.MockRepository
	childrenRepo   *childrenmock.MockRepository
	savedRepo      *savedcharactersmock.MockRepository
	storyRepo      *storiesmock.MockRepository
	creditsService *creditsmock.MockService
	storyGen       *storygenmock.MockClient
	clock          *clockmock.MockClock

	orchestrator *wizardorch.Orchestrator
	ctx          context.Context
	now          time.Time
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sessionRepo = wizardsessionmock.NewMockRepository(s.ctrl)
	s.childrenRepo = childrenmock.NewMockRepository(s.ctrl)
	s.savedRepo = savedcharactersmock.NewMockRepository(s.ctrl)
	s.storyRepo = storiesmock.NewMockRepository(s.ctrl)
	s.creditsService = creditsmock.NewMockService(s.ctrl)
	s.storyGen = storygenmock.NewMockClient(s.ctrl)
	s.clock = clockmock.NewMockClock(s.ctrl)

	s.ctx = context.Background()
	s.now = time.Unix(1700000000, 0)
	s.clock.EXPECT().Now().Return(s.now).AnyTimes()

	orchestrator, err := wizardorch.New(&wizardorch.Config{
		SessionRepo:        s.sessionRepo,
		ChildrenRepo:       s.childrenRepo,
		SavedCharacterRepo: s.savedRepo,
		StoryRepo:          s.storyRepo,
		CreditsService:     s.creditsService,
		StoryGenClient:     s.storyGen,
		SessionIDGenerator: idgen.NewSequential("wizard"),
		StoryIDGenerator:   idgen.NewSequential("story"),
		OneOffIDGenerator:  idgen.NewSequential("oneoff"),
		Clock:              s.clock,
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) session(mode story.Mode, selected, oneOffs []*story.Character) *story.WizardSession {
	return &story.WizardSession{
		ID:                 "wizard_1",
		OwnerID:            "owner_1",
		Mode:               mode,
		SelectedCharacters: selected,
		OneOffCharacters:   oneOffs,
		CreatedAt:          s.now.Unix(),
		UpdatedAt:          s.now.Unix(),
	}
}

func (s *OrchestratorTestSuite) expectSessionByOwner(session *story.WizardSession) {
	s.sessionRepo.EXPECT().
		GetByOwnerID(s.ctx, sessionrepo.GetByOwnerIDInput{OwnerID: "owner_1"}).
		Return(&sessionrepo.GetByOwnerIDOutput{Session: session}, nil)
}

func (s *OrchestratorTestSuite) expectUpdateEcho() **story.WizardSession {
	var captured *story.WizardSession
	s.sessionRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input sessionrepo.UpdateInput) (*sessionrepo.UpdateOutput, error) {
			captured = input.Session
			return &sessionrepo.UpdateOutput{Session: input.Session}, nil
		})
	return &captured
}

func (s *OrchestratorTestSuite) TestStartWizardWithPreselectedChild() {
	s.childrenRepo.EXPECT().
		ListByOwner(s.ctx, childrenrepo.ListByOwnerInput{OwnerID: "owner_1"}).
		Return(&childrenrepo.ListByOwnerOutput{Children: []*story.Child{
			{ID: "child_1", OwnerID: "owner_1", Name: "Maya"},
		}}, nil)

	var created *story.WizardSession
	s.sessionRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input sessionrepo.CreateInput) (*sessionrepo.CreateOutput, error) {
			created = input.Session
			return &sessionrepo.CreateOutput{Session: input.Session}, nil
		})

	output, err := s.orchestrator.StartWizard(s.ctx, &wizardsvc.StartWizardInput{
		OwnerID:          "owner_1",
		SelectedChildIDs: []string{"child_1", "child_gone"},
	})
	s.Require().NoError(err)

	s.Equal(story.ModeCustom, created.Mode)
	s.Require().Len(created.SelectedCharacters, 1)
	s.Equal("child_1", created.SelectedCharacters[0].ChildID)
	s.True(created.SelectedCharacters[0].IsChild)
	s.Equal(s.now.Add(24*time.Hour).Unix(), created.ExpiresAt)
	s.Equal(created, output.Session)
}

func (s *OrchestratorTestSuite) TestStartWizardWithNoSelectionIsSurprise() {
	var created *story.WizardSession
	s.sessionRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input sessionrepo.CreateInput) (*sessionrepo.CreateOutput, error) {
			created = input.Session
			return &sessionrepo.CreateOutput{Session: input.Session}, nil
		})

	_, err := s.orchestrator.StartWizard(s.ctx, &wizardsvc.StartWizardInput{OwnerID: "owner_1"})
	s.Require().NoError(err)
	s.Equal(story.ModeSurprise, created.Mode)
	s.Empty(created.SelectedCharacters)
}

func (s *OrchestratorTestSuite) TestToggleChildSelectsAndDeselects() {
	child := &story.Child{ID: "child_1", OwnerID: "owner_1", Name: "Maya"}
	s.childrenRepo.EXPECT().
		Get(s.ctx, childrenrepo.GetInput{ID: "child_1"}).
		Return(&childrenrepo.GetOutput{Child: child}, nil).
		Times(2)

	// First toggle: empty session, child gets selected
	s.expectSessionByOwner(s.session(story.ModeSurprise, nil, nil))
	captured := s.expectUpdateEcho()

	output, err := s.orchestrator.ToggleChild(s.ctx, &wizardsvc.ToggleChildInput{
		OwnerID: "owner_1",
		ChildID: "child_1",
	})
	s.Require().NoError(err)
	s.True(output.Selected)
	s.Require().Len((*captured).SelectedCharacters, 1)

	// Second toggle: replay the stored session, child gets removed
	s.expectSessionByOwner(*captured)
	captured = s.expectUpdateEcho()

	output, err = s.orchestrator.ToggleChild(s.ctx, &wizardsvc.ToggleChildInput{
		OwnerID: "owner_1",
		ChildID: "child_1",
	})
	s.Require().NoError(err)
	s.False(output.Selected)
	s.Empty((*captured).SelectedCharacters)
}

func (s *OrchestratorTestSuite) TestToggleChildOwnedByAnotherAccount() {
	s.childrenRepo.EXPECT().
		Get(s.ctx, childrenrepo.GetInput{ID: "child_1"}).
		Return(&childrenrepo.GetOutput{Child: &story.Child{ID: "child_1", OwnerID: "owner_2"}}, nil)

	_, err := s.orchestrator.ToggleChild(s.ctx, &wizardsvc.ToggleChildInput{
		OwnerID: "owner_1",
		ChildID: "child_1",
	})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestToggleSavedCharacterByIDNotName() {
	saved := &story.SavedCharacter{ID: "saved_2", OwnerID: "owner_1", Name: "Hero"}
	s.savedRepo.EXPECT().
		Get(s.ctx, savedrepo.GetInput{ID: "saved_2"}).
		Return(&savedrepo.GetOutput{Character: saved}, nil)

	// saved_1 shares the name but not the ID, so saved_2 gets appended
	existing := s.session(story.ModeCustom, []*story.Character{
		{Name: "Hero", SavedCharacterID: "saved_1"},
	}, nil)
	s.expectSessionByOwner(existing)
	captured := s.expectUpdateEcho()

	output, err := s.orchestrator.ToggleSavedCharacter(s.ctx, &wizardsvc.ToggleSavedCharacterInput{
		OwnerID:          "owner_1",
		SavedCharacterID: "saved_2",
	})
	s.Require().NoError(err)
	s.True(output.Selected)
	s.Len((*captured).SelectedCharacters, 2)
}

func (s *OrchestratorTestSuite) TestAddOneOffForcesCustomMode() {
	s.expectSessionByOwner(s.session(story.ModeSurprise, nil, nil))
	captured := s.expectUpdateEcho()

	output, err := s.orchestrator.AddOneOffCharacter(s.ctx, &wizardsvc.AddOneOffCharacterInput{
		OwnerID:     "owner_1",
		Name:        "Sparkle the Dragon",
		Description: "a tiny dragon",
	})
	s.Require().NoError(err)
	s.True(output.Character.IsOneOff)
	s.NotEmpty(output.Character.ID)
	s.Equal(story.ModeCustom, (*captured).Mode)
	s.Len((*captured).OneOffCharacters, 1)
}

func (s *OrchestratorTestSuite) TestUpdateOneOffPreservesIdentity() {
	oneOff := &story.Character{ID: "oneoff_7", Name: "Sparkle", IsOneOff: true}
	s.expectSessionByOwner(s.session(story.ModeCustom, []*story.Character{oneOff}, []*story.Character{oneOff}))
	captured := s.expectUpdateEcho()

	output, err := s.orchestrator.UpdateOneOffCharacter(s.ctx, &wizardsvc.UpdateOneOffCharacterInput{
		OwnerID: "owner_1",
		Index:   0,
		Name:    "Sparkle the Brave",
	})
	s.Require().NoError(err)
	s.True(output.Updated)
	s.Require().Len((*captured).OneOffCharacters, 1)
	s.Equal("oneoff_7", (*captured).OneOffCharacters[0].ID)
	s.Equal("Sparkle the Brave", (*captured).OneOffCharacters[0].Name)
	s.Require().Len((*captured).SelectedCharacters, 1)
	s.Equal("Sparkle the Brave", (*captured).SelectedCharacters[0].Name)
}

func (s *OrchestratorTestSuite) TestUpdateOneOffOutOfBoundsIsNotPersisted() {
	s.expectSessionByOwner(s.session(story.ModeCustom, nil, nil))
	// No Update expectation: out-of-range edits never hit storage

	output, err := s.orchestrator.UpdateOneOffCharacter(s.ctx, &wizardsvc.UpdateOneOffCharacterInput{
		OwnerID: "owner_1",
		Index:   5,
		Name:    "Nobody",
	})
	s.Require().NoError(err)
	s.False(output.Updated)
}

func (s *OrchestratorTestSuite) TestRemoveOneOffOutOfBoundsIsNotPersisted() {
	s.expectSessionByOwner(s.session(story.ModeCustom, nil, nil))

	output, err := s.orchestrator.RemoveOneOffCharacter(s.ctx, &wizardsvc.RemoveOneOffCharacterInput{
		OwnerID: "owner_1",
		Index:   -1,
	})
	s.Require().NoError(err)
	s.False(output.Removed)
}

func (s *OrchestratorTestSuite) TestSubmitStoryCustomMode() {
	selected := []*story.Character{
		{Name: "Maya", IsChild: true, ChildID: "child_1"},
		{ID: "oneoff_7", Name: "Sparkle", IsOneOff: true},
	}
	s.expectSessionByOwner(s.session(story.ModeCustom, selected, selected[1:]))

	s.creditsService.EXPECT().
		SpendStoryCredit(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *creditssvc.SpendStoryCreditInput) (*creditssvc.SpendStoryCreditOutput, error) {
			s.Equal("owner_1", input.OwnerID)
			return &creditssvc.SpendStoryCreditOutput{}, nil
		})

	var created *story.Story
	s.storyRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input storiesrepo.CreateInput) (*storiesrepo.CreateOutput, error) {
			created = input.Story
			return &storiesrepo.CreateOutput{Story: input.Story}, nil
		})

	s.sessionRepo.EXPECT().
		Delete(s.ctx, sessionrepo.DeleteInput{ID: "wizard_1"}).
		Return(&sessionrepo.DeleteOutput{}, nil)

	s.storyGen.EXPECT().
		GenerateStory(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *storygen.GenerateStoryInput) (*storygen.GenerateStoryOutput, error) {
			s.Len(input.Characters, 2)
			return &storygen.GenerateStoryOutput{Title: "Maya and Sparkle", Text: "Once upon a time..."}, nil
		})

	s.storyRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input storiesrepo.UpdateInput) (*storiesrepo.UpdateOutput, error) {
			return &storiesrepo.UpdateOutput{Story: input.Story}, nil
		})

	output, err := s.orchestrator.SubmitStory(s.ctx, &wizardsvc.SubmitStoryInput{OwnerID: "owner_1"})
	s.Require().NoError(err)
	s.Equal(story.StoryStatusReady, output.Story.Status)
	s.Equal("Maya and Sparkle", output.Story.Title)
	s.Equal("Once upon a time...", output.Story.Text)
	s.Len(created.Characters, 2)
}

func (s *OrchestratorTestSuite) TestSubmitStorySurpriseModeSendsNoCharacters() {
	// A selection kept around from custom mode must not leak into the story
	selected := []*story.Character{{Name: "Maya", IsChild: true, ChildID: "child_1"}}
	s.expectSessionByOwner(s.session(story.ModeSurprise, selected, nil))

	s.creditsService.EXPECT().
		SpendStoryCredit(s.ctx, gomock.Any()).
		Return(&creditssvc.SpendStoryCreditOutput{}, nil)

	var created *story.Story
	s.storyRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input storiesrepo.CreateInput) (*storiesrepo.CreateOutput, error) {
			created = input.Story
			return &storiesrepo.CreateOutput{Story: input.Story}, nil
		})

	s.sessionRepo.EXPECT().
		Delete(s.ctx, gomock.Any()).
		Return(&sessionrepo.DeleteOutput{}, nil)

	s.storyGen.EXPECT().
		GenerateStory(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *storygen.GenerateStoryInput) (*storygen.GenerateStoryOutput, error) {
			s.Empty(input.Characters)
			return &storygen.GenerateStoryOutput{Title: "A Surprise", Text: "..."}, nil
		})

	s.storyRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input storiesrepo.UpdateInput) (*storiesrepo.UpdateOutput, error) {
			return &storiesrepo.UpdateOutput{Story: input.Story}, nil
		})

	_, err := s.orchestrator.SubmitStory(s.ctx, &wizardsvc.SubmitStoryInput{OwnerID: "owner_1"})
	s.Require().NoError(err)
	s.Empty(created.Characters)
	s.Equal(story.ModeSurprise, created.Mode)
}

func (s *OrchestratorTestSuite) TestSubmitStoryGenerationFailureLeavesFailedStory() {
	s.expectSessionByOwner(s.session(story.ModeSurprise, nil, nil))

	s.creditsService.EXPECT().
		SpendStoryCredit(s.ctx, gomock.Any()).
		Return(&creditssvc.SpendStoryCreditOutput{}, nil)

	s.storyRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input storiesrepo.CreateInput) (*storiesrepo.CreateOutput, error) {
			return &storiesrepo.CreateOutput{Story: input.Story}, nil
		})

	s.sessionRepo.EXPECT().
		Delete(s.ctx, gomock.Any()).
		Return(&sessionrepo.DeleteOutput{}, nil)

	s.storyGen.EXPECT().
		GenerateStory(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("backend down"))

	var updated *story.Story
	s.storyRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input storiesrepo.UpdateInput) (*storiesrepo.UpdateOutput, error) {
			updated = input.Story
			return &storiesrepo.UpdateOutput{Story: input.Story}, nil
		})

	output, err := s.orchestrator.SubmitStory(s.ctx, &wizardsvc.SubmitStoryInput{OwnerID: "owner_1"})
	s.Require().NoError(err)
	s.Equal(story.StoryStatusFailed, output.Story.Status)
	s.Equal(story.StoryStatusFailed, updated.Status)
}

func (s *OrchestratorTestSuite) TestSubmitStoryWithoutCredits() {
	s.expectSessionByOwner(s.session(story.ModeSurprise, nil, nil))

	s.creditsService.EXPECT().
		SpendStoryCredit(s.ctx, gomock.Any()).
		Return(nil, errors.FailedPrecondition("no story credits"))

	_, err := s.orchestrator.SubmitStory(s.ctx, &wizardsvc.SubmitStoryInput{OwnerID: "owner_1"})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestGetStoryOwnedByAnotherAccount() {
	s.storyRepo.EXPECT().
		Get(s.ctx, storiesrepo.GetInput{ID: "story_1"}).
		Return(&storiesrepo.GetOutput{Story: &story.Story{ID: "story_1", OwnerID: "owner_2"}}, nil)

	_, err := s.orchestrator.GetStory(s.ctx, &wizardsvc.GetStoryInput{OwnerID: "owner_1", StoryID: "story_1"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestValidation() {
	_, err := s.orchestrator.StartWizard(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.SetMode(s.ctx, &wizardsvc.SetModeInput{OwnerID: "owner_1", Mode: "chaotic"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.AddOneOffCharacter(s.ctx, &wizardsvc.AddOneOffCharacterInput{OwnerID: "owner_1"})
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
