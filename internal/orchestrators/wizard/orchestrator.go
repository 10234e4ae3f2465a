// Package wizard implements the story wizard orchestrator
package wizard

import (
	"context"
	"time"

	"github.com/storynest/storynest-api/internal/clients/storygen"
	"github.com/storynest/storynest-api/internal/entities/story"
	"github.com/storynest/storynest-api/internal/errors"
	"github.com/storynest/storynest-api/internal/pkg/clock"
	"github.com/storynest/storynest-api/internal/pkg/idgen"
	childrenrepo "github.com/storynest/storynest-api/internal/repositories/children"
	savedrepo "github.com/storynest/storynest-api/internal/repositories/saved_characters"
	storiesrepo "github.com/storynest/storynest-api/internal/repositories/stories"
	sessionrepo "github.com/storynest/storynest-api/internal/repositories/wizard_session"
	creditssvc "github.com/storynest/storynest-api/internal/services/credits"
	wizardsvc "github.com/storynest/storynest-api/internal/services/wizard"
	"github.com/storynest/storynest-api/internal/wizard"
)

const sessionTTL = 24 * time.Hour

// Config holds the dependencies for the wizard orchestrator
type Config struct {
	SessionRepo        sessionrepo.Repository
	ChildrenRepo       childrenrepo.Repository
	SavedCharacterRepo savedrepo.Repository
	StoryRepo          storiesrepo.Repository
	CreditsService     creditssvc.Service
	StoryGenClient     storygen.Client
	SessionIDGenerator idgen.Generator
	StoryIDGenerator   idgen.Generator
	OneOffIDGenerator  idgen.Generator
	Clock              clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.ChildrenRepo == nil {
		vb.RequiredField("ChildrenRepo")
	}
	if c.SavedCharacterRepo == nil {
		vb.RequiredField("SavedCharacterRepo")
	}
	if c.StoryRepo == nil {
		vb.RequiredField("StoryRepo")
	}
	if c.CreditsService == nil {
		vb.RequiredField("CreditsService")
	}
	if c.StoryGenClient == nil {
		vb.RequiredField("StoryGenClient")
	}
	if c.SessionIDGenerator == nil {
		vb.RequiredField("SessionIDGenerator")
	}
	if c.StoryIDGenerator == nil {
		vb.RequiredField("StoryIDGenerator")
	}
	if c.OneOffIDGenerator == nil {
		vb.RequiredField("OneOffIDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Orchestrator implements the wizard.Service interface. Selection state lives
// in the persisted session: every mutation replays the session into an
// in-memory Selection, applies the change, and snapshots the result back.
type Orchestrator struct {
	sessionRepo        sessionrepo.Repository
	childrenRepo       childrenrepo.Repository
	savedCharacterRepo savedrepo.Repository
	storyRepo          storiesrepo.Repository
	creditsService     creditssvc.Service
	storyGenClient     storygen.Client
	sessionIDGen       idgen.Generator
	storyIDGen         idgen.Generator
	oneOffIDGen        idgen.Generator
	clock              clock.Clock
}

// New creates a new wizard orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		sessionRepo:        cfg.SessionRepo,
		childrenRepo:       cfg.ChildrenRepo,
		savedCharacterRepo: cfg.SavedCharacterRepo,
		storyRepo:          cfg.StoryRepo,
		creditsService:     cfg.CreditsService,
		storyGenClient:     cfg.StoryGenClient,
		sessionIDGen:       cfg.SessionIDGenerator,
		storyIDGen:         cfg.StoryIDGenerator,
		oneOffIDGen:        cfg.OneOffIDGenerator,
		clock:              cfg.Clock,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ wizardsvc.Service = (*Orchestrator)(nil)

// Session lifecycle methods

// StartWizard opens a fresh session for the owner, replacing any session
// already in flight. Child IDs passed in are preselected; IDs that no longer
// resolve to a child are dropped silently.
func (o *Orchestrator) StartWizard(ctx context.Context, input *wizardsvc.StartWizardInput) (*wizardsvc.StartWizardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var children []*story.Child
	if len(input.SelectedChildIDs) > 0 {
		listOutput, err := o.childrenRepo.ListByOwner(ctx, childrenrepo.ListByOwnerInput{OwnerID: input.OwnerID})
		if err != nil {
			return nil, err
		}
		children = listOutput.Children
	}

	selection, err := o.newSelection()
	if err != nil {
		return nil, err
	}
	selection.Initialize(nil, input.SelectedChildIDs, children)

	now := o.clock.Now()
	session := &story.WizardSession{
		ID:        o.sessionIDGen.Generate(),
		OwnerID:   input.OwnerID,
		CreatedAt: now.Unix(),
		UpdatedAt: now.Unix(),
		ExpiresAt: now.Add(sessionTTL).Unix(),
	}
	selection.Snapshot(session)

	createOutput, err := o.sessionRepo.Create(ctx, sessionrepo.CreateInput{Session: session})
	if err != nil {
		return nil, err
	}

	return &wizardsvc.StartWizardOutput{Session: createOutput.Session}, nil
}

// GetWizard returns the owner's active session
func (o *Orchestrator) GetWizard(ctx context.Context, input *wizardsvc.GetWizardInput) (*wizardsvc.GetWizardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	output, err := o.sessionRepo.GetByOwnerID(ctx, sessionrepo.GetByOwnerIDInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}

	return &wizardsvc.GetWizardOutput{Session: output.Session}, nil
}

// CancelWizard abandons the owner's active session
func (o *Orchestrator) CancelWizard(ctx context.Context, input *wizardsvc.CancelWizardInput) (*wizardsvc.CancelWizardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	getOutput, err := o.sessionRepo.GetByOwnerID(ctx, sessionrepo.GetByOwnerIDInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}

	if _, err := o.sessionRepo.Delete(ctx, sessionrepo.DeleteInput{ID: getOutput.Session.ID}); err != nil {
		return nil, err
	}

	return &wizardsvc.CancelWizardOutput{}, nil
}

// Character selection methods

// SetMode switches the session between surprise and custom mode. The
// selection itself is untouched so switching back restores it exactly.
func (o *Orchestrator) SetMode(ctx context.Context, input *wizardsvc.SetModeInput) (*wizardsvc.SetModeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	errors.ValidateEnum("mode", string(input.Mode), []string{string(story.ModeSurprise), string(story.ModeCustom)}, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	selection, session, err := o.loadSelection(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	selection.SetMode(input.Mode)

	session, err = o.saveSelection(ctx, selection, session)
	if err != nil {
		return nil, err
	}

	return &wizardsvc.SetModeOutput{Session: session}, nil
}

// ToggleChild adds the child to the selection, or removes it when already
// present. Membership is decided by the child's ID.
func (o *Orchestrator) ToggleChild(ctx context.Context, input *wizardsvc.ToggleChildInput) (*wizardsvc.ToggleChildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	errors.ValidateRequired("childID", input.ChildID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	childOutput, err := o.childrenRepo.Get(ctx, childrenrepo.GetInput{ID: input.ChildID})
	if err != nil {
		return nil, err
	}
	if childOutput.Child.OwnerID != input.OwnerID {
		return nil, errors.NotFoundf("child with ID %s not found", input.ChildID)
	}

	selection, session, err := o.loadSelection(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	selection.ToggleChild(childOutput.Child)

	session, err = o.saveSelection(ctx, selection, session)
	if err != nil {
		return nil, err
	}

	return &wizardsvc.ToggleChildOutput{
		Selected: selection.IsChildSelected(input.ChildID),
		Session:  session,
	}, nil
}

// ToggleSavedCharacter adds the saved character to the selection, or removes
// it when already present. Membership is decided by the saved character's ID,
// never by name.
func (o *Orchestrator) ToggleSavedCharacter(ctx context.Context, input *wizardsvc.ToggleSavedCharacterInput) (*wizardsvc.ToggleSavedCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	errors.ValidateRequired("savedCharacterID", input.SavedCharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	savedOutput, err := o.savedCharacterRepo.Get(ctx, savedrepo.GetInput{ID: input.SavedCharacterID})
	if err != nil {
		return nil, err
	}
	if savedOutput.Character.OwnerID != input.OwnerID {
		return nil, errors.NotFoundf("saved character with ID %s not found", input.SavedCharacterID)
	}

	selection, session, err := o.loadSelection(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	selection.ToggleSavedCharacter(savedOutput.Character)

	session, err = o.saveSelection(ctx, selection, session)
	if err != nil {
		return nil, err
	}

	return &wizardsvc.ToggleSavedCharacterOutput{
		Selected: selection.IsSavedCharacterSelected(savedOutput.Character),
		Session:  session,
	}, nil
}

// AddOneOffCharacter invents a character for this story only. The entry gets
// a generated ID and the session is forced into custom mode.
func (o *Orchestrator) AddOneOffCharacter(ctx context.Context, input *wizardsvc.AddOneOffCharacterInput) (*wizardsvc.AddOneOffCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	selection, session, err := o.loadSelection(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	entry := selection.AddOneOff(&story.Character{
		Name:        input.Name,
		Description: input.Description,
		Appearance:  input.Appearance,
	})

	session, err = o.saveSelection(ctx, selection, session)
	if err != nil {
		return nil, err
	}

	return &wizardsvc.AddOneOffCharacterOutput{
		Character: entry,
		Session:   session,
	}, nil
}

// UpdateOneOffCharacter edits the one-off at the given roster position. The
// entry keeps its generated ID so selection membership survives the edit.
// Updated is false for out-of-range indexes and nothing is persisted.
func (o *Orchestrator) UpdateOneOffCharacter(ctx context.Context, input *wizardsvc.UpdateOneOffCharacterInput) (*wizardsvc.UpdateOneOffCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	selection, session, err := o.loadSelection(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	updated := selection.UpdateOneOff(input.Index, &story.Character{
		Name:        input.Name,
		Description: input.Description,
		Appearance:  input.Appearance,
	})
	if !updated {
		return &wizardsvc.UpdateOneOffCharacterOutput{Updated: false, Session: session}, nil
	}

	session, err = o.saveSelection(ctx, selection, session)
	if err != nil {
		return nil, err
	}

	return &wizardsvc.UpdateOneOffCharacterOutput{Updated: true, Session: session}, nil
}

// RemoveOneOffCharacter removes the one-off at the given roster position.
// Removed is false for out-of-range indexes and nothing is persisted.
func (o *Orchestrator) RemoveOneOffCharacter(ctx context.Context, input *wizardsvc.RemoveOneOffCharacterInput) (*wizardsvc.RemoveOneOffCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	selection, session, err := o.loadSelection(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	removed := selection.RemoveOneOff(input.Index)
	if !removed {
		return &wizardsvc.RemoveOneOffCharacterOutput{Removed: false, Session: session}, nil
	}

	session, err = o.saveSelection(ctx, selection, session)
	if err != nil {
		return nil, err
	}

	return &wizardsvc.RemoveOneOffCharacterOutput{Removed: true, Session: session}, nil
}

// Submission and library methods

// SubmitStory turns the session into a story. One credit is spent up front;
// the story is stored as generating, the text is produced, and the session is
// deleted once the submission is recorded. A generation failure leaves a
// failed story in the library rather than resurrecting the session.
func (o *Orchestrator) SubmitStory(ctx context.Context, input *wizardsvc.SubmitStoryInput) (*wizardsvc.SubmitStoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	selection, session, err := o.loadSelection(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	now := o.clock.Now()
	st := &story.Story{
		ID:         o.storyIDGen.Generate(),
		OwnerID:    input.OwnerID,
		Title:      input.Title,
		Mode:       selection.Mode(),
		Characters: selection.CharactersForStory(),
		Status:     story.StoryStatusGenerating,
		CreatedAt:  now.Unix(),
		UpdatedAt:  now.Unix(),
	}

	if _, err := o.creditsService.SpendStoryCredit(ctx, &creditssvc.SpendStoryCreditInput{
		OwnerID: input.OwnerID,
		StoryID: st.ID,
	}); err != nil {
		return nil, err
	}

	if _, err := o.storyRepo.Create(ctx, storiesrepo.CreateInput{Story: st}); err != nil {
		return nil, err
	}

	if _, err := o.sessionRepo.Delete(ctx, sessionrepo.DeleteInput{ID: session.ID}); err != nil {
		return nil, err
	}

	genOutput, genErr := o.storyGenClient.GenerateStory(ctx, &storygen.GenerateStoryInput{
		Title:      st.Title,
		Mode:       st.Mode,
		Characters: st.Characters,
	})
	if genErr != nil {
		st.Status = story.StoryStatusFailed
	} else {
		st.Status = story.StoryStatusReady
		st.Text = genOutput.Text
		if st.Title == "" {
			st.Title = genOutput.Title
		}
	}
	st.UpdatedAt = o.clock.Now().Unix()

	if _, err := o.storyRepo.Update(ctx, storiesrepo.UpdateInput{Story: st}); err != nil {
		return nil, err
	}

	return &wizardsvc.SubmitStoryOutput{Story: st}, nil
}

// GetStory fetches one story from the owner's library
func (o *Orchestrator) GetStory(ctx context.Context, input *wizardsvc.GetStoryInput) (*wizardsvc.GetStoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	output, err := o.storyRepo.Get(ctx, storiesrepo.GetInput{ID: input.StoryID})
	if err != nil {
		return nil, err
	}
	if output.Story.OwnerID != input.OwnerID {
		return nil, errors.NotFoundf("story with ID %s not found", input.StoryID)
	}

	return &wizardsvc.GetStoryOutput{Story: output.Story}, nil
}

// ListStories lists the owner's library, newest first
func (o *Orchestrator) ListStories(ctx context.Context, input *wizardsvc.ListStoriesInput) (*wizardsvc.ListStoriesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	output, err := o.storyRepo.ListByOwner(ctx, storiesrepo.ListByOwnerInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}

	return &wizardsvc.ListStoriesOutput{Stories: output.Stories}, nil
}

// DeleteStory removes a story from the owner's library
func (o *Orchestrator) DeleteStory(ctx context.Context, input *wizardsvc.DeleteStoryInput) (*wizardsvc.DeleteStoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	getOutput, err := o.storyRepo.Get(ctx, storiesrepo.GetInput{ID: input.StoryID})
	if err != nil {
		return nil, err
	}
	if getOutput.Story.OwnerID != input.OwnerID {
		return nil, errors.NotFoundf("story with ID %s not found", input.StoryID)
	}

	if _, err := o.storyRepo.Delete(ctx, storiesrepo.DeleteInput{ID: input.StoryID}); err != nil {
		return nil, err
	}

	return &wizardsvc.DeleteStoryOutput{}, nil
}

// Internal helpers

func (o *Orchestrator) newSelection() (*wizard.Selection, error) {
	return wizard.NewSelection(&wizard.SelectionConfig{IDGenerator: o.oneOffIDGen})
}

// loadSelection replays the owner's persisted session into a fresh Selection
func (o *Orchestrator) loadSelection(ctx context.Context, ownerID string) (*wizard.Selection, *story.WizardSession, error) {
	getOutput, err := o.sessionRepo.GetByOwnerID(ctx, sessionrepo.GetByOwnerIDInput{OwnerID: ownerID})
	if err != nil {
		return nil, nil, err
	}

	selection, err := o.newSelection()
	if err != nil {
		return nil, nil, err
	}
	selection.Restore(getOutput.Session)

	return selection, getOutput.Session, nil
}

// saveSelection snapshots the selection back onto the session and persists it
func (o *Orchestrator) saveSelection(ctx context.Context, selection *wizard.Selection, session *story.WizardSession) (*story.WizardSession, error) {
	selection.Snapshot(session)
	session.UpdatedAt = o.clock.Now().Unix()

	updateOutput, err := o.sessionRepo.Update(ctx, sessionrepo.UpdateInput{Session: session})
	if err != nil {
		return nil, err
	}

	return updateOutput.Session, nil
}
