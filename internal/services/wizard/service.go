// Package wizard defines the interface for story wizard operations
package wizard

//go:generate mockgen -destination=mock/mock_service.go -package=wizardmock github.com/storynest/storynest-api/internal/services/wizard Service

import (
	"context"

	"github.com/storynest/storynest-api/internal/entities/story"
)

// Service defines the interface for story wizard operations
type Service interface {
	// Session lifecycle
	StartWizard(ctx context.Context, input *StartWizardInput) (*StartWizardOutput, error)
	GetWizard(ctx context.Context, input *GetWizardInput) (*GetWizardOutput, error)
	CancelWizard(ctx context.Context, input *CancelWizardInput) (*CancelWizardOutput, error)

	// Character selection
	SetMode(ctx context.Context, input *SetModeInput) (*SetModeOutput, error)
	ToggleChild(ctx context.Context, input *ToggleChildInput) (*ToggleChildOutput, error)
	ToggleSavedCharacter(ctx context.Context, input *ToggleSavedCharacterInput) (*ToggleSavedCharacterOutput, error)
	AddOneOffCharacter(ctx context.Context, input *AddOneOffCharacterInput) (*AddOneOffCharacterOutput, error)
	UpdateOneOffCharacter(ctx context.Context, input *UpdateOneOffCharacterInput) (*UpdateOneOffCharacterOutput, error)
	RemoveOneOffCharacter(ctx context.Context, input *RemoveOneOffCharacterInput) (*RemoveOneOffCharacterOutput, error)

	// Submission and the finished library
	SubmitStory(ctx context.Context, input *SubmitStoryInput) (*SubmitStoryOutput, error)
	GetStory(ctx context.Context, input *GetStoryInput) (*GetStoryOutput, error)
	ListStories(ctx context.Context, input *ListStoriesInput) (*ListStoriesOutput, error)
	DeleteStory(ctx context.Context, input *DeleteStoryInput) (*DeleteStoryOutput, error)
}

// Session lifecycle types

// StartWizardInput defines the request for opening a wizard session.
// SelectedChildIDs preselects child characters, the way the story screens
// launch the wizard straight from a child's profile.
type StartWizardInput struct {
	OwnerID          string
	SelectedChildIDs []string
}

// StartWizardOutput defines the response for opening a wizard session
type StartWizardOutput struct {
	Session *story.WizardSession
}

// GetWizardInput defines the request for fetching the active session
type GetWizardInput struct {
	OwnerID string
}

// GetWizardOutput defines the response for fetching the active session
type GetWizardOutput struct {
	Session *story.WizardSession
}

// CancelWizardInput defines the request for abandoning the active session
type CancelWizardInput struct {
	OwnerID string
}

// CancelWizardOutput defines the response for abandoning the active session
type CancelWizardOutput struct{}

// Character selection types

// SetModeInput defines the request for switching surprise/custom mode
type SetModeInput struct {
	OwnerID string
	Mode    story.Mode
}

// SetModeOutput defines the response for switching surprise/custom mode
type SetModeOutput struct {
	Session *story.WizardSession
}

// ToggleChildInput defines the request for toggling a child character
type ToggleChildInput struct {
	OwnerID string
	ChildID string
}

// ToggleChildOutput defines the response for toggling a child character
type ToggleChildOutput struct {
	Selected bool
	Session  *story.WizardSession
}

// ToggleSavedCharacterInput defines the request for toggling a saved character
type ToggleSavedCharacterInput struct {
	OwnerID          string
	SavedCharacterID string
}

// ToggleSavedCharacterOutput defines the response for toggling a saved character
type ToggleSavedCharacterOutput struct {
	Selected bool
	Session  *story.WizardSession
}

// AddOneOffCharacterInput defines the request for adding a one-off character
type AddOneOffCharacterInput struct {
	OwnerID     string
	Name        string
	Description string
	Appearance  string
}

// AddOneOffCharacterOutput defines the response for adding a one-off character
type AddOneOffCharacterOutput struct {
	Character *story.Character
	Session   *story.WizardSession
}

// UpdateOneOffCharacterInput defines the request for editing a one-off by
// its position in the one-off roster
type UpdateOneOffCharacterInput struct {
	OwnerID     string
	Index       int
	Name        string
	Description string
	Appearance  string
}

// UpdateOneOffCharacterOutput defines the response for editing a one-off.
// Updated is false when the index was out of bounds.
type UpdateOneOffCharacterOutput struct {
	Updated bool
	Session *story.WizardSession
}

// RemoveOneOffCharacterInput defines the request for removing a one-off by
// its position in the one-off roster
type RemoveOneOffCharacterInput struct {
	OwnerID string
	Index   int
}

// RemoveOneOffCharacterOutput defines the response for removing a one-off.
// Removed is false when the index was out of bounds.
type RemoveOneOffCharacterOutput struct {
	Removed bool
	Session *story.WizardSession
}

// Submission and library types

// SubmitStoryInput defines the request for submitting the wizard for
// generation
type SubmitStoryInput struct {
	OwnerID string
	Title   string
}

// SubmitStoryOutput defines the response for submitting the wizard
type SubmitStoryOutput struct {
	Story *story.Story
}

// GetStoryInput defines the request for fetching a finished story
type GetStoryInput struct {
	OwnerID string
	StoryID string
}

// GetStoryOutput defines the response for fetching a finished story
type GetStoryOutput struct {
	Story *story.Story
}

// ListStoriesInput defines the request for listing an owner's library
type ListStoriesInput struct {
	OwnerID string
}

// ListStoriesOutput defines the response for listing an owner's library
type ListStoriesOutput struct {
	Stories []*story.Story
}

// DeleteStoryInput defines the request for deleting a story
type DeleteStoryInput struct {
	OwnerID string
	StoryID string
}

// DeleteStoryOutput defines the response for deleting a story
type DeleteStoryOutput struct{}
