// Package profile defines the interface for child and saved-character
// profile management
package profile

//go:generate mockgen -destination=mock/mock_service.go -package=profilemock github.com/storynest/storynest-api/internal/services/profile Service

import (
	"context"

	"github.com/storynest/storynest-api/internal/entities/story"
)

// Service defines the interface for profile operations
type Service interface {
	// Child profiles
	CreateChild(ctx context.Context, input *CreateChildInput) (*CreateChildOutput, error)
	GetChild(ctx context.Context, input *GetChildInput) (*GetChildOutput, error)
	ListChildren(ctx context.Context, input *ListChildrenInput) (*ListChildrenOutput, error)
	UpdateChild(ctx context.Context, input *UpdateChildInput) (*UpdateChildOutput, error)
	DeleteChild(ctx context.Context, input *DeleteChildInput) (*DeleteChildOutput, error)

	// Saved characters
	CreateSavedCharacter(ctx context.Context, input *CreateSavedCharacterInput) (*CreateSavedCharacterOutput, error)
	GetSavedCharacter(ctx context.Context, input *GetSavedCharacterInput) (*GetSavedCharacterOutput, error)
	ListSavedCharacters(ctx context.Context, input *ListSavedCharactersInput) (*ListSavedCharactersOutput, error)
	UpdateSavedCharacter(ctx context.Context, input *UpdateSavedCharacterInput) (*UpdateSavedCharacterOutput, error)
	DeleteSavedCharacter(ctx context.Context, input *DeleteSavedCharacterInput) (*DeleteSavedCharacterOutput, error)
}

// Child profile types

// CreateChildInput defines the request for creating a child profile
type CreateChildInput struct {
	OwnerID     string
	Name        string
	BirthDate   string // YYYY-MM-DD, optional
	Preferences string
}

// CreateChildOutput defines the response for creating a child profile
type CreateChildOutput struct {
	Child *story.Child
}

// GetChildInput defines the request for getting a child profile
type GetChildInput struct {
	OwnerID string
	ChildID string
}

// GetChildOutput defines the response for getting a child profile
type GetChildOutput struct {
	Child *story.Child
}

// ListChildrenInput defines the request for listing child profiles
type ListChildrenInput struct {
	OwnerID string
}

// ListChildrenOutput defines the response for listing child profiles
type ListChildrenOutput struct {
	Children []*story.Child
}

// UpdateChildInput defines the request for updating a child profile
type UpdateChildInput struct {
	OwnerID     string
	ChildID     string
	Name        string
	BirthDate   string
	Preferences string
}

// UpdateChildOutput defines the response for updating a child profile
type UpdateChildOutput struct {
	Child *story.Child
}

// DeleteChildInput defines the request for deleting a child profile
type DeleteChildInput struct {
	OwnerID string
	ChildID string
}

// DeleteChildOutput defines the response for deleting a child profile
type DeleteChildOutput struct{}

// Saved character types

// CreateSavedCharacterInput defines the request for creating a saved character
type CreateSavedCharacterInput struct {
	OwnerID     string
	Name        string
	Description string
	Appearance  string
}

// CreateSavedCharacterOutput defines the response for creating a saved character
type CreateSavedCharacterOutput struct {
	Character *story.SavedCharacter
}

// GetSavedCharacterInput defines the request for getting a saved character
type GetSavedCharacterInput struct {
	OwnerID          string
	SavedCharacterID string
}

// GetSavedCharacterOutput defines the response for getting a saved character
type GetSavedCharacterOutput struct {
	Character *story.SavedCharacter
}

// ListSavedCharactersInput defines the request for listing saved characters
type ListSavedCharactersInput struct {
	OwnerID string
}

// ListSavedCharactersOutput defines the response for listing saved characters
type ListSavedCharactersOutput struct {
	Characters []*story.SavedCharacter
}

// UpdateSavedCharacterInput defines the request for updating a saved character
type UpdateSavedCharacterInput struct {
	OwnerID          string
	SavedCharacterID string
	Name             string
	Description      string
	Appearance       string
}

// UpdateSavedCharacterOutput defines the response for updating a saved character
type UpdateSavedCharacterOutput struct {
	Character *story.SavedCharacter
}

// DeleteSavedCharacterInput defines the request for deleting a saved character
type DeleteSavedCharacterInput struct {
	OwnerID          string
	SavedCharacterID string
}

// DeleteSavedCharacterOutput defines the response for deleting a saved character
type DeleteSavedCharacterOutput struct{}
