// Package stories defines the interface for story library persistence
package stories

//go:generate mockgen -destination=mock/mock_repository.go -package=storiesmock github.com/storynest/storynest-api/internal/repositories/stories Repository

import (
	"context"

	"github.com/storynest/storynest-api/internal/entities/story"
)

// Repository defines the interface for story library persistence
type Repository interface {
	// Create stores a new story
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a story by ID
	// Returns errors.NotFound if the story doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByOwner retrieves an owner's stories, newest first
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)

	// Update replaces an existing story (status transitions, generated text)
	// Returns errors.NotFound if the story doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a story from the library
	// Returns errors.NotFound if the story doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a story
type CreateInput struct {
	Story *story.Story
}

// CreateOutput defines the output for creating a story
type CreateOutput struct {
	Story *story.Story
}

// GetInput defines the input for getting a story
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a story
type GetOutput struct {
	Story *story.Story
}

// ListByOwnerInput defines the input for listing an owner's stories
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the output for listing an owner's stories
type ListByOwnerOutput struct {
	Stories []*story.Story
}

// UpdateInput defines the input for updating a story
type UpdateInput struct {
	Story *story.Story
}

// UpdateOutput defines the output for updating a story
type UpdateOutput struct {
	Story *story.Story
}

// DeleteInput defines the input for deleting a story
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a story
type DeleteOutput struct{}
