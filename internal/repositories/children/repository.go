// Package children defines the interface for child profile persistence
package children

//go:generate mockgen -destination=mock/mock_repository.go -package=childrenmock github.com/storynest/storynest-api/internal/repositories/children Repository

import (
	"context"

	"github.com/storynest/storynest-api/internal/entities/story"
)

// Repository defines the interface for child profile persistence
type Repository interface {
	// Create stores a new child profile
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a child profile by ID
	// Returns errors.NotFound if the child doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByOwner retrieves all child profiles for an owner, in
	// unspecified order. Dangling index entries are skipped.
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)

	// Update replaces an existing child profile
	// Returns errors.NotFound if the child doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a child profile and its owner index entry
	// Returns errors.NotFound if the child doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a child profile
type CreateInput struct {
	Child *story.Child
}

// CreateOutput defines the output for creating a child profile
type CreateOutput struct {
	Child *story.Child
}

// GetInput defines the input for getting a child profile
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a child profile
type GetOutput struct {
	Child *story.Child
}

// ListByOwnerInput defines the input for listing an owner's children
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the output for listing an owner's children
type ListByOwnerOutput struct {
	Children []*story.Child
}

// UpdateInput defines the input for updating a child profile
type UpdateInput struct {
	Child *story.Child
}

// UpdateOutput defines the output for updating a child profile
type UpdateOutput struct {
	Child *story.Child
}

// DeleteInput defines the input for deleting a child profile
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a child profile
type DeleteOutput struct{}
