// Package savedcharacters defines the interface for saved character persistence
package savedcharacters

//go:generate mockgen -destination=mock/mock_repository.go -package=savedcharactersmock github.com/storynest/storynest-api/internal/repositories/saved_characters Repository

import (
	"context"

	"github.com/storynest/storynest-api/internal/entities/story"
)

// Repository defines the interface for saved character persistence. Saved
// characters are reusable, user-authored fictional characters referenced by
// stories across sessions.
type Repository interface {
	// Create stores a new saved character
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a saved character by ID
	// Returns errors.NotFound if the character doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByOwner retrieves all saved characters for an owner
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)

	// Update replaces an existing saved character
	// Returns errors.NotFound if the character doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a saved character and its owner index entry
	// Returns errors.NotFound if the character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a saved character
type CreateInput struct {
	Character *story.SavedCharacter
}

// CreateOutput defines the output for creating a saved character
type CreateOutput struct {
	Character *story.SavedCharacter
}

// GetInput defines the input for getting a saved character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a saved character
type GetOutput struct {
	Character *story.SavedCharacter
}

// ListByOwnerInput defines the input for listing an owner's characters
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the output for listing an owner's characters
type ListByOwnerOutput struct {
	Characters []*story.SavedCharacter
}

// UpdateInput defines the input for updating a saved character
type UpdateInput struct {
	Character *story.SavedCharacter
}

// UpdateOutput defines the output for updating a saved character
type UpdateOutput struct {
	Character *story.SavedCharacter
}

// DeleteInput defines the input for deleting a saved character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a saved character
type DeleteOutput struct{}
