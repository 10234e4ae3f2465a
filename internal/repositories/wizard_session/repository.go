// Package wizardsession defines the interface for wizard session persistence
package wizardsession

//go:generate mockgen -destination=mock/mock_repository.go -package=wizardsessionmock github.com/storynest/storynest-api/internal/repositories/wizard_session Repository

import (
	"context"

	"github.com/storynest/storynest-api/internal/entities/story"
)

// Repository defines the interface for wizard session persistence
// Implements a single-session-per-owner pattern: starting a new wizard
// replaces any session the owner already has
type Repository interface {
	// Create creates or replaces the owner's wizard session
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a wizard session by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if the session doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetByOwnerID retrieves the owner's single active session
	// Returns errors.InvalidArgument for empty/invalid owner IDs
	// Returns errors.NotFound if the owner has no session
	// Returns errors.Internal for storage failures
	GetByOwnerID(ctx context.Context, input GetByOwnerIDInput) (*GetByOwnerIDOutput, error)

	// Update updates an existing wizard session
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the session doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a wizard session by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if the session doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a wizard session
type CreateInput struct {
	Session *story.WizardSession
}

// CreateOutput defines the output for creating a wizard session
type CreateOutput struct {
	Session *story.WizardSession
}

// GetInput defines the input for getting a wizard session
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a wizard session
type GetOutput struct {
	Session *story.WizardSession
}

// GetByOwnerIDInput defines the input for getting an owner's session
type GetByOwnerIDInput struct {
	OwnerID string
}

// GetByOwnerIDOutput defines the output for getting an owner's session
type GetByOwnerIDOutput struct {
	Session *story.WizardSession
}

// UpdateInput defines the input for updating a wizard session
type UpdateInput struct {
	Session *story.WizardSession
}

// UpdateOutput defines the output for updating a wizard session
type UpdateOutput struct {
	Session *story.WizardSession
}

// DeleteInput defines the input for deleting a wizard session
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a wizard session
type DeleteOutput struct{}
