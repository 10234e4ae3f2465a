// Package profile implements the profile orchestrator
package profile

import (
	"context"

	"github.com/storynest/storynest-api/internal/entities/story"
	"github.com/storynest/storynest-api/internal/errors"
	"github.com/storynest/storynest-api/internal/pkg/clock"
	"github.com/storynest/storynest-api/internal/pkg/idgen"
	childrenrepo "github.com/storynest/storynest-api/internal/repositories/children"
	savedrepo "github.com/storynest/storynest-api/internal/repositories/saved_characters"
	profilesvc "github.com/storynest/storynest-api/internal/services/profile"
)

const maxNameLength = 100

// Config holds the dependencies for the profile orchestrator
type Config struct {
	ChildrenRepo       childrenrepo.Repository
	SavedCharacterRepo savedrepo.Repository
	ChildIDGenerator   idgen.Generator
	SavedIDGenerator   idgen.Generator
	Clock              clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ChildrenRepo == nil {
		vb.RequiredField("ChildrenRepo")
	}
	if c.SavedCharacterRepo == nil {
		vb.RequiredField("SavedCharacterRepo")
	}
	if c.ChildIDGenerator == nil {
		vb.RequiredField("ChildIDGenerator")
	}
	if c.SavedIDGenerator == nil {
		vb.RequiredField("SavedIDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Orchestrator implements the profile.Service interface
type Orchestrator struct {
	childrenRepo       childrenrepo.Repository
	savedCharacterRepo savedrepo.Repository
	childIDGen         idgen.Generator
	savedIDGen         idgen.Generator
	clock              clock.Clock
}

// New creates a new profile orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		childrenRepo:       cfg.ChildrenRepo,
		savedCharacterRepo: cfg.SavedCharacterRepo,
		childIDGen:         cfg.ChildIDGenerator,
		savedIDGen:         cfg.SavedIDGenerator,
		clock:              cfg.Clock,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ profilesvc.Service = (*Orchestrator)(nil)

// Child profile methods

// CreateChild creates a new child profile
func (o *Orchestrator) CreateChild(ctx context.Context, input *profilesvc.CreateChildInput) (*profilesvc.CreateChildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateMaxLength("name", input.Name, maxNameLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now().Unix()
	child := &story.Child{
		ID:          o.childIDGen.Generate(),
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		BirthDate:   input.BirthDate,
		Preferences: input.Preferences,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	output, err := o.childrenRepo.Create(ctx, childrenrepo.CreateInput{Child: child})
	if err != nil {
		return nil, err
	}

	return &profilesvc.CreateChildOutput{Child: output.Child}, nil
}

// GetChild retrieves one of the owner's child profiles
func (o *Orchestrator) GetChild(ctx context.Context, input *profilesvc.GetChildInput) (*profilesvc.GetChildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	child, err := o.ownedChild(ctx, input.OwnerID, input.ChildID)
	if err != nil {
		return nil, err
	}

	return &profilesvc.GetChildOutput{Child: child}, nil
}

// ListChildren lists the owner's child profiles
func (o *Orchestrator) ListChildren(ctx context.Context, input *profilesvc.ListChildrenInput) (*profilesvc.ListChildrenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	output, err := o.childrenRepo.ListByOwner(ctx, childrenrepo.ListByOwnerInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}

	return &profilesvc.ListChildrenOutput{Children: output.Children}, nil
}

// UpdateChild updates a child profile. The ID is stable across edits, so
// stories and wizard selections referencing the child are unaffected.
func (o *Orchestrator) UpdateChild(ctx context.Context, input *profilesvc.UpdateChildInput) (*profilesvc.UpdateChildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateMaxLength("name", input.Name, maxNameLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	child, err := o.ownedChild(ctx, input.OwnerID, input.ChildID)
	if err != nil {
		return nil, err
	}

	child.Name = input.Name
	child.BirthDate = input.BirthDate
	child.Preferences = input.Preferences
	child.UpdatedAt = o.clock.Now().Unix()

	output, err := o.childrenRepo.Update(ctx, childrenrepo.UpdateInput{Child: child})
	if err != nil {
		return nil, err
	}

	return &profilesvc.UpdateChildOutput{Child: output.Child}, nil
}

// DeleteChild deletes a child profile
func (o *Orchestrator) DeleteChild(ctx context.Context, input *profilesvc.DeleteChildInput) (*profilesvc.DeleteChildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.ownedChild(ctx, input.OwnerID, input.ChildID); err != nil {
		return nil, err
	}

	if _, err := o.childrenRepo.Delete(ctx, childrenrepo.DeleteInput{ID: input.ChildID}); err != nil {
		return nil, err
	}

	return &profilesvc.DeleteChildOutput{}, nil
}

// Saved character methods

// CreateSavedCharacter creates a reusable character
func (o *Orchestrator) CreateSavedCharacter(ctx context.Context, input *profilesvc.CreateSavedCharacterInput) (*profilesvc.CreateSavedCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateMaxLength("name", input.Name, maxNameLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now().Unix()
	character := &story.SavedCharacter{
		ID:          o.savedIDGen.Generate(),
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		Description: input.Description,
		Appearance:  input.Appearance,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	output, err := o.savedCharacterRepo.Create(ctx, savedrepo.CreateInput{Character: character})
	if err != nil {
		return nil, err
	}

	return &profilesvc.CreateSavedCharacterOutput{Character: output.Character}, nil
}

// GetSavedCharacter retrieves one of the owner's saved characters
func (o *Orchestrator) GetSavedCharacter(ctx context.Context, input *profilesvc.GetSavedCharacterInput) (*profilesvc.GetSavedCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := o.ownedSavedCharacter(ctx, input.OwnerID, input.SavedCharacterID)
	if err != nil {
		return nil, err
	}

	return &profilesvc.GetSavedCharacterOutput{Character: character}, nil
}

// ListSavedCharacters lists the owner's saved characters
func (o *Orchestrator) ListSavedCharacters(ctx context.Context, input *profilesvc.ListSavedCharactersInput) (*profilesvc.ListSavedCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	output, err := o.savedCharacterRepo.ListByOwner(ctx, savedrepo.ListByOwnerInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}

	return &profilesvc.ListSavedCharactersOutput{Characters: output.Characters}, nil
}

// UpdateSavedCharacter updates a saved character. Edits never change the ID,
// so a character that is selected in an open wizard stays selected.
func (o *Orchestrator) UpdateSavedCharacter(ctx context.Context, input *profilesvc.UpdateSavedCharacterInput) (*profilesvc.UpdateSavedCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateMaxLength("name", input.Name, maxNameLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character, err := o.ownedSavedCharacter(ctx, input.OwnerID, input.SavedCharacterID)
	if err != nil {
		return nil, err
	}

	character.Name = input.Name
	character.Description = input.Description
	character.Appearance = input.Appearance
	character.UpdatedAt = o.clock.Now().Unix()

	output, err := o.savedCharacterRepo.Update(ctx, savedrepo.UpdateInput{Character: character})
	if err != nil {
		return nil, err
	}

	return &profilesvc.UpdateSavedCharacterOutput{Character: output.Character}, nil
}

// DeleteSavedCharacter deletes a saved character
func (o *Orchestrator) DeleteSavedCharacter(ctx context.Context, input *profilesvc.DeleteSavedCharacterInput) (*profilesvc.DeleteSavedCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.ownedSavedCharacter(ctx, input.OwnerID, input.SavedCharacterID); err != nil {
		return nil, err
	}

	if _, err := o.savedCharacterRepo.Delete(ctx, savedrepo.DeleteInput{ID: input.SavedCharacterID}); err != nil {
		return nil, err
	}

	return &profilesvc.DeleteSavedCharacterOutput{}, nil
}

// Internal helpers

func (o *Orchestrator) ownedChild(ctx context.Context, ownerID, childID string) (*story.Child, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", ownerID, vb)
	errors.ValidateRequired("childID", childID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	output, err := o.childrenRepo.Get(ctx, childrenrepo.GetInput{ID: childID})
	if err != nil {
		return nil, err
	}
	if output.Child.OwnerID != ownerID {
		return nil, errors.NotFoundf("child with ID %s not found", childID)
	}

	return output.Child, nil
}

func (o *Orchestrator) ownedSavedCharacter(ctx context.Context, ownerID, savedCharacterID string) (*story.SavedCharacter, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", ownerID, vb)
	errors.ValidateRequired("savedCharacterID", savedCharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	output, err := o.savedCharacterRepo.Get(ctx, savedrepo.GetInput{ID: savedCharacterID})
	if err != nil {
		return nil, err
	}
	if output.Character.OwnerID != ownerID {
		return nil, errors.NotFoundf("saved character with ID %s not found", savedCharacterID)
	}

	return output.Character, nil
}
