// Package storygen is the client for the story generation backend
package storygen

//go:generate mockgen -destination=mock/mock_client.go -package=storygenmock github.com/storynest/storynest-api/internal/clients/storygen Client

import (
	"context"

	"github.com/storynest/storynest-api/internal/entities/story"
)

// Client defines the interface for generating story text
type Client interface {
	// GenerateStory produces the full text of a story for the given
	// characters. In surprise mode the character list is empty and the
	// backend invents the cast.
	GenerateStory(ctx context.Context, input *GenerateStoryInput) (*GenerateStoryOutput, error)
}

// GenerateStoryInput defines the request for generating a story
type GenerateStoryInput struct {
	Title      string
	Mode       story.Mode
	Characters []*story.Character
}

// GenerateStoryOutput defines the response for generating a story
type GenerateStoryOutput struct {
	Title string
	Text  string
}
