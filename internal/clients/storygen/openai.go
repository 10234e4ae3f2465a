package storygen

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/storynest/storynest-api/internal/entities/story"
	"github.com/storynest/storynest-api/internal/errors"
)

const systemPrompt = "You are a children's bedtime story writer. Write warm, " +
	"age-appropriate stories with a gentle arc and a happy ending. " +
	"Keep the language simple enough to read aloud."

// OpenAIConfig holds the configuration for the OpenAI-backed generator
type OpenAIConfig struct {
	APIKey string
	Model  string
}

// Validate ensures the config is complete
func (c *OpenAIConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.APIKey == "" {
		return errors.InvalidArgument("API key is required")
	}
	if c.Model == "" {
		return errors.InvalidArgument("model is required")
	}
	return nil
}

type openaiClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a story generator backed by the OpenAI chat API
func NewOpenAIClient(cfg *OpenAIConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := openai.NewClient(option.WithAPIKey(cfg.APIKey))

	return &openaiClient{
		client: &client,
		model:  cfg.Model,
	}, nil
}

func (c *openaiClient) GenerateStory(ctx context.Context, input *GenerateStoryInput) (*GenerateStoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildPrompt(input)),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "story generation request failed").
			WithMeta("model", c.model)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.Unavailable("story generation returned no choices")
	}

	return &GenerateStoryOutput{
		Title: input.Title,
		Text:  resp.Choices[0].Message.Content,
	}, nil
}

func buildPrompt(input *GenerateStoryInput) string {
	var b strings.Builder

	if input.Title != "" {
		fmt.Fprintf(&b, "Write a story titled %q.\n", input.Title)
	} else {
		b.WriteString("Write a story and invent a fitting title.\n")
	}

	if input.Mode == story.ModeSurprise || len(input.Characters) == 0 {
		b.WriteString("Surprise the reader: invent the characters yourself.\n")
		return b.String()
	}

	b.WriteString("The story features these characters:\n")
	for _, c := range input.Characters {
		fmt.Fprintf(&b, "- %s", c.Name)
		if c.IsChild {
			b.WriteString(" (the listening child, make them the hero)")
		}
		if c.Description != "" {
			fmt.Fprintf(&b, ": %s", c.Description)
		}
		if c.Appearance != "" {
			fmt.Fprintf(&b, " (looks: %s)", c.Appearance)
		}
		b.WriteString("\n")
	}

	return b.String()
}
