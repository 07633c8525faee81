package openai

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/autointel/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Moderator implements ai.Moderator using an OpenAI-compatible guard model.
type Moderator struct {
	client llms.Model
	logger *slog.Logger
}

// newModerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newModerator(config *ai.Config) (*Moderator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ModerationHost),
		openai.WithToken("none"),
		openai.WithModel(config.ModerationModel),
	)
	if err != nil {
		return nil, err
	}

	return &Moderator{
		client: client,
		logger: slog.Default().With("component", "openai-moderator"),
	}, nil
}

// NewModerator creates a new moderator using the provided configuration.
//
// Returns ai.Moderator interface to enforce abstraction.
func NewModerator(config *ai.Config) (ai.Moderator, error) {
	return newModerator(config)
}

// IsSafe classifies content with the guard model. Guard models respond with
// "safe" or "unsafe\n<category>"; anything containing "unsafe" is a block
// verdict. No retries are performed.
func (m *Moderator) IsSafe(ctx context.Context, content string) (bool, error) {
	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(content),
			},
		},
	}

	response, err := m.client.GenerateContent(ctx, messages, llms.WithTemperature(0.0))
	if err != nil {
		m.logger.Error("moderation call failed", "err", err)
		return false, err
	}

	if len(response.Choices) < 1 {
		m.logger.Warn("no choices returned from guard model, treating as safe")
		return true, nil
	}

	decision := strings.ToLower(strings.TrimSpace(response.Choices[0].Content))
	safe := !strings.Contains(decision, "unsafe")

	m.logger.Debug("moderation verdict", "safe", safe)
	return safe, nil
}
