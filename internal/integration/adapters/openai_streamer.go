// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pensive/backend/internal/application/adapter"
)

// OpenAIStreamer implements the ChatStreamer port using the OpenAI
// streaming chat-completion API.
type OpenAIStreamer struct {
	apiKey string
	model  string
}

// NewOpenAIStreamer creates a new OpenAI streaming adapter.
func NewOpenAIStreamer(apiKey, model string) *OpenAIStreamer {
	return &OpenAIStreamer{
		apiKey: apiKey,
		model:  model,
	}
}

// IsConfigured reports whether an API key is available.
func (s *OpenAIStreamer) IsConfigured() bool {
	return strings.TrimSpace(s.apiKey) != ""
}

// StreamChat opens a streaming completion and relays its deltas on a channel.
// The producer goroutine stops as soon as ctx is cancelled, closing the
// upstream stream so the provider connection is released promptly.
func (s *OpenAIStreamer) StreamChat(ctx context.Context, systemPrompt, userPrompt string) (<-chan adapter.ChatDelta, error) {
	client := openai.NewClient(s.apiKey)

	stream, err := client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Stream: true,
	})
	if err != nil {
		return nil, err
	}

	deltas := make(chan adapter.ChatDelta)

	go func() {
		defer close(deltas)
		defer stream.Close()

		for {
			response, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				if ctx.Err() != nil {
					// Client went away; nothing left to report to.
					return
				}
				slog.Debug("Completion stream ended with error", "error", err)
				select {
				case deltas <- adapter.ChatDelta{Err: err}:
				case <-ctx.Done():
				}
				return
			}

			if len(response.Choices) == 0 || response.Choices[0].Delta.Content == "" {
				continue
			}

			select {
			case deltas <- adapter.ChatDelta{Text: response.Choices[0].Delta.Content}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return deltas, nil
}
