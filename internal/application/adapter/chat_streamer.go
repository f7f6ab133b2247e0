// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// ChatDelta is one incremental token from a streaming chat completion.
// Err is non-nil only on the final element when the stream failed mid-way.
type ChatDelta struct {
	Text string
	Err  error
}

// ChatStreamer defines the interface for the streaming LLM provider.
type ChatStreamer interface {
	// IsConfigured reports whether a provider credential is available.
	IsConfigured() bool

	// StreamChat opens a streaming completion for the given prompts and
	// returns a channel of incremental deltas. The channel is closed when
	// the upstream stream ends or ctx is cancelled; cancellation must
	// release the upstream connection promptly.
	StreamChat(ctx context.Context, systemPrompt, userPrompt string) (<-chan ChatDelta, error)
}
