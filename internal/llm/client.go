// Package llm contains the clients for the external text-completion service
// the assistant falls back to for non-shopping conversation.
package llm

import "context"

// CompletionConfig holds the parameters the assistant controls on a
// completion call.
type CompletionConfig struct {
	// MaxTokens caps the length of the generated reply.
	MaxTokens int
	// Temperature controls randomness. A pointer distinguishes an explicit
	// 0.0 from an unset value.
	Temperature *float32
}

// CompletionClient is the whole contract with the completion service: a
// prompt in, completed text or an error out. The concrete provider is chosen
// at startup; handlers only ever see this interface, and tests substitute a
// deterministic stub.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string, config *CompletionConfig) (string, error)
}
