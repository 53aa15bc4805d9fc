package llm

import "time"

// Shared constants for the provider clients. The completion call is the only
// latency-bearing operation in the assistant, so it carries an explicit
// timeout rather than relying on client defaults.
const (
	defaultTimeout    = 30 * time.Second
	maxRetries        = 3
	initialRetryDelay = 2 * time.Second
)
