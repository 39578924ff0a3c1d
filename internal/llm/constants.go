// In file: internal/llm/constants.go
package llm

import "time"

// This file centralizes constants shared across the provider clients.
const (
	defaultTimeout   = 120 * time.Second
	defaultMaxTokens = 300

	// Defaults tuned for short, mostly deterministic chain-of-thought answers.
	DefaultModel       = "gpt-3.5-turbo"
	DefaultTemperature = float32(0.2)
	DefaultMaxTokens   = defaultMaxTokens

	mistralBaseURL = "https://api.mistral.ai/v1"
)
