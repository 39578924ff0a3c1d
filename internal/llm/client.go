// In file: internal/llm/client.go

// Package llm contains the provider clients behind a single completion
// interface, the model-name based client factory and the Redis usage profiler.
package llm

import (
	"context"

	"github.com/dileep-u-k/tool-reasoner/internal/api"
)

// =================================================================================
// Core Data Structures
// =================================================================================

// Role represents the originator of a message in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message in a conversation history.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// GenerationConfig holds the parameters that control the model's generation.
type GenerationConfig struct {
	// The specific model to use (e.g., "gpt-3.5-turbo", "claude-3-5-haiku-latest").
	Model string
	// Controls randomness. A pointer distinguishes 0.0 from unset.
	Temperature *float32
	// The maximum number of tokens to generate in the response.
	MaxTokens int
	// Nucleus sampling, an alternative to temperature.
	TopP *float32
}

// GenerationResult holds the complete output from an LLM call.
type GenerationResult struct {
	// The generated text content from the model.
	Content string
	// Token usage statistics for the generation request.
	Usage api.Usage
}

// =================================================================================
// LLM Client Interface
// =================================================================================

// LLMClient is the interface every provider client implements. The reasoner
// treats it as an opaque text-in/text-out remote function.
type LLMClient interface {
	// Generate performs a blocking request and returns the complete result.
	Generate(ctx context.Context, messages []Message, config *GenerationConfig) (*GenerationResult, error)
}

// Float32 returns a pointer to v, for the optional GenerationConfig fields.
func Float32(v float32) *float32 {
	return &v
}
