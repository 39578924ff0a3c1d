// In file: internal/llm/openai_client.go
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dileep-u-k/tool-reasoner/internal/api"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient talks to any OpenAI-compatible chat completions endpoint. The
// same client serves OpenAI itself and Mistral, which only differ in base URL.
type OpenAIClient struct {
	client   *openai.Client
	provider string
}

// Statically verify that OpenAIClient implements the LLMClient interface.
var _ LLMClient = (*OpenAIClient)(nil)

// NewOpenAICompatibleClient creates a client for an OpenAI-style endpoint. An
// empty baseURL keeps the library default.
func NewOpenAICompatibleClient(provider, apiKey, baseURL string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%s API key cannot be empty", provider)
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: defaultTimeout}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg), provider: provider}, nil
}

// Generate performs a single chat completion. Failures are returned as-is;
// there is no retry.
func (c *OpenAIClient) Generate(ctx context.Context, messages []Message, config *GenerationConfig) (*GenerationResult, error) {
	resp, err := c.client.CreateChatCompletion(ctx, buildChatCompletionRequest(messages, config))
	if err != nil {
		return nil, fmt.Errorf("%s API call failed: %w", c.provider, err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("no choices returned from " + c.provider)
	}
	return &GenerationResult{
		Content: resp.Choices[0].Message.Content,
		Usage: api.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// buildChatCompletionRequest converts our generic structures to the library's request type.
func buildChatCompletionRequest(messages []Message, config *GenerationConfig) openai.ChatCompletionRequest {
	req := openai.ChatCompletionRequest{
		Messages:  make([]openai.ChatCompletionMessage, 0, len(messages)),
		MaxTokens: defaultMaxTokens,
	}
	for _, msg := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	if config == nil {
		req.Model = DefaultModel
		return req
	}
	req.Model = config.Model
	if config.MaxTokens > 0 {
		req.MaxTokens = config.MaxTokens
	}
	if config.Temperature != nil {
		req.Temperature = *config.Temperature
	}
	if config.TopP != nil {
		req.TopP = *config.TopP
	}
	return req
}
