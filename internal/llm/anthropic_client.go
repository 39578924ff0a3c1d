// In file: internal/llm/anthropic_client.go
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/dileep-u-k/tool-reasoner/internal/api"
)

const (
	anthropicAPIURL  = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
)

// --- API Data Structures ---

type anthropicUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	Messages    []anthropicMessage `json:"messages"`
	System      string             `json:"system,omitempty"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature *float32           `json:"temperature,omitempty"`
	TopP        *float32           `json:"top_p,omitempty"`
}
type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}
type anthropicResponse struct {
	Content []anthropicContentBlock `json:"content"`
	Usage   anthropicUsage          `json:"usage"`
}

// --- Main Client ---

// AnthropicClient calls the Messages API over plain HTTP.
type AnthropicClient struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

var _ LLMClient = (*AnthropicClient)(nil)

func NewAnthropicClient(apiKey string) (*AnthropicClient, error) {
	return NewAnthropicClientWithURL(apiKey, anthropicAPIURL)
}

// NewAnthropicClientWithURL points the client at a different endpoint, such as a
// proxy or a test server.
func NewAnthropicClientWithURL(apiKey, apiURL string) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic API key cannot be empty")
	}
	return &AnthropicClient{
		apiKey:     apiKey,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

func (c *AnthropicClient) Generate(ctx context.Context, messages []Message, config *GenerationConfig) (*GenerationResult, error) {
	payload, err := c.buildRequestPayload(messages, config)
	if err != nil {
		return nil, fmt.Errorf("failed to build anthropic request payload: %w", err)
	}
	respBody, err := c.doRequest(ctx, payload)
	if err != nil {
		return nil, err
	}
	return parseAnthropicResponse(respBody)
}

// --- Helper Functions ---

func (c *AnthropicClient) buildRequestPayload(messages []Message, config *GenerationConfig) (*bytes.Buffer, error) {
	systemPrompt, anthropicMsgs := toAnthropicMessages(messages)
	req := anthropicRequest{
		Messages:  anthropicMsgs,
		System:    systemPrompt,
		MaxTokens: defaultMaxTokens,
	}
	if config != nil {
		req.Model = config.Model
		req.Temperature = config.Temperature
		req.TopP = config.TopP
		if config.MaxTokens > 0 {
			req.MaxTokens = config.MaxTokens
		}
	}
	payloadBytes, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}
	return bytes.NewBuffer(payloadBytes), nil
}

// toAnthropicMessages lifts system messages into the top-level system field,
// which is where the Messages API expects them.
func toAnthropicMessages(messages []Message) (string, []anthropicMessage) {
	var systemPrompt string
	var anthropicMsgs []anthropicMessage
	for _, msg := range messages {
		if msg.Role == RoleSystem {
			systemPrompt = msg.Content
			continue
		}
		anthropicMsgs = append(anthropicMsgs, anthropicMessage{Role: string(msg.Role), Content: msg.Content})
	}
	return systemPrompt, anthropicMsgs
}

func parseAnthropicResponse(body []byte) (*GenerationResult, error) {
	var anthropicResp anthropicResponse
	if err := json.Unmarshal(body, &anthropicResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal anthropic response: %w", err)
	}
	if len(anthropicResp.Content) == 0 {
		return nil, errors.New("no content returned from Anthropic")
	}
	var contentBuilder strings.Builder
	for _, block := range anthropicResp.Content {
		if block.Type == "text" {
			contentBuilder.WriteString(block.Text)
		}
	}
	return &GenerationResult{
		Content: contentBuilder.String(),
		Usage: api.Usage{
			PromptTokens:     anthropicResp.Usage.InputTokens,
			CompletionTokens: anthropicResp.Usage.OutputTokens,
			TotalTokens:      anthropicResp.Usage.InputTokens + anthropicResp.Usage.OutputTokens,
		},
	}, nil
}

// doRequest performs exactly one HTTP call. Non-2xx responses become errors
// carrying the status and body.
func (c *AnthropicClient) doRequest(ctx context.Context, payload *bytes.Buffer) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}
	body, readErr := io.ReadAll(resp.Body)
	if err := resp.Body.Close(); err != nil {
		log.Printf("Warning: Failed to close response body: %v", err)
	}
	if readErr != nil {
		return nil, fmt.Errorf("failed to read response body: %w", readErr)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("anthropic API error: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
