// In file: internal/llm/factory.go
package llm

import (
	"fmt"
	"strings"
)

// Provider identifies the vendor API family a model ID belongs to.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGemini    Provider = "gemini"
	ProviderMistral   Provider = "mistral"
)

// ProviderForModel maps a model ID to its provider by name prefix.
func ProviderForModel(modelID string) (Provider, error) {
	switch {
	case strings.HasPrefix(modelID, "gpt"):
		return ProviderOpenAI, nil
	case strings.HasPrefix(modelID, "claude"):
		return ProviderAnthropic, nil
	case strings.HasPrefix(modelID, "gemini"):
		return ProviderGemini, nil
	case strings.HasPrefix(modelID, "mistral"):
		return ProviderMistral, nil
	}
	return "", fmt.Errorf("unknown model provider for %q", modelID)
}

// APIKeyEnv is the environment variable holding the provider's credential.
func (p Provider) APIKeyEnv() string {
	switch p {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ProviderGemini:
		return "GEMINI_API_KEY"
	case ProviderMistral:
		return "MISTRAL_API_KEY"
	}
	return ""
}

// ParseProvider validates an explicitly configured provider name.
func ParseProvider(name string) (Provider, error) {
	switch p := Provider(strings.ToLower(name)); p {
	case ProviderOpenAI, ProviderAnthropic, ProviderGemini, ProviderMistral:
		return p, nil
	}
	return "", fmt.Errorf("unknown provider %q", name)
}

// NewClient builds the client for provider. baseURL overrides the provider
// endpoint when non-empty, which lets an OpenAI-compatible server host a model
// whose name has no known prefix; Gemini ignores it.
func NewClient(provider Provider, modelID, apiKey, baseURL string) (LLMClient, error) {
	var client LLMClient
	var err error
	switch provider {
	case ProviderOpenAI:
		client, err = NewOpenAICompatibleClient(string(provider), apiKey, baseURL)
	case ProviderMistral:
		if baseURL == "" {
			baseURL = mistralBaseURL
		}
		client, err = NewOpenAICompatibleClient(string(provider), apiKey, baseURL)
	case ProviderAnthropic:
		if baseURL == "" {
			baseURL = anthropicAPIURL
		}
		client, err = NewAnthropicClientWithURL(apiKey, baseURL)
	case ProviderGemini:
		client, err = NewGeminiClient(apiKey, modelID)
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", modelID, err)
	}
	return client, nil
}
