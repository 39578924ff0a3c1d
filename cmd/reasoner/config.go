// In file: cmd/reasoner/config.go
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/dileep-u-k/tool-reasoner/internal/llm"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "config.yaml"
	defaultPort       = "8080"
)

// ModelConfig is the model section of config.yaml.
type ModelConfig struct {
	// Provider overrides the provider inferred from the model name.
	Provider    string   `yaml:"provider"`
	Model       string   `yaml:"model"`
	Temperature *float32 `yaml:"temperature"`
	MaxTokens   int      `yaml:"max_tokens"`
	BaseURL     string   `yaml:"base_url"`
}

// AppConfig holds all configuration, loaded from the environment and config.yaml.
type AppConfig struct {
	Model     ModelConfig  `yaml:"model_settings"`
	Provider  llm.Provider `yaml:"-"`
	APIKey    string       `yaml:"-"`
	RedisAddr string       `yaml:"-"`
	Port      string       `yaml:"-"`
}

// LoadConfig loads a .env file, config.yaml and environment variables. An empty
// path reads config.yaml from the working directory if present; an explicit
// path must exist. A non-empty model replaces the configured one and drops the
// configured provider and base URL, so the provider is inferred from its name.
func LoadConfig(path, model string) (*AppConfig, error) {
	// In Docker (GIN_MODE=release) the environment is provided directly.
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("WARNING: No .env file found for local development.")
		}
	}

	cfg := &AppConfig{
		RedisAddr: os.Getenv("REDIS_ADDR"),
		Port:      os.Getenv("PORT"),
	}
	if err := cfg.readFile(path); err != nil {
		return nil, err
	}
	if model != "" {
		cfg.Model = ModelConfig{
			Model:       model,
			Temperature: cfg.Model.Temperature,
			MaxTokens:   cfg.Model.MaxTokens,
		}
	}
	cfg.applyDefaults()

	if err := cfg.resolveProvider(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) readFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		log.Printf("WARNING: No %s found, using default model settings.", defaultConfigFile)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *AppConfig) applyDefaults() {
	if c.Model.Model == "" {
		c.Model.Model = llm.DefaultModel
	}
	if c.Model.Temperature == nil {
		c.Model.Temperature = llm.Float32(llm.DefaultTemperature)
	}
	if c.Model.MaxTokens <= 0 {
		c.Model.MaxTokens = llm.DefaultMaxTokens
	}
	if c.Port == "" {
		c.Port = defaultPort
	}
}

// resolveProvider picks the provider and reads its API key from the environment.
func (c *AppConfig) resolveProvider() error {
	var err error
	if c.Model.Provider != "" {
		c.Provider, err = llm.ParseProvider(c.Model.Provider)
	} else {
		c.Provider, err = llm.ProviderForModel(c.Model.Model)
	}
	if err != nil {
		return fmt.Errorf("invalid model settings: %w", err)
	}

	envKey := c.Provider.APIKeyEnv()
	c.APIKey = os.Getenv(envKey)
	if c.APIKey == "" {
		return fmt.Errorf("%s environment variable is not set", envKey)
	}
	return nil
}

// GenerationConfig converts the model settings for the LLM client.
func (c *AppConfig) GenerationConfig() *llm.GenerationConfig {
	return &llm.GenerationConfig{
		Model:       c.Model.Model,
		Temperature: c.Model.Temperature,
		MaxTokens:   c.Model.MaxTokens,
	}
}
