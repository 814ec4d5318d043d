// Package config provides environment-driven configuration for the LLM
// providers used by query transformers.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/raglabs/querykit-go/pkg/llm"
	anthropicLLM "github.com/raglabs/querykit-go/pkg/llm/anthropic"
	ollamaLLM "github.com/raglabs/querykit-go/pkg/llm/ollama"
	openaiLLM "github.com/raglabs/querykit-go/pkg/llm/openai"
)

// ErrUnknownProvider indicates an unrecognized LLM provider name.
var ErrUnknownProvider = errors.New("unknown llm provider")

// LLMConfig describes which generation backend to use and how to reach it.
//
// Supported providers: openai, ollama, anthropic. The openai provider with
// a custom BaseURL also covers OpenAI-compatible endpoints such as
// DeepSeek or vLLM.
//
// Example:
//
//	cfg := &config.LLMConfig{
//	    Provider: "openai",
//	    APIKey:   "sk-...",
//	    Model:    "gpt-4o-mini",
//	}
type LLMConfig struct {
	// Provider is the provider name (openai, ollama, anthropic).
	Provider string `json:"provider"`

	// APIKey is the API key for the provider, where one is required.
	APIKey string `json:"api_key"`

	// Model is the model name. Empty means the provider's default.
	Model string `json:"model,omitempty"`

	// BaseURL overrides the provider's API base URL (optional).
	BaseURL string `json:"base_url,omitempty"`
}

// LoadFromEnv loads an LLMConfig from environment variables.
//
// The function:
//  1. Searches for a .env or .env.example file (up to 5 directory levels up)
//  2. Loads environment variables from the found file
//  3. Reads LLM_PROVIDER, LLM_API_KEY, LLM_MODEL, and LLM_BASE_URL
//
// LLM_PROVIDER defaults to "openai" when unset; the other variables stay
// empty and fall back to provider defaults.
//
// Example:
//
//	cfg, err := config.LoadFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	provider, err := config.NewProvider(cfg)
func LoadFromEnv() (*LLMConfig, error) {
	if envPath, found := FindEnvFile(); found {
		_ = godotenv.Load(envPath)
	} else {
		// godotenv default behavior: .env in the current directory.
		_ = godotenv.Load()
	}

	return &LLMConfig{
		Provider: getEnvOrDefault("LLM_PROVIDER", "openai"),
		APIKey:   os.Getenv("LLM_API_KEY"),
		Model:    os.Getenv("LLM_MODEL"),
		BaseURL:  os.Getenv("LLM_BASE_URL"),
	}, nil
}

// NewProvider creates an llm.Provider from the configuration.
//
// Returns an error wrapping ErrUnknownProvider for an unrecognized
// provider name, or the provider constructor's error for invalid
// credentials.
func NewProvider(cfg *LLMConfig) (llm.Provider, error) {
	switch cfg.Provider {
	case "openai":
		return openaiLLM.NewClient(&openaiLLM.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
	case "ollama":
		return ollamaLLM.NewClient(&ollamaLLM.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
	case "anthropic":
		return anthropicLLM.NewClient(&anthropicLLM.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

// FindEnvFile searches for .env or .env.example files.
//
// The search:
//  1. Checks the current directory
//  2. Walks up to 5 directory levels
//  3. Returns the first .env or .env.example found, preferring .env
//
// Returns the path to the found file and whether one was found.
func FindEnvFile() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}

	for level := 0; level <= 5; level++ {
		for _, name := range []string{".env", ".env.example"} {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", false
}

// getEnvOrDefault returns the environment variable's value, or fallback
// when it is unset or empty.
func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
