// Package llm provides a unified interface for reasoning providers using
// CloudWeGo Eino.
package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// Provider identifies the reasoning provider to use.
type Provider string

// Config holds configuration for creating a reasoning client. The API key
// is resolved once at the request boundary and passed in explicitly;
// stages never read ambient credential state.
type Config struct {
	Provider       Provider
	Model          string
	APIKey         string
	BaseURL        string        // Required for Ollama
	RequestTimeout time.Duration // Per-call deadline for remote requests
}

// DefaultRequestTimeout bounds a single remote reasoning call.
const DefaultRequestTimeout = 90 * time.Second

// Timeout returns the configured per-call deadline, defaulted when unset.
func (c Config) Timeout() time.Duration {
	if c.RequestTimeout > 0 {
		return c.RequestTimeout
	}
	return DefaultRequestTimeout
}

// HasCredential reports whether the config carries a syntactically
// plausible API key. Ollama needs no key. This check drives the
// construction-time mode selection of dual-mode stages and is
// deliberately cheap: no network round trip.
func (c Config) HasCredential() bool {
	if c.Provider == ProviderOllama {
		return c.BaseURL != ""
	}
	key := strings.TrimSpace(c.APIKey)
	if len(key) < 16 {
		return false
	}
	return !strings.ContainsAny(key, " \t\n")
}

// NewChatModel creates a ChatModel instance based on the provider
// configuration. It returns an Eino BaseChatModel usable for Generate().
func NewChatModel(ctx context.Context, cfg Config) (model.BaseChatModel, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			Model:  cfg.Model,
			APIKey: cfg.APIKey,
		})

	case ProviderOllama:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DefaultOllamaURL
		}
		return ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
			BaseURL: baseURL,
			Model:   cfg.Model,
		})

	case ProviderAnthropic:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("anthropic API key is required")
		}
		return claude.NewChatModel(ctx, &claude.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
		})

	case ProviderGemini:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini API key is required")
		}
		// Gemini extension relies on environment variables
		_ = os.Setenv("GOOGLE_API_KEY", cfg.APIKey)
		_ = os.Setenv("GEMINI_API_KEY", cfg.APIKey)

		return gemini.NewChatModel(ctx, &gemini.Config{
			Model: cfg.Model,
		})

	default:
		return nil, fmt.Errorf("unsupported reasoning provider: %s (supported: openai, ollama, anthropic, gemini)", cfg.Provider)
	}
}

// ValidateProvider checks if the given provider string is supported.
func ValidateProvider(p string) (Provider, error) {
	switch Provider(p) {
	case ProviderOpenAI, ProviderOllama, ProviderAnthropic, ProviderGemini:
		return Provider(p), nil
	default:
		return "", fmt.Errorf("unsupported provider: %s", p)
	}
}
