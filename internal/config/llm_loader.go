// Package config loads pipeline configuration from Viper and the
// environment, resolving credentials once at the request boundary.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/josephgoksu/PlanWing/internal/llm"
	"github.com/spf13/viper"
)

// LoadLLMConfig loads reasoning-client configuration with the precedence
// Explicit Viper Config > Environment Variables > Defaults. The resolved
// value is passed into stage constructors; stages never consult globals.
func LoadLLMConfig() (llm.Config, error) {
	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = llm.DefaultProvider
	}

	llmProvider, err := llm.ValidateProvider(provider)
	if err != nil {
		return llm.Config{}, fmt.Errorf("invalid provider: %w", err)
	}

	model := viper.GetString("llm.model")
	if model == "" {
		model = llm.DefaultModelForProvider(string(llmProvider))
	}

	// Missing keys are not an error here: dual-mode stages select their
	// local heuristic path when no credential is present.
	apiKey := ResolveAPIKey(llmProvider)

	baseURL := viper.GetString("llm.baseURL")
	if baseURL == "" && llmProvider == llm.ProviderOllama {
		baseURL = llm.DefaultOllamaURL
	}

	timeout := viper.GetDuration("llm.requestTimeout")
	if timeout <= 0 {
		timeout = llm.DefaultRequestTimeout
	}

	return llm.Config{
		Provider:       llmProvider,
		Model:          model,
		APIKey:         apiKey,
		BaseURL:        baseURL,
		RequestTimeout: timeout,
	}, nil
}

// ResolveAPIKey returns the best API key for the given provider using
// per-provider config keys, then provider-specific env vars.
func ResolveAPIKey(provider llm.Provider) string {
	perProviderKey := strings.TrimSpace(viper.GetString(fmt.Sprintf("llm.apiKeys.%s", provider)))
	if perProviderKey != "" {
		return perProviderKey
	}
	return providerEnvKey(provider)
}

func providerEnvKey(provider llm.Provider) string {
	switch provider {
	case llm.ProviderOpenAI:
		return strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	case llm.ProviderAnthropic:
		return strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	case llm.ProviderGemini:
		key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
		if key == "" {
			key = strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
		}
		return key
	default:
		return ""
	}
}

// SetDefaults registers configuration defaults on the global viper.
func SetDefaults() {
	viper.SetDefault("llm.provider", llm.DefaultProvider)
	viper.SetDefault("llm.requestTimeout", 90*time.Second)
	viper.SetDefault("output.directory", ".")
}
