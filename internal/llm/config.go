package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "anthropic", "openai", "gemini", "openrouter", "mock"
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout is the maximum duration for a single LLM request
	// (including retries). Default: 30s.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.0-flash-exp"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// providerEnv ties a provider name to its environment variables and to the
// Config fields they fill. The one table drives ConfigFromEnv,
// DiscoverConfig and Validate; its order is the discovery priority.
type providerEnv struct {
	name     string
	keyVar   string // ETUDE_-prefixed key override
	modelVar string // ETUDE_-prefixed model override
	probeVar string // bare SDK-convention key checked by DiscoverConfig
	key      func(*Config) *string
	model    func(*Config) *string
}

var providerVars = []providerEnv{
	{
		name:     "gemini",
		keyVar:   "ETUDE_GEMINI_API_KEY",
		modelVar: "ETUDE_GEMINI_MODEL",
		probeVar: "GEMINI_API_KEY",
		key:      func(c *Config) *string { return &c.Gemini.APIKey },
		model:    func(c *Config) *string { return &c.Gemini.Model },
	},
	{
		name:     "openai",
		keyVar:   "ETUDE_OPENAI_API_KEY",
		modelVar: "ETUDE_OPENAI_MODEL",
		probeVar: "OPENAI_API_KEY",
		key:      func(c *Config) *string { return &c.OpenAI.APIKey },
		model:    func(c *Config) *string { return &c.OpenAI.Model },
	},
	{
		name:     "anthropic",
		keyVar:   "ETUDE_ANTHROPIC_API_KEY",
		modelVar: "ETUDE_ANTHROPIC_MODEL",
		probeVar: "ANTHROPIC_API_KEY",
		key:      func(c *Config) *string { return &c.Anthropic.APIKey },
		model:    func(c *Config) *string { return &c.Anthropic.Model },
	},
	{
		name:     "openrouter",
		keyVar:   "ETUDE_OPENROUTER_API_KEY",
		modelVar: "ETUDE_OPENROUTER_MODEL",
		probeVar: "OPENROUTER_API_KEY",
		key:      func(c *Config) *string { return &c.OpenRouter.APIKey },
		model:    func(c *Config) *string { return &c.OpenRouter.Model },
	},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "anthropic",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-exp",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from ETUDE_-prefixed environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("ETUDE_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	for _, pv := range providerVars {
		if k := os.Getenv(pv.keyVar); k != "" {
			*pv.key(&cfg) = k
		}
		if m := os.Getenv(pv.modelVar); m != "" {
			*pv.model(&cfg) = m
		}
	}
	if u := os.Getenv("ETUDE_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	return cfg
}

// DiscoverConfig probes the standard API key env vars in priority order
// (Gemini, then OpenAI, Anthropic, OpenRouter) and returns a Config for
// the first provider whose key is found. Returns (Config{}, false) when
// none is set, in which case the planner falls back to static content only.
func DiscoverConfig() (Config, bool) {
	for _, pv := range providerVars {
		k := os.Getenv(pv.probeVar)
		if k == "" {
			continue
		}
		cfg := DefaultConfig()
		cfg.Provider = pv.name
		*pv.key(&cfg) = k
		return cfg, true
	}
	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	for _, pv := range providerVars {
		if pv.name != c.Provider {
			continue
		}
		if *pv.key(&c) == "" {
			return fmt.Errorf("%s is required for the %s provider", pv.keyVar, c.Provider)
		}
		return nil
	}
	return fmt.Errorf("unknown LLM provider: %q", c.Provider)
}
