package llm

import "testing"

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ETUDE_LLM_PROVIDER", "openrouter")
	t.Setenv("ETUDE_OPENROUTER_API_KEY", "or-key")
	t.Setenv("ETUDE_OPENROUTER_MODEL", "mistral-small")
	t.Setenv("ETUDE_OPENAI_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("ETUDE_ANTHROPIC_API_KEY", "")
	t.Setenv("ETUDE_ANTHROPIC_MODEL", "")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openrouter" {
		t.Errorf("Provider = %q, want openrouter", cfg.Provider)
	}
	if cfg.OpenRouter.APIKey != "or-key" {
		t.Errorf("OpenRouter.APIKey = %q", cfg.OpenRouter.APIKey)
	}
	if cfg.OpenRouter.Model != "mistral-small" {
		t.Errorf("OpenRouter.Model = %q", cfg.OpenRouter.Model)
	}
	if cfg.OpenAI.BaseURL != "http://localhost:8080/v1" {
		t.Errorf("OpenAI.BaseURL = %q", cfg.OpenAI.BaseURL)
	}
	// Unset vars keep their defaults.
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("Anthropic.Model = %q, want default", cfg.Anthropic.Model)
	}
}

func TestDiscoverConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("DiscoverConfig found nothing")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini (highest priority)", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" {
		t.Errorf("Gemini.APIKey = %q", cfg.Gemini.APIKey)
	}
}

func TestDiscoverConfigNoKeys(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Error("DiscoverConfig should report no provider")
	}
}
