package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProviderFIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"n":1}`)},
		MockResponse{Content: json.RawMessage(`{"n":2}`)},
	)

	for i, want := range []string{`{"n":1}`, `{"n":2}`} {
		resp, err := mock.Generate(context.Background(), Request{})
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if string(resp.Content) != want {
			t.Errorf("call %d content = %s, want %s", i, resp.Content, want)
		}
	}

	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("drained mock err = %v, want ErrProviderUnavailable", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"mock needs no key", func(c *Config) { c.Provider = "mock" }, false},
		{"anthropic missing key", func(c *Config) { c.Provider = "anthropic" }, true},
		{"anthropic with key", func(c *Config) {
			c.Provider = "anthropic"
			c.Anthropic.APIKey = "sk-test"
		}, false},
		{"openai missing key", func(c *Config) { c.Provider = "openai" }, true},
		{"gemini with key", func(c *Config) {
			c.Provider = "gemini"
			c.Gemini.APIKey = "key"
		}, false},
		{"unknown provider", func(c *Config) { c.Provider = "hal9000" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("claude-haiku", anthropicModels); got != "claude-haiku-4-5-20251001" {
		t.Errorf("alias = %q", got)
	}
	if got := resolveModel("claude-haiku-4-5-20251001", anthropicModels); got != "claude-haiku-4-5-20251001" {
		t.Errorf("direct ID = %q", got)
	}
	if got := resolveModel("some-future-model", anthropicModels); got != "some-future-model" {
		t.Errorf("passthrough = %q", got)
	}
}

func TestWithPurpose(t *testing.T) {
	ctx := WithPurpose(context.Background(), "tempo-challenge")
	if got := PurposeFrom(ctx); got != "tempo-challenge" {
		t.Errorf("PurposeFrom = %q", got)
	}
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("PurposeFrom without value = %q", got)
	}
}

func TestModelCost(t *testing.T) {
	c := ModelCost{InputPerMTok: 1, OutputPerMTok: 5}
	got := c.Cost(1_000_000, 200_000)
	if got != 2.0 {
		t.Errorf("Cost = %f, want 2.0", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Error("LookupCost for unknown model should be nil")
	}
	if LookupCost("gpt-4o-mini") == nil {
		t.Error("LookupCost for known model should not be nil")
	}
}
