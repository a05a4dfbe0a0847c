// Package llm abstracts the language-model backends used for on-demand
// exercise generation. Callers build a Request, optionally with a JSON
// schema for structured output, and receive validated JSON back regardless
// of which provider served it.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the backend contract. Implementations exist for Anthropic,
// OpenAI, OpenRouter, and Gemini, plus a mock for tests; decorators add
// retry and request logging around any of them.
type Provider interface {
	// Generate runs one completion. When the request carries a Schema the
	// returned Content is JSON already validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Exercise generation is single-turn,
	// so this usually holds one user message.
	Messages []Message

	// Schema, when set, makes the provider use its native structured-output
	// mechanism and the response Content conform to it. When nil the
	// Content is the raw text wrapped as json.RawMessage.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in 0.0-1.0; zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is the JSON structure the model must produce.
type Schema struct {
	// Name identifies the schema to providers that want one (OpenAI's
	// response-format name, for instance). Kebab-case, e.g. "piano-exercise".
	Name string

	// Description guides the model; sent alongside the schema.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated payload, schema-validated when the request
	// carried a Schema.
	Content json.RawMessage

	// Usage reports token consumption for the call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized across providers: "end" or "max_tokens".
	StopReason string
}

// Usage tracks token counts for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
