package exercisegen

import "context"

// Generator produces piano exercises using an LLM provider.
type Generator interface {
	// Generate produces a single exercise for the given input context.
	// All configured validators run before it returns.
	Generate(ctx context.Context, input GenerateInput) (*Exercise, error)
}
