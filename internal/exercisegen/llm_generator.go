package exercisegen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/etudelab/etude/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// exerciseOutput is the raw LLM response before validation.
type exerciseOutput struct {
	Title        string   `json:"title"`
	Clef         string   `json:"clef"`
	Hands        string   `json:"hands"`
	TempoBPM     int      `json:"tempo_bpm"`
	Notes        []string `json:"notes"`
	Difficulty   int      `json:"difficulty"`
	TeachingNote string   `json:"teaching_note"`
}

// Generate produces a single exercise for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Exercise, error) {
	ctx = llm.WithPurpose(ctx, string(input.Purpose))

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      ExerciseSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw exerciseOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	e := &Exercise{
		Title:        raw.Title,
		Clef:         raw.Clef,
		Hands:        raw.Hands,
		TempoBPM:     raw.TempoBPM,
		Notes:        raw.Notes,
		Difficulty:   raw.Difficulty,
		TeachingNote: raw.TeachingNote,
		SkillID:      input.Skill.ID,
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(e, input); verr != nil {
			return nil, verr
		}
	}

	return e, nil
}
