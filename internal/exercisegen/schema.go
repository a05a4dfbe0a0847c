package exercisegen

import "github.com/etudelab/etude/internal/llm"

// ExerciseSchema defines the JSON schema for LLM exercise generation
// responses.
var ExerciseSchema = &llm.Schema{
	Name:        "piano-exercise",
	Description: "A single short piano practice exercise",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short learner-facing exercise name",
			},
			"clef": map[string]any{
				"type":        "string",
				"enum":        []any{"treble", "bass", "grand"},
				"description": "Which staff the exercise is notated on",
			},
			"hands": map[string]any{
				"type":        "string",
				"enum":        []any{"left", "right", "both"},
				"description": "Which hand(s) play the exercise",
			},
			"tempo_bpm": map[string]any{
				"type":        "integer",
				"minimum":     40,
				"maximum":     208,
				"description": "Practice tempo in beats per minute",
			},
			"notes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Note sequence in scientific pitch notation, e.g. C4, F#4, Bb3. Between 4 and 32 notes.",
			},
			"difficulty": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "Self-assessed difficulty from 1 (easy) to 5 (hard)",
			},
			"teaching_note": map[string]any{
				"type":        "string",
				"description": "One or two sentences of practice advice for the learner",
			},
		},
		"required":             []any{"title", "clef", "hands", "tempo_bpm", "notes", "difficulty", "teaching_note"},
		"additionalProperties": false,
	},
}
