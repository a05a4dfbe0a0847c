// Package exercisegen produces piano exercises on demand using an LLM
// provider. Generated exercises pass a validator chain before they reach
// the learner; a failed validation surfaces as an error so the caller can
// fall back to static content.
package exercisegen

import (
	"github.com/etudelab/etude/internal/content"
	"github.com/etudelab/etude/internal/skillgraph"
)

// Purpose labels why an exercise is being generated. It steers the prompt
// and is recorded with the LLM request event.
type Purpose string

const (
	PurposeLesson         Purpose = "lesson"
	PurposeWarmUp         Purpose = "warm-up"
	PurposeReview         Purpose = "review"
	PurposeTempoChallenge Purpose = "tempo-challenge"
)

// Exercise is a generated piano exercise ready for display.
type Exercise struct {
	// Title is a short learner-facing name, e.g. "G Position Leaps".
	Title string

	// Clef is "treble", "bass", or "grand".
	Clef string

	// Hands is "left", "right", or "both".
	Hands string

	// TempoBPM is the practice tempo.
	TempoBPM int

	// Notes is the note sequence in scientific pitch notation, e.g.
	// ["C4", "E4", "G4", "C5"]. Accidentals use # and b suffixes on the
	// letter: "F#4", "Bb3".
	Notes []string

	// Difficulty is the LLM's self-assessed difficulty (1-5).
	// Used for analytics, not for gating.
	Difficulty int

	// TeachingNote is a one-or-two sentence practice tip shown with the
	// exercise. Always present.
	TeachingNote string

	// SkillID is the skill this exercise was generated for.
	SkillID string
}

// AsContentExercise converts the generated exercise into the catalog
// exercise shape so the rest of the app can treat both sources uniformly.
func (e *Exercise) AsContentExercise(id string) content.Exercise {
	return content.Exercise{
		ID:       id,
		SkillID:  e.SkillID,
		Title:    e.Title,
		Clef:     e.Clef,
		Hands:    e.Hands,
		TempoBPM: e.TempoBPM,
		Notes:    e.Notes,
	}
}

// GenerateInput holds all context needed to generate an exercise.
type GenerateInput struct {
	// Skill is the target skill for the exercise.
	Skill skillgraph.Skill

	// Purpose steers the prompt toward the slot the exercise fills.
	Purpose Purpose

	// TargetTempoBPM, when non-zero, asks for an exercise at exactly this
	// tempo. Set for tempo challenges.
	TargetTempoBPM int

	// WeakNotes lists notes the learner frequently misses. The generator
	// is asked to feature them when the purpose is warm-up.
	WeakNotes []string

	// RecentTitles contains titles of exercises already generated in this
	// session for this skill. Used for deduplication in the prompt.
	RecentTitles []string
}
