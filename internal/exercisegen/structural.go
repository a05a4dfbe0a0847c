package exercisegen

import "fmt"

const (
	minNotes = 4
	maxNotes = 32
)

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(e *Exercise, _ GenerateInput) *ValidationError {
	if e.Title == "" {
		return v.fail("title is empty")
	}
	if len(e.Title) > 80 {
		return v.fail("title exceeds 80 characters")
	}
	if e.TeachingNote == "" {
		return v.fail("teaching_note is empty")
	}
	if len(e.TeachingNote) > 400 {
		return v.fail("teaching_note exceeds 400 characters")
	}
	if e.Difficulty < 1 || e.Difficulty > 5 {
		return v.fail("difficulty must be between 1 and 5")
	}
	switch e.Clef {
	case "treble", "bass", "grand":
	default:
		return v.fail(`clef must be "treble", "bass", or "grand"`)
	}
	switch e.Hands {
	case "left", "right", "both":
	default:
		return v.fail(`hands must be "left", "right", or "both"`)
	}
	if n := len(e.Notes); n < minNotes || n > maxNotes {
		return v.fail(fmt.Sprintf("note count %d outside [%d, %d]", n, minNotes, maxNotes))
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}
