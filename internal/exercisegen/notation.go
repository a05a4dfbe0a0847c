package exercisegen

import (
	"fmt"
	"regexp"
)

// pitchPattern matches scientific pitch notation on an 88-key piano:
// letter A-G, optional # or b, octave 0-8. Register bounds (A0 to C8)
// are checked separately.
var pitchPattern = regexp.MustCompile(`^([A-G])([#b]?)([0-8])$`)

// NotationValidator checks that every note is a valid, playable pitch.
type NotationValidator struct{}

func (v *NotationValidator) Name() string { return "notation" }

func (v *NotationValidator) Validate(e *Exercise, _ GenerateInput) *ValidationError {
	for _, note := range e.Notes {
		m := pitchPattern.FindStringSubmatch(note)
		if m == nil {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("note %q is not valid pitch notation", note),
				Retryable: true,
			}
		}
		letter, octave := m[1], m[3]
		// The keyboard runs from A0 up to C8.
		if octave == "0" && letter != "A" && letter != "B" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("note %q is below the bottom of the keyboard", note),
				Retryable: true,
			}
		}
		if octave == "8" && letter != "C" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("note %q is above the top of the keyboard", note),
				Retryable: true,
			}
		}
	}
	return nil
}
