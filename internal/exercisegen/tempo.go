package exercisegen

import "fmt"

const (
	minTempoBPM = 40
	maxTempoBPM = 208
)

// TempoValidator checks the tempo is playable and, for tempo challenges,
// matches the requested target.
type TempoValidator struct{}

func (v *TempoValidator) Name() string { return "tempo" }

func (v *TempoValidator) Validate(e *Exercise, input GenerateInput) *ValidationError {
	if e.TempoBPM < minTempoBPM || e.TempoBPM > maxTempoBPM {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("tempo %d BPM outside [%d, %d]", e.TempoBPM, minTempoBPM, maxTempoBPM),
			Retryable: true,
		}
	}
	if input.TargetTempoBPM > 0 && e.TempoBPM != input.TargetTempoBPM {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("tempo %d BPM does not match requested %d BPM", e.TempoBPM, input.TargetTempoBPM),
			Retryable: true,
		}
	}
	return nil
}
