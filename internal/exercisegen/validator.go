package exercisegen

import "fmt"

// Validator checks a generated exercise for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural", "notation", "tempo".
	Name() string

	// Validate checks the exercise and returns nil if it passes.
	// The validator receives the full GenerateInput for context (e.g., to
	// know which skill or tempo the exercise was generated for).
	Validate(e *Exercise, input GenerateInput) *ValidationError
}

// ValidationError describes why an exercise failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
