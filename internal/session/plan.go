package session

import "time"

// Type is the overall flavor of a practice session.
type Type string

const (
	TypeNewMaterial Type = "new-material"
	TypeReview      Type = "review"
	TypeChallenge   Type = "challenge"
	TypeMixed       Type = "mixed"
)

// Source describes where an exercise's content comes from.
type Source string

const (
	// SourceStatic points at a pre-authored exercise in the content catalog.
	SourceStatic Source = "static"

	// SourceAI requests generation; no static content backs the reference.
	SourceAI Source = "ai"

	// SourceAIWithFallback requests generation but carries a static
	// exercise ID to fall back on when generation is unavailable.
	SourceAIWithFallback Source = "ai-with-fallback"
)

// ResolutionPolicy selects how exercises are resolved for a skill.
type ResolutionPolicy string

const (
	// PolicyStaticOrAI uses authored content when it exists and requests
	// AI generation only when it doesn't.
	PolicyStaticOrAI ResolutionPolicy = "static-or-ai"

	// PolicyAIFirstWithFallback always requests AI generation, attaching
	// the best authored exercise as an offline fallback.
	PolicyAIFirstWithFallback ResolutionPolicy = "ai-first-with-fallback"
)

// ExerciseRef points at one exercise slot in a plan: either a pre-authored
// exercise or a request for one to be generated. Refs are transient; they
// are recomputed on demand and never persisted by this package.
type ExerciseRef struct {
	ExerciseID         string `json:"exercise_id"`
	Source             Source `json:"source"`
	SkillID            string `json:"skill_id"`
	Reason             string `json:"reason"` // shown directly to the learner
	FallbackExerciseID string `json:"fallback_exercise_id,omitempty"`
}

// Plan is the composed practice session: a warm-up, the lesson body, and a
// challenge, each a non-empty ordered list of exercise refs, plus the
// human-readable justifications for how the plan was assembled.
type Plan struct {
	ID          string        `json:"id"`
	SessionType Type          `json:"session_type"`
	WarmUp      []ExerciseRef `json:"warm_up"`
	Lesson      []ExerciseRef `json:"lesson"`
	Challenge   []ExerciseRef `json:"challenge"`
	Reasoning   []string      `json:"reasoning"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Exercises returns all refs across the three sections in session order.
func (p *Plan) Exercises() []ExerciseRef {
	out := make([]ExerciseRef, 0, len(p.WarmUp)+len(p.Lesson)+len(p.Challenge))
	out = append(out, p.WarmUp...)
	out = append(out, p.Lesson...)
	out = append(out, p.Challenge...)
	return out
}
