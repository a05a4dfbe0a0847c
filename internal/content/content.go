// Package content provides read access to statically authored exercises.
// The planner treats this as an unreliable collaborator: lookups may fail or
// come back empty at any time (content for later tiers may simply not be
// authored yet), and callers fall back to AI generation when they do.
package content

// Exercise is one statically authored piece of practice content.
type Exercise struct {
	ID       string   `yaml:"id"`
	SkillID  string   `yaml:"skill_id"`
	Title    string   `yaml:"title"`
	Clef     string   `yaml:"clef"`  // "treble", "bass", "grand"
	Hands    string   `yaml:"hands"` // "right", "left", "both"
	TempoBPM int      `yaml:"tempo_bpm"`
	Notes    []string `yaml:"notes"` // pitch names in playing order, e.g. "C4"
}

// Lesson is a named group of exercises, one per curriculum tier.
type Lesson struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Tier        int      `yaml:"tier"`
	ExerciseIDs []string `yaml:"exercises"`
}

// Resolver is the content-lookup contract consumed by the session planner.
// All methods are read-only. A nil exercise with a nil error means the
// content does not exist; errors mean the backing store misbehaved, which
// callers must treat the same as missing content.
type Resolver interface {
	// GetExercise returns the exercise with the given ID, or nil if it has
	// not been authored.
	GetExercise(id string) (*Exercise, error)

	// Lessons returns all authored lessons in tier order.
	Lessons() ([]Lesson, error)

	// LessonExercises returns the exercises of one lesson. Unknown lesson
	// IDs yield an empty slice.
	LessonExercises(lessonID string) ([]Exercise, error)
}
