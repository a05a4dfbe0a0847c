package skillgraph

// Category represents a pedagogical category of piano skills.
type Category string

const (
	CategoryNoteFinding      Category = "note-finding"
	CategoryIntervals        Category = "intervals"
	CategoryRhythm           Category = "rhythm"
	CategoryScales           Category = "scales"
	CategoryBlackKeys        Category = "black-keys"
	CategoryKeySignatures    Category = "key-signatures"
	CategoryChords           Category = "chords"
	CategoryHandIndependence Category = "hand-independence"
	CategoryArpeggios        Category = "arpeggios"
	CategoryExpression       Category = "expression"
	CategorySightReading     Category = "sight-reading"
	CategorySongs            Category = "songs"
)

// AllCategories returns all categories in teaching priority order. When two
// skills are otherwise equivalent candidates (same graph depth), the one whose
// category appears earlier here is taught first.
func AllCategories() []Category {
	return []Category{
		CategoryNoteFinding,
		CategoryIntervals,
		CategoryRhythm,
		CategoryScales,
		CategoryBlackKeys,
		CategoryKeySignatures,
		CategoryChords,
		CategoryHandIndependence,
		CategoryArpeggios,
		CategoryExpression,
		CategorySightReading,
		CategorySongs,
	}
}

// categoryPriority maps categories to their teaching priority rank.
var categoryPriority = func() map[Category]int {
	m := make(map[Category]int, 12)
	for i, c := range AllCategories() {
		m[c] = i
	}
	return m
}()

// CategoryPriority returns the teaching priority rank for a category (lower
// ranks are taught first). Unknown categories rank after every known one.
func CategoryPriority(c Category) int {
	if p, ok := categoryPriority[c]; ok {
		return p
	}
	return len(categoryPriority)
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryNoteFinding:
		return "Note Finding"
	case CategoryIntervals:
		return "Intervals"
	case CategoryRhythm:
		return "Rhythm"
	case CategoryScales:
		return "Scales"
	case CategoryBlackKeys:
		return "Black Keys"
	case CategoryKeySignatures:
		return "Key Signatures"
	case CategoryChords:
		return "Chords"
	case CategoryHandIndependence:
		return "Hand Independence"
	case CategoryArpeggios:
		return "Arpeggios"
	case CategoryExpression:
		return "Expression"
	case CategorySightReading:
		return "Sight Reading"
	case CategorySongs:
		return "Songs"
	default:
		return string(c)
	}
}

// MinTier and MaxTier bound the coarse curriculum grouping
// (roughly "month of curriculum").
const (
	MinTier = 1
	MaxTier = 15
)

// Skill represents a single learnable unit in the piano curriculum graph.
// The skill set is fixed at process start and never mutated.
type Skill struct {
	ID                  string
	Name                string
	Category            Category
	Prerequisites       []string
	TargetExerciseIDs   []string
	MasteryThreshold    float64 // accuracy required for a practice to pass, 0-1
	Tier                int     // 1..15
	RequiredCompletions int     // successful practices before auto-mastery, >= 1
}

// IsRoot reports whether the skill has no prerequisites.
func (s Skill) IsRoot() bool {
	return len(s.Prerequisites) == 0
}
