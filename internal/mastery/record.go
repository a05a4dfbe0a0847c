package mastery

import "time"

// SkillRecord holds the practice history for a single mastered or in-progress
// skill. Records are values: updates produce new records, never mutate old
// ones, so callers can hold snapshots without locking.
type SkillRecord struct {
	MasteredAt      time.Time `json:"mastered_at"`
	LastPracticedAt time.Time `json:"last_practiced_at"`
	CompletionCount int       `json:"completion_count"`

	// DecayScore is a cached copy of the decay at the time the record was
	// last written. It is informational only; queries recompute decay from
	// LastPracticedAt and never trust this field.
	DecayScore float64 `json:"decay_score"`
}

// MasteredEvent is emitted when a practice promotes a skill to mastered.
// Reward and persistence systems consume these; nothing in this package
// applies rewards itself.
type MasteredEvent struct {
	SkillID    string
	SkillName  string
	MasteredAt time.Time
}

// cloneRecords returns a shallow copy of a record map. Records are values,
// so a shallow copy is a full copy.
func cloneRecords(records map[string]SkillRecord) map[string]SkillRecord {
	out := make(map[string]SkillRecord, len(records)+1)
	for id, rec := range records {
		out[id] = rec
	}
	return out
}

// cloneSet returns a copy of a string set.
func cloneSet(set map[string]bool) map[string]bool {
	out := make(map[string]bool, len(set)+1)
	for id, v := range set {
		if v {
			out[id] = true
		}
	}
	return out
}
