package mastery

import (
	"sort"
	"time"
)

const (
	// HalfLifeDays is the number of days without practice after which a
	// skill's confidence reaches zero.
	HalfLifeDays = 14

	// ReviewThreshold is the decay score below which a mastered skill is
	// flagged for review.
	ReviewThreshold = 0.5
)

// Decay computes the time-decayed confidence for a record: 1.0 immediately
// after practice, falling linearly to 0 over HalfLifeDays.
func Decay(rec SkillRecord, now time.Time) float64 {
	days := now.Sub(rec.LastPracticedAt).Hours() / 24.0
	score := 1.0 - days/HalfLifeDays
	if score < 0 {
		return 0
	}
	return score
}

// NeedsReview reports whether a record has decayed below the review threshold.
func NeedsReview(rec SkillRecord, now time.Time) bool {
	return Decay(rec, now) < ReviewThreshold
}

// SkillsNeedingReview returns the mastered skills whose decay has fallen
// below the review threshold, sorted oldest-practiced first (most decayed
// first). Mastered skills with no record are excluded: never practiced is
// not the same as decayed. Ties on LastPracticedAt keep their relative
// input order (stable sort); the tie order is implementation-defined.
func SkillsNeedingReview(masteredIDs map[string]bool, records map[string]SkillRecord, now time.Time) []string {
	type staleSkill struct {
		id            string
		lastPracticed time.Time
	}

	var stale []staleSkill
	for id := range masteredIDs {
		rec, ok := records[id]
		if !ok {
			continue
		}
		if NeedsReview(rec, now) {
			stale = append(stale, staleSkill{id: id, lastPracticed: rec.LastPracticedAt})
		}
	}

	// Map iteration order is random; fix it before the stable sort so the
	// implementation-defined tie order is at least deterministic per input.
	sort.Slice(stale, func(i, j int) bool { return stale[i].id < stale[j].id })
	sort.SliceStable(stale, func(i, j int) bool {
		return stale[i].lastPracticed.Before(stale[j].lastPracticed)
	})

	ids := make([]string, len(stale))
	for i, s := range stale {
		ids[i] = s.id
	}
	return ids
}

// CountDecayed returns how many mastered skills currently need review.
// Used by session-type selection.
func CountDecayed(masteredIDs map[string]bool, records map[string]SkillRecord, now time.Time) int {
	count := 0
	for id := range masteredIDs {
		rec, ok := records[id]
		if !ok {
			continue
		}
		if NeedsReview(rec, now) {
			count++
		}
	}
	return count
}
