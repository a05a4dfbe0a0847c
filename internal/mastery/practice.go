package mastery

import (
	"time"

	"github.com/etudelab/etude/internal/skillgraph"
)

// PracticeOutcome is the result of recording one practice event. The input
// maps are never mutated; Records and Mastered are fresh copies reflecting
// the practice. Event is non-nil only when this practice promoted the skill.
type PracticeOutcome struct {
	Records  map[string]SkillRecord
	Mastered map[string]bool
	Event    *MasteredEvent
}

// RecordPractice computes the learner state after practicing a skill.
// Practicing always refreshes LastPracticedAt and resets decay, pass or
// fail; the completion count advances only on a pass. When a pass brings
// the count to the skill's required completions, the skill is promoted to
// mastered and a MasteredEvent is emitted for collaborating reward systems.
// An unknown skill ID leaves the state unchanged.
func RecordPractice(masteredIDs map[string]bool, records map[string]SkillRecord, skillID string, passed bool, now time.Time) PracticeOutcome {
	outcome := PracticeOutcome{
		Records:  cloneRecords(records),
		Mastered: cloneSet(masteredIDs),
	}

	skill, err := skillgraph.GetSkill(skillID)
	if err != nil {
		return outcome
	}

	rec := outcome.Records[skillID]
	rec.LastPracticedAt = now
	rec.DecayScore = 1.0
	if passed {
		rec.CompletionCount++
	}
	outcome.Records[skillID] = rec

	if passed && rec.CompletionCount >= skill.RequiredCompletions && !outcome.Mastered[skillID] {
		outcome.Mastered[skillID] = true
		rec.MasteredAt = now
		outcome.Records[skillID] = rec
		outcome.Event = &MasteredEvent{
			SkillID:    skillID,
			SkillName:  skill.Name,
			MasteredAt: now,
		}
	}

	return outcome
}

// MarkMastered promotes a skill to mastered directly, creating its record if
// none exists. Calling it on an already-mastered skill is a no-op: the
// existing record, including its original MasteredAt, is preserved.
func MarkMastered(masteredIDs map[string]bool, records map[string]SkillRecord, skillID string, now time.Time) (map[string]bool, map[string]SkillRecord) {
	newMastered := cloneSet(masteredIDs)
	newRecords := cloneRecords(records)

	if newMastered[skillID] {
		return newMastered, newRecords
	}

	newMastered[skillID] = true
	rec := newRecords[skillID]
	rec.MasteredAt = now
	if rec.LastPracticedAt.IsZero() {
		rec.LastPracticedAt = now
		rec.DecayScore = 1.0
	}
	newRecords[skillID] = rec
	return newMastered, newRecords
}
