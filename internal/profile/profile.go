// Package profile defines the learner profile value type consumed by the
// session planner. Profiles are updated functionally: every mutation helper
// returns a new profile and leaves its receiver untouched, so a profile
// handed to the planner is a stable snapshot. Persistence belongs to the
// store layer.
package profile

import (
	"slices"
	"time"

	"github.com/etudelab/etude/internal/mastery"
)

// MaxRecentExercises bounds the recent-exercise recency list.
const MaxRecentExercises = 20

// TempoRange is the learner's comfortable tempo window in BPM.
type TempoRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Profile is a snapshot of one learner's progress.
type Profile struct {
	MasteredSkills          map[string]bool                `json:"mastered_skills"`
	SkillMasteryData        map[string]mastery.SkillRecord `json:"skill_mastery_data"`
	WeakNotes               []string                       `json:"weak_notes"`
	TempoRange              TempoRange                     `json:"tempo_range"`
	RecentExerciseIDs       []string                       `json:"recent_exercise_ids"` // most recent first
	TotalExercisesCompleted int                            `json:"total_exercises_completed"`
}

// New returns an empty profile for a brand-new learner.
func New() *Profile {
	return &Profile{
		MasteredSkills:   make(map[string]bool),
		SkillMasteryData: make(map[string]mastery.SkillRecord),
		TempoRange:       TempoRange{Min: 60, Max: 90},
	}
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	out := &Profile{
		MasteredSkills:          make(map[string]bool, len(p.MasteredSkills)),
		SkillMasteryData:        make(map[string]mastery.SkillRecord, len(p.SkillMasteryData)),
		WeakNotes:               slices.Clone(p.WeakNotes),
		TempoRange:              p.TempoRange,
		RecentExerciseIDs:       slices.Clone(p.RecentExerciseIDs),
		TotalExercisesCompleted: p.TotalExercisesCompleted,
	}
	for id, v := range p.MasteredSkills {
		out.MasteredSkills[id] = v
	}
	for id, rec := range p.SkillMasteryData {
		out.SkillMasteryData[id] = rec
	}
	return out
}

// WithPractice returns the profile after one practice of a skill, plus the
// mastered event when the practice promoted the skill.
func (p *Profile) WithPractice(skillID string, passed bool, now time.Time) (*Profile, *mastery.MasteredEvent) {
	outcome := mastery.RecordPractice(p.MasteredSkills, p.SkillMasteryData, skillID, passed, now)
	out := p.Clone()
	out.MasteredSkills = outcome.Mastered
	out.SkillMasteryData = outcome.Records
	return out, outcome.Event
}

// WithCompletedExercise returns the profile after finishing an exercise:
// the exercise moves to the front of the recency list (bounded) and the
// completion counter advances.
func (p *Profile) WithCompletedExercise(exerciseID string) *Profile {
	out := p.Clone()
	recent := make([]string, 0, len(out.RecentExerciseIDs)+1)
	recent = append(recent, exerciseID)
	for _, id := range out.RecentExerciseIDs {
		if id != exerciseID {
			recent = append(recent, id)
		}
	}
	if len(recent) > MaxRecentExercises {
		recent = recent[:MaxRecentExercises]
	}
	out.RecentExerciseIDs = recent
	out.TotalExercisesCompleted++
	return out
}

// HasRecentExercise reports whether the exercise is in the recency list.
func (p *Profile) HasRecentExercise(exerciseID string) bool {
	return slices.Contains(p.RecentExerciseIDs, exerciseID)
}

// MostRecentlyMastered returns the mastered skill with the latest MasteredAt,
// or "" when nothing is mastered. Skills without records lose to skills with
// records; a tie is broken by skill ID for determinism.
func (p *Profile) MostRecentlyMastered() string {
	best := ""
	var bestAt time.Time
	for id := range p.MasteredSkills {
		rec := p.SkillMasteryData[id]
		switch {
		case best == "",
			rec.MasteredAt.After(bestAt),
			rec.MasteredAt.Equal(bestAt) && id < best:
			best = id
			bestAt = rec.MasteredAt
		}
	}
	return best
}
