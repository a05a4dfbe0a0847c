package session

import (
	"time"

	"github.com/etudelab/etude/internal/mastery"
)

// challengeInterval makes every Nth completed exercise a challenge day.
const challengeInterval = 5

// SelectType chooses the session type from mastery state and the learner's
// completion counter, in strict priority order:
//
//  1. challenge day: every 5th completed exercise
//  2. review: three or more mastered skills have decayed
//  3. mixed: at least one mastered skill has decayed
//  4. new-material: otherwise
//
// Challenge day deliberately wins over review even when both hold: the
// cadence of challenge sessions is a motivational contract with the learner
// and decayed skills still get picked up by the next session.
func SelectType(masteredIDs map[string]bool, records map[string]mastery.SkillRecord, totalCompleted int, now time.Time) Type {
	if totalCompleted > 0 && totalCompleted%challengeInterval == 0 {
		return TypeChallenge
	}

	decayed := mastery.CountDecayed(masteredIDs, records, now)
	switch {
	case decayed >= 3:
		return TypeReview
	case decayed >= 1:
		return TypeMixed
	default:
		return TypeNewMaterial
	}
}
