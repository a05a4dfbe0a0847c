package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/etudelab/etude/internal/mastery"
)

func decayedState(n int, now time.Time) (map[string]bool, map[string]mastery.SkillRecord) {
	mastered := make(map[string]bool, n)
	records := make(map[string]mastery.SkillRecord, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("skill-%d", i)
		mastered[id] = true
		records[id] = mastery.SkillRecord{
			MasteredAt:      now.Add(-30 * 24 * time.Hour),
			LastPracticedAt: now.Add(-20 * 24 * time.Hour),
			CompletionCount: 3,
		}
	}
	return mastered, records
}

func TestSelectType(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		decayed        int
		totalCompleted int
		want           Type
	}{
		{"new learner", 0, 0, TypeNewMaterial},
		{"nothing decayed", 0, 3, TypeNewMaterial},
		{"one decayed is mixed", 1, 1, TypeMixed},
		{"two decayed is mixed", 2, 2, TypeMixed},
		{"three decayed is review", 3, 4, TypeReview},
		{"many decayed is review", 7, 6, TypeReview},
		{"every fifth completion is a challenge", 0, 5, TypeChallenge},
		{"tenth completion is a challenge", 0, 10, TypeChallenge},
		{"challenge wins over review", 5, 5, TypeChallenge},
		{"challenge wins over mixed", 1, 15, TypeChallenge},
		{"zero completions is never a challenge", 0, 0, TypeNewMaterial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mastered, records := decayedState(tt.decayed, now)
			got := SelectType(mastered, records, tt.totalCompleted, now)
			if got != tt.want {
				t.Errorf("SelectType(decayed=%d, completed=%d) = %q, want %q",
					tt.decayed, tt.totalCompleted, got, tt.want)
			}
		})
	}
}

func TestSelectTypeIgnoresFreshSkills(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	mastered := map[string]bool{"a": true, "b": true, "c": true}
	records := map[string]mastery.SkillRecord{
		"a": {LastPracticedAt: now.Add(-1 * 24 * time.Hour)},
		"b": {LastPracticedAt: now.Add(-2 * 24 * time.Hour)},
		"c": {LastPracticedAt: now.Add(-3 * 24 * time.Hour)},
	}

	if got := SelectType(mastered, records, 2, now); got != TypeNewMaterial {
		t.Errorf("SelectType with fresh skills = %q, want %q", got, TypeNewMaterial)
	}
}
