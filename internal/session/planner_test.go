package session

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/etudelab/etude/internal/content"
	"github.com/etudelab/etude/internal/mastery"
	"github.com/etudelab/etude/internal/profile"
	"github.com/etudelab/etude/internal/skillgraph"
)

// errResolver fails every lookup, simulating a broken content source.
type errResolver struct{}

func (errResolver) GetExercise(string) (*content.Exercise, error) {
	return nil, errors.New("content unavailable")
}
func (errResolver) Lessons() ([]content.Lesson, error) {
	return nil, errors.New("content unavailable")
}
func (errResolver) LessonExercises(string) ([]content.Exercise, error) {
	return nil, errors.New("content unavailable")
}

func newTestPlanner(t *testing.T, policy ResolutionPolicy) *Planner {
	t.Helper()
	catalog, err := content.NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return NewPlanner(catalog, policy)
}

func TestNextSkillToLearnNewLearner(t *testing.T) {
	skill, ok := NextSkillToLearn(map[string]bool{})
	if !ok {
		t.Fatal("NextSkillToLearn returned no skill for a new learner")
	}
	if skill.ID != "nf-middle-c" {
		t.Errorf("first skill = %q, want nf-middle-c", skill.ID)
	}
}

func TestNextSkillToLearnWalksWholeCurriculum(t *testing.T) {
	mastered := map[string]bool{}
	total := len(skillgraph.AllSkills())

	for i := 0; i < total; i++ {
		skill, ok := NextSkillToLearn(mastered)
		if !ok {
			t.Fatalf("curriculum exhausted after %d skills, want %d", i, total)
		}
		for _, prereq := range skill.Prerequisites {
			if !mastered[prereq] {
				t.Fatalf("skill %s picked before prerequisite %s was mastered", skill.ID, prereq)
			}
		}
		if mastered[skill.ID] {
			t.Fatalf("skill %s picked twice", skill.ID)
		}
		mastered[skill.ID] = true
	}

	if _, ok := NextSkillToLearn(mastered); ok {
		t.Error("NextSkillToLearn returned a skill after full mastery")
	}
}

func TestGeneratePlanNewLearner(t *testing.T) {
	pl := newTestPlanner(t, PolicyStaticOrAI)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	plan := pl.GeneratePlan(profile.New(), now)

	if plan.SessionType != TypeNewMaterial {
		t.Errorf("session type = %q, want %q", plan.SessionType, TypeNewMaterial)
	}
	if plan.ID == "" {
		t.Error("plan has no ID")
	}
	if !plan.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", plan.CreatedAt, now)
	}
	if len(plan.WarmUp) == 0 || len(plan.Lesson) == 0 || len(plan.Challenge) == 0 {
		t.Fatalf("plan has empty sections: warmup=%d lesson=%d challenge=%d",
			len(plan.WarmUp), len(plan.Lesson), len(plan.Challenge))
	}
	if len(plan.Reasoning) < 3 {
		t.Errorf("reasoning lines = %d, want at least 3", len(plan.Reasoning))
	}

	// A new learner starts at the curriculum root with authored content.
	if got := plan.Lesson[0]; got.SkillID != "nf-middle-c" || got.Source != SourceStatic {
		t.Errorf("lesson[0] = %+v, want static nf-middle-c exercise", got)
	}
	if plan.WarmUp[0].Source != SourceStatic {
		t.Errorf("warm-up source = %q, want static (root skills have authored content)", plan.WarmUp[0].Source)
	}
	for _, ref := range plan.Exercises() {
		if ref.Reason == "" {
			t.Errorf("ref %s has no reason", ref.ExerciseID)
		}
	}
}

func TestGeneratePlanAIFirstPolicy(t *testing.T) {
	pl := newTestPlanner(t, PolicyAIFirstWithFallback)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	plan := pl.GeneratePlan(profile.New(), now)

	for _, ref := range plan.Exercises() {
		if ref.Source != SourceAIWithFallback {
			t.Errorf("ref %s source = %q, want %q", ref.ExerciseID, ref.Source, SourceAIWithFallback)
			continue
		}
		if !strings.HasPrefix(ref.ExerciseID, "ai-") {
			t.Errorf("ref %s should be a generation request", ref.ExerciseID)
		}
		if ref.FallbackExerciseID == "" {
			t.Errorf("ref %s has no static fallback, want one for root skills", ref.ExerciseID)
		}
	}
}

func TestGeneratePlanSurvivesResolverFailure(t *testing.T) {
	pl := NewPlanner(errResolver{}, PolicyStaticOrAI)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	plan := pl.GeneratePlan(profile.New(), now)

	if len(plan.WarmUp) == 0 || len(plan.Lesson) == 0 || len(plan.Challenge) == 0 {
		t.Fatal("plan incomplete when resolver fails")
	}
	for _, ref := range plan.Exercises() {
		if ref.Source != SourceAI {
			t.Errorf("ref %s source = %q, want %q when no content resolves", ref.ExerciseID, ref.Source, SourceAI)
		}
	}
}

func TestGeneratePlanChallengeDay(t *testing.T) {
	pl := newTestPlanner(t, PolicyStaticOrAI)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	prof := profile.New()
	prof.MasteredSkills["nf-middle-c"] = true
	prof.SkillMasteryData["nf-middle-c"] = mastery.SkillRecord{
		MasteredAt: now.Add(-48 * time.Hour), LastPracticedAt: now.Add(-24 * time.Hour),
		CompletionCount: 2, DecayScore: 1.0,
	}
	prof.TotalExercisesCompleted = 5

	plan := pl.GeneratePlan(prof, now)

	if plan.SessionType != TypeChallenge {
		t.Fatalf("session type = %q, want %q", plan.SessionType, TypeChallenge)
	}
	if len(plan.Challenge) != 2 {
		t.Fatalf("challenge refs = %d, want 2 on a challenge day", len(plan.Challenge))
	}
	if plan.Challenge[0].ExerciseID == plan.Challenge[1].ExerciseID {
		t.Error("challenge day bonus duplicates the primary challenge exercise")
	}
	// Second tier skills sit deeper than the remaining root.
	if d := skillgraph.Depth(plan.Challenge[0].SkillID); d != 1 {
		t.Errorf("primary challenge skill depth = %d, want 1", d)
	}
}

func TestGeneratePlanReviewSession(t *testing.T) {
	pl := newTestPlanner(t, PolicyStaticOrAI)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	prof := profile.New()
	stale := []string{"nf-middle-c", "nf-c-position-rh", "nf-c-position-lh", "rh-quarter-notes"}
	for i, id := range stale {
		prof.MasteredSkills[id] = true
		prof.SkillMasteryData[id] = mastery.SkillRecord{
			MasteredAt:      now.Add(-60 * 24 * time.Hour),
			LastPracticedAt: now.Add(-time.Duration(20+i) * 24 * time.Hour),
			CompletionCount: 3,
		}
	}
	prof.TotalExercisesCompleted = 7

	plan := pl.GeneratePlan(prof, now)

	if plan.SessionType != TypeReview {
		t.Fatalf("session type = %q, want %q", plan.SessionType, TypeReview)
	}
	// Three review slots plus one new-material closer.
	if len(plan.Lesson) != 4 {
		t.Fatalf("lesson refs = %d, want 4", len(plan.Lesson))
	}
	// Oldest practiced first: the highest offset is rh-quarter-notes.
	if plan.Lesson[0].SkillID != "rh-quarter-notes" {
		t.Errorf("first review skill = %q, want rh-quarter-notes (oldest)", plan.Lesson[0].SkillID)
	}
	last := plan.Lesson[len(plan.Lesson)-1]
	if prof.MasteredSkills[last.SkillID] {
		t.Errorf("lesson closer %q is already mastered, want new material", last.SkillID)
	}
}

func TestGeneratePlanMixedSession(t *testing.T) {
	pl := newTestPlanner(t, PolicyStaticOrAI)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	prof := profile.New()
	prof.MasteredSkills["nf-middle-c"] = true
	prof.SkillMasteryData["nf-middle-c"] = mastery.SkillRecord{
		MasteredAt:      now.Add(-40 * 24 * time.Hour),
		LastPracticedAt: now.Add(-12 * 24 * time.Hour),
		CompletionCount: 2,
	}
	prof.TotalExercisesCompleted = 3

	plan := pl.GeneratePlan(prof, now)

	if plan.SessionType != TypeMixed {
		t.Fatalf("session type = %q, want %q", plan.SessionType, TypeMixed)
	}
	if len(plan.Lesson) != 2 {
		t.Fatalf("lesson refs = %d, want one review plus one new", len(plan.Lesson))
	}
	if plan.Lesson[0].SkillID != "nf-middle-c" {
		t.Errorf("review slot = %q, want nf-middle-c", plan.Lesson[0].SkillID)
	}
	if prof.MasteredSkills[plan.Lesson[1].SkillID] {
		t.Errorf("new-material slot %q is already mastered", plan.Lesson[1].SkillID)
	}
}

func TestGeneratePlanWeakNoteWarmUp(t *testing.T) {
	pl := newTestPlanner(t, PolicyStaticOrAI)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	prof := profile.New()
	prof.MasteredSkills["nf-middle-c"] = true
	prof.SkillMasteryData["nf-middle-c"] = mastery.SkillRecord{
		MasteredAt: now.Add(-48 * time.Hour), LastPracticedAt: now.Add(-24 * time.Hour),
		CompletionCount: 2, DecayScore: 1.0,
	}
	prof.WeakNotes = []string{"C4"}

	plan := pl.GeneratePlan(prof, now)

	warm := plan.WarmUp[0]
	if warm.SkillID != "nf-middle-c" || warm.Source != SourceStatic {
		t.Errorf("warm-up = %+v, want static nf-middle-c exercise covering C4", warm)
	}
	if !strings.Contains(warm.Reason, "C4") {
		t.Errorf("warm-up reason %q does not mention the weak note", warm.Reason)
	}
}

func TestGeneratePlanFullMastery(t *testing.T) {
	pl := newTestPlanner(t, PolicyStaticOrAI)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	prof := profile.New()
	for _, s := range skillgraph.AllSkills() {
		prof.MasteredSkills[s.ID] = true
		prof.SkillMasteryData[s.ID] = mastery.SkillRecord{
			MasteredAt: now.Add(-24 * time.Hour), LastPracticedAt: now,
			CompletionCount: s.RequiredCompletions, DecayScore: 1.0,
		}
	}
	prof.TotalExercisesCompleted = 203

	plan := pl.GeneratePlan(prof, now)

	if len(plan.WarmUp) == 0 || len(plan.Lesson) == 0 || len(plan.Challenge) == 0 {
		t.Fatal("plan incomplete at full mastery")
	}
	if plan.Lesson[0].Source != SourceAI {
		t.Errorf("lesson source = %q, want an AI review when nothing is left to learn", plan.Lesson[0].Source)
	}
	ch := plan.Challenge[0]
	if !strings.HasPrefix(ch.ExerciseID, "ai-tempo-") {
		t.Errorf("challenge exercise = %q, want a tempo challenge", ch.ExerciseID)
	}
	if !strings.Contains(ch.Reason, "BPM") {
		t.Errorf("challenge reason %q does not mention tempo", ch.Reason)
	}
}

func TestGeneratePlanDoesNotMutateProfile(t *testing.T) {
	pl := newTestPlanner(t, PolicyStaticOrAI)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	prof := profile.New()
	prof.MasteredSkills["nf-middle-c"] = true
	prof.SkillMasteryData["nf-middle-c"] = mastery.SkillRecord{
		MasteredAt: now, LastPracticedAt: now, CompletionCount: 2, DecayScore: 1.0,
	}
	before := prof.Clone()

	pl.GeneratePlan(prof, now)

	if len(prof.MasteredSkills) != len(before.MasteredSkills) ||
		len(prof.SkillMasteryData) != len(before.SkillMasteryData) ||
		prof.TotalExercisesCompleted != before.TotalExercisesCompleted {
		t.Error("GeneratePlan mutated the profile")
	}
}
