package skillgraph

import (
	"strings"
	"testing"
)

func TestValidate_CurriculumPasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("curriculum validation failed: %v", err)
	}
}

// testSkill builds a minimal skill that passes the per-skill field checks.
func testSkill(id string, prereqs ...string) Skill {
	return Skill{
		ID:                  id,
		Name:                id,
		Category:            CategoryNoteFinding,
		Prerequisites:       prereqs,
		TargetExerciseIDs:   []string{id + "-01"},
		MasteryThreshold:    0.7,
		Tier:                1,
		RequiredCompletions: 2,
	}
}

func TestValidateSkills_DetectsCycle(t *testing.T) {
	skills := []Skill{
		testSkill("root"),
		testSkill("a", "b"),
		testSkill("b", "a"),
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
}

func TestValidateSkills_DetectsDanglingPrereq(t *testing.T) {
	skills := []Skill{
		testSkill("a"),
		testSkill("b", "nonexistent"),
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestValidateSkills_DetectsDuplicateID(t *testing.T) {
	skills := []Skill{
		testSkill("a"),
		testSkill("a"),
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateSkills_RequiresAtLeastOneRoot(t *testing.T) {
	skills := []Skill{
		testSkill("a", "b"),
		testSkill("b", "a"),
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for no roots, got nil")
	}
	if !strings.Contains(err.Error(), "root") {
		t.Errorf("error should mention root, got: %v", err)
	}
}

func TestValidateSkills_DetectsUnreachableSkill(t *testing.T) {
	skills := []Skill{
		testSkill("root"),
		testSkill("island-a", "island-b"),
		testSkill("island-b", "island-a"),
	}
	err := validateSkills(skills)
	if err == nil {
		t.Fatal("expected error for unreachable skills, got nil")
	}
	if !strings.Contains(err.Error(), "not reachable") {
		t.Errorf("error should mention reachability, got: %v", err)
	}
}

func TestValidateSkills_FieldChecks(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Skill)
		wantMsg string
	}{
		{"zero threshold", func(s *Skill) { s.MasteryThreshold = 0 }, "MasteryThreshold"},
		{"threshold above one", func(s *Skill) { s.MasteryThreshold = 1.5 }, "MasteryThreshold"},
		{"tier too low", func(s *Skill) { s.Tier = 0 }, "Tier"},
		{"tier too high", func(s *Skill) { s.Tier = MaxTier + 1 }, "Tier"},
		{"zero completions", func(s *Skill) { s.RequiredCompletions = 0 }, "RequiredCompletions"},
		{"no target exercises", func(s *Skill) { s.TargetExerciseIDs = nil }, "target exercise"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := []Skill{testSkill("a")}
			tt.mutate(&skills[0])
			err := validateSkills(skills)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error should mention %q, got: %v", tt.wantMsg, err)
			}
		})
	}
}

func TestFindCycle_AcyclicGraph(t *testing.T) {
	skills := []Skill{
		testSkill("a"),
		testSkill("b", "a"),
		testSkill("c", "a", "b"),
	}
	if got := findCycle(skills); got != "" {
		t.Errorf("findCycle on acyclic graph returned %q, want empty", got)
	}
}
