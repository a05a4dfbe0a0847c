package mastery

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func recordPracticedDaysAgo(days float64) SkillRecord {
	return SkillRecord{
		LastPracticedAt: testNow.Add(-time.Duration(days * 24 * float64(time.Hour))),
	}
}

func TestDecay(t *testing.T) {
	tests := []struct {
		name string
		days float64
		want float64
	}{
		{"just practiced", 0, 1.0},
		{"half the window", 7, 0.5},
		{"full window", 14, 0.0},
		{"past the window clamps at zero", 30, 0.0},
		{"one day", 1, 1.0 - 1.0/14.0},
	}

	const eps = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decay(recordPracticedDaysAgo(tt.days), testNow)
			if diff := got - tt.want; diff > eps || diff < -eps {
				t.Errorf("Decay after %.1f days = %f, want %f", tt.days, got, tt.want)
			}
		})
	}
}

func TestNeedsReview(t *testing.T) {
	if NeedsReview(recordPracticedDaysAgo(1), testNow) {
		t.Error("recently practiced skill should not need review")
	}
	// Exactly at the threshold does not need review; strictly below does.
	if NeedsReview(recordPracticedDaysAgo(7), testNow) {
		t.Error("decay exactly at the threshold should not need review")
	}
	if !NeedsReview(recordPracticedDaysAgo(8), testNow) {
		t.Error("skill past the review threshold should need review")
	}
}

func TestSkillsNeedingReview_SortsOldestFirst(t *testing.T) {
	mastered := map[string]bool{"a": true, "b": true, "c": true, "d": true}
	records := map[string]SkillRecord{
		"a": recordPracticedDaysAgo(9),
		"b": recordPracticedDaysAgo(12),
		"c": recordPracticedDaysAgo(10),
		"d": recordPracticedDaysAgo(2), // fresh, excluded
	}

	got := SkillsNeedingReview(mastered, records, testNow)
	want := []string{"b", "c", "a"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSkillsNeedingReview_ExcludesUnrecorded(t *testing.T) {
	// Mastered but never practiced is not the same as decayed.
	mastered := map[string]bool{"a": true, "b": true}
	records := map[string]SkillRecord{
		"a": recordPracticedDaysAgo(10),
	}

	got := SkillsNeedingReview(mastered, records, testNow)
	if len(got) != 1 || got[0] != "a" {
		t.Errorf("got %v, want [a]", got)
	}
}

func TestSkillsNeedingReview_TieOrderDeterministic(t *testing.T) {
	mastered := map[string]bool{"x": true, "m": true, "a": true}
	same := recordPracticedDaysAgo(10)
	records := map[string]SkillRecord{"x": same, "m": same, "a": same}

	first := SkillsNeedingReview(mastered, records, testNow)
	for i := 0; i < 10; i++ {
		again := SkillsNeedingReview(mastered, records, testNow)
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("tie order changed between calls: %v vs %v", first, again)
			}
		}
	}
}

func TestCountDecayed(t *testing.T) {
	mastered := map[string]bool{"a": true, "b": true, "c": true}
	records := map[string]SkillRecord{
		"a": recordPracticedDaysAgo(10),
		"b": recordPracticedDaysAgo(1),
		"c": recordPracticedDaysAgo(13),
	}

	if got := CountDecayed(mastered, records, testNow); got != 2 {
		t.Errorf("CountDecayed = %d, want 2", got)
	}
	if got := CountDecayed(map[string]bool{}, nil, testNow); got != 0 {
		t.Errorf("CountDecayed on empty state = %d, want 0", got)
	}
}
