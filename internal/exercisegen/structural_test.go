package exercisegen

import (
	"strings"
	"testing"
)

func validExercise() *Exercise {
	return &Exercise{
		Title:        "C Position Steps",
		Clef:         "treble",
		Hands:        "right",
		TempoBPM:     72,
		Notes:        []string{"C4", "D4", "E4", "F4", "G4"},
		Difficulty:   2,
		TeachingNote: "Keep your wrist relaxed and let each finger fall straight down.",
		SkillID:      "nf-c-position-rh",
	}
}

func TestStructuralValidator(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Exercise)
		wantErr bool
	}{
		{"valid", func(e *Exercise) {}, false},
		{"empty title", func(e *Exercise) { e.Title = "" }, true},
		{"long title", func(e *Exercise) { e.Title = strings.Repeat("x", 81) }, true},
		{"empty teaching note", func(e *Exercise) { e.TeachingNote = "" }, true},
		{"difficulty too low", func(e *Exercise) { e.Difficulty = 0 }, true},
		{"difficulty too high", func(e *Exercise) { e.Difficulty = 6 }, true},
		{"bad clef", func(e *Exercise) { e.Clef = "alto" }, true},
		{"bad hands", func(e *Exercise) { e.Hands = "feet" }, true},
		{"too few notes", func(e *Exercise) { e.Notes = []string{"C4", "D4"} }, true},
		{"too many notes", func(e *Exercise) {
			e.Notes = make([]string, 33)
			for i := range e.Notes {
				e.Notes[i] = "C4"
			}
		}, true},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validExercise()
			tt.mutate(e)
			err := v.Validate(e, GenerateInput{})
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNotationValidator(t *testing.T) {
	tests := []struct {
		name    string
		notes   []string
		wantErr bool
	}{
		{"naturals", []string{"C4", "D4", "E4", "F4"}, false},
		{"accidentals", []string{"F#4", "Bb3", "C#5", "Eb4"}, false},
		{"range extremes", []string{"A0", "Bb0", "C8", "C4"}, false},
		{"lowercase letter", []string{"c4", "D4", "E4", "F4"}, true},
		{"missing octave", []string{"C", "D4", "E4", "F4"}, true},
		{"bogus accidental", []string{"Cx4", "D4", "E4", "F4"}, true},
		{"below keyboard", []string{"G0", "C4", "D4", "E4"}, true},
		{"above keyboard", []string{"D8", "C4", "D4", "E4"}, true},
		{"out of octave range", []string{"C9", "C4", "D4", "E4"}, true},
	}

	v := &NotationValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validExercise()
			e.Notes = tt.notes
			err := v.Validate(e, GenerateInput{})
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%v) err = %v, wantErr %v", tt.notes, err, tt.wantErr)
			}
		})
	}
}

func TestTempoValidator(t *testing.T) {
	v := &TempoValidator{}

	e := validExercise()
	e.TempoBPM = 30
	if v.Validate(e, GenerateInput{}) == nil {
		t.Error("tempo 30 should fail")
	}

	e = validExercise()
	e.TempoBPM = 100
	if err := v.Validate(e, GenerateInput{TargetTempoBPM: 100}); err != nil {
		t.Errorf("matching target tempo: %v", err)
	}
	if v.Validate(e, GenerateInput{TargetTempoBPM: 110}) == nil {
		t.Error("mismatched target tempo should fail")
	}
	if err := v.Validate(e, GenerateInput{}); err != nil {
		t.Errorf("no target tempo: %v", err)
	}
}
