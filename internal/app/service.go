// Package app wires the curriculum, planner, content catalog, generator,
// and store into the operations the CLI commands call. It owns the
// load-modify-persist cycle for the learner profile; everything below it
// is side-effect free.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/etudelab/etude/internal/content"
	"github.com/etudelab/etude/internal/exercisegen"
	"github.com/etudelab/etude/internal/mastery"
	"github.com/etudelab/etude/internal/profile"
	"github.com/etudelab/etude/internal/session"
	"github.com/etudelab/etude/internal/skillgraph"
	"github.com/etudelab/etude/internal/store"
)

// snapshotKeep bounds how many profile snapshots are retained.
const snapshotKeep = 10

// Service coordinates session planning and practice recording.
type Service struct {
	store     *store.Store
	catalog   *content.Catalog
	planner   *session.Planner
	generator exercisegen.Generator // nil when no LLM is configured
}

// Options configures a Service.
type Options struct {
	Store   *store.Store
	Catalog *content.Catalog

	// Generator is optional. Without it, AI exercise refs resolve to their
	// static fallback or a descriptive placeholder.
	Generator exercisegen.Generator

	// Policy selects the exercise resolution policy for planning.
	Policy session.ResolutionPolicy
}

// NewService builds a Service from options.
func NewService(opts Options) *Service {
	return &Service{
		store:     opts.Store,
		catalog:   opts.Catalog,
		planner:   session.NewPlanner(opts.Catalog, opts.Policy),
		generator: opts.Generator,
	}
}

// LoadProfile returns the latest stored profile, or a fresh one for a new
// learner.
func (s *Service) LoadProfile(ctx context.Context) (*profile.Profile, error) {
	prof, _, err := s.store.Profiles().Latest(ctx)
	if err != nil {
		return nil, err
	}
	if prof == nil {
		prof = profile.New()
	}
	return prof, nil
}

// PlanSession loads the profile and composes the next practice session.
func (s *Service) PlanSession(ctx context.Context, now time.Time) (*session.Plan, *profile.Profile, error) {
	prof, err := s.LoadProfile(ctx)
	if err != nil {
		return nil, nil, err
	}
	return s.planner.GeneratePlan(prof, now), prof, nil
}

// PracticeResult is what RecordPractice reports back to the CLI.
type PracticeResult struct {
	Profile *profile.Profile
	// Mastered is set when this practice promoted the skill.
	Mastered *mastery.MasteredEvent
}

// RecordPractice applies one exercise attempt: updates the profile, appends
// the practice (and any mastery) events, and persists a new snapshot.
func (s *Service) RecordPractice(ctx context.Context, sessionID string, ref session.ExerciseRef, passed bool, now time.Time) (*PracticeResult, error) {
	prof, err := s.LoadProfile(ctx)
	if err != nil {
		return nil, err
	}

	updated, event := prof.WithPractice(ref.SkillID, passed, now)
	updated = updated.WithCompletedExercise(ref.ExerciseID)

	log := s.store.Events()
	seq, err := log.AppendPractice(ctx, store.PracticeEvent{
		CreatedAt:  now,
		SessionID:  sessionID,
		SkillID:    ref.SkillID,
		ExerciseID: ref.ExerciseID,
		Source:     string(ref.Source),
		Passed:     passed,
	})
	if err != nil {
		return nil, err
	}

	if event != nil {
		seq, err = log.AppendMastery(ctx, store.MasteryEvent{
			CreatedAt: event.MasteredAt,
			SkillID:   event.SkillID,
			SkillName: event.SkillName,
		})
		if err != nil {
			return nil, err
		}
	}

	if err := s.store.Profiles().Save(ctx, updated, seq, now); err != nil {
		return nil, err
	}
	if err := s.store.Profiles().Prune(ctx, snapshotKeep); err != nil {
		return nil, err
	}

	return &PracticeResult{Profile: updated, Mastered: event}, nil
}

// ResolveExercise turns a plan reference into a concrete exercise. Static
// refs come from the catalog. AI refs go to the generator; when none is
// configured (or generation fails) the static fallback is used, and failing
// that a placeholder exercise built from the skill's target notes.
func (s *Service) ResolveExercise(ctx context.Context, ref session.ExerciseRef, prof *profile.Profile) (content.Exercise, error) {
	if ref.Source == session.SourceStatic {
		ex, err := s.catalog.GetExercise(ref.ExerciseID)
		if err != nil {
			return content.Exercise{}, err
		}
		if ex == nil {
			return content.Exercise{}, fmt.Errorf("exercise %q not in catalog", ref.ExerciseID)
		}
		return *ex, nil
	}

	if s.generator != nil {
		ex, err := s.generate(ctx, ref, prof)
		if err == nil {
			return ex, nil
		}
	}

	if ref.FallbackExerciseID != "" {
		if ex, err := s.catalog.GetExercise(ref.FallbackExerciseID); err == nil && ex != nil {
			return *ex, nil
		}
	}

	return placeholderExercise(ref, prof), nil
}

func (s *Service) generate(ctx context.Context, ref session.ExerciseRef, prof *profile.Profile) (content.Exercise, error) {
	input := exercisegen.GenerateInput{
		Purpose:   exercisegen.PurposeLesson,
		WeakNotes: prof.WeakNotes,
	}

	if strings.HasPrefix(ref.ExerciseID, "ai-tempo-") {
		input.Purpose = exercisegen.PurposeTempoChallenge
		input.TargetTempoBPM = prof.TempoRange.Max + 10
	}

	if ref.SkillID != "" {
		skill, err := skillgraph.GetSkill(ref.SkillID)
		if err != nil {
			return content.Exercise{}, err
		}
		input.Skill = skill
	}

	gen, err := s.generator.Generate(ctx, input)
	if err != nil {
		return content.Exercise{}, err
	}
	return gen.AsContentExercise(ref.ExerciseID), nil
}

// placeholderExercise is the no-LLM, no-fallback last resort: practice the
// skill's first target exercise shape at a comfortable tempo.
func placeholderExercise(ref session.ExerciseRef, prof *profile.Profile) content.Exercise {
	ex := content.Exercise{
		ID:       ref.ExerciseID,
		SkillID:  ref.SkillID,
		Title:    "Free practice",
		Clef:     "grand",
		Hands:    "both",
		TempoBPM: prof.TempoRange.Min,
		Notes:    []string{"C4", "D4", "E4", "F4", "G4"},
	}
	if skill, err := skillgraph.GetSkill(ref.SkillID); err == nil {
		ex.Title = "Free practice: " + skill.Name
	}
	return ex
}
