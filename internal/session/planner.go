package session

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/etudelab/etude/internal/content"
	"github.com/etudelab/etude/internal/mastery"
	"github.com/etudelab/etude/internal/profile"
	"github.com/etudelab/etude/internal/skillgraph"
)

// tempoChallengeBump is how far past the learner's comfort ceiling a tempo
// challenge pushes, in BPM.
const tempoChallengeBump = 10

// maxReviewSlots caps the review exercises in a review-type lesson.
const maxReviewSlots = 3

// Planner composes session plans from a learner profile snapshot. It holds
// no mutable state: every call is a pure function of its inputs plus the
// fixed skill graph, so one planner may serve concurrent sessions.
type Planner struct {
	resolver content.Resolver
	policy   ResolutionPolicy
}

// NewPlanner creates a planner using the given content resolver and
// exercise-resolution policy.
func NewPlanner(resolver content.Resolver, policy ResolutionPolicy) *Planner {
	if policy == "" {
		policy = PolicyStaticOrAI
	}
	return &Planner{resolver: resolver, policy: policy}
}

// NextSkillToLearn returns the next unmastered skill whose prerequisites are
// all mastered: the shallowest available skill, ties broken by the fixed
// category priority order, then by ID. Returns false when everything is
// mastered.
func NextSkillToLearn(masteredIDs map[string]bool) (skillgraph.Skill, bool) {
	available := skillgraph.AvailableSkills(masteredIDs)
	if len(available) == 0 {
		return skillgraph.Skill{}, false
	}
	sort.Slice(available, func(i, j int) bool {
		di, dj := skillgraph.Depth(available[i].ID), skillgraph.Depth(available[j].ID)
		if di != dj {
			return di < dj
		}
		pi, pj := skillgraph.CategoryPriority(available[i].Category), skillgraph.CategoryPriority(available[j].Category)
		if pi != pj {
			return pi < pj
		}
		return available[i].ID < available[j].ID
	})
	return available[0], true
}

// GeneratePlan builds the three-part session for the given profile. The
// plan is always complete: warm-up, lesson, and challenge are non-empty and
// at least three reasoning lines explain the choices. The profile is never
// mutated.
func (pl *Planner) GeneratePlan(prof *profile.Profile, now time.Time) *Plan {
	sessionType := SelectType(prof.MasteredSkills, prof.SkillMasteryData, prof.TotalExercisesCompleted, now)

	plan := &Plan{
		ID:          uuid.NewString(),
		SessionType: sessionType,
		CreatedAt:   now,
	}

	plan.WarmUp = pl.buildWarmUp(prof, plan)
	plan.Lesson = pl.buildLesson(prof, sessionType, now, plan)
	plan.Challenge = pl.buildChallenge(prof, sessionType, plan)

	return plan
}

// buildWarmUp tries, in order: an exercise from a mastered skill covering
// the learner's weak notes, a review of the most recently mastered skill,
// and finally a fixed fallback on the curriculum's root skill.
func (pl *Planner) buildWarmUp(prof *profile.Profile, plan *Plan) []ExerciseRef {
	if ref, ok := pl.weakNoteWarmUp(prof); ok {
		plan.Reasoning = append(plan.Reasoning, ref.Reason)
		return []ExerciseRef{ref}
	}

	if recent := prof.MostRecentlyMastered(); recent != "" {
		if skill, err := skillgraph.GetSkill(recent); err == nil {
			reason := fmt.Sprintf("Warming up with %s, your most recently mastered skill.", skill.Name)
			ref := pl.resolveExercise(skill, prof, reason)
			plan.Reasoning = append(plan.Reasoning, reason)
			return []ExerciseRef{ref}
		}
	}

	roots := skillgraph.RootSkills()
	if len(roots) == 0 {
		ref := placeholderRef("Warming up with a general exercise.")
		plan.Reasoning = append(plan.Reasoning, ref.Reason)
		return []ExerciseRef{ref}
	}
	root := roots[0]
	reason := fmt.Sprintf("Warming up with %s to get your fingers moving.", root.Name)
	ref := pl.resolveExercise(root, prof, reason)
	plan.Reasoning = append(plan.Reasoning, reason)
	return []ExerciseRef{ref}
}

// weakNoteWarmUp looks for an authored exercise, from a mastered skill,
// whose notes overlap the learner's weak notes.
func (pl *Planner) weakNoteWarmUp(prof *profile.Profile) (ExerciseRef, bool) {
	if len(prof.WeakNotes) == 0 {
		return ExerciseRef{}, false
	}
	weak := make(map[string]bool, len(prof.WeakNotes))
	for _, n := range prof.WeakNotes {
		weak[n] = true
	}

	masteredIDs := make([]string, 0, len(prof.MasteredSkills))
	for id := range prof.MasteredSkills {
		masteredIDs = append(masteredIDs, id)
	}
	sort.Strings(masteredIDs)

	for _, skillID := range masteredIDs {
		skill, err := skillgraph.GetSkill(skillID)
		if err != nil {
			continue
		}
		for _, exID := range skill.TargetExerciseIDs {
			ex, err := pl.resolver.GetExercise(exID)
			if err != nil || ex == nil {
				continue
			}
			for _, note := range ex.Notes {
				if weak[note] {
					reason := fmt.Sprintf("Warming up with %s to strengthen %s, a note you often miss.", skill.Name, note)
					return ExerciseRef{
						ExerciseID: exID,
						Source:     SourceStatic,
						SkillID:    skill.ID,
						Reason:     reason,
					}, true
				}
			}
		}
	}
	return ExerciseRef{}, false
}

// buildLesson assembles the lesson body for the session type.
func (pl *Planner) buildLesson(prof *profile.Profile, sessionType Type, now time.Time, plan *Plan) []ExerciseRef {
	switch sessionType {
	case TypeReview:
		return pl.reviewLesson(prof, now, plan)
	case TypeMixed:
		return pl.mixedLesson(prof, now, plan)
	default:
		// New-material and challenge sessions share the same lesson shape.
		return pl.newMaterialLesson(prof, plan)
	}
}

// newMaterialLesson resolves the next skill plus, when one exists, a second
// exercise from a parallel available skill. With the whole curriculum
// mastered it substitutes an AI review of the deepest mastered skill.
func (pl *Planner) newMaterialLesson(prof *profile.Profile, plan *Plan) []ExerciseRef {
	next, ok := NextSkillToLearn(prof.MasteredSkills)
	if !ok {
		return []ExerciseRef{pl.fullMasteryReview(prof, plan)}
	}

	reason := fmt.Sprintf("Learning something new: %s.", next.Name)
	refs := []ExerciseRef{pl.resolveExercise(next, prof, reason)}
	plan.Reasoning = append(plan.Reasoning, reason)

	if parallel, ok := pl.parallelSkill(prof.MasteredSkills, next.ID); ok {
		parallelReason := fmt.Sprintf("Also touching %s so your progress stays broad.", parallel.Name)
		refs = append(refs, pl.resolveExercise(parallel, prof, parallelReason))
		plan.Reasoning = append(plan.Reasoning, parallelReason)
	}
	return refs
}

// reviewLesson takes up to three most-decayed skills and closes with one
// new-material exercise so review days still move the learner forward.
func (pl *Planner) reviewLesson(prof *profile.Profile, now time.Time, plan *Plan) []ExerciseRef {
	var refs []ExerciseRef

	stale := mastery.SkillsNeedingReview(prof.MasteredSkills, prof.SkillMasteryData, now)
	if len(stale) > maxReviewSlots {
		stale = stale[:maxReviewSlots]
	}
	for _, skillID := range stale {
		skill, err := skillgraph.GetSkill(skillID)
		if err != nil {
			continue
		}
		reason := fmt.Sprintf("Reviewing %s before it fades.", skill.Name)
		refs = append(refs, pl.resolveExercise(skill, prof, reason))
		plan.Reasoning = append(plan.Reasoning, reason)
	}

	if next, ok := NextSkillToLearn(prof.MasteredSkills); ok {
		reason := fmt.Sprintf("Finishing with something new: %s.", next.Name)
		refs = append(refs, pl.resolveExercise(next, prof, reason))
		plan.Reasoning = append(plan.Reasoning, reason)
	} else if len(refs) == 0 {
		refs = append(refs, pl.fullMasteryReview(prof, plan))
	}
	return refs
}

// mixedLesson pairs exactly one review exercise with exactly one
// new-material exercise.
func (pl *Planner) mixedLesson(prof *profile.Profile, now time.Time, plan *Plan) []ExerciseRef {
	var refs []ExerciseRef

	stale := mastery.SkillsNeedingReview(prof.MasteredSkills, prof.SkillMasteryData, now)
	if len(stale) > 0 {
		if skill, err := skillgraph.GetSkill(stale[0]); err == nil {
			reason := fmt.Sprintf("Reviewing %s before it fades.", skill.Name)
			refs = append(refs, pl.resolveExercise(skill, prof, reason))
			plan.Reasoning = append(plan.Reasoning, reason)
		}
	}

	if next, ok := NextSkillToLearn(prof.MasteredSkills); ok {
		reason := fmt.Sprintf("Learning something new: %s.", next.Name)
		refs = append(refs, pl.resolveExercise(next, prof, reason))
		plan.Reasoning = append(plan.Reasoning, reason)
	}

	if len(refs) == 0 {
		refs = append(refs, pl.fullMasteryReview(prof, plan))
	}
	return refs
}

// fullMasteryReview is the lesson substitute when no skill is left to learn:
// an AI-generated review targeting the deepest mastered skill.
func (pl *Planner) fullMasteryReview(prof *profile.Profile, plan *Plan) ExerciseRef {
	deepest, ok := deepestMastered(prof.MasteredSkills)
	if !ok {
		ref := placeholderRef("Keeping your practice going with a general exercise.")
		plan.Reasoning = append(plan.Reasoning, ref.Reason)
		return ref
	}
	reason := fmt.Sprintf("You've mastered the whole curriculum, so here's a fresh review of %s.", deepest.Name)
	plan.Reasoning = append(plan.Reasoning, reason)
	return ExerciseRef{
		ExerciseID: aiExerciseID(deepest.ID),
		Source:     SourceAI,
		SkillID:    deepest.ID,
		Reason:     reason,
	}
}

// buildChallenge picks the deepest available skill, appending a second,
// distinct exercise on challenge days. With nothing available it falls back
// to an AI tempo challenge on the deepest mastered skill.
func (pl *Planner) buildChallenge(prof *profile.Profile, sessionType Type, plan *Plan) []ExerciseRef {
	ranked := availableByDepth(prof.MasteredSkills)
	if len(ranked) == 0 {
		return []ExerciseRef{pl.tempoChallenge(prof, plan)}
	}

	first := ranked[0]
	reason := fmt.Sprintf("Challenge: stretching toward %s, the deepest skill within reach.", first.Name)
	refs := []ExerciseRef{pl.resolveExercise(first, prof, reason)}
	plan.Reasoning = append(plan.Reasoning, reason)

	if sessionType == TypeChallenge {
		if second, ok := secondChallenge(ranked, refs[0]); ok {
			secondReason := fmt.Sprintf("Challenge day bonus: %s.", second.Name)
			ref := pl.resolveExercise(second, prof, secondReason)
			if ref.ExerciseID != refs[0].ExerciseID {
				refs = append(refs, ref)
				plan.Reasoning = append(plan.Reasoning, secondReason)
			}
		}
	}
	return refs
}

// tempoChallenge frames a +10 BPM push on the deepest mastered skill.
func (pl *Planner) tempoChallenge(prof *profile.Profile, plan *Plan) ExerciseRef {
	deepest, ok := deepestMastered(prof.MasteredSkills)
	if !ok {
		ref := placeholderRef("Challenge: a surprise exercise to stretch your skills.")
		plan.Reasoning = append(plan.Reasoning, ref.Reason)
		return ref
	}
	target := prof.TempoRange.Max + tempoChallengeBump
	reason := fmt.Sprintf("Challenge: %s at %d BPM, %d over your comfort ceiling.", deepest.Name, target, tempoChallengeBump)
	plan.Reasoning = append(plan.Reasoning, reason)
	return ExerciseRef{
		ExerciseID: aiIDPrefix + "tempo-" + deepest.ID,
		Source:     SourceAI,
		SkillID:    deepest.ID,
		Reason:     reason,
	}
}

// availableByDepth returns available skills sorted deepest first, ties
// broken by category priority then ID.
func availableByDepth(masteredIDs map[string]bool) []skillgraph.Skill {
	available := skillgraph.AvailableSkills(masteredIDs)
	sort.Slice(available, func(i, j int) bool {
		di, dj := skillgraph.Depth(available[i].ID), skillgraph.Depth(available[j].ID)
		if di != dj {
			return di > dj
		}
		pi, pj := skillgraph.CategoryPriority(available[i].Category), skillgraph.CategoryPriority(available[j].Category)
		if pi != pj {
			return pi < pj
		}
		return available[i].ID < available[j].ID
	})
	return available
}

// secondChallenge picks a distinct skill for the challenge-day bonus slot,
// falling back to the first skill itself when it is the only one available.
// Resolution over the same profile is deterministic, so that fallback
// yields a duplicate ref and buildChallenge drops the bonus slot.
func secondChallenge(ranked []skillgraph.Skill, first ExerciseRef) (skillgraph.Skill, bool) {
	for _, s := range ranked {
		if s.ID != first.SkillID {
			return s, true
		}
	}
	if len(ranked) == 1 {
		return ranked[0], true
	}
	return skillgraph.Skill{}, false
}

// parallelSkill finds an available skill other than the primary pick.
func (pl *Planner) parallelSkill(masteredIDs map[string]bool, excludeID string) (skillgraph.Skill, bool) {
	available := skillgraph.AvailableSkills(masteredIDs)
	sort.Slice(available, func(i, j int) bool {
		pi, pj := skillgraph.CategoryPriority(available[i].Category), skillgraph.CategoryPriority(available[j].Category)
		if pi != pj {
			return pi < pj
		}
		return available[i].ID < available[j].ID
	})
	for _, s := range available {
		if s.ID != excludeID {
			return s, true
		}
	}
	return skillgraph.Skill{}, false
}

// deepestMastered returns the mastered skill with the greatest graph depth.
func deepestMastered(masteredIDs map[string]bool) (skillgraph.Skill, bool) {
	best := skillgraph.Skill{}
	bestDepth := -1
	found := false
	for id := range masteredIDs {
		skill, err := skillgraph.GetSkill(id)
		if err != nil {
			continue
		}
		d := skillgraph.Depth(id)
		switch {
		case !found, d > bestDepth,
			d == bestDepth && skillgraph.CategoryPriority(skill.Category) < skillgraph.CategoryPriority(best.Category),
			d == bestDepth && skillgraph.CategoryPriority(skill.Category) == skillgraph.CategoryPriority(best.Category) && skill.ID < best.ID:
			best = skill
			bestDepth = d
			found = true
		}
	}
	return best, found
}
