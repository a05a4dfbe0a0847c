package session

import (
	"github.com/etudelab/etude/internal/profile"
	"github.com/etudelab/etude/internal/skillgraph"
)

// aiExerciseID builds the identifier for an on-demand generation request.
// The exercisegen service recognizes this prefix when executing a plan.
const aiIDPrefix = "ai-"

func aiExerciseID(skillID string) string {
	return aiIDPrefix + skillID
}

// AIExerciseID builds the generation-request identifier for a skill. Exposed
// for callers that assemble ad-hoc refs outside a planned session.
func AIExerciseID(skillID string) string {
	return aiExerciseID(skillID)
}

// bestStaticExercise picks the preferred authored exercise for a skill:
// first choice is a target exercise the learner has not played recently,
// second choice is any target exercise that exists at all. Returns "" when
// nothing is authored. Resolver errors count as missing content; upstream
// content failures must never surface as planning failures.
func (pl *Planner) bestStaticExercise(skill skillgraph.Skill, prof *profile.Profile) string {
	anyExisting := ""
	for _, exID := range skill.TargetExerciseIDs {
		ex, err := pl.resolver.GetExercise(exID)
		if err != nil || ex == nil {
			continue
		}
		if anyExisting == "" {
			anyExisting = exID
		}
		if !prof.HasRecentExercise(exID) {
			return exID
		}
	}
	return anyExisting
}

// resolveExercise runs the fallback chain for one skill under the planner's
// resolution policy. It never fails: when no authored content exists the
// result is a generation request.
func (pl *Planner) resolveExercise(skill skillgraph.Skill, prof *profile.Profile, reason string) ExerciseRef {
	staticID := pl.bestStaticExercise(skill, prof)

	if pl.policy == PolicyAIFirstWithFallback {
		return ExerciseRef{
			ExerciseID:         aiExerciseID(skill.ID),
			Source:             SourceAIWithFallback,
			SkillID:            skill.ID,
			Reason:             reason,
			FallbackExerciseID: staticID,
		}
	}

	if staticID != "" {
		return ExerciseRef{
			ExerciseID: staticID,
			Source:     SourceStatic,
			SkillID:    skill.ID,
			Reason:     reason,
		}
	}
	return ExerciseRef{
		ExerciseID: aiExerciseID(skill.ID),
		Source:     SourceAI,
		SkillID:    skill.ID,
		Reason:     reason,
	}
}

// placeholderRef is the last rung of every fallback chain: a generic
// generation request not tied to any skill. Only reachable when the graph
// has no usable skill for a section, which a valid curriculum never hits.
func placeholderRef(reason string) ExerciseRef {
	return ExerciseRef{
		ExerciseID: aiIDPrefix + "general-practice",
		Source:     SourceAI,
		Reason:     reason,
	}
}
