package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/etudelab/etude/internal/session"
	"github.com/etudelab/etude/internal/skillgraph"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <skill-id>",
	Short: "Record the result of a practice attempt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		skillID := args[0]
		skill, err := skillgraph.GetSkill(skillID)
		if err != nil {
			return err
		}

		exerciseID, _ := cmd.Flags().GetString("exercise")
		if exerciseID == "" {
			if len(skill.TargetExerciseIDs) > 0 {
				exerciseID = skill.TargetExerciseIDs[0]
			} else {
				exerciseID = "ai-" + skillID
			}
		}

		sessionID, _ := cmd.Flags().GetString("session")
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		failed, _ := cmd.Flags().GetBool("fail")

		svc, st, err := openService(cmd, session.PolicyStaticOrAI)
		if err != nil {
			return err
		}
		defer st.Close()

		ref := session.ExerciseRef{
			ExerciseID: exerciseID,
			Source:     session.SourceStatic,
			SkillID:    skillID,
		}

		res, err := svc.RecordPractice(cmd.Context(), sessionID, ref, !failed, time.Now())
		if err != nil {
			return fmt.Errorf("record practice: %w", err)
		}

		outcome := "passed"
		if failed {
			outcome = "failed"
		}
		rec := res.Profile.SkillMasteryData[skillID]
		fmt.Printf("Recorded %s attempt on %s (%d/%d completions)\n",
			outcome, skill.Name, rec.CompletionCount, skill.RequiredCompletions)

		if res.Mastered != nil {
			fmt.Printf("\nSkill mastered: %s\n", res.Mastered.SkillName)
			for _, dep := range skillgraph.Dependents(skillID) {
				if skillgraph.IsUnlocked(dep.ID, res.Profile.MasteredSkills) {
					fmt.Printf("  unlocked: %s (%s)\n", dep.ID, dep.Name)
				}
			}
		}
		return nil
	},
}

func init() {
	practiceCmd.Flags().String("exercise", "", "Exercise ID practiced (defaults to the skill's first target)")
	practiceCmd.Flags().String("session", "", "Session ID to group attempts under")
	practiceCmd.Flags().Bool("fail", false, "Record the attempt as failed")
}
