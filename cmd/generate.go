package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/etudelab/etude/internal/session"
	"github.com/etudelab/etude/internal/skillgraph"
)

var generateCmd = &cobra.Command{
	Use:   "generate <skill-id>",
	Short: "Generate a fresh exercise for a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		skill, err := skillgraph.GetSkill(args[0])
		if err != nil {
			return err
		}

		svc, st, err := openService(cmd, session.PolicyStaticOrAI)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		prof, err := svc.LoadProfile(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		ref := session.ExerciseRef{
			ExerciseID: session.AIExerciseID(skill.ID),
			Source:     session.SourceAI,
			SkillID:    skill.ID,
			Reason:     fmt.Sprintf("A fresh exercise for %s, on request.", skill.Name),
		}
		ex, err := svc.ResolveExercise(ctx, ref, prof)
		if err != nil {
			return fmt.Errorf("generate exercise: %w", err)
		}

		printExercise(ex, ref)
		return nil
	},
}
