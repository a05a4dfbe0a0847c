package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/etudelab/etude/internal/content"
	"github.com/etudelab/etude/internal/session"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compose the next practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		policy := session.PolicyStaticOrAI
		if aiFirst, _ := cmd.Flags().GetBool("ai-first"); aiFirst {
			policy = session.PolicyAIFirstWithFallback
		}

		svc, st, err := openService(cmd, policy)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		plan, prof, err := svc.PlanSession(ctx, time.Now())
		if err != nil {
			return fmt.Errorf("plan session: %w", err)
		}

		fmt.Printf("Session %s (%s)\n", plan.ID[:8], plan.SessionType)
		fmt.Println(strings.Repeat("─", 72))

		printSection := func(title string, refs []session.ExerciseRef) error {
			fmt.Printf("\n%s\n", title)
			for _, ref := range refs {
				ex, err := svc.ResolveExercise(ctx, ref, prof)
				if err != nil {
					return fmt.Errorf("resolve %s: %w", ref.ExerciseID, err)
				}
				printExercise(ex, ref)
			}
			return nil
		}

		if err := printSection("Warm-up", plan.WarmUp); err != nil {
			return err
		}
		if err := printSection("Lesson", plan.Lesson); err != nil {
			return err
		}
		if err := printSection("Challenge", plan.Challenge); err != nil {
			return err
		}

		fmt.Println("\nWhy this session:")
		for _, line := range plan.Reasoning {
			fmt.Printf("  - %s\n", line)
		}

		fmt.Println("\nRecord results with: etude practice <skill-id> --exercise <exercise-id>")
		return nil
	},
}

func printExercise(ex content.Exercise, ref session.ExerciseRef) {
	source := ""
	if ref.Source != session.SourceStatic {
		source = " [generated]"
	}
	fmt.Printf("  %-28s  %s%s\n", ex.ID, ex.Title, source)
	fmt.Printf("    %s clef, %s hand(s), %d BPM\n", ex.Clef, ex.Hands, ex.TempoBPM)
	if len(ex.Notes) > 0 {
		fmt.Printf("    notes: %s\n", strings.Join(ex.Notes, " "))
	}
}

func init() {
	planCmd.Flags().Bool("ai-first", false, "Prefer generated exercises, falling back to the catalog")
}
