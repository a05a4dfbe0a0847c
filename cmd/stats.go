package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/etudelab/etude/internal/app"
	"github.com/etudelab/etude/internal/session"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice and generation statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd, session.PolicyStaticOrAI)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := svc.CollectStats(cmd.Context(), time.Now())
		if err != nil {
			return fmt.Errorf("collect stats: %w", err)
		}

		fmt.Println("Progress")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("Skills mastered:   %d / %d\n", stats.SkillsMastered, stats.SkillsTotal)
		fmt.Printf("Needing review:    %d\n", stats.SkillsDecayed)
		fmt.Printf("Attempts:          %d (%d passed)\n", stats.Attempts.Total, stats.Attempts.Passed)
		if stats.StreakDays > 0 {
			fmt.Printf("Practice streak:   %d days (next milestone: %d)\n",
				stats.StreakDays, app.NextStreakMilestone(stats.StreakDays))
		}

		if len(stats.Mastery) > 0 {
			fmt.Println("\nRecent mastery")
			fmt.Println(strings.Repeat("─", 40))
			start := len(stats.Mastery) - 5
			if start < 0 {
				start = 0
			}
			for _, ev := range stats.Mastery[start:] {
				fmt.Printf("%s  %s\n", ev.CreatedAt.Local().Format("2006-01-02"), ev.SkillName)
			}
		}

		if len(stats.LLMUsage) > 0 {
			fmt.Println("\nGenerated exercises")
			fmt.Println(strings.Repeat("─", 40))
			for _, u := range stats.LLMUsage {
				fmt.Printf("%-30s  %d requests, %d in / %d out tokens\n",
					u.Model, u.Requests, u.InputTokens, u.OutputTokens)
			}
			fmt.Printf("Estimated spend: $%.4f\n", stats.LLMCostUSD)
		}
		return nil
	},
}
