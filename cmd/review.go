package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/etudelab/etude/internal/mastery"
	"github.com/etudelab/etude/internal/session"
	"github.com/etudelab/etude/internal/skillgraph"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "List mastered skills that have decayed below the review threshold",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd, session.PolicyStaticOrAI)
		if err != nil {
			return err
		}
		defer st.Close()

		prof, err := svc.LoadProfile(cmd.Context())
		if err != nil {
			return err
		}

		now := time.Now()
		stale := mastery.SkillsNeedingReview(prof.MasteredSkills, prof.SkillMasteryData, now)
		if len(stale) == 0 {
			fmt.Println("Nothing needs review. All mastered skills are fresh.")
			return nil
		}

		fmt.Printf("%-24s  %-36s  %9s  %s\n", "ID", "Name", "Retention", "Last practiced")
		fmt.Println(strings.Repeat("─", 90))

		for _, id := range stale {
			skill, err := skillgraph.GetSkill(id)
			if err != nil {
				continue
			}
			rec := prof.SkillMasteryData[id]
			fmt.Printf("%-24s  %-36s  %8.0f%%  %s\n",
				id, skill.Name,
				mastery.Decay(rec, now)*100,
				rec.LastPracticedAt.Local().Format("2006-01-02"))
		}

		fmt.Printf("\n%d skill(s) below the %.0f%% threshold, most decayed first\n",
			len(stale), mastery.ReviewThreshold*100)
		return nil
	},
}
