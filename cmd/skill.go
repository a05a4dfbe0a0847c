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

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the skill graph",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills (optionally filtered by category or tier)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		tier, _ := cmd.Flags().GetInt("tier")

		var skills []skillgraph.Skill

		switch {
		case category != "" && tier != 0:
			return fmt.Errorf("use --category or --tier, not both")
		case category != "":
			skills = skillgraph.ByCategory(skillgraph.Category(category))
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for category %q", category)
			}
		case tier != 0:
			skills = skillgraph.ByTier(tier)
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for tier %d", tier)
			}
		default:
			skills = skillgraph.TopologicalOrder()
		}

		// Header.
		fmt.Printf("%-24s  %-36s  %4s  %5s  %s\n",
			"ID", "Name", "Tier", "Depth", "Category")
		fmt.Println(strings.Repeat("─", 95))

		for _, s := range skills {
			name := s.Name
			if len(name) > 36 {
				name = name[:33] + "..."
			}
			fmt.Printf("%-24s  %-36s  %4d  %5d  %s\n",
				s.ID, name, s.Tier, skillgraph.Depth(s.ID),
				skillgraph.CategoryDisplayName(s.Category))
		}

		fmt.Printf("\n%d skills\n", len(skills))
		return nil
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <skill-id>",
	Short: "Show one skill with prerequisites and dependents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := skillgraph.GetSkill(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("ID:          %s\n", s.ID)
		fmt.Printf("Name:        %s\n", s.Name)
		fmt.Printf("Category:    %s\n", skillgraph.CategoryDisplayName(s.Category))
		fmt.Printf("Tier:        %d\n", s.Tier)
		fmt.Printf("Depth:       %d\n", skillgraph.Depth(s.ID))
		fmt.Printf("Completions: %d required\n", s.RequiredCompletions)
		fmt.Printf("Threshold:   %.0f%%\n", s.MasteryThreshold*100)
		fmt.Printf("Exercises:   %s\n", strings.Join(s.TargetExerciseIDs, ", "))

		if prereqs := skillgraph.Prerequisites(s.ID); len(prereqs) > 0 {
			fmt.Println("\nPrerequisites:")
			for _, p := range prereqs {
				fmt.Printf("  %-24s  %s\n", p.ID, p.Name)
			}
		} else {
			fmt.Println("\nPrerequisites: none (root skill)")
		}

		if deps := skillgraph.Dependents(s.ID); len(deps) > 0 {
			fmt.Println("\nUnlocks:")
			for _, d := range deps {
				fmt.Printf("  %-24s  %s\n", d.ID, d.Name)
			}
		}
		return nil
	},
}

var skillNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show what you can learn right now",
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

		next, ok := session.NextSkillToLearn(prof.MasteredSkills)
		if !ok {
			fmt.Println("Every skill in the curriculum is mastered. Impressive.")
			return nil
		}
		fmt.Printf("Next up: %s (%s)\n\n", next.Name, next.ID)

		available := skillgraph.AvailableSkills(prof.MasteredSkills)
		fmt.Printf("All %d available skills:\n", len(available))
		for _, s := range available {
			fmt.Printf("  %-24s  %s\n", s.ID, s.Name)
		}

		if stale := mastery.SkillsNeedingReview(prof.MasteredSkills, prof.SkillMasteryData, time.Now()); len(stale) > 0 {
			fmt.Printf("\n%d mastered skill(s) need review; see: etude review\n", len(stale))
		}
		return nil
	},
}

func init() {
	skillListCmd.Flags().String("category", "", "Filter by category (e.g. note-finding)")
	skillListCmd.Flags().Int("tier", 0, "Filter by curriculum tier (1-15)")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
	skillCmd.AddCommand(skillNextCmd)
}
