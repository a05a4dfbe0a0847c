package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/etudelab/etude/internal/session"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all learner data",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("this deletes all progress and history; re-run with --force to confirm")
		}

		svc, st, err := openService(cmd, session.PolicyStaticOrAI)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := svc.ResetAll(); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Println("All learner data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm deletion of all data")
}
