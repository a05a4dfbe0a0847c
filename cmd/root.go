package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/etudelab/etude/internal/app"
	"github.com/etudelab/etude/internal/content"
	"github.com/etudelab/etude/internal/exercisegen"
	"github.com/etudelab/etude/internal/llm"
	"github.com/etudelab/etude/internal/session"
	"github.com/etudelab/etude/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "etude",
	Short: "Adaptive piano practice planner",
	Long: "Etude plans piano practice sessions from a 100-skill curriculum graph,\n" +
		"tracking mastery decay and filling gaps with generated exercises.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ETUDE_DB env var)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ETUDE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openService opens the store and builds the app service. The caller must
// Close the returned store.
func openService(cmd *cobra.Command, policy session.ResolutionPolicy) (*app.Service, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	catalog, err := content.NewCatalog()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load content catalog: %w", err)
	}

	opts := app.Options{
		Store:   st,
		Catalog: catalog,
		Policy:  policy,
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.Events())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Generated exercises will fall back to the static catalog.")
	} else {
		opts.Generator = exercisegen.New(provider, exercisegen.DefaultConfig())
	}

	return app.NewService(opts), st, nil
}
