package cmd

import (
	"github.com/abhisek/tutorcore/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tutorcore",
	Short: "Adaptive mastery engine for math tutoring",
	Long: "Tutorcore provides placement diagnostics, Bayesian mastery tracking,\n" +
		"and spaced repetition scheduling for an adaptive math tutor.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TUTORCORE_DB env var)")

	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(conceptsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TUTORCORE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
