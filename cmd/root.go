package cmd

import (
	"github.com/spf13/cobra"

	"github.com/owenfaulkner29/jargon/internal/config"
	"github.com/owenfaulkner29/jargon/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "jargon",
	Short: "Flashcards for consulting jargon",
	Long:  "Jargon is a terminal flashcard app for learning consulting jargon and acronyms.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides JARGON_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/jargon/config.yaml)")
	rootCmd.PersistentFlags().String("decks", "", "Path to a YAML deck file (overrides decks.file)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.Flags().String("deck", "", "Deck to study first: terms or acronyms")

	rootCmd.AddCommand(decksCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then database.path from config, then JARGON_DB or the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}
