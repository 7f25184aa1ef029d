package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pourly/pourly/internal/analytics"
	"github.com/pourly/pourly/internal/config"
	"github.com/pourly/pourly/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pourly",
	Short: "Adaptive bartending lesson scheduler",
	Long:  "Pourly — terminal bartending tutor that places you from a short survey and schedules time-boxed, spaced-repetition lessons.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logLevel = slog.LevelDebug
		}
		slog.SetDefault(
			slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			})),
		)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides POURLY_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(attemptCmd)
	rootCmd.AddCommand(closeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then POURLY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadConfig loads the scheduling policy from --config or the search path.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openStore opens the SQLite store and its repositories.
func openStore(cmd *cobra.Command) (*store.Store, store.EventRepo, *analytics.Emitter, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}
	repo, err := st.EventRepo()
	if err != nil {
		st.Close()
		return nil, nil, nil, fmt.Errorf("open event repo: %w", err)
	}
	return st, repo, analytics.NewEmitter(repo, slog.Default()), nil
}
