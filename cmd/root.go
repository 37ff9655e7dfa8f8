package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/mindload/internal/config"
	"github.com/abhisek/mindload/internal/output"
	"github.com/abhisek/mindload/internal/store"
)

// cfg is the effective configuration, loaded before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "mindload",
	Short: "Psychological self-assessment scoring and reports",
	Long: "mindload scores the growth-obstacle and mental-energy-drain questionnaires " +
		"and writes personalized reports with an LLM.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(cmd)

		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = config.Find()
		}
		c, err := config.Load(path)
		if err != nil {
			return err
		}
		if m, _ := cmd.Flags().GetString("model"); m != "" {
			c.Model = m
			if err := c.Validate(); err != nil {
				return err
			}
		}
		cfg = c
		slog.Debug("config loaded", "path", path, "model", cfg.Model, "provider", cfg.LLM.Provider)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides MINDLOAD_DB env var)")
	pf.String("config", "", "Path to a yaml, toml or json config file")
	pf.String("model", "", "Scoring model: growth or drain (overrides config)")
	pf.StringP("format", "o", "text", "Output format: text, json or markdown")
	pf.Bool("no-color", false, "Disable colored output")
	pf.BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(assessmentsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogging(cmd *cobra.Command) {
	level := slog.LevelWarn
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file, then MINDLOAD_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func newFormatter(cmd *cobra.Command) (*output.Formatter, error) {
	v, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(v)
	if err != nil {
		return nil, err
	}
	noColor, _ := cmd.Flags().GetBool("no-color")
	return output.NewFormatter(format, cmd.OutOrStdout(), !noColor && !color.NoColor), nil
}
