// Package main provides the entry point for the prlens CLI tool.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/prlens/prlens/cmd/prlens/commands"
	"github.com/prlens/prlens/internal/version"
)

var (
	verbose bool
	quiet   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "prlens",
		Short: "prlens - pull request activity statistics",
		Long: `prlens turns an organization's pull-request event log into statistics,
leaderboards, and dashboards.

Commands:
  stats     Print aggregate statistics as tables, JSON, or YAML
  render    Write an HTML dashboard
  serve     Serve the dashboard over HTTP
  validate  Check an event log against the document schema`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogging()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output")

	// Add commands.
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func configureLogging() {
	switch {
	case quiet:
		slog.SetLogLoggerLevel(slog.LevelError)
	case verbose:
		slog.SetLogLoggerLevel(slog.LevelDebug)
	default:
		slog.SetLogLoggerLevel(slog.LevelInfo)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "prlens %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
