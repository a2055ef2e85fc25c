// Package commands implements CLI command handlers for prlens.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/prlens/prlens/internal/config"
	"github.com/prlens/prlens/internal/eventlog"
	"github.com/prlens/prlens/internal/report"
)

const (
	statsCmdUse   = "stats <event-log>"
	statsCmdShort = "Print aggregate pull-request statistics"
	statsArgCount = 1

	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// ErrUnknownFormat is returned when --format names an unsupported output.
var ErrUnknownFormat = errors.New("format must be \"table\", \"json\", or \"yaml\"")

// NewStatsCommand creates the stats subcommand.
func NewStatsCommand() *cobra.Command {
	var (
		configPath string
		format     string
		ff         filterFlags
	)

	cmd := &cobra.Command{
		Use:   statsCmdUse,
		Short: statsCmdShort,
		Long: `Stats aggregates an event log into comment leaderboards, review
breakdowns, per-repository status counts, and timing statistics.`,
		Args: cobra.ExactArgs(statsArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args[0], configPath, format, &ff)
		},
	}

	cmd.Flags().StringVar(&configPath, flagConfig, "", "path to config file (default .prlens.yaml)")
	cmd.Flags().StringVar(&format, flagFormat, formatTable, "output format (table|json|yaml)")
	ff.register(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, logPath, configPath, format string, ff *filterFlags) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	filters := ff.apply(cmd.Flags(), cfg.AggregateFilters())

	doc, err := eventlog.Load(logPath)
	if err != nil {
		return err
	}

	slog.Debug("event log loaded",
		"organization", doc.Organization,
		"repositories", len(doc.Repositories))

	rep := report.Compute(doc, filters)

	switch format {
	case formatTable:
		return rep.WriteTables(os.Stdout)
	case formatJSON:
		return rep.WriteJSON(os.Stdout)
	case formatYAML:
		return rep.WriteYAML(os.Stdout)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
