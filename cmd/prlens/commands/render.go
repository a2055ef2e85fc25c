package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/prlens/prlens/internal/config"
	"github.com/prlens/prlens/internal/dashboard"
	"github.com/prlens/prlens/internal/eventlog"
)

const (
	renderCmdUse      = "render <event-log>"
	renderCmdShort    = "Render an HTML dashboard from an event log"
	renderArgCount    = 1
	renderOutputShort = "o"
	renderOutputUsage = "output HTML file"
	renderFilePerm    = 0o644
)

// ErrNoOutputFile is returned when the --output flag is not set.
var ErrNoOutputFile = errors.New("output file is required (use --output)")

// NewRenderCommand creates the render subcommand.
func NewRenderCommand() *cobra.Command {
	var (
		configPath string
		outputFile string
		theme      string
		ff         filterFlags
	)

	cmd := &cobra.Command{
		Use:   renderCmdUse,
		Short: renderCmdShort,
		Args:  cobra.ExactArgs(renderArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFile == "" {
				return ErrNoOutputFile
			}

			return runRender(cmd, args[0], configPath, outputFile, theme, &ff)
		},
	}

	cmd.Flags().StringVar(&configPath, flagConfig, "", "path to config file (default .prlens.yaml)")
	cmd.Flags().StringVarP(&outputFile, flagOutput, renderOutputShort, "", renderOutputUsage)
	cmd.Flags().StringVar(&theme, flagTheme, "", "dashboard theme (light|dark)")
	ff.register(cmd)

	return cmd
}

func runRender(cmd *cobra.Command, logPath, configPath, outputFile, theme string, ff *filterFlags) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed(flagTheme) {
		cfg.Dashboard.Theme = theme

		err = cfg.Validate()
		if err != nil {
			return err
		}
	}

	filters := ff.apply(cmd.Flags(), cfg.AggregateFilters())

	doc, err := eventlog.Load(logPath)
	if err != nil {
		return err
	}

	page := dashboard.Build(doc, filters, dashboard.Theme(cfg.Dashboard.Theme))

	out, err := os.OpenFile(outputFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, renderFilePerm)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	defer out.Close()

	err = page.Render(out)
	if err != nil {
		return err
	}

	slog.Info("dashboard written", "path", outputFile)

	return nil
}
