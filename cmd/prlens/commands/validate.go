package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prlens/prlens/internal/eventlog"
)

const (
	validateCmdUse   = "validate <event-log|->"
	validateCmdShort = "Validate an event log against the document schema"
	validateArgCount = 1

	stdinPath  = "-"
	stdinLabel = "stdin"
)

// exitCodeValidationFailure is the exit code for validation failures.
const exitCodeValidationFailure = 2

// NewValidateCommand creates the validate subcommand.
func NewValidateCommand() *cobra.Command {
	var colorize, nocolor bool

	cmd := &cobra.Command{
		Use:   validateCmdUse,
		Short: validateCmdShort,
		Long: `Validate checks an event log document against the expected schema.

Examples:
  prlens validate events.json
  prlens validate - < events.json
`,
		Args: cobra.ExactArgs(validateArgCount),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0], colorize, nocolor)
		},
	}

	cmd.Flags().BoolVar(&colorize, "color", false, "force colored output")
	cmd.Flags().BoolVar(&nocolor, "no-color", false, "disable colored output")

	return cmd
}

func runValidate(inputPath string, colorize, nocolor bool) error {
	if nocolor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	} else if colorize {
		color.NoColor = false //nolint:reassign // intentional override of library global
	}

	data, label, err := readInput(inputPath)
	if err != nil {
		return err
	}

	issues, err := eventlog.ValidateBytes(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Schema validation error: %v\n", err)
		os.Exit(exitCodeValidationFailure)
	}

	if len(issues) == 0 {
		color.New(color.FgGreen).Fprintf(os.Stdout, "Event log is valid (%s)\n", label)

		return nil
	}

	color.New(color.FgRed).Fprintf(os.Stdout, "Event log validation failed (%s)\n", label)
	fmt.Fprintf(os.Stdout, "\nErrors:\n")

	for _, issue := range issues {
		color.New(color.FgYellow).Fprintf(os.Stdout, "  %s: ", issue.Field)
		fmt.Fprintf(os.Stdout, "%s\n", issue.Description)
	}

	os.Exit(exitCodeValidationFailure)

	return nil
}

func readInput(inputPath string) (data []byte, label string, err error) {
	if inputPath == stdinPath {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}

		return data, stdinLabel, nil
	}

	data, err = os.ReadFile(inputPath)
	if err != nil {
		return nil, "", fmt.Errorf("read input: %w", err)
	}

	return data, inputPath, nil
}
