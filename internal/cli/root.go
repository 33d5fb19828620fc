// Package cli implements the numconv command line: one subcommand per
// numeric operation plus a YAML batch runner.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"numconv/internal/domain/numeric"
	"numconv/internal/observability/logging"
	"numconv/internal/usecase/calc"
)

// Output formats accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// errReported marks an error whose message was already written.
var errReported = errors.New("reported")

type options struct {
	output   string
	logLevel string
}

// NewRootCmd builds the command tree around svc.
func NewRootCmd(svc *calc.Service) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "numconv",
		Short:         "Roman numerals, parity, primality and factorials",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch opts.output {
			case FormatText, FormatJSON:
			default:
				return fmt.Errorf("--output must be %s or %s, got %q", FormatText, FormatJSON, opts.output)
			}
			logger := logging.NewLogger(logging.Options{
				Level:  opts.logLevel,
				Format: "text",
				Writer: cmd.ErrOrStderr(),
			})
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", FormatText, "output format: text or json")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(
		operationCmd(opts, "roman <number>", "Convert an integer (1-3999) to a Roman numeral", svc.IntToRoman),
		operationCmd(opts, "arabic <numeral>", "Convert a Roman numeral to an integer", svc.RomanToInt),
		operationCmd(opts, "parity <number>", "Classify an integer as even or odd", svc.Parity),
		operationCmd(opts, "prime <number>", "Test a non-negative integer for primality", svc.Prime),
		operationCmd(opts, "factorial <number>", "Compute n! for 0 <= n <= 20", svc.Factorial),
		batchCmd(svc, opts),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, svc *calc.Service, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd(svc)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "Error: %s\n", numeric.Reason(err))
		}
		return 1
	}
	return 0
}
