package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"numconv/internal/usecase/calc"
)

type runFunc func(ctx context.Context, raw string) (calc.Result, error)

func operationCmd(opts *options, use, short string, run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		// negative numbers need "--" so they are not read as flags
		Example: "  numconv " + strings.Fields(use)[0] + " -- -7",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), opts.output, res)
		},
	}
}
