package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"numconv/internal/domain/entity"
	"numconv/internal/usecase/calc"
)

// BatchFile is the YAML document read by "numconv batch".
//
//	requests:
//	  - operation: prime
//	    input: "91"
//	  - operation: int-to-roman
//	    input: 1994
type BatchFile struct {
	Requests []BatchRequest `yaml:"requests"`
}

// BatchRequest is one entry of a BatchFile.
type BatchRequest struct {
	Operation string `yaml:"operation"`
	Input     string `yaml:"input"`
}

// ParseBatch decodes a batch document. Unknown keys are rejected.
func ParseBatch(r io.Reader) (*BatchFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var bf BatchFile
	if err := dec.Decode(&bf); err != nil {
		if err == io.EOF {
			return &bf, nil
		}
		return nil, fmt.Errorf("parse batch file: %w", err)
	}
	return &bf, nil
}

func batchCmd(svc *calc.Service, opts *options) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "batch -f <file.yaml>",
		Short: "Run every request listed in a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var r io.Reader = cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("open batch file: %w", err)
				}
				defer f.Close()
				r = f
			}

			bf, err := ParseBatch(r)
			if err != nil {
				return err
			}
			return runBatch(cmd, svc, opts.output, bf)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", `batch file, or "-" for stdin`)
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runBatch(cmd *cobra.Command, svc *calc.Service, format string, bf *BatchFile) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	results := make([]ResultOutput, 0, len(bf.Requests))
	failed := 0

	for _, req := range bf.Requests {
		res, err := runRequest(cmd, svc, req)
		if err != nil {
			failed++
			fo := failureOutput(req.Operation, req.Input, err)
			results = append(results, fo)
			if format == FormatText {
				fmt.Fprintf(errOut, "%s %q: %s\n", req.Operation, req.Input, fo.Error)
			}
			continue
		}
		results = append(results, toOutput(res))
		if format == FormatText {
			fmt.Fprintln(out, res.Display)
		}
	}

	if format == FormatJSON {
		if err := writeJSON(out, results); err != nil {
			return err
		}
	}
	if failed > 0 {
		fmt.Fprintf(errOut, "%d of %d requests failed\n", failed, len(bf.Requests))
		return errReported
	}
	return nil
}

func runRequest(cmd *cobra.Command, svc *calc.Service, req BatchRequest) (calc.Result, error) {
	op, err := entity.ParseOperation(req.Operation)
	if err != nil {
		return calc.Result{}, err
	}
	return svc.Run(cmd.Context(), op, req.Input)
}
