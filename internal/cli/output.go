package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"numconv/internal/domain/numeric"
	"numconv/internal/usecase/calc"
)

// ResultOutput is the JSON form of one calculation.
type ResultOutput struct {
	Operation string `json:"operation"`
	Input     string `json:"input"`
	Result    string `json:"result,omitempty"`
	Display   string `json:"display,omitempty"`
	Error     string `json:"error,omitempty"`
}

func toOutput(res calc.Result) ResultOutput {
	return ResultOutput{
		Operation: string(res.Operation),
		Input:     res.Input,
		Result:    res.Output,
		Display:   res.Display,
	}
}

func writeResult(w io.Writer, format string, res calc.Result) error {
	if format == FormatJSON {
		return writeJSON(w, toOutput(res))
	}
	_, err := fmt.Fprintln(w, res.Display)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func failureOutput(op, input string, err error) ResultOutput {
	return ResultOutput{Operation: op, Input: input, Error: numeric.Reason(err)}
}
