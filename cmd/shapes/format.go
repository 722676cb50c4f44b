package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// formatShapeText writes the shape's report followed by a newline.
func formatShapeText(w io.Writer, s CLIShape) {
	fmt.Fprintln(w, s.Report)
}

// formatComparisonText writes the ordering keyword, e.g. "less".
func formatComparisonText(w io.Writer, c CLIComparison) {
	fmt.Fprintln(w, c.Ordering)
}

// outputResultText dispatches to the appropriate text formatter based on the
// result type.
func outputResultText(w io.Writer, result CLIResult) error {
	switch v := result.Results.(type) {
	case CLIShape:
		formatShapeText(w, v)
	case CLIComparison:
		formatComparisonText(w, v)
	case nil:
	default:
		return fmt.Errorf("unsupported result type for text format: %T", v)
	}
	return nil
}

// outputResult writes result to the command's stdout in the selected format.
// Encoding failures are reported through outputError so JSON mode still
// emits an envelope.
func outputResult(cmd *cobra.Command, result CLIResult) error {
	w := cmd.OutOrStdout()
	if flagFormat == "text" {
		return outputResultText(w, result)
	}
	if err := encodeJSON(w, result); err != nil {
		return outputError(cmd, result.Command, fmt.Errorf("encoding result: %w", err))
	}
	return nil
}

// outputError writes an error in the selected format and returns it so RunE
// can propagate it to Cobra. In JSON mode the error is written to stdout as a
// CLIResult envelope. In text mode it goes to stderr.
func outputError(cmd *cobra.Command, command string, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
		return err
	}
	_ = encodeJSON(cmd.OutOrStdout(), CLIResult{
		Command: command,
		Error:   err.Error(),
	})
	return err
}

// encodeJSON marshals v fully before writing, so a failed encode leaves w
// untouched.
func encodeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// parseSideArg parses a positional side length. Any float is accepted,
// including zero and negative values; pass negatives after "--".
func parseSideArg(value, name string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a number", name, value)
	}
	return f, nil
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
