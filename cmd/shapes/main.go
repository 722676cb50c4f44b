package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jward/shapes"
	"github.com/jward/shapes/internal/runtime"
	"github.com/jward/shapes/scripts"
)

var flagFormat string

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "shapes",
	Short:         "Geometric shape reports",
	Long:          "Shapes prints fixed-width reports for geometric shapes and runs Risor scripts against the shape library.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	// No Run: prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format: json|text")

	rootCmd.AddCommand(squareCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(runCmd)
}

var squareCmd = &cobra.Command{
	Use:   "square [side]",
	Short: "Report on a square",
	Long:  "Prints the name, side, perimeter, and area of a square. Without a side, reports the unit square.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSquare,
}

func runSquare(cmd *cobra.Command, args []string) error {
	sq := shapes.DefaultSquare()
	if len(args) > 0 {
		side, err := parseSideArg(args[0], "side")
		if err != nil {
			return outputError(cmd, "square", err)
		}
		sq = shapes.NewSquare(side)
	}
	return outputResult(cmd, CLIResult{
		Command: "square",
		Results: toCLIShape(sq),
	})
}

var compareCmd = &cobra.Command{
	Use:   "compare <side-a> <side-b>",
	Short: "Compare two squares by side",
	Long:  "Orders two squares by side length. Prints less, equal, greater, or unordered when either side is NaN.",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, err := parseSideArg(args[0], "side-a")
	if err != nil {
		return outputError(cmd, "compare", err)
	}
	b, err := parseSideArg(args[1], "side-b")
	if err != nil {
		return outputError(cmd, "compare", err)
	}

	left, right := shapes.NewSquare(a), shapes.NewSquare(b)
	return outputResult(cmd, CLIResult{
		Command: "compare",
		Results: CLIComparison{
			Left:     toCLIShape(left),
			Right:    toCLIShape(right),
			Ordering: ordering(left, right),
			Equal:    left.Equal(right),
		},
	})
}

var flagScriptsDir string

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run a Risor script with the shape host functions",
	Long: "Runs a Risor script from disk with square(), shape_report() and the other shape globals. " +
		"Without a path, runs the bundled demo. A relative script path is resolved against the working directory; " +
		"--scripts-dir only affects where import statements are resolved.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScript,
}

func init() {
	runCmd.Flags().StringVar(&flagScriptsDir, "scripts-dir", "", "directory for resolving script imports")
}

func runScript(cmd *cobra.Command, args []string) error {
	opts := []runtime.RuntimeOption{
		runtime.WithOutputWriter(cmd.OutOrStdout()),
		runtime.WithLogWriter(cmd.ErrOrStderr()),
	}

	var rt *runtime.Runtime
	path := scripts.Demo
	if len(args) > 0 {
		abs, err := resolveScriptPath(args[0])
		if err != nil {
			return err
		}
		path = abs
		rt = runtime.NewRuntime(flagScriptsDir, opts...)
	} else {
		rt = runtime.NewRuntime("", append(opts, runtime.WithRuntimeFS(scripts.FS))...)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := rt.RunScript(ctx, path, nil); err != nil {
		return fmt.Errorf("running %s: %w", path, err)
	}
	return nil
}

// resolveScriptPath converts a script argument to an absolute path relative
// to the working directory, so --scripts-dir never changes which file runs.
func resolveScriptPath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving script path %q: %w", path, err)
	}
	return abs, nil
}
