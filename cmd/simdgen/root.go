package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	simdtestgen "github.com/wippyai/simd-testgen"
	"github.com/wippyai/simd-testgen/lane"
	"github.com/wippyai/simd-testgen/selection"
)

type options struct {
	policy      string
	output      string
	max         int
	verbose     bool
	interactive bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "simdgen <wast_file> <vector_type> <op1,op2,...>",
		Short: "Generate MoonBit tests from WebAssembly SIMD assertions",
		Long: "Scans a .wast file for assert_return assertions that invoke the given\n" +
			"binary operations on one vector shape and prints them as MoonBit tests.\n\n" +
			"Supported vector types: " + strings.Join(lane.DefaultTable().Tags(), ", "),
		Args:          cobra.ExactArgs(3),
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if opts.verbose {
				simdtestgen.SetLogger(newLogger(stderr))
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGeneric(cmd, args, opts, stdout, stderr)
		},
	}
	// stdout carries generated code only.
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.IntVar(&opts.max, "max", 0, fmt.Sprintf("maximum tests per operation (0 = policy default, %d for prefix)", selection.DefaultLimit))
	flags.StringVar(&opts.policy, "policy", "prefix", "selection policy: "+strings.Join(selection.Names, ", "))
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "browse the extracted tests in a terminal UI")

	pflags := cmd.PersistentFlags()
	pflags.StringVarP(&opts.output, "output", "o", "", "write generated code to file instead of stdout")
	pflags.BoolVarP(&opts.verbose, "verbose", "v", false, "log scanner decisions to stderr")

	cmd.AddCommand(newSatCmd(opts, stdout, stderr), newBatchCmd(stderr))
	return cmd
}

func runGeneric(cmd *cobra.Command, args []string, opts *options, stdout, stderr io.Writer) error {
	path, tag := args[0], args[1]

	shape, err := lane.DefaultTable().Lookup(tag)
	if err != nil {
		return err
	}
	ops := parseOps(args[2])
	if len(ops) == 0 {
		return fmt.Errorf("no operations in %q", args[2])
	}
	policy, err := selection.ForName(opts.policy, opts.max, shape)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	out, err := simdtestgen.GenerateFile(path, simdtestgen.Job{
		Shape:  shape,
		Ops:    ops,
		Policy: policy,
	})
	if err != nil {
		return err
	}

	if opts.interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode needs a terminal on stdout")
		}
		return runInteractive(path, shape, out)
	}

	for _, op := range out.Report.Ops {
		fmt.Fprintf(stderr, "// %s: %d tests found\n", op.Name, op.Found)
	}
	warnTruncated(stderr, out)
	return writeOutput(stdout, opts.output, out.Code)
}

// parseOps splits a comma-separated operation list, dropping blanks and
// repeats.
func parseOps(s string) []string {
	ops := lo.Map(strings.Split(s, ","), func(op string, _ int) string {
		return strings.TrimSpace(op)
	})
	return lo.Uniq(lo.Compact(ops))
}

func warnTruncated(w io.Writer, out *simdtestgen.Output) {
	if out.Report.Truncated > 0 {
		fmt.Fprintf(w, "// warning: %d unterminated form(s) at end of input\n", out.Report.Truncated)
	}
}

func writeOutput(stdout io.Writer, path, code string) error {
	if path == "" {
		_, err := io.WriteString(stdout, code)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func newLogger(w io.Writer) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core, zap.Development())
}
