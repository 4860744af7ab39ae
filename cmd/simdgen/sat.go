package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	simdtestgen "github.com/wippyai/simd-testgen"
	"github.com/wippyai/simd-testgen/lane"
	"github.com/wippyai/simd-testgen/selection"
)

var satOps = []string{"add_sat_s", "add_sat_u", "sub_sat_s", "sub_sat_u"}

func newSatCmd(opts *options, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "sat <wast_file>",
		Short: "Generate the i16x8 saturating arithmetic tests",
		Long: "Extracts i16x8 add_sat_s, add_sat_u, sub_sat_s and sub_sat_u tests,\n" +
			"keeping at most 12 per operation and favoring results that saturate.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			shape, err := lane.DefaultTable().Lookup("i16x8")
			if err != nil {
				return err
			}
			out, err := simdtestgen.GenerateFile(args[0], simdtestgen.Job{
				Shape:         shape,
				Ops:           satOps,
				Policy:        selection.Saturating{Limit: selection.SaturatingLimit, Bits: shape.Bits},
				Title:         shape.Tag + " saturating arithmetic tests",
				EmptySections: true,
			})
			if err != nil {
				return err
			}

			if err := writeOutput(stdout, opts.output, out.Code); err != nil {
				return err
			}
			fmt.Fprintf(stderr, "// Total tests generated: %d\n", out.Report.Emitted)
			for _, op := range out.Report.Ops {
				fmt.Fprintf(stderr, "// %s: %d tests available, %d selected\n", op.Name, op.Found, op.Selected)
			}
			warnTruncated(stderr, out)
			return nil
		},
	}
}
