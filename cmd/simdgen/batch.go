package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	simdtestgen "github.com/wippyai/simd-testgen"
	"github.com/wippyai/simd-testgen/lane"
	"github.com/wippyai/simd-testgen/manifest"
)

func newBatchCmd(stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <manifest.yaml>",
		Short: "Run every job of a YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			table := lane.DefaultTable()
			for _, j := range m.Jobs {
				job, err := j.Build(table)
				if err != nil {
					return fmt.Errorf("job %s: %w", j.Name, err)
				}
				out, err := simdtestgen.GenerateFile(j.Input, job)
				if err != nil {
					return fmt.Errorf("job %s: %w", j.Name, err)
				}
				if err := writeOutput(nil, j.Output, out.Code); err != nil {
					return fmt.Errorf("job %s: %w", j.Name, err)
				}
				fmt.Fprintf(stderr, "// %s: %d tests written to %s\n", j.Name, out.Report.Emitted, j.Output)
				warnTruncated(stderr, out)
			}
			return nil
		},
	}
}
