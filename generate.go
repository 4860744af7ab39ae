package simdtestgen

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/simd-testgen/emit"
	"github.com/wippyai/simd-testgen/errors"
	"github.com/wippyai/simd-testgen/lane"
	"github.com/wippyai/simd-testgen/selection"
	"github.com/wippyai/simd-testgen/wast"
)

// Job describes one generation run over a single source.
type Job struct {
	Policy        selection.Policy
	Title         string
	Ops           []string
	Shape         lane.Shape
	EmptySections bool
}

// OpReport summarizes one operation of a run.
type OpReport struct {
	Skipped  map[wast.SkipReason]int
	Name     string
	Found    int
	Selected int
}

// Report summarizes a run for diagnostics.
type Report struct {
	Ops       []OpReport
	Emitted   int
	Truncated int
}

// Op returns the report of the named operation.
func (r *Report) Op(name string) (OpReport, bool) {
	for _, op := range r.Ops {
		if op.Name == name {
			return op, true
		}
	}
	return OpReport{}, false
}

// Output is the result of Generate.
type Output struct {
	Catalog *wast.Catalog
	Result  *selection.Result

	// Blocks holds the rendered test blocks per operation, numbered as in
	// Code.
	Blocks map[string][]string
	Code   string
	Report Report
}

// Generate scans source, applies the job's policy to every operation and
// renders the selection. A job without a policy uses selection.Prefix with
// its default limit.
func Generate(source string, job Job) (*Output, error) {
	if len(job.Ops) == 0 {
		return nil, errors.InvalidInput(errors.PhaseConfig, "no operations given")
	}
	policy := job.Policy
	if policy == nil {
		policy = selection.Prefix{}
	}

	cat := wast.Scan(source, job.Shape, job.Ops)
	res := selection.Apply(cat, policy)

	opts := []emit.Option{}
	if job.Title != "" {
		opts = append(opts, emit.WithTitle(job.Title))
	}
	if job.EmptySections {
		opts = append(opts, emit.WithEmptySections())
	}
	em := emit.New(job.Shape, opts...)
	code, err := em.Emit(res)
	if err != nil {
		return nil, err
	}

	out := &Output{
		Catalog: cat,
		Result:  res,
		Code:    code,
		Blocks:  make(map[string][]string, len(res.Ops)),
		Report:  Report{Emitted: em.Count(), Truncated: cat.Truncated},
	}

	n := 0
	for _, op := range res.Ops {
		for _, t := range res.Tests(op) {
			n++
			block, err := em.Block(op, n, t)
			if err != nil {
				return nil, err
			}
			out.Blocks[op] = append(out.Blocks[op], block)
		}
		out.Report.Ops = append(out.Report.Ops, OpReport{
			Name:     op,
			Found:    res.Available(op),
			Selected: len(res.Tests(op)),
			Skipped:  cat.Skipped(op),
		})
	}

	Logger().Info("generated tests",
		zap.String("shape", job.Shape.Tag),
		zap.Int("found", cat.Total()),
		zap.Int("emitted", out.Report.Emitted),
		zap.Int("truncated", cat.Truncated))
	return out, nil
}

// GenerateFile reads path and runs Generate over its contents.
func GenerateFile(path string, job Job) (*Output, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	return Generate(string(data), job)
}
