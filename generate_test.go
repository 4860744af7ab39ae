package simdtestgen

import (
	stderrors "errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/simd-testgen/errors"
	"github.com/wippyai/simd-testgen/lane"
	"github.com/wippyai/simd-testgen/selection"
	"github.com/wippyai/simd-testgen/wast"
)

var (
	fixture = filepath.Join("wast", "testdata", "simd_i16x8_sat_arith.wast")
	satOps  = []string{"add_sat_s", "add_sat_u", "sub_sat_s", "sub_sat_u"}
)

func i16x8(t *testing.T) lane.Shape {
	t.Helper()
	shape, err := lane.DefaultTable().Lookup("i16x8")
	require.NoError(t, err)
	return shape
}

func TestGenerateFile_Prefix(t *testing.T) {
	out, err := GenerateFile(fixture, Job{Shape: i16x8(t), Ops: satOps})
	require.NoError(t, err)

	require.Equal(t, 14, out.Report.Emitted)
	require.Zero(t, out.Report.Truncated)

	want := map[string]int{"add_sat_s": 8, "add_sat_u": 3, "sub_sat_s": 2, "sub_sat_u": 1}
	for op, n := range want {
		r, ok := out.Report.Op(op)
		require.True(t, ok, op)
		require.Equal(t, n, r.Found, op)
		require.Equal(t, n, r.Selected, op)
		require.Len(t, out.Blocks[op], n, op)
	}

	addS, _ := out.Report.Op("add_sat_s")
	require.Equal(t, map[wast.SkipReason]int{wast.SkipCrossWidth: 1, wast.SkipBadConstant: 1}, addS.Skipped)

	require.True(t, strings.HasPrefix(out.Code, "// i16x8 tests\n\n// i16x8.add_sat_s tests\n\n"))
	require.Contains(t, out.Code, `test "i16x8_sub_sat_u_14"`)
	require.NotContains(t, out.Code, "neg")
}

func TestGenerateFile_Saturating(t *testing.T) {
	shape := i16x8(t)
	out, err := GenerateFile(fixture, Job{
		Shape:         shape,
		Ops:           satOps,
		Policy:        selection.Saturating{Limit: selection.SaturatingLimit, Bits: shape.Bits},
		Title:         "i16x8 saturating arithmetic tests",
		EmptySections: true,
	})
	require.NoError(t, err)

	addS, _ := out.Report.Op("add_sat_s")
	require.Equal(t, 8, addS.Found)
	require.Equal(t, 6, addS.Selected)
	require.Equal(t, 12, out.Report.Emitted)
	require.True(t, strings.HasPrefix(out.Code, "// i16x8 saturating arithmetic tests\n\n"))
}

// Blocks carry the same numbering as the full output.
func TestGenerate_BlocksMatchCode(t *testing.T) {
	out, err := GenerateFile(fixture, Job{Shape: i16x8(t), Ops: satOps})
	require.NoError(t, err)

	for _, op := range satOps {
		for _, b := range out.Blocks[op] {
			require.Contains(t, out.Code, b)
		}
	}
	require.True(t, strings.HasSuffix(out.Code, out.Blocks["sub_sat_u"][0]))
}

func TestGenerate_MinimalExample(t *testing.T) {
	src := `(assert_return (invoke "i16x8.add_sat_s" (v128.const i16x8 32767 0 0 0 0 0 0 0) (v128.const i16x8 1 0 0 0 0 0 0 0)) (v128.const i16x8 32767 0 0 0 0 0 0 0))`
	out, err := Generate(src, Job{Shape: i16x8(t), Ops: []string{"add_sat_s"}, Policy: selection.Prefix{Limit: 15}})
	require.NoError(t, err)
	require.Equal(t, 1, out.Report.Emitted)
	require.Contains(t, out.Code, "let v1 = I16x8::const_(32767, 0, 0, 0, 0, 0, 0, 0)")
	require.Contains(t, out.Code, "assert_eq(I16x8::add_sat_s(v1, v2), expected)")
}

func TestGenerate_Truncated(t *testing.T) {
	src := `(assert_return (invoke "i16x8.add_sat_s" (v128.const i16x8 1 1 1 1 1 1 1 1) (v128.const i16x8 1 1 1 1 1 1 1 1)) (v128.const i16x8 2 2 2 2 2 2 2 2))
(assert_return (invoke "i16x8.add_sat_s" (v128.const i16x8 1 1 1 1 1 1 1 1)`
	out, err := Generate(src, Job{Shape: i16x8(t), Ops: []string{"add_sat_s"}})
	require.NoError(t, err)
	require.Equal(t, 1, out.Report.Truncated)
	require.Equal(t, 1, out.Report.Emitted)
}

func TestGenerate_NoOps(t *testing.T) {
	_, err := Generate("", Job{Shape: i16x8(t)})
	require.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindInvalidInput}))
}

func TestGenerate_UnsupportedWidth(t *testing.T) {
	odd := lane.Shape{Tag: "i128x1", Elem: "I128x1", Lanes: 1, Bits: 128}
	_, err := Generate("", Job{Shape: odd, Ops: []string{"add"}})
	require.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindUnsupported}))
}

func TestGenerateFile_Missing(t *testing.T) {
	_, err := GenerateFile(filepath.Join(t.TempDir(), "missing.wast"), Job{Shape: i16x8(t), Ops: satOps})
	require.Error(t, err)
	require.Contains(t, err.Error(), "read file")
}

func TestGenerate_LogsSummary(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })

	_, err := GenerateFile(fixture, Job{Shape: i16x8(t), Ops: satOps})
	require.NoError(t, err)

	entries := logs.FilterMessage("generated tests").All()
	require.Len(t, entries, 1)
	require.Equal(t, int64(14), entries[0].ContextMap()["emitted"])
}
