package wast

import (
	"strings"

	"github.com/wippyai/simd-testgen/errors"
	"github.com/wippyai/simd-testgen/lane"
	"github.com/wippyai/simd-testgen/wast/internal/sexp"
	"github.com/wippyai/simd-testgen/wast/internal/token"
)

const vectorConst = "v128.const"

// ParseVectorConst extracts the lanes of the first (v128.const <tag> ...)
// form in fragment. The tag must be shape's tag and exactly shape.Lanes
// integer lanes must remain once float specials are dropped.
func ParseVectorConst(fragment string, shape lane.Shape) (lane.Vector, error) {
	forms, diags := sexp.ParseString(fragment)
	if len(diags) > 0 {
		return nil, diags[0]
	}
	for _, f := range forms {
		if found := f.Find(vectorConst); len(found) > 0 {
			return vectorFromNode(found[0], shape)
		}
	}
	return nil, errors.NotFound(errors.PhaseExtract, "vector constant in", fragment)
}

func vectorFromNode(n *sexp.Node, shape lane.Shape) (lane.Vector, error) {
	args := n.Args()
	if len(args) == 0 || !args[0].IsAtom(token.Keyword) {
		return nil, errors.New(errors.PhaseExtract, errors.KindInvalidInput).
			Line(n.Line).
			Detail("%s without a lane shape", vectorConst).
			Build()
	}
	if tag := args[0].Token.Value; tag != shape.Tag {
		return nil, errors.New(errors.PhaseExtract, errors.KindInvalidInput).
			Line(n.Line).
			Value(tag).
			Detail("lane shape %s, want %s", tag, shape.Tag).
			Build()
	}

	lanes := make([]string, 0, shape.Lanes)
	for _, a := range args[1:] {
		if a.IsList() || isFloatSpecial(a.Token.Value) {
			continue
		}
		lanes = append(lanes, a.Token.Value)
	}
	if len(lanes) != shape.Lanes {
		e := errors.ArityMismatch(errors.PhaseExtract, shape.Tag+" lanes", shape.Lanes, len(lanes))
		e.Line = n.Line
		return nil, e
	}

	vec := make(lane.Vector, len(lanes))
	for i, l := range lanes {
		v, err := lane.ParseValue(l, shape.Bits)
		if err != nil {
			return nil, err
		}
		vec[i] = v
	}
	return vec, nil
}

func isFloatSpecial(v string) bool {
	v = strings.TrimLeft(v, "+-")
	return v == "inf" || v == "nan" || strings.HasPrefix(v, "nan:")
}
