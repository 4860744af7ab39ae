package selection

import (
	"fmt"

	"github.com/wippyai/simd-testgen/errors"
	"github.com/wippyai/simd-testgen/lane"
	"github.com/wippyai/simd-testgen/wast"
)

const (
	DefaultLimit    = 15
	SaturatingLimit = 12
)

// Policy bounds the triples kept for one operation.
type Policy interface {
	Select(triples []wast.Triple, op string) []wast.Triple
}

// Prefix keeps the first Limit triples in source order.
type Prefix struct {
	Limit int
}

func (p Prefix) Select(triples []wast.Triple, _ string) []wast.Triple {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	return append([]wast.Triple(nil), triples[:min(limit, len(triples))]...)
}

// Auto routes the saturating add/sub operations to Saturating and
// everything else to Default.
type Auto struct {
	Default    Policy
	Saturating Policy
}

func (a Auto) Select(triples []wast.Triple, op string) []wast.Triple {
	if IsSaturatingOp(op) {
		return a.Saturating.Select(triples, op)
	}
	return a.Default.Select(triples, op)
}

// IsSaturatingOp reports whether op is one of add_sat_s, add_sat_u,
// sub_sat_s, sub_sat_u.
func IsSaturatingOp(op string) bool {
	switch op {
	case "add_sat_s", "add_sat_u", "sub_sat_s", "sub_sat_u":
		return true
	}
	return false
}

// Names lists the policies ForName understands.
var Names = []string{"prefix", "saturating", "auto"}

// ForName builds a named policy. A limit of 0 keeps each policy's default.
func ForName(name string, limit int, shape lane.Shape) (Policy, error) {
	if limit < 0 {
		return nil, errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("negative selection limit %d", limit))
	}
	switch name {
	case "", "prefix":
		return Prefix{Limit: limit}, nil
	case "saturating":
		return Saturating{Limit: limit, Bits: shape.Bits}, nil
	case "auto":
		return Auto{
			Default:    Prefix{Limit: limit},
			Saturating: Saturating{Limit: limit, Bits: shape.Bits},
		}, nil
	}
	return nil, errors.New(errors.PhaseConfig, errors.KindUnsupported).
		Value(name).
		Detail("unknown selection policy %q (want prefix, saturating or auto)", name).
		Build()
}

// Result is the bounded view of a catalog that the emitter renders.
type Result struct {
	selected  map[string][]wast.Triple
	available map[string]int
	Shape     lane.Shape
	Ops       []string
}

// Apply runs p over every operation of cat, keeping catalog order.
func Apply(cat *wast.Catalog, p Policy) *Result {
	r := &Result{
		Shape:     cat.Shape,
		Ops:       cat.Operations(),
		selected:  make(map[string][]wast.Triple),
		available: make(map[string]int),
	}
	for _, op := range r.Ops {
		all := cat.Tests(op)
		r.available[op] = len(all)
		r.selected[op] = p.Select(all, op)
	}
	return r
}

// Tests returns the selected triples of op.
func (r *Result) Tests(op string) []wast.Triple {
	return r.selected[op]
}

// Available returns how many triples the catalog held for op.
func (r *Result) Available(op string) int {
	return r.available[op]
}

// Total returns the number of selected triples.
func (r *Result) Total() int {
	n := 0
	for _, t := range r.selected {
		n += len(t)
	}
	return n
}
