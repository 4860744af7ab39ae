package wast

import (
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/simd-testgen/errors"
	"github.com/wippyai/simd-testgen/lane"
	"github.com/wippyai/simd-testgen/wast/internal/sexp"
	"github.com/wippyai/simd-testgen/wast/internal/token"
)

// Triple is one binary test case: op(A, B) == Expected.
type Triple struct {
	A        lane.Vector
	B        lane.Vector
	Expected lane.Vector
	Line     int
}

// SkipReason says why a matching assertion produced no triple.
type SkipReason string

const (
	SkipCrossWidth  SkipReason = "cross_width"
	SkipArity       SkipReason = "arity"
	SkipBadConstant SkipReason = "bad_constant"
)

// Catalog holds the triples found for each configured operation, in
// source order. It is read-only once Scan returns.
type Catalog struct {
	tests       map[string][]Triple
	skipped     map[string]map[SkipReason]int
	Shape       lane.Shape
	ops         []string
	Diagnostics []*errors.Error
	Truncated   int
}

// Operations returns the configured operations in configuration order.
func (c *Catalog) Operations() []string {
	return append([]string(nil), c.ops...)
}

// Tests returns the triples found for op.
func (c *Catalog) Tests(op string) []Triple {
	return append([]Triple(nil), c.tests[op]...)
}

// Skipped returns per-reason discard counts for op.
func (c *Catalog) Skipped(op string) map[SkipReason]int {
	out := make(map[SkipReason]int, len(c.skipped[op]))
	for r, n := range c.skipped[op] {
		out[r] = n
	}
	return out
}

// Total returns the number of triples across all operations.
func (c *Catalog) Total() int {
	n := 0
	for _, t := range c.tests {
		n += len(t)
	}
	return n
}

func (c *Catalog) skip(op string, r SkipReason) {
	m, ok := c.skipped[op]
	if !ok {
		m = make(map[SkipReason]int)
		c.skipped[op] = m
	}
	m[r]++
}

type Option func(*Scanner)

// WithLogger overrides the package logger for one scanner.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scanner) {
		s.log = l
	}
}

// Scanner recognizes assert_return forms that invoke one of a set of
// binary operations on a single lane shape.
type Scanner struct {
	log    *zap.Logger
	wanted map[string]bool
	shape  lane.Shape
	ops    []string
	others []string
}

// NewScanner creates a scanner for ops (names without the shape prefix,
// e.g. "add_sat_s"). Duplicate names are ignored.
func NewScanner(shape lane.Shape, ops []string, opts ...Option) *Scanner {
	s := &Scanner{
		shape:  shape,
		wanted: make(map[string]bool, len(ops)),
		others: lane.OtherTags(shape.Tag),
	}
	for _, op := range ops {
		if op == "" || s.wanted[op] {
			continue
		}
		s.wanted[op] = true
		s.ops = append(s.ops, op)
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = Logger()
	}
	return s
}

// Scan parses source and collects triples. Problems local to one
// assertion discard that assertion only; an unterminated trailing form is
// recorded in Truncated and Diagnostics. Scan never fails.
func (s *Scanner) Scan(source string) *Catalog {
	cat := &Catalog{
		Shape:   s.shape,
		ops:     append([]string(nil), s.ops...),
		tests:   make(map[string][]Triple, len(s.ops)),
		skipped: make(map[string]map[SkipReason]int),
	}

	forms, diags := sexp.ParseString(source)
	for _, d := range diags {
		if d.Kind == errors.KindTruncated {
			cat.Truncated++
		}
		s.log.Warn("wast parse problem", zap.Error(d))
	}
	cat.Diagnostics = diags

	for _, f := range forms {
		if f.Head() != "assert_return" {
			continue
		}
		s.scanAssertion(cat, f)
	}
	return cat
}

func (s *Scanner) scanAssertion(cat *Catalog, n *sexp.Node) {
	op, ok := s.invokedOp(n)
	if !ok {
		return
	}
	log := s.log.With(zap.String("op", op), zap.Int("line", n.Line))

	if tag, mixed := s.mentionsOtherShape(n); mixed {
		cat.skip(op, SkipCrossWidth)
		log.Debug("skip assertion", zap.String("reason", string(SkipCrossWidth)), zap.String("tag", tag))
		return
	}

	consts := n.Find(vectorConst)
	if len(consts) != 3 {
		cat.skip(op, SkipArity)
		log.Debug("skip assertion", zap.String("reason", string(SkipArity)), zap.Int("constants", len(consts)))
		return
	}

	var vecs [3]lane.Vector
	for i, c := range consts {
		v, err := vectorFromNode(c, s.shape)
		if err != nil {
			cat.skip(op, SkipBadConstant)
			log.Debug("skip assertion", zap.String("reason", string(SkipBadConstant)), zap.Error(err))
			return
		}
		vecs[i] = v
	}

	cat.tests[op] = append(cat.tests[op], Triple{A: vecs[0], B: vecs[1], Expected: vecs[2], Line: n.Line})
}

// invokedOp returns the operation of (assert_return (invoke [$id] "<tag>.<op>" ...) ...)
// when op is one of the configured operations.
func (s *Scanner) invokedOp(n *sexp.Node) (string, bool) {
	args := n.Args()
	if len(args) == 0 || args[0].Head() != "invoke" {
		return "", false
	}
	inv := args[0].Args()
	if len(inv) > 0 && inv[0].IsAtom(token.Keyword) && strings.HasPrefix(inv[0].Token.Value, "$") {
		inv = inv[1:]
	}
	if len(inv) == 0 || !inv[0].IsAtom(token.String) {
		return "", false
	}
	op, ok := strings.CutPrefix(inv[0].Token.Value, s.shape.Tag+".")
	if !ok || !s.wanted[op] {
		return "", false
	}
	return op, true
}

func (s *Scanner) mentionsOtherShape(n *sexp.Node) (string, bool) {
	var found string
	n.Walk(func(c *sexp.Node) bool {
		if found != "" {
			return false
		}
		if c.IsList() {
			return true
		}
		for _, tag := range s.others {
			if strings.Contains(c.Token.Value, tag) {
				found = tag
				return false
			}
		}
		return true
	})
	return found, found != ""
}

// Scan is shorthand for NewScanner(shape, ops, opts...).Scan(source).
func Scan(source string, shape lane.Shape, ops []string, opts ...Option) *Catalog {
	return NewScanner(shape, ops, opts...).Scan(source)
}
