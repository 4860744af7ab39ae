package emit

import (
	"fmt"
	"strings"

	"github.com/wippyai/simd-testgen/lane"
	"github.com/wippyai/simd-testgen/selection"
	"github.com/wippyai/simd-testgen/wast"
)

type Option func(*Emitter)

// WithTitle replaces the "<tag> tests" file header.
func WithTitle(title string) Option {
	return func(e *Emitter) {
		e.title = title
	}
}

// WithDialect selects the target syntax. The default is MoonBit.
func WithDialect(d Dialect) Option {
	return func(e *Emitter) {
		e.dialect = d
	}
}

// WithEmptySections keeps the "<tag>.<op> tests" header for operations
// that have no selected triples.
func WithEmptySections() Option {
	return func(e *Emitter) {
		e.emptySections = true
	}
}

// Emitter renders selected triples as named test blocks.
type Emitter struct {
	dialect       Dialect
	title         string
	shape         lane.Shape
	count         int
	emptySections bool
}

func New(shape lane.Shape, opts ...Option) *Emitter {
	e := &Emitter{
		shape:   shape,
		dialect: MoonBit(),
		title:   shape.Tag + " tests",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Emit renders every operation of r in order. Test names use one counter
// across the whole output, starting at 1.
func (e *Emitter) Emit(r *selection.Result) (string, error) {
	if _, err := e.dialect.lookup(e.shape.Bits); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// %s\n\n", e.title)

	n := 0
	for _, op := range r.Ops {
		tests := r.Tests(op)
		if len(tests) == 0 && !e.emptySections {
			continue
		}
		fmt.Fprintf(&b, "// %s.%s tests\n\n", e.shape.Tag, op)
		for _, t := range tests {
			n++
			if err := e.writeBlock(&b, op, n, t); err != nil {
				return "", err
			}
		}
	}

	e.count = n
	return b.String(), nil
}

// Block renders a single test block numbered n.
func (e *Emitter) Block(op string, n int, t wast.Triple) (string, error) {
	var b strings.Builder
	if err := e.writeBlock(&b, op, n, t); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Count returns how many blocks the last Emit wrote.
func (e *Emitter) Count() int {
	return e.count
}

func (e *Emitter) writeBlock(b *strings.Builder, op string, n int, t wast.Triple) error {
	var lits [3]string
	for i, v := range []lane.Vector{t.A, t.B, t.Expected} {
		s, err := e.dialect.RenderVector(e.shape, v)
		if err != nil {
			return err
		}
		lits[i] = s
	}

	b.WriteString("///|\n")
	fmt.Fprintf(b, "test %q {\n", fmt.Sprintf("%s_%s_%d", e.shape.Tag, op, n))
	fmt.Fprintf(b, "  let v1 = %s\n", lits[0])
	fmt.Fprintf(b, "  let v2 = %s\n", lits[1])
	fmt.Fprintf(b, "  let expected = %s\n", lits[2])
	fmt.Fprintf(b, "  assert_eq(%s::%s(v1, v2), expected)\n", e.shape.Elem, op)
	b.WriteString("}\n\n")
	return nil
}
