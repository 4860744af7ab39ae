package lane

import (
	"fmt"
	"strings"

	"github.com/wippyai/simd-testgen/errors"
)

// VectorBits is the width of a v128 value.
const VectorBits = 128

// Shape describes one integer lane interpretation of a v128 value.
type Shape struct {
	Tag   string // wast lane tag, e.g. "i16x8"
	Elem  string // target element type, e.g. "I16x8"
	Lanes int
	Bits  int
}

// String returns the wast tag.
func (s Shape) String() string {
	return s.Tag
}

// SignedMin is the smallest signed lane value.
func (s Shape) SignedMin() int64 {
	return SignedMin(s.Bits)
}

// SignedMax is the largest signed lane value.
func (s Shape) SignedMax() int64 {
	return SignedMax(s.Bits)
}

// UnsignedMax is the largest unsigned lane value.
func (s Shape) UnsignedMax() uint64 {
	return UnsignedMax(s.Bits)
}

func (s Shape) validate() error {
	if s.Tag == "" || s.Elem == "" {
		return errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("shape %+v: empty tag or element type", s))
	}
	if !supportedBits(s.Bits) {
		return errors.Unsupported(errors.PhaseConfig, fmt.Sprintf("shape %s: bit width %d", s.Tag, s.Bits))
	}
	if s.Lanes*s.Bits != VectorBits {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path(s.Tag).
			Detail("%d lanes x %d bits is not %d bits", s.Lanes, s.Bits, VectorBits).
			Build()
	}
	return nil
}

// Table is an immutable lookup of shapes keyed by tag.
type Table struct {
	shapes map[string]Shape
	order  []string
}

// NewTable validates the shapes and builds a table. Tags must be unique.
func NewTable(shapes ...Shape) (*Table, error) {
	t := &Table{shapes: make(map[string]Shape, len(shapes))}
	for _, s := range shapes {
		if err := s.validate(); err != nil {
			return nil, err
		}
		if _, dup := t.shapes[s.Tag]; dup {
			return nil, errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("duplicate shape %q", s.Tag))
		}
		t.shapes[s.Tag] = s
		t.order = append(t.order, s.Tag)
	}
	return t, nil
}

// DefaultTable returns the integer shapes the MoonBit SIMD package defines.
func DefaultTable() *Table {
	t, err := NewTable(
		Shape{Tag: "i8x16", Elem: "I8x16", Lanes: 16, Bits: 8},
		Shape{Tag: "i16x8", Elem: "I16x8", Lanes: 8, Bits: 16},
		Shape{Tag: "i32x4", Elem: "I32x4", Lanes: 4, Bits: 32},
		Shape{Tag: "i64x2", Elem: "I64x2", Lanes: 2, Bits: 64},
	)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the shape for tag.
func (t *Table) Lookup(tag string) (Shape, error) {
	s, ok := t.shapes[tag]
	if !ok {
		return Shape{}, errors.New(errors.PhaseConfig, errors.KindUnsupported).
			Value(tag).
			Detail("unsupported vector type %q (supported: %s)", tag, strings.Join(t.order, ", ")).
			Build()
	}
	return s, nil
}

// Tags returns the supported tags in table order.
func (t *Table) Tags() []string {
	return append([]string(nil), t.order...)
}

// allTags lists every v128 lane tag that can appear in a wast file,
// including float shapes the table does not support.
var allTags = []string{"i8x16", "i16x8", "i32x4", "i64x2", "f32x4", "f64x2"}

// OtherTags returns every known lane tag except tag.
func OtherTags(tag string) []string {
	out := make([]string, 0, len(allTags))
	for _, t := range allTags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}
