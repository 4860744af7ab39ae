package emit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/simd-testgen/errors"
	"github.com/wippyai/simd-testgen/lane"
)

// conversion names the signed source type and the method that reinterprets
// it as the unsigned type of the same width.
type conversion struct {
	signed string
	method string
}

// Dialect is the target test syntax. Its conversion table is fixed at
// construction.
type Dialect struct {
	conv map[int]conversion
	name string
}

// MoonBit returns the dialect of the MoonBit SIMD test suite. MoonBit has
// no Int8, so negative 8-bit lanes go through Int.
func MoonBit() Dialect {
	return Dialect{
		name: "moonbit",
		conv: map[int]conversion{
			8:  {"Int", "to_byte"},
			16: {"Int16", "reinterpret_as_uint16"},
			32: {"Int", "reinterpret_as_uint"},
			64: {"Int64", "reinterpret_as_uint64"},
		},
	}
}

func (d Dialect) Name() string {
	return d.name
}

func (d Dialect) lookup(bits int) (conversion, error) {
	c, ok := d.conv[bits]
	if !ok {
		return conversion{}, errors.Unsupported(errors.PhaseConfig, fmt.Sprintf("%s: bit width %d", d.name, bits))
	}
	return c, nil
}

// RenderLiteral renders one lane value. Non-negative values are plain
// decimals; negative values are reinterpreted through the signed type of
// the lane width, e.g. (-1 : Int16).reinterpret_as_uint16().
func (d Dialect) RenderLiteral(v int64, bits int) (string, error) {
	c, err := d.lookup(bits)
	if err != nil {
		return "", err
	}
	if v >= 0 {
		return strconv.FormatInt(v, 10), nil
	}
	return fmt.Sprintf("(%d : %s).%s()", v, c.signed, c.method), nil
}

// RenderVector renders elem::const_(lanes...).
func (d Dialect) RenderVector(shape lane.Shape, v lane.Vector) (string, error) {
	parts := make([]string, len(v))
	for i, l := range v {
		s, err := d.RenderLiteral(l, shape.Bits)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return shape.Elem + "::const_(" + strings.Join(parts, ", ") + ")", nil
}
