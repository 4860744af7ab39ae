package lane

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/wippyai/simd-testgen/errors"
)

// Vector is an ordered list of lane values. Its length always equals the
// lane count of the shape it was parsed for.
type Vector []int64

// Equal reports whether v and o hold the same lanes.
func (v Vector) Equal(o Vector) bool {
	return slices.Equal(v, o)
}

// Contains reports whether any lane equals x.
func (v Vector) Contains(x int64) bool {
	return slices.Contains(v, x)
}

func supportedBits(bits int) bool {
	switch bits {
	case 8, 16, 32, 64:
		return true
	}
	return false
}

// SignedMin returns -2^(bits-1).
func SignedMin(bits int) int64 {
	return -1 << (bits - 1)
}

// SignedMax returns 2^(bits-1) - 1.
func SignedMax(bits int) int64 {
	return 1<<(bits-1) - 1
}

// UnsignedMax returns 2^bits - 1.
func UnsignedMax(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return 1<<bits - 1
}

// ParseValue converts a wast integer literal into a lane value of the given
// bit width.
//
// Underscores are ignored. Hex literals above the signed maximum are
// reinterpreted as two's complement negatives; "-0x" literals are the
// negated magnitude. Decimal literals keep their written value, so an
// unsigned-looking 65535 stays 65535 for 16-bit lanes. Only 64-bit decimals
// beyond MaxInt64 wrap, since they cannot be held otherwise.
func ParseValue(token string, bits int) (int64, error) {
	if !supportedBits(bits) {
		return 0, errors.Unsupported(errors.PhaseConfig, fmt.Sprintf("bit width %d", bits))
	}

	s := strings.ReplaceAll(strings.TrimSpace(token), "_", "")
	neg := false
	digits := s
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		digits = s[1:]
	case strings.HasPrefix(s, "+"):
		digits = s[1:]
	}

	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		mag, err := strconv.ParseUint(digits[2:], 16, 64)
		if err != nil {
			return 0, errors.InvalidNumeral(token, bits, err)
		}
		if neg {
			if mag > uint64(1)<<(bits-1) {
				return 0, errors.InvalidNumeral(token, bits, fmt.Errorf("magnitude %#x out of range", mag))
			}
			return -int64(mag), nil
		}
		if mag > UnsignedMax(bits) {
			return 0, errors.InvalidNumeral(token, bits, fmt.Errorf("magnitude %#x out of range", mag))
		}
		if mag > uint64(SignedMax(bits)) {
			if bits == 64 {
				return int64(mag), nil
			}
			return int64(mag) - 1<<bits, nil
		}
		return int64(mag), nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if bits == 64 && !neg {
			if u, uerr := strconv.ParseUint(digits, 10, 64); uerr == nil {
				return int64(u), nil
			}
		}
		return 0, errors.InvalidNumeral(token, bits, err)
	}
	if bits < 64 && (v < SignedMin(bits) || v > int64(UnsignedMax(bits))) {
		return 0, errors.InvalidNumeral(token, bits, fmt.Errorf("value %d out of range", v))
	}
	return v, nil
}
