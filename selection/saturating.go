package selection

import (
	"strings"

	"github.com/samber/lo"

	"github.com/wippyai/simd-testgen/lane"
	"github.com/wippyai/simd-testgen/wast"
)

// Saturating favors triples whose expected vector sits on a saturation
// boundary. The first three triples are always kept, then boundary hits in
// source order, then the middle and last triples of large sets while room
// remains.
type Saturating struct {
	Limit int
	Bits  int
}

const (
	leadingTriples = 3
	largeSet       = 20
)

func (s Saturating) Select(triples []wast.Triple, op string) []wast.Triple {
	limit := s.Limit
	if limit <= 0 {
		limit = SaturatingLimit
	}
	bits := s.Bits
	if bits == 0 {
		bits = 16
	}

	picked := make(map[int]bool)
	var order []int
	take := func(i int) {
		if picked[i] || len(order) >= limit {
			return
		}
		picked[i] = true
		order = append(order, i)
	}

	for i, n := 0, min(leadingTriples, len(triples)); i < n; i++ {
		take(i)
	}

	signed := strings.HasSuffix(op, "_s")
	for i, t := range triples {
		if len(order) >= limit {
			break
		}
		if hitsBoundary(t, bits, signed) {
			take(i)
		}
	}

	if len(triples) > largeSet {
		take(len(triples) / 2)
		take(len(triples) - 1)
	}

	return lo.Map(order, func(i int, _ int) wast.Triple { return triples[i] })
}

// hitsBoundary checks the expected lanes for the clamp values of a
// signed or unsigned saturating op. An all-ones unsigned lane shows up as
// 2^bits-1 when written in decimal and as -1 when written in hex.
func hitsBoundary(t wast.Triple, bits int, signed bool) bool {
	if signed {
		return t.Expected.Contains(lane.SignedMax(bits)) || t.Expected.Contains(lane.SignedMin(bits))
	}
	if t.Expected.Contains(int64(lane.UnsignedMax(bits))) || t.Expected.Contains(-1) {
		return true
	}
	positive := func(v int64) bool { return v > 0 }
	return t.Expected.Contains(0) && lo.SomeBy(t.A, positive) && lo.SomeBy(t.B, positive)
}
