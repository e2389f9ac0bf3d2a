package kangaroo

import (
	"fmt"
	"math/big"

	"github.com/mahdiidarabi/ecdlp-kangaroo/pkg/curve"
)

// Target is the point whose discrete logarithm is sought, together with
// the inclusive exponent range [Start, End] known to contain it.
type Target struct {
	Point curve.Point
	Start *big.Int
	End   *big.Int
	Bits  int
}

// NewTarget parses a compressed public key and pairs it with a range.
//
// Args:
//   - c: curve the key lives on
//   - pubHex: 33-byte compressed key, hex encoded
//   - start, end: inclusive exponent bounds, start < end < N
//
// Returns:
//   - the Target, or an error wrapping curve.ErrInvalidEncoding,
//     curve.ErrNotOnCurve or ErrInvalidRange
func NewTarget(c *curve.Curve, pubHex string, start, end *big.Int) (Target, error) {
	p, err := c.ParseCompressedHex(pubHex)
	if err != nil {
		return Target{}, fmt.Errorf("failed to parse target public key: %w", err)
	}
	return NewTargetPoint(c, p, start, end)
}

// NewTargetPoint is NewTarget for an already decoded point.
func NewTargetPoint(c *curve.Curve, p curve.Point, start, end *big.Int) (Target, error) {
	if p.IsIdentity() || !c.IsOnCurve(p) {
		return Target{}, fmt.Errorf("target: %w", curve.ErrNotOnCurve)
	}
	if start == nil || end == nil {
		return Target{}, fmt.Errorf("%w: missing bound", ErrInvalidRange)
	}
	if start.Sign() < 0 {
		return Target{}, fmt.Errorf("%w: start is negative", ErrInvalidRange)
	}
	if start.Cmp(end) >= 0 {
		return Target{}, fmt.Errorf("%w: start %s is not below end %s", ErrInvalidRange, start.Text(16), end.Text(16))
	}
	if end.Cmp(c.N) >= 0 {
		return Target{}, fmt.Errorf("%w: end exceeds the group order", ErrInvalidRange)
	}
	return Target{
		Point: p,
		Start: new(big.Int).Set(start),
		End:   new(big.Int).Set(end),
		Bits:  end.BitLen(),
	}, nil
}

// TargetForBits builds the target for a "bits"-bit puzzle, whose key lies
// in [2^(bits−1), 2^bits − 1].
func TargetForBits(c *curve.Curve, pubHex string, bits int) (Target, error) {
	if bits < 2 {
		return Target{}, fmt.Errorf("%w: puzzle must have at least 2 bits, got %d", ErrInvalidRange, bits)
	}
	start := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	end := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	end.Sub(end, big.NewInt(1))
	return NewTarget(c, pubHex, start, end)
}

// RangeLength returns End − Start, the span anchors are drawn from.
func (t Target) RangeLength() *big.Int {
	return new(big.Int).Sub(t.End, t.Start)
}
