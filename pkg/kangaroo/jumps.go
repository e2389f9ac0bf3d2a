package kangaroo

import (
	"fmt"
	"math/big"

	"github.com/mahdiidarabi/ecdlp-kangaroo/pkg/curve"
)

// MaxHopModulo is the largest supported jump table.
const MaxHopModulo = 256

// JumpTable holds the H precomputed jumps 2^i·G and their scalars 2^i.
// It is built once and shared read-only by every walker of every round.
type JumpTable struct {
	curve  *curve.Curve
	points []curve.Point
	steps  []*big.Int
	h      *big.Int
}

// NewJumpTable precomputes jumps[0] = G and jumps[i] = 2·jumps[i−1]
// for i < h.
func NewJumpTable(c *curve.Curve, h int) (*JumpTable, error) {
	if h < 1 || h > MaxHopModulo {
		return nil, fmt.Errorf("%w: hop modulo must be in [1, %d], got %d", ErrInvalidConfig, MaxHopModulo, h)
	}

	t := &JumpTable{
		curve:  c,
		points: make([]curve.Point, h),
		steps:  make([]*big.Int, h),
		h:      big.NewInt(int64(h)),
	}
	t.points[0] = c.G
	t.steps[0] = big.NewInt(1)
	for i := 1; i < h; i++ {
		t.points[i] = c.Double(t.points[i-1])
		t.steps[i] = new(big.Int).Lsh(t.steps[i-1], 1)
	}
	return t, nil
}

// Len returns H.
func (t *JumpTable) Len() int {
	return len(t.points)
}

// Index returns the jump index for a walker at x-coordinate x: x mod H.
func (t *JumpTable) Index(x *big.Int) int {
	return int(new(big.Int).Mod(x, t.h).Int64())
}

// Jump returns the i-th jump point and its scalar. The returned values
// must not be modified.
func (t *JumpTable) Jump(i int) (curve.Point, *big.Int) {
	return t.points[i], t.steps[i]
}

// Hop moves w by one jump. The identity has no x-coordinate and takes
// jump 0.
func (t *JumpTable) Hop(w *Walker) {
	i := 0
	if !w.Point.IsIdentity() {
		i = t.Index(w.Point.X)
	}
	w.Point = t.curve.Add(w.Point, t.points[i])
	w.Offset.Add(w.Offset, t.steps[i])
}
