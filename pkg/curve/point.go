package curve

import (
	"fmt"
	"math/big"
)

// Point is an affine curve point, or the identity when Inf is set.
// Coordinates are always reduced mod P. Points returned by this package
// never share big.Int storage with their inputs, so callers may treat
// them as immutable values.
type Point struct {
	X, Y *big.Int
	Inf  bool
}

// Identity returns the point at infinity.
func Identity() Point {
	return Point{Inf: true}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.Inf
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	if p.Inf || q.Inf {
		return p.Inf == q.Inf
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// String implements fmt.Stringer.
func (p Point) String() string {
	if p.Inf {
		return "(inf)"
	}
	return fmt.Sprintf("(%s, %s)", p.X.Text(16), p.Y.Text(16))
}

// Add returns p + q.
//
// Equal x-coordinates with different y (or a doubling at y = 0) give the
// identity. Equal points use the tangent slope 3x²/(2y), anything else
// uses the chord slope (qy−py)/(qx−px).
func (c *Curve) Add(p, q Point) Point {
	if p.Inf {
		return q.clone()
	}
	if q.Inf {
		return p.clone()
	}

	m := new(big.Int)
	if p.X.Cmp(q.X) == 0 {
		if p.Y.Cmp(q.Y) != 0 || p.Y.Sign() == 0 {
			return Identity()
		}
		// m = 3x² / 2y
		m.Mul(p.X, p.X)
		m.Mul(m, big.NewInt(3))
		den := new(big.Int).Lsh(p.Y, 1)
		m.Mul(m, c.inverse(den))
	} else {
		// m = (qy - py) / (qx - px)
		m.Sub(q.Y, p.Y)
		den := new(big.Int).Sub(q.X, p.X)
		m.Mul(m, c.inverse(den))
	}
	m.Mod(m, c.P)

	// x = m² - px - qx
	x := new(big.Int).Mul(m, m)
	x.Sub(x, p.X)
	x.Sub(x, q.X)
	x.Mod(x, c.P)

	// y = m(px - x) - py
	y := new(big.Int).Sub(p.X, x)
	y.Mul(y, m)
	y.Sub(y, p.Y)
	y.Mod(y, c.P)

	return Point{X: x, Y: y}
}

// Double returns 2p.
func (c *Curve) Double(p Point) Point {
	return c.Add(p, p)
}

// Negate returns -p = (x, p - y).
func (c *Curve) Negate(p Point) Point {
	if p.Inf {
		return Identity()
	}
	y := new(big.Int).Sub(c.P, p.Y)
	y.Mod(y, c.P)
	return Point{X: new(big.Int).Set(p.X), Y: y}
}

// ScalarMult returns k·p using double-and-add, most significant bit
// first. k must be non-negative; k = 0 gives the identity.
func (c *Curve) ScalarMult(k *big.Int, p Point) Point {
	if k.Sign() < 0 {
		panic("curve: negative scalar")
	}
	r := Identity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = c.Double(r)
		if k.Bit(i) == 1 {
			r = c.Add(r, p)
		}
	}
	return r
}

// ScalarBaseMult returns k·G.
func (c *Curve) ScalarBaseMult(k *big.Int) Point {
	return c.ScalarMult(k, c.G)
}

// XToPoint recovers the point with x-coordinate x whose y has the given
// parity (0 even, 1 odd). It returns ErrNotOnCurve when x³ + b is not a
// quadratic residue mod p.
func (c *Curve) XToPoint(x *big.Int, parity uint) (Point, error) {
	if x.Sign() < 0 || x.Cmp(c.P) >= 0 {
		return Point{}, fmt.Errorf("x out of range: %w", ErrNotOnCurve)
	}
	alpha := c.rhs(x)

	// Euler's criterion; zero is its own (single) root.
	if alpha.Sign() != 0 && new(big.Int).Exp(alpha, c.legExp, c.P).Cmp(big.NewInt(1)) != 0 {
		return Point{}, ErrNotOnCurve
	}

	y := new(big.Int).Exp(alpha, c.sqrtExp, c.P)
	if y.Bit(0) != parity&1 {
		y.Sub(c.P, y)
		y.Mod(y, c.P)
	}
	return Point{X: new(big.Int).Set(x), Y: y}, nil
}

func (p Point) clone() Point {
	if p.Inf {
		return Identity()
	}
	return Point{X: new(big.Int).Set(p.X), Y: new(big.Int).Set(p.Y)}
}
