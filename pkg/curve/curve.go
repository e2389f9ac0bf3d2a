// Package curve implements the affine short-Weierstrass arithmetic
// (y² = x³ + b over F_p) needed by the kangaroo search: point addition,
// doubling, double-and-add scalar multiplication and x-coordinate
// recovery. It is deliberately small and variable time.
package curve

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNotOnCurve is returned when an x-coordinate has no matching y.
	ErrNotOnCurve = errors.New("curve: point is not on the curve")

	// ErrInvalidEncoding is returned for malformed compressed points.
	ErrInvalidEncoding = errors.New("curve: invalid compressed point encoding")
)

// Secp256k1 domain parameters.
var (
	secp256k1P, _  = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)
	secp256k1N, _  = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)
	secp256k1Gx, _ = new(big.Int).SetString("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", 16)
	secp256k1Gy, _ = new(big.Int).SetString("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8", 16)

	secp256k1 = mustNew("secp256k1", secp256k1P, big.NewInt(7), secp256k1Gx, secp256k1Gy, secp256k1N)
)

// Curve holds the parameters of y² = x³ + B over F_P with a generator G
// of prime order N. A Curve is immutable after construction and safe for
// concurrent use.
type Curve struct {
	Name string
	P    *big.Int // field prime
	B    *big.Int // curve constant
	N    *big.Int // order of G
	G    Point    // generator

	sqrtExp *big.Int // (P+1)/4
	legExp  *big.Int // (P-1)/2
}

// Secp256k1 returns the secp256k1 curve.
func Secp256k1() *Curve {
	return secp256k1
}

// New builds a curve y² = x³ + b over F_p with generator (gx, gy) of order n.
//
// The field prime must satisfy p ≡ 3 (mod 4) so square roots can be taken
// as a single exponentiation, and must fit in 256 bits so x-coordinates
// can be used as fixed-size map keys.
func New(name string, p, b, gx, gy, n *big.Int) (*Curve, error) {
	if p == nil || b == nil || gx == nil || gy == nil || n == nil {
		return nil, errors.New("curve: nil parameter")
	}
	if p.Sign() <= 0 || !p.ProbablyPrime(20) {
		return nil, fmt.Errorf("curve: field modulus %s is not prime", p.Text(10))
	}
	if p.BitLen() > 8*KeySize {
		return nil, fmt.Errorf("curve: field modulus wider than %d bits", 8*KeySize)
	}
	if new(big.Int).And(p, big.NewInt(3)).Int64() != 3 {
		return nil, fmt.Errorf("curve: field modulus must be 3 mod 4")
	}
	if n.Sign() <= 0 {
		return nil, fmt.Errorf("curve: group order must be positive")
	}

	c := &Curve{
		Name: name,
		P:    new(big.Int).Set(p),
		B:    new(big.Int).Mod(b, p),
		N:    new(big.Int).Set(n),
	}
	c.sqrtExp = new(big.Int).Add(p, big.NewInt(1))
	c.sqrtExp.Rsh(c.sqrtExp, 2)
	c.legExp = new(big.Int).Sub(p, big.NewInt(1))
	c.legExp.Rsh(c.legExp, 1)

	c.G = Point{X: new(big.Int).Mod(gx, p), Y: new(big.Int).Mod(gy, p)}
	if !c.IsOnCurve(c.G) {
		return nil, fmt.Errorf("curve: generator: %w", ErrNotOnCurve)
	}
	return c, nil
}

func mustNew(name string, p, b, gx, gy, n *big.Int) *Curve {
	c, err := New(name, p, b, gx, gy, n)
	if err != nil {
		panic(err)
	}
	return c
}

// IsOnCurve reports whether p is the identity or satisfies the curve equation.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.Inf {
		return true
	}
	if p.X == nil || p.Y == nil {
		return false
	}
	if p.X.Sign() < 0 || p.X.Cmp(c.P) >= 0 || p.Y.Sign() < 0 || p.Y.Cmp(c.P) >= 0 {
		return false
	}
	lhs := new(big.Int).Mul(p.Y, p.Y)
	lhs.Mod(lhs, c.P)
	return lhs.Cmp(c.rhs(p.X)) == 0
}

// rhs returns x³ + b mod p.
func (c *Curve) rhs(x *big.Int) *big.Int {
	r := new(big.Int).Mul(x, x)
	r.Mul(r, x)
	r.Add(r, c.B)
	return r.Mod(r, c.P)
}

// inverse returns a⁻¹ mod p. Zero has no inverse; reaching it means the
// branch structure of Add was violated, so it panics.
func (c *Curve) inverse(a *big.Int) *big.Int {
	r := new(big.Int).Mod(a, c.P)
	if r.Sign() == 0 {
		panic("curve: inverse of zero")
	}
	return r.ModInverse(r, c.P)
}

// SameParams reports whether c and o define the same group.
func (c *Curve) SameParams(o *Curve) bool {
	return c.P.Cmp(o.P) == 0 && c.B.Cmp(o.B) == 0 && c.N.Cmp(o.N) == 0 && c.G.Equal(o.G)
}

// String implements fmt.Stringer.
func (c *Curve) String() string {
	return c.Name
}
