package kangaroo

import (
	"fmt"
	"math/big"

	"github.com/mahdiidarabi/ecdlp-kangaroo/pkg/curve"
)

// Reconstruct turns a tame/wild meeting into a candidate logarithm and
// validates it.
//
// A tame walker at offset Ot sits on Ot·G and a wild walker at offset Ow
// sits on Target + Ow·G. If they share a point, Target = (Ot − Ow)·G.
// The difference is reduced mod N, so Ot < Ow is handled.
//
// Returns:
//   - the key k with k·G == target, or an error wrapping ErrFalseCollision
//     when the walkers only shared an x-coordinate (mirror points)
func Reconstruct(c *curve.Curve, target curve.Point, tameOffset, wildOffset *big.Int) (*big.Int, error) {
	k := new(big.Int).Sub(tameOffset, wildOffset)
	k.Mod(k, c.N)

	if !c.ScalarBaseMult(k).Equal(target) {
		return nil, fmt.Errorf("%w: tame offset %s, wild offset %s", ErrFalseCollision, tameOffset.Text(16), wildOffset.Text(16))
	}
	return k, nil
}
