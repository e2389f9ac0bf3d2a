package curve

import (
	"encoding/hex"
	"math/big"
)

// KeySize is the width in bytes of an XKey.
const KeySize = 32

// XKey is the canonical fixed-width big-endian encoding of a reduced
// x-coordinate. Two field elements are equal iff their keys are equal, so
// XKey can be used directly as a map key.
type XKey [KeySize]byte

// Key returns the XKey of a reduced x-coordinate.
func Key(x *big.Int) XKey {
	var k XKey
	x.FillBytes(k[:])
	return k
}

// Int returns the x-coordinate encoded by k.
func (k XKey) Int() *big.Int {
	return new(big.Int).SetBytes(k[:])
}

// String implements fmt.Stringer.
func (k XKey) String() string {
	return hex.EncodeToString(k[:])
}
