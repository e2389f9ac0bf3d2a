package kangaroo

import (
	"encoding/hex"
	"math/big"
	"time"

	"github.com/mahdiidarabi/ecdlp-kangaroo/pkg/curve"
)

// Solution is a validated discrete logarithm together with the meeting
// that produced it.
type Solution struct {
	// Key is the logarithm: Key·G == Target.
	Key *big.Int

	// TameOffset and WildOffset are the offsets of the colliding walkers.
	TameOffset *big.Int
	WildOffset *big.Int

	// Round is the 1-based round the collision happened in.
	Round int

	// Hops is the hop count of that round; TotalHops counts every round.
	Hops      uint64
	TotalHops uint64

	// Elapsed is the wall time since Run started.
	Elapsed time.Duration
}

// Hex returns Key as 64 lowercase hex digits.
func (s *Solution) Hex() string {
	var b [curve.KeySize]byte
	s.Key.FillBytes(b[:])
	return hex.EncodeToString(b[:])
}

// Decimal returns Key in base 10.
func (s *Solution) Decimal() string {
	return s.Key.Text(10)
}
