package kangaroo

import (
	"math/big"
	"math/bits"

	"github.com/mahdiidarabi/ecdlp-kangaroo/pkg/curve"
)

// DPTable records, for one herd, the offsets at which its walkers landed
// on distinguished points. Every distinct offset seen for an
// x-coordinate is kept, so a later false collision at that x cannot hide
// a true one.
type DPTable struct {
	entries map[curve.XKey][]*big.Int
	offsets int
}

// NewDPTable returns an empty table.
func NewDPTable() *DPTable {
	return &DPTable{entries: make(map[curve.XKey][]*big.Int)}
}

// Lookup returns the offsets recorded at x, or nil. The slice and its
// elements must not be modified.
func (t *DPTable) Lookup(x curve.XKey) []*big.Int {
	return t.entries[x]
}

// Insert records offset at x. It stores a copy and reports false if the
// same offset was already recorded there.
func (t *DPTable) Insert(x curve.XKey, offset *big.Int) bool {
	for _, o := range t.entries[x] {
		if o.Cmp(offset) == 0 {
			return false
		}
	}
	t.entries[x] = append(t.entries[x], new(big.Int).Set(offset))
	t.offsets++
	return true
}

// Len returns the number of distinct x-coordinates recorded.
func (t *DPTable) Len() int {
	return len(t.entries)
}

// Offsets returns the total number of offsets recorded.
func (t *DPTable) Offsets() int {
	return t.offsets
}

// distinguisher decides x mod D == 0. Powers of two are tested on the
// trailing zero bits, anything else with a division.
type distinguisher struct {
	d     *big.Int
	shift uint
	pow2  bool
}

func newDistinguisher(d uint64) distinguisher {
	return distinguisher{
		d:     new(big.Int).SetUint64(d),
		shift: uint(bits.TrailingZeros64(d)),
		pow2:  d&(d-1) == 0,
	}
}

// Is reports whether p is distinguished. The identity never is.
func (ds distinguisher) Is(p curve.Point) bool {
	if p.IsIdentity() {
		return false
	}
	if ds.pow2 {
		return p.X.Sign() == 0 || p.X.TrailingZeroBits() >= ds.shift
	}
	return new(big.Int).Mod(p.X, ds.d).Sign() == 0
}
