package kangaroo

import (
	"math/big"
	"math/rand"
	"sync"

	"github.com/mahdiidarabi/ecdlp-kangaroo/pkg/curve"
)

// HerdKind tells tame walkers from wild ones.
type HerdKind int

const (
	// Tame walkers start at known exponents; their offset is absolute.
	Tame HerdKind = iota
	// Wild walkers start at Target + u·G; their offset is the scalar
	// accumulated since the target.
	Wild
)

// String implements fmt.Stringer.
func (k HerdKind) String() string {
	switch k {
	case Tame:
		return "tame"
	case Wild:
		return "wild"
	default:
		return "unknown"
	}
}

// Walker is a single kangaroo: its current point and the scalar offset
// that point corresponds to.
type Walker struct {
	Point  curve.Point
	Offset *big.Int
}

// Herd is a set of walkers of the same kind.
type Herd struct {
	Kind    HerdKind
	Walkers []Walker
}

// NewTameHerd places n walkers at anchor + u, u uniform in [0, 2^spread).
func NewTameHerd(c *curve.Curve, n int, anchor *big.Int, spread uint, rnd *rand.Rand) *Herd {
	limit := new(big.Int).Lsh(big.NewInt(1), spread)

	h := &Herd{Kind: Tame, Walkers: make([]Walker, n)}
	for i := range h.Walkers {
		off := new(big.Int).Rand(rnd, limit)
		off.Add(off, anchor)
		h.Walkers[i] = Walker{Point: c.ScalarBaseMult(off), Offset: off}
	}
	return h
}

// NewWildHerd places n walkers at target + u·G, u uniform in [1, 2^spread).
func NewWildHerd(c *curve.Curve, n int, target curve.Point, spread uint, rnd *rand.Rand) *Herd {
	limit := new(big.Int).Lsh(big.NewInt(1), spread)
	limit.Sub(limit, big.NewInt(1))

	h := &Herd{Kind: Wild, Walkers: make([]Walker, n)}
	for i := range h.Walkers {
		u := new(big.Int).Rand(rnd, limit)
		u.Add(u, big.NewInt(1))
		h.Walkers[i] = Walker{Point: c.Add(target, c.ScalarBaseMult(u)), Offset: u}
	}
	return h
}

// Advance hops every walker once. With workers > 1 the walkers are split
// into disjoint contiguous slices, one goroutine each.
func (h *Herd) Advance(jt *JumpTable, workers int) {
	advance(jt, h.Walkers, workers)
}

func advance(jt *JumpTable, walkers []Walker, workers int) {
	if workers <= 1 || len(walkers) < 2 {
		for i := range walkers {
			jt.Hop(&walkers[i])
		}
		return
	}
	if workers > len(walkers) {
		workers = len(walkers)
	}
	chunk := (len(walkers) + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < len(walkers); lo += chunk {
		hi := min(lo+chunk, len(walkers))
		wg.Add(1)
		go func(part []Walker) {
			defer wg.Done()
			for i := range part {
				jt.Hop(&part[i])
			}
		}(walkers[lo:hi])
	}
	wg.Wait()
}
