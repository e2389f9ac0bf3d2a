package kangaroo

import (
	"math/big"
	"time"

	"github.com/mahdiidarabi/ecdlp-kangaroo/pkg/curve"
)

// State is a step of the round state machine driven by Solver.Run.
type State int

const (
	// SeedingRound draws a fresh anchor and places both herds.
	SeedingRound State = iota
	// Scanning hops both herds until a collision or the hop budget.
	Scanning
	// CollisionFound is terminal: a validated solution exists.
	CollisionFound
	// BudgetExhausted discards the round and goes back to seeding.
	BudgetExhausted
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case SeedingRound:
		return "SeedingRound"
	case Scanning:
		return "Scanning"
	case CollisionFound:
		return "CollisionFound"
	case BudgetExhausted:
		return "BudgetExhausted"
	default:
		return "Unknown"
	}
}

// Round is one localized search: both herds, both tables and the hop
// counter. Nothing carries over from one round to the next.
type Round struct {
	Number  int
	Anchor  *big.Int
	Tame    *Herd
	Wild    *Herd
	TameDPs *DPTable
	WildDPs *DPTable
	Hops    uint64
	Started time.Time
}

// DPs returns the number of distinguished x-coordinates in both tables.
func (r *Round) DPs() int {
	return r.TameDPs.Len() + r.WildDPs.Len()
}

// seedRound builds round number n around anchor.
func (s *Solver) seedRound(n int, anchor *big.Int) *Round {
	return &Round{
		Number:  n,
		Anchor:  new(big.Int).Set(anchor),
		Tame:    NewTameHerd(s.curve, s.cfg.TameHerd, anchor, s.cfg.SpreadBits, s.rnd),
		Wild:    NewWildHerd(s.curve, s.cfg.WildHerd, s.target.Point, s.cfg.SpreadBits, s.rnd),
		TameDPs: NewDPTable(),
		WildDPs: NewDPTable(),
		Started: time.Now(),
	}
}

// drawAnchor returns Start + u with u uniform in [0, End − Start).
func (s *Solver) drawAnchor() *big.Int {
	u := new(big.Int).Rand(s.rnd, s.target.RangeLength())
	return u.Add(u, s.target.Start)
}

// tick hops every walker of both herds once, then runs the
// distinguished-point phase in walker order: tame first, then wild.
func (s *Solver) tick(r *Round) (*Solution, error) {
	r.Tame.Advance(s.jumps, s.cfg.Workers)
	r.Wild.Advance(s.jumps, s.cfg.Workers)

	n := uint64(len(r.Tame.Walkers) + len(r.Wild.Walkers))
	r.Hops += n
	s.addHops(n)

	for _, h := range []*Herd{r.Tame, r.Wild} {
		for i := range h.Walkers {
			w := &h.Walkers[i]
			if !s.dist.Is(w.Point) {
				continue
			}
			sol, err := s.meet(r, h.Kind, w)
			if err != nil || sol != nil {
				return sol, err
			}
		}
	}
	return nil, nil
}

// meet handles a walker that landed on a distinguished point: every
// offset the opposite herd recorded at the same x is tried, and only if
// none of them solves the target is the walker's own offset recorded.
func (s *Solver) meet(r *Round, kind HerdKind, w *Walker) (*Solution, error) {
	x := curve.Key(w.Point.X)

	own, other := r.TameDPs, r.WildDPs
	if kind == Wild {
		own, other = r.WildDPs, r.TameDPs
	}

	for _, o := range other.Lookup(x) {
		tameOff, wildOff := w.Offset, o
		if kind == Wild {
			tameOff, wildOff = o, w.Offset
		}

		key, err := Reconstruct(s.curve, s.target.Point, tameOff, wildOff)
		if err != nil {
			s.logger.Printf("round %d: %v", r.Number, err)
			continue
		}
		if err := s.verify(key); err != nil {
			return nil, err
		}
		return &Solution{
			Key:        key,
			TameOffset: new(big.Int).Set(tameOff),
			WildOffset: new(big.Int).Set(wildOff),
			Round:      r.Number,
			Hops:       r.Hops,
		}, nil
	}

	own.Insert(x, w.Offset)
	return nil, nil
}
