package kangaroo

import (
	"context"
	cryptoRand "crypto/rand"
	"encoding/binary"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/mahdiidarabi/ecdlp-kangaroo/pkg/curve"
)

// Solver runs the randomized kangaroo search for one target.
type Solver struct {
	curve  *curve.Curve
	target Target
	cfg    Config
	jumps  *JumpTable
	dist   distinguisher
	rnd    *rand.Rand

	sink     SolutionSink
	progress ProgressSink
	logger   *log.Logger

	// compressed target, set only on secp256k1 where the decred
	// implementation can double-check a solution
	verifyPub []byte

	rounds    int64
	totalHops uint64
}

// Stats is a snapshot of the work done so far.
type Stats struct {
	Rounds    int
	TotalHops uint64
}

// NewSolver validates cfg and precomputes the jump table.
func NewSolver(c *curve.Curve, target Target, cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if target.Start == nil || target.End == nil || target.Start.Cmp(target.End) >= 0 {
		return nil, fmt.Errorf("%w: target has no usable range", ErrInvalidRange)
	}

	jumps, err := NewJumpTable(c, cfg.HopModulo)
	if err != nil {
		return nil, fmt.Errorf("failed to build jump table: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = randomSeed()
	}

	s := &Solver{
		curve:    c,
		target:   target,
		cfg:      cfg,
		jumps:    jumps,
		dist:     newDistinguisher(cfg.DPRarity),
		rnd:      rand.New(rand.NewSource(seed)),
		progress: NopProgress{},
		logger:   log.Default(),
	}
	if c.SameParams(curve.Secp256k1()) {
		s.verifyPub = c.CompressedBytes(target.Point)
	}
	return s, nil
}

// WithSolutionSink sets where the solution is delivered.
func (s *Solver) WithSolutionSink(sink SolutionSink) *Solver {
	s.sink = sink
	return s
}

// WithProgress sets the progress sink. nil restores NopProgress.
func (s *Solver) WithProgress(p ProgressSink) *Solver {
	if p == nil {
		p = NopProgress{}
	}
	s.progress = p
	return s
}

// WithLogger sets the logger used for recoverable events such as false
// collisions and abandoned rounds.
func (s *Solver) WithLogger(l *log.Logger) *Solver {
	s.logger = l
	return s
}

// JumpTable returns the shared jump table.
func (s *Solver) JumpTable() *JumpTable {
	return s.jumps
}

// Config returns the configuration the solver was built with.
func (s *Solver) Config() Config {
	return s.cfg
}

// Stats returns the rounds started and hops made so far. It is safe to
// call while Run is in progress.
func (s *Solver) Stats() Stats {
	return Stats{
		Rounds:    int(atomic.LoadInt64(&s.rounds)),
		TotalHops: atomic.LoadUint64(&s.totalHops),
	}
}

// Run searches until the logarithm is found, the context is cancelled or
// Config.MaxRounds rounds have been played.
//
// A found solution is passed to the solution sink before Run returns it.
// On cancellation Run returns ctx.Err() and delivers nothing. Run must not
// be called concurrently on the same Solver.
func (s *Solver) Run(ctx context.Context) (*Solution, error) {
	start := time.Now()

	var (
		state = SeedingRound
		round *Round
		sol   *Solution
	)
	for {
		switch state {
		case SeedingRound:
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			n := int(atomic.LoadInt64(&s.rounds))
			if s.cfg.MaxRounds > 0 && n >= s.cfg.MaxRounds {
				return nil, fmt.Errorf("%w: %d rounds, %d hops", ErrRoundsExhausted, n, atomic.LoadUint64(&s.totalHops))
			}
			round = s.seedRound(n+1, s.drawAnchor())
			atomic.AddInt64(&s.rounds, 1)
			s.progress.RoundStarted(round.Number, round.Anchor)
			state = Scanning

		case Scanning:
			found, err := s.scan(ctx, round)
			if err != nil {
				return nil, err
			}
			if found != nil {
				sol = found
				state = CollisionFound
			} else {
				state = BudgetExhausted
			}

		case BudgetExhausted:
			s.logger.Printf("round %d: %d hops without a collision (%d DPs), restarting", round.Number, round.Hops, round.DPs())
			round = nil
			state = SeedingRound

		case CollisionFound:
			sol.TotalHops = atomic.LoadUint64(&s.totalHops)
			sol.Elapsed = time.Since(start)
			if s.sink != nil {
				if err := s.sink.Solved(sol); err != nil {
					return sol, fmt.Errorf("failed to deliver solution: %w", err)
				}
			}
			return sol, nil
		}
	}
}

// scan ticks r until a solution appears or the hop budget is spent. The
// context is checked once per tick.
func (s *Solver) scan(ctx context.Context, r *Round) (*Solution, error) {
	interval := s.cfg.ProgressInterval
	next := interval

	for r.Hops < s.cfg.MaxHopsPerRound {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		sol, err := s.tick(r)
		if err != nil || sol != nil {
			return sol, err
		}

		if interval > 0 && r.Hops >= next {
			s.report(r)
			for next <= r.Hops {
				next += interval
			}
		}
	}
	return nil, nil
}

func (s *Solver) report(r *Round) {
	elapsed := time.Since(r.Started)
	var rate float64
	if secs := elapsed.Seconds(); secs > 0 {
		rate = float64(r.Hops) / secs
	}
	s.progress.Progress(Progress{
		Round:   r.Number,
		Hops:    r.Hops,
		MaxHops: s.cfg.MaxHopsPerRound,
		Rate:    rate,
		DPs:     r.DPs(),
		Elapsed: elapsed,
	})
}

// verify double-checks a reconstructed key when an independent
// implementation is available.
func (s *Solver) verify(key *big.Int) error {
	if s.verifyPub == nil {
		return nil
	}
	ok, err := VerifyPrivateKey(key, s.verifyPub)
	if err != nil {
		return fmt.Errorf("failed to verify recovered key: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrVerificationFailed, key.Text(16))
	}
	return nil
}

func (s *Solver) addHops(n uint64) {
	atomic.AddUint64(&s.totalHops, n)
}

// randomSeed draws a seed from crypto/rand, falling back to the clock.
func randomSeed() int64 {
	var b [8]byte
	if _, err := cryptoRand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
