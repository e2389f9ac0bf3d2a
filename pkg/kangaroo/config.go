package kangaroo

import "fmt"

// Config holds the tuning parameters of a search. All fields are fixed
// for the lifetime of a Solver.
type Config struct {
	// TameHerd is the number of tame walkers (Nt).
	TameHerd int

	// WildHerd is the number of wild walkers (Nw).
	WildHerd int

	// HopModulo is the jump table size H. Jump i moves a walker by 2^i·G.
	HopModulo int

	// DPRarity is D: a point is distinguished when x mod D == 0.
	DPRarity uint64

	// MaxHopsPerRound is the combined hop budget of both herds before the
	// round is abandoned and a new anchor is drawn.
	MaxHopsPerRound uint64

	// SpreadBits sets the local scatter of start positions: tame walkers
	// start at anchor + [0, 2^SpreadBits), wild walkers at
	// Target + [1, 2^SpreadBits)·G.
	SpreadBits uint

	// Workers controls how many goroutines advance walkers in parallel
	// (0 or 1 = serial). Results do not depend on it.
	Workers int

	// ProgressInterval is the number of combined hops between progress
	// reports (0 = never).
	ProgressInterval uint64

	// MaxRounds bounds the number of rounds (0 = unbounded).
	MaxRounds int

	// Seed seeds the pseudorandom source used for anchors and start
	// offsets. Zero draws a seed from crypto/rand.
	Seed int64
}

// DefaultConfig returns the parameters of the Puzzle 135 run:
// 256 tame and 256 wild walkers, 50 jumps, D = 2^14 and 5,000,000 hops
// per round.
func DefaultConfig() Config {
	return Config{
		TameHerd:         256,
		WildHerd:         256,
		HopModulo:        50,
		DPRarity:         1 << 14,
		MaxHopsPerRound:  5_000_000,
		SpreadBits:       40,
		Workers:          0,
		ProgressInterval: 5000,
		MaxRounds:        0,
		Seed:             0,
	}
}

// WithSeed returns a copy of c using the given seed.
func (c Config) WithSeed(seed int64) Config {
	c.Seed = seed
	return c
}

// WithWorkers returns a copy of c using n stepping goroutines.
func (c Config) WithWorkers(n int) Config {
	c.Workers = n
	return c
}

// WithMaxRounds returns a copy of c that gives up after n rounds.
func (c Config) WithMaxRounds(n int) Config {
	c.MaxRounds = n
	return c
}

// Validate checks that every parameter is usable.
func (c Config) Validate() error {
	switch {
	case c.TameHerd < 1:
		return fmt.Errorf("%w: tame herd size must be positive, got %d", ErrInvalidConfig, c.TameHerd)
	case c.WildHerd < 1:
		return fmt.Errorf("%w: wild herd size must be positive, got %d", ErrInvalidConfig, c.WildHerd)
	case c.HopModulo < 1 || c.HopModulo > MaxHopModulo:
		return fmt.Errorf("%w: hop modulo must be in [1, %d], got %d", ErrInvalidConfig, MaxHopModulo, c.HopModulo)
	case c.DPRarity < 1:
		return fmt.Errorf("%w: DP rarity must be positive", ErrInvalidConfig)
	case c.MaxHopsPerRound < 1:
		return fmt.Errorf("%w: hops per round must be positive", ErrInvalidConfig)
	case c.SpreadBits < 1 || c.SpreadBits > 256:
		return fmt.Errorf("%w: spread bits must be in [1, 256], got %d", ErrInvalidConfig, c.SpreadBits)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	case c.MaxRounds < 0:
		return fmt.Errorf("%w: max rounds must not be negative", ErrInvalidConfig)
	}
	return nil
}
