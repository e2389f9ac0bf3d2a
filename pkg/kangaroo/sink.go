package kangaroo

import (
	"math/big"
	"time"
)

// SolutionSink receives the validated solution. It is called exactly
// once, after which Run returns.
type SolutionSink interface {
	Solved(sol *Solution) error
}

// SolutionFunc adapts a function to SolutionSink.
type SolutionFunc func(sol *Solution) error

// Solved calls f(sol).
func (f SolutionFunc) Solved(sol *Solution) error {
	return f(sol)
}

// Progress is a snapshot of the running round.
type Progress struct {
	Round   int
	Hops    uint64
	MaxHops uint64
	Rate    float64 // hops per second in this round
	DPs     int     // distinguished x-coordinates in both tables
	Elapsed time.Duration
}

// ProgressSink receives round starts and periodic progress reports.
// Calls come from the goroutine running Solver.Run.
type ProgressSink interface {
	RoundStarted(round int, anchor *big.Int)
	Progress(p Progress)
}

// NopProgress discards all progress.
type NopProgress struct{}

// RoundStarted implements ProgressSink.
func (NopProgress) RoundStarted(int, *big.Int) {}

// Progress implements ProgressSink.
func (NopProgress) Progress(Progress) {}
