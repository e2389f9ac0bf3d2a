package kangaroo

import (
	"bytes"
	"io"
	"log"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/ecdlp-kangaroo/pkg/curve"
)

const (
	// Bitcoin puzzle #20.
	puzzle20PubKey = "033c4a45cbd643ff97d77f41ea37e843648d50fd894b864b0d52febc62f6454f7c"
	puzzle20Key    = 0xd2c55

	// Bitcoin puzzle #135, unsolved.
	puzzle135PubKey = "02145d2611c823a396ef6712ce0f712f09b9b4f3135e3e0aa3230fb9b6d08d1e16"

	toySecret = 0xbeef
	toyStart  = 0x8000
	toyEnd    = 0xfdff
)

// toyCurve is y² = x³ + 7 over F_65647, a prime-order group of 65173
// points generated by (1, 31426).
func toyCurve(t testing.TB) *curve.Curve {
	t.Helper()
	c, err := curve.New("toy65647", big.NewInt(65647), big.NewInt(7), big.NewInt(1), big.NewInt(31426), big.NewInt(65173))
	require.NoError(t, err)
	return c
}

// toyTarget plants secret as the logarithm of the target over the toy
// 16-bit range.
func toyTarget(t testing.TB, c *curve.Curve, secret int64) Target {
	t.Helper()
	target, err := NewTargetPoint(c, c.ScalarBaseMult(big.NewInt(secret)), big.NewInt(toyStart), big.NewInt(toyEnd))
	require.NoError(t, err)
	return target
}

func toyConfig() Config {
	return Config{
		TameHerd:         8,
		WildHerd:         8,
		HopModulo:        8,
		DPRarity:         4,
		MaxHopsPerRound:  20000,
		SpreadBits:       8,
		Workers:          0,
		ProgressInterval: 0,
		MaxRounds:        50,
		Seed:             1,
	}
}

func puzzle20Config() Config {
	return Config{
		TameHerd:         16,
		WildHerd:         16,
		HopModulo:        16,
		DPRarity:         32,
		MaxHopsPerRound:  200000,
		SpreadBits:       12,
		ProgressInterval: 1000,
		MaxRounds:        20,
		Seed:             20,
	}
}

func newTestSolver(t testing.TB, c *curve.Curve, target Target, cfg Config) (*Solver, *bytes.Buffer) {
	t.Helper()
	s, err := NewSolver(c, target, cfg)
	require.NoError(t, err)
	var logs bytes.Buffer
	s.WithLogger(log.New(&logs, "", 0))
	return s, &logs
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// recordingProgress keeps every event it receives.
type recordingProgress struct {
	mu       sync.Mutex
	starts   []int
	anchors  []*big.Int
	progress []Progress
	onReport func(Progress)
}

func (r *recordingProgress) RoundStarted(round int, anchor *big.Int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.starts = append(r.starts, round)
	r.anchors = append(r.anchors, new(big.Int).Set(anchor))
}

func (r *recordingProgress) Progress(p Progress) {
	r.mu.Lock()
	r.progress = append(r.progress, p)
	cb := r.onReport
	r.mu.Unlock()
	if cb != nil {
		cb(p)
	}
}
