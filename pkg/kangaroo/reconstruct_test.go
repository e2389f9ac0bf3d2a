package kangaroo

import (
	"log"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/ecdlp-kangaroo/pkg/curve"
)

func TestReconstruct(t *testing.T) {
	c := toyCurve(t)
	k := big.NewInt(toySecret)
	target := c.ScalarBaseMult(k)

	tests := []struct {
		name       string
		tame, wild *big.Int
	}{
		{"tame ahead", big.NewInt(toySecret + 500), big.NewInt(500)},
		{"wild offset zero", big.NewInt(toySecret), big.NewInt(0)},
		// Ot < Ow: the difference is negative before reduction.
		{"tame behind", big.NewInt(toySecret + 5), new(big.Int).Add(c.N, big.NewInt(5))},
		{"wrapped tame", new(big.Int).Add(c.N, big.NewInt(toySecret+7)), big.NewInt(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reconstruct(c, target, tt.tame, tt.wild)
			require.NoError(t, err)
			assert.Equal(t, 0, got.Cmp(k), "got %s", got.Text(16))
		})
	}
}

func TestReconstructFalseCollision(t *testing.T) {
	c := toyCurve(t)
	target := c.ScalarBaseMult(big.NewInt(toySecret))

	_, err := Reconstruct(c, target, big.NewInt(toySecret+10), big.NewInt(9))
	assert.ErrorIs(t, err, ErrFalseCollision)

	// Mirror points share x but not y: Ot·G = −(Target + Ow·G).
	ow := big.NewInt(100)
	ot := new(big.Int).Neg(big.NewInt(toySecret + 100))
	ot.Mod(ot, c.N)
	tp := c.ScalarBaseMult(ot)
	wp := c.Add(target, c.ScalarBaseMult(ow))
	require.Equal(t, curve.Key(tp.X), curve.Key(wp.X))

	_, err = Reconstruct(c, target, ot, ow)
	assert.ErrorIs(t, err, ErrFalseCollision)
}

func TestReconstructSecp256k1(t *testing.T) {
	c := curve.Secp256k1()
	target, err := TargetForBits(c, puzzle20PubKey, 20)
	require.NoError(t, err)

	wild := big.NewInt(123456)
	tame := new(big.Int).Add(wild, big.NewInt(puzzle20Key))

	got, err := Reconstruct(c, target.Point, tame, wild)
	require.NoError(t, err)
	assert.Equal(t, int64(puzzle20Key), got.Int64())
}

// meetingPoint puts a tame walker on a distinguished point whose wild
// table already holds offsets recorded at the same x.
func meetingPoint(t *testing.T, wildOffsets ...int64) (*Solver, *Round, *Walker, *strings.Builder) {
	t.Helper()
	c := toyCurve(t)
	cfg := toyConfig()
	cfg.DPRarity = 1

	s, err := NewSolver(c, toyTarget(t, c, toySecret), cfg)
	require.NoError(t, err)
	var logs strings.Builder
	s.WithLogger(log.New(&logs, "", 0))

	r := s.seedRound(1, big.NewInt(toyStart))

	tameOff := big.NewInt(toySecret + 300)
	w := &Walker{Point: c.ScalarBaseMult(tameOff), Offset: tameOff}
	x := curve.Key(w.Point.X)
	for _, o := range wildOffsets {
		r.WildDPs.Insert(x, big.NewInt(o))
	}
	return s, r, w, &logs
}

func TestMeetSkipsFalseCollisions(t *testing.T) {
	s, r, w, logs := meetingPoint(t, 17, 300)

	sol, err := s.meet(r, Tame, w)
	require.NoError(t, err)
	require.NotNil(t, sol)

	assert.Equal(t, int64(toySecret), sol.Key.Int64())
	assert.Equal(t, int64(toySecret+300), sol.TameOffset.Int64())
	assert.Equal(t, int64(300), sol.WildOffset.Int64())
	assert.Equal(t, 1, sol.Round)
	assert.Contains(t, logs.String(), "false collision")
}

func TestMeetRecordsOwnOffsetWhenNothingMatches(t *testing.T) {
	s, r, w, logs := meetingPoint(t, 17)

	sol, err := s.meet(r, Tame, w)
	require.NoError(t, err)
	assert.Nil(t, sol)
	assert.Contains(t, logs.String(), "false collision")

	got := r.TameDPs.Lookup(curve.Key(w.Point.X))
	if assert.Len(t, got, 1) {
		assert.Equal(t, 0, got[0].Cmp(w.Offset))
	}
}

func TestMeetFromWildSide(t *testing.T) {
	c := toyCurve(t)
	cfg := toyConfig()
	cfg.DPRarity = 1
	target := toyTarget(t, c, toySecret)
	s, _ := newTestSolver(t, c, target, cfg)
	r := s.seedRound(1, big.NewInt(toyStart))

	wildOff := big.NewInt(42)
	w := &Walker{Point: c.Add(target.Point, c.ScalarBaseMult(wildOff)), Offset: wildOff}
	r.TameDPs.Insert(curve.Key(w.Point.X), big.NewInt(toySecret+42))

	sol, err := s.meet(r, Wild, w)
	require.NoError(t, err)
	require.NotNil(t, sol)
	assert.Equal(t, int64(toySecret), sol.Key.Int64())
	assert.Equal(t, 0, r.WildDPs.Len(), "a solved meeting is not recorded")
}
