package kangaroo

import "errors"

var (
	// ErrFalseCollision is returned when a tame/wild match at a
	// distinguished x-coordinate does not yield the target's logarithm.
	// It is recoverable: the search keeps going in the same round.
	ErrFalseCollision = errors.New("kangaroo: false collision")

	// ErrRoundsExhausted is returned by Solver.Run when Config.MaxRounds
	// rounds were played without a solution.
	ErrRoundsExhausted = errors.New("kangaroo: round limit reached without a solution")

	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("kangaroo: invalid configuration")

	// ErrInvalidRange wraps every Target range validation failure.
	ErrInvalidRange = errors.New("kangaroo: invalid search range")

	// ErrVerificationFailed is returned when an independent secp256k1
	// implementation disagrees with a reconstructed key.
	ErrVerificationFailed = errors.New("kangaroo: recovered key failed verification")
)
