package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the topology minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates p outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic step without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)
