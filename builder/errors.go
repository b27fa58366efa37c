package builder

import "errors"

// Sentinel errors returned by this package's constructors. Callers must use
// errors.Is to branch on semantics; sentinels are never wrapped with
// formatted strings at definition site, only via %w at the call site.
var (
	// ErrTooFewVertices indicates a requested vertex count is smaller than
	// the topology's minimum (e.g. a path needs at least 2 vertices).
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability argument (RandomSparse)
	// falls outside the closed interval [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor was invoked
	// without a resolved *rand.Rand (see WithRand/WithSeed).
	ErrNeedRandSource = errors.New("builder: rng is required")
)
