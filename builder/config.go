package builder

import "math/rand"

// BuilderOption customizes the builderConfig resolved before a Constructor
// runs. Option constructors never panic and ignore nil/invalid inputs.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the one configurable axis a Constructor might need:
// a source of randomness. nil means "deterministic"; only RandomSparse
// with 0<p<1 requires it to be set.
type builderConfig struct {
	rng *rand.Rand
}

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRand injects an existing *rand.Rand. A nil r is a no-op.
func WithRand(r *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		if r != nil {
			cfg.rng = r
		}
	}
}

// WithSeed seeds a fresh *rand.Rand for this build, giving reproducible
// random topologies without requiring the caller to manage a source.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
