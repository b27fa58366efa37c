package builder

import (
	"fmt"

	"github.com/usernamesimon/elimord/graph"
)

const (
	probMin = 0.0
	probMax = 1.0
)

// randomSparseConstructor samples an Erdos-Renyi-like graph: each unordered
// pair {i,j}, i<j, is included independently with probability p. p==0 and
// p==1 are deterministic and need no RNG; any other value requires one
// (via WithRand/WithSeed).
func randomSparseConstructor(p float64) Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}

		n := g.NodesLen()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMax:
					g.AddEdge(i, j)
				case p == probMin:
					// no edge
				case cfg.rng.Float64() < p:
					g.AddEdge(i, j)
				}
			}
		}
		return nil
	}
}
