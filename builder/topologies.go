package builder

import (
	"fmt"

	"github.com/usernamesimon/elimord/graph"
)

const minPathVertices = 2

// pathConstructor emits edges (i-1,i) for i=1..n-1 in increasing order.
func pathConstructor() Constructor {
	return func(g *graph.Graph, _ *builderConfig) error {
		n := g.NodesLen()
		if n < minPathVertices {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathVertices, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			g.AddEdge(i-1, i)
		}
		return nil
	}
}

const minCycleVertices = 3

// cycleConstructor emits a path plus the closing edge (n-1,0).
func cycleConstructor() Constructor {
	return func(g *graph.Graph, cfg *builderConfig) error {
		n := g.NodesLen()
		if n < minCycleVertices {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
		}
		if err := pathConstructor()(g, cfg); err != nil {
			return err
		}
		g.AddEdge(n-1, 0)
		return nil
	}
}

const minCompleteVertices = 1

// completeConstructor emits every unordered pair {i,j}, i<j.
func completeConstructor() Constructor {
	return func(g *graph.Graph, _ *builderConfig) error {
		n := g.NodesLen()
		if n < minCompleteVertices {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.AddEdge(i, j)
			}
		}
		return nil
	}
}

const minStarVertices = 2

// starConstructor makes vertex 0 the hub and connects every other vertex to it.
func starConstructor() Constructor {
	return func(g *graph.Graph, _ *builderConfig) error {
		n := g.NodesLen()
		if n < minStarVertices {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarVertices, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			g.AddEdge(0, i)
		}
		return nil
	}
}
