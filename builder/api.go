package builder

import (
	"fmt"

	"github.com/usernamesimon/elimord/graph"
)

// Constructor applies one topology onto an already-sized graph.Graph. It
// reads the vertex count from g.NodesLen() rather than taking its own n, so
// several constructors could in principle be layered onto the same graph
// by a future caller (BuildGraph runs them in order).
type Constructor func(g *graph.Graph, cfg *builderConfig) error

// BuildGraph creates a graph of n vertices, resolves a builderConfig from
// opts, and runs each Constructor against it in order. The first error is
// wrapped with "builder: " context and returned immediately.
func BuildGraph(n int, opts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	cfg := newBuilderConfig(opts...)
	g := graph.Create(n)
	for _, c := range cons {
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("builder: %w", err)
		}
	}
	return g, nil
}

// Path builds the simple path 0-1-2-...-(n-1).
func Path(n int) (*graph.Graph, error) {
	return BuildGraph(n, nil, pathConstructor())
}

// Cycle builds the simple cycle 0-1-2-...-(n-1)-0.
func Cycle(n int) (*graph.Graph, error) {
	return BuildGraph(n, nil, cycleConstructor())
}

// Complete builds the complete graph K_n.
func Complete(n int) (*graph.Graph, error) {
	return BuildGraph(n, nil, completeConstructor())
}

// Star builds the star K_{1,leaves}: hub 0, leaves 1..leaves.
func Star(leaves int) (*graph.Graph, error) {
	return BuildGraph(leaves+1, nil, starConstructor())
}

// RandomSparse builds an Erdos-Renyi-like graph on n vertices, including
// each unordered pair independently with probability p.
func RandomSparse(n int, p float64, opts ...BuilderOption) (*graph.Graph, error) {
	return BuildGraph(n, opts, randomSparseConstructor(p))
}
