package ordering

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/usernamesimon/elimord/graph"
	"github.com/usernamesimon/elimord/priority"
)

// TestFillinOracle is a debug self-check: after every step, recompute
// fillin(v) for every remaining vertex from scratch and compare against
// what the bucket index believes.
func TestFillinOracle(t *testing.T) {
	for name, build := range map[string]func() *graph.Graph{
		"k4":          func() *graph.Graph { return fillinTestComplete(4) },
		"path5":       func() *graph.Graph { return fillinTestPath(5) },
		"cycle5":      fillinTestCycle5,
		"twoTriangle": fillinTestTwoTriangles,
		"star5":       func() *graph.Graph { return fillinTestStar(5) },
	} {
		t.Run(name, func(t *testing.T) {
			g := build()
			n := g.NodesLen()
			idx := priority.New(n)
			for v := 0; v < n; v++ {
				f := fillinOf(g, v)
				idx.Add(v, f)
				g.SetPriorityIndex(v, f)
			}

			live := g.N()
			for i := 0; i < live; i++ {
				v := idx.MinVertex()
				require.NotEqual(t, -1, v)
				fillinStep(g, idx, v)

				for w := 0; w < n; w++ {
					if g.Vertex(w).IsDeleted() {
						continue
					}
					require.Equal(t, fillinOf(g, w), idx.Bucket(w), "fillin(%d) drifted after eliminating %d", w, v)
				}
			}
		})
	}
}

func fillinTestComplete(n int) *graph.Graph {
	g := graph.Create(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			g.AddEdge(u, v)
		}
	}
	return g
}

func fillinTestPath(n int) *graph.Graph {
	g := graph.Create(n)
	for v := 0; v+1 < n; v++ {
		g.AddEdge(v, v+1)
	}
	return g
}

func fillinTestCycle5() *graph.Graph {
	g := fillinTestPath(5)
	g.AddEdge(4, 0)
	return g
}

func fillinTestTwoTriangles() *graph.Graph {
	g := graph.Create(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	g.AddEdge(1, 3)
	g.AddEdge(2, 3)
	return g
}

func fillinTestStar(leaves int) *graph.Graph {
	g := graph.Create(leaves + 1)
	for i := 1; i <= leaves; i++ {
		g.AddEdge(0, i)
	}
	return g
}
