package ordering

import (
	"github.com/usernamesimon/elimord/graph"
	"github.com/usernamesimon/elimord/priority"
)

// Degree runs the minimum-degree heuristic on g, consuming it, and returns
// the resulting elimination ordering together with the induced treewidth
// upper bound.
func Degree(g *graph.Graph) (order []int, width int) {
	n := g.NodesLen()
	idx := priority.New(n)
	for v := 0; v < n; v++ {
		if g.Vertex(v).IsDeleted() {
			continue
		}
		d := g.Vertex(v).Degree()
		idx.Add(v, d)
		g.SetPriorityIndex(v, d)
	}

	order = g.Ordering()
	var buf []int
	live := g.N()
	for i := 0; i < live; i++ {
		v := idx.MinVertex()
		if v == -1 {
			break
		}
		idx.Remove(v)
		g.SetPriorityIndex(v, -1)

		deg, neighbors := g.Eliminate(v, buf)
		buf = neighbors
		if deg > width {
			width = deg
		}
		order[i] = v

		// Move every former neighbor to its post-elimination degree.
		for _, w := range neighbors {
			if g.Vertex(w).IsDeleted() {
				continue
			}
			nd := g.Vertex(w).Degree()
			idx.Move(w, nd)
			g.SetPriorityIndex(w, nd)
		}
	}
	return order, width
}
