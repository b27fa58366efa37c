package ordering

import (
	"github.com/usernamesimon/elimord/bitset"
	"github.com/usernamesimon/elimord/graph"
	"github.com/usernamesimon/elimord/priority"
)

// MCS runs maximum-cardinality search on g, consuming it, and returns the
// resulting elimination ordering together with the induced treewidth
// upper bound. Unlike Degree and FillIn, MCS does not eliminate online: it
// only records the ordering, then replays elimination on an internal copy
// of the graph taken before any mutation to compute width.
func MCS(g *graph.Graph) (order []int, width int) {
	n := g.NodesLen()
	replay := g.Clone()

	idx := priority.New(n)
	for v := 0; v < n; v++ {
		if g.Vertex(v).IsDeleted() {
			continue
		}
		idx.Add(v, 0)
		g.SetPriorityIndex(v, 0)
	}

	order = g.Ordering()
	var buf []int
	for i := n - 1; i >= 0; i-- {
		v := mcsPick(g, idx)
		if v == -1 {
			break
		}

		order[i] = v
		g.SetInSet(v)
		idx.Remove(v)
		g.SetPriorityIndex(v, -1)

		row := g.Row(v)
		buf = buf[:0]
		for w := bitset.NextSet(row, 0); w != -1; w = bitset.NextSet(row, w+1) {
			buf = append(buf, w)
		}
		for _, w := range buf {
			if g.Vertex(w).InSet() {
				continue
			}
			nb := idx.Bucket(w) + 1
			idx.Move(w, nb)
			g.SetPriorityIndex(w, nb)
		}

		g.DeleteVertex(v)
	}

	for _, v := range order {
		deg, next := replay.Eliminate(v, buf)
		buf = next
		if deg > width {
			width = deg
		}
	}
	return order, width
}

// mcsPick scans the vertices in idx's max bucket and returns the one with
// the smallest current degree, breaking ties among maximally-connected
// candidates in favor of the sparser vertex.
func mcsPick(g *graph.Graph, idx *priority.Index) int {
	if idx.Empty() {
		return -1
	}
	best := -1
	bestDeg := 0
	for v := idx.Head(idx.MaxBucket()); v != -1; v = idx.Next(v) {
		d := g.Vertex(v).Degree()
		if best == -1 || d < bestDeg {
			best, bestDeg = v, d
		}
	}
	return best
}
