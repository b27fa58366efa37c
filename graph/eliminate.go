package graph

import "github.com/usernamesimon/elimord/bitset"

// Eliminate removes vertex v from the graph after turning its open
// neighborhood into a clique: for every neighbor w of v, row[w] becomes
// row[w] | row[v] with the self-bit cleared, and w's degree is recomputed
// from the result. v is then deleted. Eliminate returns v's degree at the
// moment of elimination (the induced treewidth upper bound is the maximum
// of these values across a full run), or -1 if v is out of range or
// already deleted.
//
// buf is reused when its capacity holds v's degree (a new slice is
// allocated otherwise) and is filled with v's neighbor ids (in ascending
// order) before elimination;
// this lets callers (the min-degree driver) recover the touched neighbor
// set without a second pass over the row. buf's length, not capacity, is
// what callers should rely on: Eliminate returns the filled slice.
func (g *Graph) Eliminate(v int, buf []int) (width int, neighbors []int) {
	if v < 0 || v >= g.nodesLen || g.nodes[v].deleted {
		return -1, buf[:0]
	}

	deg := g.nodes[v].degree
	row := g.rows[v]

	if cap(buf) < deg {
		buf = make([]int, 0, deg)
	}
	buf = buf[:0]
	for w := bitset.NextSet(row, 0); w != -1; w = bitset.NextSet(row, w+1) {
		buf = append(buf, w)
	}

	added := 0
	for _, w := range buf {
		wrow := g.rows[w]
		before := g.nodes[w].degree
		bitset.OrInto(wrow, row)
		wrow.Clear(w)
		g.nodes[w].degree = bitset.PopCount(wrow)
		added += g.nodes[w].degree - before
	}
	// Every new clique edge raised the degree of both its endpoints.
	g.m += added / 2

	g.DeleteVertex(v)
	return deg, buf
}
