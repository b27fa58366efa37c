package graph

import "github.com/usernamesimon/elimord/bitset"

// DeleteVertex removes v from the live graph: every edge incident to v is
// deleted first (keeping neighbors' degrees and m consistent), then v is
// flagged deleted and n is decremented. v's row is left readable but
// semantically stale, and its slot in the vertex slab is retained for id
// stability. Out-of-range or already-deleted ids are ignored.
//
// DeleteVertex does not touch any priority index: package graph has no
// knowledge of package priority. Callers that track v in a bucket index
// must remove it themselves before or after calling DeleteVertex.
func (g *Graph) DeleteVertex(v int) {
	if v < 0 || v >= g.nodesLen || g.nodes[v].deleted {
		return
	}
	row := g.rows[v]
	for u := bitset.NextSet(row, 0); u != -1; u = bitset.NextSet(row, u+1) {
		g.DeleteEdge(v, u)
	}
	g.nodes[v].deleted = true
	g.n--
}
