package graph

import "github.com/usernamesimon/elimord/bitset"

// Clone returns a deep, independent copy of g: vertex slab, adjacency rows,
// and the ordering slice are all copied, so any operation on the clone
// leaves g unchanged and vice versa. Clone never inspects or copies any
// priority index, consistent with the one-way data flow between package
// graph and package priority — callers that need a fresh priority index
// over the clone build one from scratch (ordering.MCS does exactly this
// for its width-replay copy).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		nodesLen: g.nodesLen,
		n:        g.n,
		m:        g.m,
		rowWords: g.rowWords,
		nodes:    make([]Vertex, g.nodesLen),
		rows:     make([]bitset.Row, g.nodesLen),
		ordering: make([]int, g.nodesLen),
	}
	copy(c.nodes, g.nodes)
	for i := range g.rows {
		c.rows[i] = g.rows[i].Clone()
	}
	copy(c.ordering, g.ordering)
	return c
}
