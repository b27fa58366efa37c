package graph

import (
	"math/bits"

	"github.com/usernamesimon/elimord/bitset"
)

// HasEdge reports whether the undirected edge {u,v} exists. Out-of-range
// indices return false rather than panicking.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.nodesLen || v < 0 || v >= g.nodesLen {
		return false
	}
	return g.rows[u].Test(v)
}

// AddEdge adds the undirected edge {u,v}, idempotently: if the edge already
// exists this is a no-op. Self-loops (u==v) are forbidden and are treated
// as a no-op rather than corrupting the degree/edge counts. Out-of-range
// indices are ignored.
func (g *Graph) AddEdge(u, v int) {
	if u < 0 || u >= g.nodesLen || v < 0 || v >= g.nodesLen || u == v {
		return
	}
	if g.rows[u].Test(v) {
		return
	}
	g.rows[u].Set(v)
	g.rows[v].Set(u)
	g.nodes[u].degree++
	g.nodes[v].degree++
	g.m++
}

// DeleteEdge removes the undirected edge {u,v}. Behavior is undefined if
// the edge does not exist; callers must guard with HasEdge first.
// Out-of-range indices are ignored.
func (g *Graph) DeleteEdge(u, v int) {
	if u < 0 || u >= g.nodesLen || v < 0 || v >= g.nodesLen || u == v {
		return
	}
	g.rows[u].Clear(v)
	g.rows[v].Clear(u)
	g.nodes[u].degree--
	g.nodes[v].degree--
	g.m--
}

// CardinalityIn returns the number of id's live neighbors that are also set
// in set, e.g. how many already-placed vertices a candidate neighbors.
func (g *Graph) CardinalityIn(id int, set bitset.Row) int {
	if id < 0 || id >= g.nodesLen {
		return 0
	}
	row := g.rows[id]
	width := len(row)
	if len(set) < width {
		width = len(set)
	}
	n := 0
	for i := 0; i < width; i++ {
		n += bits.OnesCount64(row[i] & set[i])
	}
	return n
}
