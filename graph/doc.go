// Package graph implements the mutable undirected graph store at the heart
// of elimord: a fixed-size vertex slab paired with a bitset adjacency
// matrix (package bitset), supporting the operations the elimination
// heuristics need — HasEdge, AddEdge, DeleteEdge, DeleteVertex, and the
// Eliminate workhorse that turns a vertex's open neighborhood into a clique
// and returns its degree at the moment of elimination.
//
// A Graph is born full and shrinks monotonically: vertices move live ->
// deleted, never back. Edges may be added (fill-in) or removed (on
// deletion) but neither is undone within a run. To run more than one
// heuristic against the same input, callers Clone() first.
//
// Graph does not know about package priority; package priority does not
// know about Graph. The heuristic drivers in package ordering are the only
// code that reads from one and writes to the other.
//
// Invalid vertex ids passed to public operations are silently ignored,
// keeping the hot path branch-light. DegreeOf returns the sentinel
// math.MaxInt for a missing vertex; Eliminate returns -1.
//
// Graph is not safe for concurrent use on the same instance; distinct
// Graph values are fully independent and may be driven from different
// goroutines without coordination.
package graph
