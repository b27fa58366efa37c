// Package priority implements a bucket-indexed priority structure: a
// growable array of doubly-linked lists, heads[k] holding every vertex
// whose current priority equals k, with cursors minPtr/maxPtr bracketing
// the occupied bucket range so the heuristic drivers in package ordering
// can always read off the extremal vertex in O(1).
//
// Index owns a fixed-size slab of per-vertex link nodes addressed by
// vertex id, not by pointer: there is no pointer-fixup logic anywhere
// because there are no pointers, only ids into the graph's own id space.
// Cloning the structure underneath an Index is just copying slices.
//
// Index has no notion of a graph — it never calls into package graph, and
// package graph never calls into it. Vertex ids simply happen to match
// the ids a Graph assigns its vertices; Index trusts its caller (package
// ordering) to keep the two in step.
package priority
