package treedecomp

import (
	"errors"

	"github.com/usernamesimon/elimord/graph"
)

// ErrNotImplemented is returned unconditionally by FromOrdering.
var ErrNotImplemented = errors.New("treedecomp: elimination-ordering to tree-decomposition conversion is not implemented")

// Decomposition would hold the bags and tree structure of a tree
// decomposition; it is defined now so FromOrdering's signature does not
// need to change once the conversion is implemented.
type Decomposition struct {
	Bags    [][]int
	Parent  []int
	Width   int
}

// FromOrdering would build a tree decomposition from g (consumed destructively,
// as every heuristic driver in package ordering does) and the elimination
// ordering that produced it: each step's eliminated vertex plus its
// still-live neighbors forms one bag, and a bag is parented by the next
// bag to absorb the earliest-eliminated vertex still in the current bag
// (the standard construction from an elimination ordering's fill-in
// graph). That algorithm is not implemented here; this function always
// returns ErrNotImplemented.
func FromOrdering(g *graph.Graph, order []int) (*Decomposition, error) {
	return nil, ErrNotImplemented
}
