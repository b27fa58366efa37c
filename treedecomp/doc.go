// Package treedecomp is the placeholder for turning a completed
// elimination ordering into an actual tree decomposition: the bags formed
// by each eliminated vertex and its still-live neighbors at the moment of
// elimination are themselves the nodes of a tree decomposition, parented
// by whichever later bag first absorbs the earliest-eliminated member of
// the current bag. The conversion itself is not implemented; FromOrdering
// reports that explicitly rather than silently returning an empty result.
package treedecomp
