// Package bitset implements fixed-width bit rows used as adjacency-matrix
// rows by package graph.
//
// A Row is a slice of 64-bit words, one bit per vertex index. All rows that
// participate in the same computation share the same width (WordsFor(n)),
// so the package never needs to grow or shrink a Row once allocated — the
// graph allocates rows up front and they stay that size for the life of
// the graph.
//
// This is a simplified re-grounding of gaissmai/bart's internal/bitset
// package: word-packed []uint64 storage, math/bits.OnesCount64 for exact
// popcount, and math/bits.TrailingZeros64 for next-set-bit — but fixed
// width rather than growable, since graph rows are never resized once
// created.
//
// Bit ordering is little-endian within a word (bit v lives at word v/64,
// position v%64), the same convention math/bits uses natively, letting
// every operation below delegate straight to math/bits.
package bitset
