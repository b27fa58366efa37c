// Package ioadj reads and writes the textual formats this project uses
// to exchange graphs and orderings: an adjacency-list graph format, a
// one-line ordering format, and a debug graph dump that additionally
// marks deleted vertices. Unlike the graph and priority operations, which
// guard and ignore invalid ids, these return real errors, since malformed
// input has no sentinel-value fallback a caller could reasonably continue
// with.
package ioadj
