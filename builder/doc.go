// Package builder assembles graph.Graph fixtures (paths, cycles, complete
// graphs, stars, Erdos-Renyi random sparse graphs) for tests, benchmarks,
// and the command-line front-end.
//
// It keeps the functional-options shape of the example corpus's own
// builder package — a Constructor closure capturing its topology
// parameters, resolved against a builderConfig assembled from
// BuilderOption values, run by a single BuildGraph orchestrator — stripped
// down to what an int-labeled simple graph needs: no weight function, no
// directedness, no ID scheme, since graph.Graph has none of those axes.
package builder
