// Package ordering contains the three elimination-ordering heuristic
// drivers: minimum-degree, minimum-fill-in, and maximum-cardinality
// search (MCS).
//
// These are the only place package graph and package priority meet:
// each driver owns one priority.Index, drives one *graph.Graph through
// AddEdge/Eliminate/DeleteVertex, and keeps the two in step by calling
// graph.Graph.SetPriorityIndex alongside every priority.Index mutation.
// Neither package graph nor package priority knows the other exists;
// ordering is the glue.
//
// All three drivers consume their input graph destructively; callers
// wanting to compare heuristics on the same graph must Clone it first.
package ordering
