// Package diagram provides the typed diagram model the validation engine
// reads: nodes with a semantic identity, edges, predicate-filtered adjacency
// queries and a bounded breadth-first traversal.
//
// The engine never mutates a diagram. Identity resolution for constructor
// nodes happens inside this package, strictly on structural changes
// (AddEdge/RemoveEdge), never during rule evaluation.
package diagram
