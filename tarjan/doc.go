// Package tarjan computes strongly connected components of a retrieved
// graph.Graph using an iterative form of Tarjan's algorithm, with an
// explicit work stack rather than recursion so that the depth of a
// repository's history never risks blowing the Go call stack.
//
// Components are numbered in reverse topological order: a component
// whose vertices are only reached from other components (a leaf of the
// SCC quotient DAG) always gets a smaller index than one of its
// ancestors. Package conflict relies on this ordering: it starts its walk
// at the highest-numbered component (the root) and descends.
package tarjan
