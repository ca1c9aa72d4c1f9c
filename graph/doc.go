// Package graph builds the in-memory snapshot of a repository's state at
// a branch, rooted at a single file-header key.
//
// Retrieve walks the persistent nodes table reachable from that key and
// flattens it into a Graph: a vertex arena (Lines) plus one flat
// adjacency array (Children) shared by every vertex, so SCC and DFS
// (packages tarjan and conflict) can index children in O(1) without
// touching the store again. VertexId is an arena index, not the store's
// Key — this is what lets those later passes hold a whole repository's
// worth of vertices without a map lookup per edge.
package graph
