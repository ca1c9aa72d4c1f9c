package graph

import "github.com/pijul-go/graphcore/ids"

// VertexId indexes Graph.Lines. It is an arena position, assigned in
// discovery order during Retrieve, and is unrelated to the vertex's
// store Key.
type VertexId uint32

// DummyVertex is line 0: the sentinel "dummy sink" every vertex with no
// real successor points to, giving the graph a common descendant.
const DummyVertex VertexId = 0

// Child is one adjacency-array slot: the edge that was followed to reach
// To, or nil when To is the dummy sink stood in for "no real children".
type Child struct {
	Edge *ids.Edge
	To   VertexId
}

// Line is one vertex in the retrieved graph.
type Line struct {
	// Key is the store key this vertex represents. Line 0 carries
	// ids.RootKey.
	Key ids.Key
	// Zombie marks a vertex that is half-deleted: it has an ingoing
	// PARENT_EDGE|DELETED_EDGE edge but is still reachable (spec §4.2's
	// zombie probe).
	Zombie bool

	childrenOff int
	nChildren   int

	// Tarjan bookkeeping, filled in by package tarjan (package conflict
	// reads SCC). Zero/false until that pass runs.
	Visited bool
	Index   int
	Lowlink int
	OnStack bool
	SCC     int
}

// Graph is the flattened snapshot produced by Retrieve: an arena of
// Lines plus one shared adjacency array. Every non-sentinel vertex owns
// a contiguous range of Children; a vertex with no real successors owns
// a single slot pointing at DummyVertex.
type Graph struct {
	Lines    []Line
	Children []Child
}

// Line returns the vertex at id.
func (g *Graph) Line(id VertexId) *Line { return &g.Lines[id] }

// ChildrenOf returns i's adjacency slice: the children it was given
// during Retrieve, each carrying the edge that was followed (nil for the
// synthetic no-children slot).
func (g *Graph) ChildrenOf(i VertexId) []Child {
	l := &g.Lines[i]
	return g.Children[l.childrenOff : l.childrenOff+l.nChildren]
}

// NumVertices returns the number of vertices in the arena, including the
// dummy sink.
func (g *Graph) NumVertices() int { return len(g.Lines) }
