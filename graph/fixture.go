package graph

import "github.com/pijul-go/graphcore/ids"

// NewFixture builds a Graph directly from a plain adjacency list,
// bypassing Retrieve and the store entirely. adj[i] lists the children
// of vertex i+1 (vertex 0, the dummy sink, is implicit and never listed);
// an empty entry gets the usual single dummy-sink slot. It exists so
// that tarjan, conflict and output can exercise their algorithms against
// hand-built graphs without standing up a store.
func NewFixture(adj [][]VertexId) *Graph {
	g := &Graph{Lines: []Line{{Key: ids.RootKey}}}
	for _, children := range adj {
		l := Line{childrenOff: len(g.Children)}
		if len(children) == 0 {
			g.Children = append(g.Children, Child{To: DummyVertex})
			l.nChildren = 1
		} else {
			for _, c := range children {
				g.Children = append(g.Children, Child{To: c})
				l.nChildren++
			}
		}
		g.Lines = append(g.Lines, l)
	}
	return g
}
