package tarjan

import (
	"github.com/sirupsen/logrus"

	"github.com/pijul-go/graphcore/graph"
)

// frame is one explicit work-stack entry standing in for a recursive
// call to the classic algorithm: the vertex being visited, the index of
// the next/just-returned child to resume from, and whether this is the
// vertex's first visit (as opposed to a resume after a recursive child
// call returned).
type frame struct {
	vertex     graph.VertexId
	nextChild  int
	firstVisit bool
}

// Run computes the strongly connected components of g (spec §4.3),
// assigning each vertex's SCC field as a side effect, and returns the
// components themselves in reverse topological order: a component only
// reachable from others (a leaf of the SCC quotient DAG) always gets a
// smaller index than its ancestors. Ties among sibling children are
// broken by their order in the adjacency array.
func Run(g *graph.Graph) [][]graph.VertexId {
	if g.NumVertices() <= 1 {
		g.Line(graph.DummyVertex).SCC = 0
		return [][]graph.VertexId{{graph.DummyVertex}}
	}

	callStack := []frame{{vertex: 1, nextChild: 0, firstVisit: true}}
	index := 0
	var stack []graph.VertexId
	var sccs [][]graph.VertexId

	for len(callStack) > 0 {
		top := callStack[len(callStack)-1]
		callStack = callStack[:len(callStack)-1]
		nl := g.Line(top.vertex)

		if top.firstVisit {
			nl.Index = index
			nl.Lowlink = index
			nl.Visited = true
			nl.OnStack = true
			index++
			stack = append(stack, top.vertex)
			logrus.WithField("vertex", top.vertex).Trace("tarjan: first visit")
		} else {
			// Resuming after the child at nextChild finished; fold its
			// lowlink into ours.
			justReturned := g.ChildrenOf(top.vertex)[top.nextChild].To
			if cl := g.Line(justReturned); cl.Lowlink < nl.Lowlink {
				nl.Lowlink = cl.Lowlink
			}
		}

		children := g.ChildrenOf(top.vertex)
		pushedChild := false
		for j := top.nextChild; j < len(children); j++ {
			nChild := children[j].To
			cl := g.Line(nChild)
			if !cl.Visited {
				callStack = append(callStack, frame{vertex: top.vertex, nextChild: j, firstVisit: false})
				callStack = append(callStack, frame{vertex: nChild, nextChild: 0, firstVisit: true})
				pushedChild = true
				break
			}
			if cl.OnStack && cl.Index < nl.Lowlink {
				nl.Lowlink = cl.Index
			}
		}
		if pushedChild {
			continue
		}

		// All of top.vertex's children have been visited.
		if nl.Index == nl.Lowlink {
			var component []graph.VertexId
			for {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				pl := g.Line(p)
				pl.SCC = len(sccs)
				pl.OnStack = false
				component = append(component, p)
				if p == top.vertex {
					break
				}
			}
			sccs = append(sccs, component)
		}
	}
	return sccs
}
