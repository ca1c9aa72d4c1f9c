package conflict

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/pijul-go/graphcore/graph"
	"github.com/pijul-go/graphcore/ids"
	"github.com/pijul-go/graphcore/store"
)

// callFrame is one explicit work-stack entry for Run, standing in for a
// recursive visit to SCC scc. forwardSCC accumulates the child SCCs
// reached by a forward (non-conflicting, already-ordered) edge;
// descendants holds the remaining topologically-sorted children still to
// process on resume (computed when the frame is popped with resumed
// false).
type callFrame struct {
	scc         int
	forwardSCC  map[int]bool
	descendants []int
	resumed     bool
}

// conflictFrame tracks one currently-open conflict: the SCC it began at
// and the SCC (possibly still shrinking) at which it is known to
// converge.
type conflictFrame struct {
	scc, end int
}

// Run performs the spec §4.4 conflict-detecting depth-first numbering of
// sccs (produced by package tarjan, in reverse topological order) over
// g, assigning dfs.Visits' first/last/begins_conflict/ends_conflict
// fields as a side effect and returning the list of redundant pseudo
// edges discovered along the way (spec §4.9's pruning input).
func Run(r store.CanRead, branch string, g *graph.Graph, sccs [][]graph.VertexId) (*DFS, []ForwardEdge, error) {
	dfs := NewDFS(len(sccs))
	var forward []ForwardEdge

	callStack := []callFrame{{scc: len(sccs) - 1, forwardSCC: map[int]bool{}}}
	var conflictStack []conflictFrame

	for len(callStack) > 0 {
		top := callStack[len(callStack)-1]
		callStack = callStack[:len(callStack)-1]

		dfs.markDiscovered(top.scc)
		isFirstVisit := !top.resumed

		descendants := top.descendants
		if !top.resumed {
			for _, cousin := range sccs[top.scc] {
				for _, ch := range g.ChildrenOf(cousin) {
					if ch.Edge != nil && ch.Edge.Flag.Has(ids.FolderEdge) {
						continue
					}
					childComponent := g.Line(ch.To).SCC
					if childComponent < top.scc {
						descendants = append(descendants, childComponent)
					}
				}
			}
			sort.Ints(descendants)
		}

		recursiveCall := -1
		for len(descendants) > 0 {
			child := descendants[len(descendants)-1]
			descendants = descendants[:len(descendants)-1]

			switch {
			case dfs.Visits[child].First == 0:
				if !isFirstVisit {
					dfs.HasConflicts = true
					dfs.Visits[top.scc].BeginsConflict = top.scc
					if len(conflictStack) > 0 {
						last := conflictStack[len(conflictStack)-1]
						if last.scc != top.scc {
							conflictStack = append(conflictStack, conflictFrame{scc: top.scc, end: top.scc})
						}
					} else {
						conflictStack = append(conflictStack, conflictFrame{scc: top.scc, end: top.scc})
					}
				}
				recursiveCall = child
			case dfs.Visits[top.scc].First < dfs.Visits[child].First:
				// Forward edge: child was already numbered after us.
				top.forwardSCC[child] = true
			default:
				// Cross edge: child closes a conflict early.
				for i := range conflictStack {
					if child < conflictStack[i].end {
						conflictStack[i].end = child
					}
				}
				dfs.Visits[child].EndsConflict = true
			}
			if recursiveCall >= 0 {
				break
			}
		}

		if recursiveCall >= 0 {
			callStack = append(callStack, callFrame{
				scc: top.scc, forwardSCC: top.forwardSCC, descendants: descendants, resumed: true,
			})
			callStack = append(callStack, callFrame{scc: recursiveCall, forwardSCC: map[int]bool{}})
			continue
		}

		dfs.markLastVisit(top.scc)
		if dfs.Visits[top.scc].BeginsConflict != noConflict {
			last := conflictStack[len(conflictStack)-1]
			conflictStack = conflictStack[:len(conflictStack)-1]
			logrus.WithFields(logrus.Fields{"scc": top.scc, "end": last.end}).Trace("conflict: begins_conflict resolved")
			dfs.Visits[top.scc].BeginsConflict = last.end
		}

		var err error
		forward, err = collectRedundantEdges(r, branch, g, sccs[top.scc], top.forwardSCC, forward)
		if err != nil {
			return nil, nil, err
		}
	}

	return dfs, forward, nil
}

// collectRedundantEdges scans every child edge of scc's vertices and
// appends to forward every pseudo-edge that either (a) is a forward edge
// of the DAG and not itself marked deleted, or (b) is a parallel
// duplicate pseudo-edge to the same destination as one already kept —
// in both cases redundant for connectivity (spec §4.4's final step).
func collectRedundantEdges(r store.CanRead, branch string, g *graph.Graph, scc []graph.VertexId, forwardSCC map[int]bool, forward []ForwardEdge) ([]ForwardEdge, error) {
	for _, cousin := range scc {
		cousinKey := g.Line(cousin).Key
		for _, ch := range g.ChildrenOf(cousin) {
			if ch.Edge == nil {
				continue
			}
			edge := *ch.Edge
			childSCC := g.Line(ch.To).SCC

			isForwardOfDAG := forwardSCC[childSCC] && edge.Flag.Has(ids.PseudoEdge)
			if isForwardOfDAG {
				deleted, err := hasDeletedVariant(r, branch, cousinKey, edge.Dest)
				if err != nil {
					return nil, err
				}
				isForwardOfDAG = !deleted
			}

			if isForwardOfDAG {
				forward = append(forward, ForwardEdge{Key: cousinKey, Edge: edge})
				continue
			}

			// Not itself the DAG's chosen forward edge (or it is
			// deleted); check for parallel pseudo-edges to the same
			// destination, which are redundant regardless.
			probe := ids.Edge{Flag: ids.PseudoEdge, Dest: edge.Dest, IntroducedBy: ids.RootPatchId}
			siblings, err := r.EdgesFrom(branch, cousinKey, probe)
			if err != nil {
				return nil, err
			}
			skippedFirst := false
			for _, sib := range siblings {
				if sib.Dest != edge.Dest || sib.Flag > (ids.FolderEdge|ids.PseudoEdge) {
					break
				}
				if !skippedFirst {
					skippedFirst = true
					continue
				}
				forward = append(forward, ForwardEdge{Key: cousinKey, Edge: sib})
			}
		}
	}
	return forward, nil
}

// hasDeletedVariant reports whether key has a stored edge to dest
// carrying DELETED_EDGE.
func hasDeletedVariant(r store.CanRead, branch string, key, dest ids.Key) (bool, error) {
	edges, err := r.Edges(branch, key)
	if err != nil {
		return false, err
	}
	for _, e := range edges {
		if e.Dest == dest && e.Flag.Has(ids.DeletedEdge) {
			return true, nil
		}
	}
	return false, nil
}
