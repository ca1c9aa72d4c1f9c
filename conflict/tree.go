package conflict

import (
	"sort"

	"github.com/pijul-go/graphcore/graph"
	"github.com/pijul-go/graphcore/ids"
)

// treeStateKind distinguishes the two states BuildTree's explicit stack
// cycles through: visiting an SCC for the first time (or resuming after
// a closed conflict), versus evaluating one side of an open conflict.
type treeStateKind int

const (
	stateInit treeStateKind = iota
	stateEvalConflict
)

type treeState struct {
	kind treeStateKind

	// stateInit
	resumeConflict bool

	// stateEvalConflict
	start, end, cur, lastVisit int
	sides                      []side
}

type treeFrame struct {
	scc int
	st  treeState
}

// BuildTree runs the spec §4.5 second iterative DFS over sccs, gated on
// first_visit > last_visit_of_parent so a subtree already emitted is
// never re-entered, and returns the resulting nested ConflictLine
// sequence. dfs must already carry the numbering BuildTree's companion
// pass (Run) produced.
func BuildTree(g *graph.Graph, sccs [][]graph.VertexId, dfs *DFS) []ConflictLine {
	n := len(sccs)
	callStack := []treeFrame{{
		scc: n - 1,
		st: treeState{
			kind: stateEvalConflict, start: n - 1, end: 0, cur: 1,
			sides: []side{{next: n - 1}},
		},
	}}

	for len(callStack) > 0 {
		top := callStack[len(callStack)-1]
		callStack = callStack[:len(callStack)-1]
		i := top.scc
		st := top.st

		switch st.kind {
		case stateInit:
			buildTreeInit(g, sccs, dfs, i, st, &callStack)
		case stateEvalConflict:
			if result, done := buildTreeEval(dfs, i, st, &callStack); done {
				return result
			}
		}
	}
	panic("conflict: BuildTree exhausted its work stack without returning")
}

func buildTreeInit(g *graph.Graph, sccs [][]graph.VertexId, dfs *DFS, i int, st treeState, callStack *[]treeFrame) {
	dfs.Visits[i].Output = true

	if dfs.Visits[i].EndsConflict && !st.resumeConflict {
		if n := len(*callStack); n > 0 {
			parent := &(*callStack)[n-1]
			if parent.st.kind == stateEvalConflict {
				parent.st.sides[parent.st.cur].next = i
			}
		}
		return
	}

	if n := len(*callStack); n > 0 {
		parent := &(*callStack)[n-1]
		if parent.st.kind == stateEvalConflict {
			parent.st.sides[parent.st.cur].line = append(parent.st.sides[parent.st.cur].line, ConflictLine{SCC: i})
		}
	}

	if dfs.Visits[i].BeginsConflict != noConflict {
		end := dfs.Visits[i].BeginsConflict
		var sides []side
		for _, cousin := range sccs[i] {
			for _, ch := range g.ChildrenOf(cousin) {
				if ch.Edge != nil && ch.Edge.Flag.Has(ids.FolderEdge) {
					continue
				}
				sides = append(sides, side{next: g.Line(ch.To).SCC})
			}
		}
		sort.SliceStable(sides, func(a, b int) bool { return sides[a].next < sides[b].next })
		*callStack = append(*callStack, treeFrame{scc: i, st: treeState{
			kind: stateEvalConflict, start: i, end: end, cur: len(sides), sides: sides,
		}})
		return
	}

	maxSCC := -1
	for _, cousin := range sccs[i] {
		for _, ch := range g.ChildrenOf(cousin) {
			if ch.Edge != nil && ch.Edge.Flag.Has(ids.FolderEdge) {
				continue
			}
			if next := g.Line(ch.To).SCC; next > maxSCC {
				maxSCC = next
			}
		}
	}
	if maxSCC >= 0 {
		*callStack = append(*callStack, treeFrame{scc: maxSCC, st: treeState{kind: stateInit}})
	}
}

// buildTreeEval handles one stateEvalConflict frame. done is true only
// when the whole traversal is complete, in which case result is the
// final line sequence.
func buildTreeEval(dfs *DFS, i int, st treeState, callStack *[]treeFrame) (result []ConflictLine, done bool) {
	if st.cur > 0 {
		next := st.sides[st.cur-1].next
		visitNext := dfs.Visits[next].First > st.lastVisit
		lastVisit := st.lastVisit
		if visitNext {
			lastVisit = dfs.Visits[next].Last
		}
		*callStack = append(*callStack, treeFrame{scc: i, st: treeState{
			kind: stateEvalConflict, start: st.start, end: st.end,
			cur: st.cur - 1, lastVisit: lastVisit, sides: st.sides,
		}})
		if visitNext {
			*callStack = append(*callStack, treeFrame{scc: next, st: treeState{
				kind: stateInit, resumeConflict: dfs.Visits[next].EndsConflict,
			}})
		}
		return nil, false
	}

	if len(*callStack) == 0 {
		if len(st.sides) != 1 {
			panic("conflict: BuildTree finished with more than one open side")
		}
		return st.sides[0].line, true
	}

	sort.SliceStable(st.sides, func(a, b int) bool { return st.sides[a].next < st.sides[b].next })

	firstNonEmpty := -1
	for _, s := range st.sides {
		if len(s.line) > 0 {
			firstNonEmpty = s.next
			break
		}
	}
	conflictIsOver := true
	for _, s := range st.sides {
		if len(s.line) != 0 && s.next != firstNonEmpty {
			conflictIsOver = false
			break
		}
	}

	if conflictIsOver {
		var current [][]ConflictLine
		for _, s := range st.sides {
			if len(s.line) > 0 {
				current = append(current, s.line)
			}
		}
		if n := len(*callStack); n > 0 {
			parent := &(*callStack)[n-1]
			if parent.st.kind == stateEvalConflict {
				parent.st.sides[parent.st.cur].line = append(parent.st.sides[parent.st.cur].line, ConflictLine{IsConflict: true, Sides: current})
			}
		}
		*callStack = append(*callStack, treeFrame{scc: st.end, st: treeState{kind: stateInit, resumeConflict: true}})
		return nil, false
	}

	var reduced []side
	next := st.sides[0].next
	var current [][]ConflictLine
	for _, s := range st.sides {
		if len(s.line) == 0 {
			continue
		}
		if s.next != next {
			if len(current) > 0 {
				reduced = append(reduced, side{next: next, line: []ConflictLine{{IsConflict: true, Sides: current}}})
			}
			current = nil
			next = s.next
		}
		current = append(current, s.line)
	}
	if len(current) > 0 {
		reduced = append(reduced, side{next: next, line: []ConflictLine{{IsConflict: true, Sides: current}}})
	}
	if len(reduced) <= 1 {
		panic("conflict: BuildTree conflict reduction collapsed to a single side")
	}
	*callStack = append(*callStack, treeFrame{scc: i, st: treeState{
		kind: stateEvalConflict, start: st.start, end: st.end, cur: len(reduced), sides: reduced,
	}})
	return nil, false
}
