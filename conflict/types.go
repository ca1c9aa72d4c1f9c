package conflict

import "github.com/pijul-go/graphcore/ids"

// noConflict is the BeginsConflict sentinel meaning "does not begin a
// conflict" (Rust's None); SCC indices are never negative, so -1 is safe.
const noConflict = -1

// Visit carries one SCC's numbering and conflict bookkeeping, mutated in
// place across both the numbering pass (Run) and the tree pass
// (BuildTree).
type Visit struct {
	First int
	Last  int
	// BeginsConflict is noConflict, or the SCC at which an open conflict
	// that began here eventually converges.
	BeginsConflict int
	EndsConflict   bool
	// Output is set by BuildTree when it reaches this SCC. BuildTree does
	// not read it back: re-visits are excluded by its first/last-visit
	// comparison.
	Output bool
}

// DFS holds the conflict-detecting numbering pass's full state: one
// Visit per SCC index, a monotonically increasing discovery/finish
// counter, and whether any conflict was observed at all.
type DFS struct {
	Visits      []Visit
	counter     int
	HasConflicts bool
}

// NewDFS allocates a DFS state for n SCCs, all unvisited.
func NewDFS(n int) *DFS {
	visits := make([]Visit, n)
	for i := range visits {
		visits[i].BeginsConflict = noConflict
	}
	return &DFS{Visits: visits, counter: 1}
}

func (d *DFS) markDiscovered(scc int) {
	if d.Visits[scc].First == 0 {
		d.Visits[scc].First = d.counter
		d.counter++
	}
}

func (d *DFS) markLastVisit(scc int) {
	d.markDiscovered(scc)
	d.Visits[scc].Last = d.counter
	d.counter++
}

// ForwardEdge is one (source key, edge) pair the numbering pass proved
// redundant: a pseudo-edge whose connectivity purpose is already
// subsumed by the DAG structure. Package repo's RemoveRedundantEdges
// deletes exactly this list.
type ForwardEdge struct {
	Key  ids.Key
	Edge ids.Edge
}

// ConflictLine is one line of a conflict_tree: either a single SCC
// (Line) or a set of sides that diverge and later reconverge
// (Conflict). Exactly one of the two is populated, selected by
// IsConflict.
type ConflictLine struct {
	IsConflict bool
	SCC        int
	Sides      [][]ConflictLine
}

// side is one branch of an in-progress conflict: the SCC its line
// sequence will reconverge at (next), and the lines accumulated so far.
type side struct {
	next int
	line []ConflictLine
}
