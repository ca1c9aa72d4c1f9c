package output

import (
	"github.com/sirupsen/logrus"

	"github.com/pijul-go/graphcore/conflict"
	"github.com/pijul-go/graphcore/graph"
	"github.com/pijul-go/graphcore/store"
	"github.com/pijul-go/graphcore/tarjan"
)

// conflictMarkers tracks the two independent nesting counters a file
// output pass maintains: how many conflict-tree markers are currently
// open, and whether the vertex being emitted right now sits inside an
// unbroken run of zombie vertices (which gets its own begin/end marker
// pair, orthogonal to conflict-tree nesting).
type conflictMarkers struct {
	currentIsZombie  bool
	currentConflicts int
	graph            *graph.Graph
}

func (c *conflictMarkers) outputZombieMarkersIfNeeded(buf LineBuffer, vertex graph.VertexId) error {
	if c.graph.Line(vertex).Zombie {
		if !c.currentIsZombie {
			logrus.WithField("vertex", vertex).Trace("output: begin zombie conflict")
			c.currentIsZombie = true
			if err := buf.OutputConflictMarker(StartMarker); err != nil {
				return err
			}
		}
	} else if c.currentIsZombie {
		c.currentIsZombie = false
		if err := buf.OutputConflictMarker(EndMarker); err != nil {
			return err
		}
	}
	return nil
}

func (c *conflictMarkers) beginConflict(buf LineBuffer) error {
	if err := buf.OutputConflictMarker(StartMarker); err != nil {
		return err
	}
	c.currentConflicts++
	return nil
}

func (c *conflictMarkers) endConflict(buf LineBuffer) error {
	if c.currentConflicts > 0 {
		if err := buf.OutputConflictMarker(EndMarker); err != nil {
			return err
		}
		c.currentConflicts--
	}
	return nil
}

// File renders g's retrieved graph into buf in dependency order, with
// conflict and zombie markers spliced in. It reports whether any
// conflict was present (a structural conflict or a zombie vertex), and
// returns the redundant pseudo-edges package
// repo's RemoveRedundantEdges should later prune.
func File(r store.CanRead, branch string, buf LineBuffer, g *graph.Graph) (hasConflicts bool, forward []conflict.ForwardEdge, err error) {
	if g.NumVertices() <= 1 {
		return false, nil, nil
	}

	sccs := tarjan.Run(g)
	logrus.WithField("n_sccs", len(sccs)).Debug("output: tarjan done")

	dfs, forward, err := conflict.Run(r, branch, g, sccs)
	if err != nil {
		return false, nil, err
	}

	// An empty OutputLine for the graph's first real vertex precedes any
	// content or marker. Writer ignores empty contents, so with Writer
	// this writes nothing and the cursor stays at column zero, where
	// NewWriter starts it.
	if err := buf.OutputLine(g.Line(graph.VertexId(1)).Key, nil); err != nil {
		return false, nil, err
	}

	tree := conflict.BuildTree(g, sccs, dfs)

	marks := &conflictMarkers{graph: g}
	if err := outputConflict(r, branch, marks, buf, g, sccs, tree); err != nil {
		return false, nil, err
	}
	if err := marks.outputZombieMarkersIfNeeded(buf, graph.DummyVertex); err != nil {
		return false, nil, err
	}

	hasConflicts = dfs.HasConflicts
	for _, l := range g.Lines {
		if l.Zombie {
			hasConflicts = true
			break
		}
	}
	return hasConflicts, forward, nil
}

// outputConflict emits the top-level sequence lines of the conflict
// tree, treated as a single side; nested conflicts are emitted by
// outputSides, which recurses per level. That recursion mirrors
// ConflictLine's own nesting, which is shallow by construction (one
// level per textually-nested conflict region).
func outputConflict(r store.CanRead, branch string, marks *conflictMarkers, buf LineBuffer, g *graph.Graph, sccs [][]graph.VertexId, lines []conflict.ConflictLine) error {
	return outputSides(r, branch, marks, buf, g, sccs, [][]conflict.ConflictLine{lines})
}

func outputSides(r store.CanRead, branch string, marks *conflictMarkers, buf LineBuffer, g *graph.Graph, sccs [][]graph.VertexId, sides [][]conflict.ConflictLine) error {
	nSides := len(sides)
	logrus.WithField("n_sides", nSides).Trace("output: output_conflict")
	if nSides > 1 {
		if err := marks.beginConflict(buf); err != nil {
			return err
		}
	}
	for i, side := range sides {
		if i > 0 {
			if err := buf.OutputConflictMarker(Separator); err != nil {
				return err
			}
		}
		for _, line := range side {
			if line.IsConflict {
				if err := outputSides(r, branch, marks, buf, g, sccs, line.Sides); err != nil {
					return err
				}
				continue
			}
			if err := outputSCC(r, branch, marks, g, sccs[line.SCC], buf); err != nil {
				return err
			}
		}
	}
	if nSides > 1 {
		if err := marks.endConflict(buf); err != nil {
			return err
		}
	}
	return nil
}

// outputSCC emits scc's single vertex's stored content. Every SCC
// reaching here is a singleton: a genuine (non-trivial) strongly
// connected component would mean a cycle survived retrieval, which
// Retrieve's forward-edge-only construction never produces.
func outputSCC(r store.CanRead, branch string, marks *conflictMarkers, g *graph.Graph, scc []graph.VertexId, buf LineBuffer) error {
	if len(scc) != 1 {
		logrus.WithField("scc", scc).Error("output: non-singleton SCC reached output_scc")
		return nil
	}
	v := scc[0]
	if err := marks.outputZombieMarkersIfNeeded(buf, v); err != nil {
		return err
	}
	key := g.Line(v).Key
	contents, err := r.Contents(branch, key)
	if err != nil {
		return err
	}
	if contents != nil {
		if err := buf.OutputLine(key, contents); err != nil {
			return err
		}
	}
	return nil
}
