package graph

import (
	"github.com/sirupsen/logrus"

	"github.com/pijul-go/graphcore/ids"
	"github.com/pijul-go/graphcore/store"
)

// forwardMask is the highest numeric flag value a forward edge (neither
// parent nor deleted) may carry: PSEUDO_EDGE | FOLDER_EDGE | EPSILON_EDGE.
// ParentEdge and DeletedEdge both outrank it numerically, so a plain
// "flag <= forwardMask" comparison is enough to exclude them (spec §4.2
// step 2).
const forwardMask = ids.PseudoEdge | ids.FolderEdge | ids.EpsilonEdge

// Retrieve walks branch from key0 through r and builds the Graph
// reachable from it (spec §4.2). A key0 with no stored edges is not an
// error: the result then holds only the dummy sink.
func Retrieve(r store.CanRead, branch string, key0 ids.Key) (*Graph, error) {
	g := &Graph{Lines: []Line{{Key: ids.RootKey}}}

	cache := make(map[ids.Key]VertexId, 64)
	cache[ids.RootKey] = DummyVertex

	has, err := r.HasAnyEdge(branch, key0)
	if err != nil {
		return nil, err
	}
	var stack []ids.Key
	if has {
		stack = append(stack, key0)
	}

	for len(stack) > 0 {
		key := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := cache[key]; seen {
			// DFS revisiting a key already reached by another path.
			continue
		}

		id := VertexId(len(g.Lines))
		cache[key] = id

		zombie, err := isZombie(r, branch, key, key == key0)
		if err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{"key": key, "zombie": zombie}).Trace("graph: visiting vertex")

		l := Line{Key: key, Zombie: zombie, childrenOff: len(g.Children)}

		edges, err := r.EdgesFrom(branch, key, ids.ZeroEdge(0))
		if err != nil {
			return nil, err
		}
		var lastFlag ids.EdgeFlags
		lastDest := ids.RootKey
		haveLast := false
		for _, e := range edges {
			if e.Flag > forwardMask {
				break
			}
			if haveLast && lastFlag == ids.PseudoEdge && e.Flag == ids.PseudoEdge && lastDest == e.Dest {
				continue // consecutive doubled pseudo-edge, spec §4.2 step 2
			}
			ecopy := e
			g.Children = append(g.Children, Child{Edge: &ecopy, To: DummyVertex})
			l.nChildren++
			if _, seen := cache[e.Dest]; !seen {
				stack = append(stack, e.Dest)
			}
			lastFlag, lastDest, haveLast = e.Flag, e.Dest, true
		}
		if l.nChildren == 0 {
			g.Children = append(g.Children, Child{To: DummyVertex})
			l.nChildren = 1
		}
		g.Lines = append(g.Lines, l)
	}

	// Backfill placeholders now that every reachable key has a VertexId.
	for i := range g.Children {
		c := &g.Children[i]
		if c.Edge == nil {
			continue
		}
		if idx, ok := cache[c.Edge.Dest]; ok {
			c.To = idx
		}
	}

	return g, nil
}

// isZombie runs the spec §4.2 zombie probe for key: it is half-deleted
// if a PARENT_EDGE|DELETED_EDGE ingoing edge exists and either key is not
// key0 (in which case the forward walk already proved an alive path
// reaches it), or key is key0 and an alive PARENT_EDGE ingoing edge is
// also found.
func isZombie(r store.CanRead, branch string, key ids.Key, isKey0 bool) (bool, error) {
	deletedProbe := ids.ZeroEdge(ids.ParentEdge | ids.DeletedEdge)
	found, err := r.EdgesFrom(branch, key, deletedProbe)
	if err != nil {
		return false, err
	}
	if len(found) == 0 || found[0].Flag.WithFolder() != deletedProbe.Flag.WithFolder() {
		return false, nil
	}
	if !isKey0 {
		return true, nil
	}

	aliveProbe := ids.ZeroEdge(ids.ParentEdge)
	alive, err := r.EdgesFrom(branch, key, aliveProbe)
	if err != nil {
		return false, err
	}
	if len(alive) == 0 {
		return false, nil
	}
	return alive[0].Flag.WithFolder() == aliveProbe.Flag.WithFolder(), nil
}
