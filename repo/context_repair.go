package repo

import (
	"github.com/pijul-go/graphcore/ids"
	"github.com/pijul-go/graphcore/store"
)

// collected is one edge context repair has decided to delete: the
// vertex it is stored under (Source) and its forward-direction value.
type collected struct {
	Source ids.Key
	Edge   ids.Edge
}

// contextRepair implements spec §4.8's context repair: starting from
// key, walk upward along PARENT_EDGE|PSEUDO_EDGE edges introduced_by
// pid (collecting the forward edge each one mirrors), and downward
// along PSEUDO_EDGE edges introduced_by pid, then deletes every
// collected edge pair. Resolved Open Question (i): collected edges
// dedup on destination key, not source, per the spec's own preference —
// implemented here as a map keyed by Edge.Dest.
func contextRepair(w *store.WriteTx, branch string, key ids.Key, pid ids.PatchId) error {
	dedup := make(map[ids.Key]collected)

	if err := walkUp(w, branch, key, pid, dedup); err != nil {
		return err
	}
	if err := walkDown(w, branch, key, pid, dedup); err != nil {
		return err
	}

	for _, c := range dedup {
		if err := w.DelEdgeBothDirs(branch, c.Source, c.Edge); err != nil {
			return err
		}
	}
	return nil
}

const upMask = ids.ParentEdge | ids.PseudoEdge

func walkUp(w *store.WriteTx, branch string, start ids.Key, pid ids.PatchId, dedup map[ids.Key]collected) error {
	visited := map[ids.Key]bool{start: true}
	frontier := []ids.Key{start}
	for len(frontier) > 0 {
		v := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		edges, err := w.Edges(branch, v)
		if err != nil {
			return err
		}
		for _, e := range edges {
			if !e.Flag.Has(upMask) || e.IntroducedBy != pid {
				continue
			}
			dedup[e.Dest] = collected{
				Source: e.Dest,
				Edge:   ids.Edge{Flag: e.Flag.Mirror(), Dest: v, IntroducedBy: e.IntroducedBy},
			}
			if !visited[e.Dest] {
				visited[e.Dest] = true
				frontier = append(frontier, e.Dest)
			}
		}
	}
	return nil
}

func walkDown(w *store.WriteTx, branch string, start ids.Key, pid ids.PatchId, dedup map[ids.Key]collected) error {
	visited := map[ids.Key]bool{start: true}
	frontier := []ids.Key{start}
	for len(frontier) > 0 {
		v := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		edges, err := w.Edges(branch, v)
		if err != nil {
			return err
		}
		for _, e := range edges {
			if !e.Flag.Has(ids.PseudoEdge) || e.Flag.Has(ids.ParentEdge) || e.IntroducedBy != pid {
				continue
			}
			dedup[e.Dest] = collected{Source: v, Edge: e}
			if !visited[e.Dest] {
				visited[e.Dest] = true
				frontier = append(frontier, e.Dest)
			}
		}
	}
	return nil
}
