package repo

import (
	"context"

	"github.com/pijul-go/graphcore/ids"
	"github.com/pijul-go/graphcore/patch"
	"github.com/pijul-go/graphcore/store"
)

// Unrecord removes exactly the edges pid's patch p introduced (both
// directions), runs context repair from every vertex the patch touched,
// then removes pid's own applied/dependency bookkeeping (spec §4.8). p
// must be the same Patch previously passed to ApplyPatch for pid: it is
// re-walked here (not re-derived from stored state) to know precisely
// which edges to undo.
//
// Dependency order is enforced first: if any patch still applied on
// branch lists pid as a dependency, Unrecord fails with
// ErrPatchHasDependents (spec's "a caller... must first unrecord every
// patch... whose dependency set contains p").
func Unrecord(ctx context.Context, s *store.Store, branch string, pid ids.PatchId, p *patch.Patch) error {
	return s.Update(ctx, func(w *store.WriteTx) error {
		applied, err := w.IsApplied(branch, pid)
		if err != nil {
			return err
		}
		if !applied {
			return ErrPatchNotApplied
		}

		dependents, err := w.Revdep(branch, pid)
		if err != nil {
			return err
		}
		for _, dep := range dependents {
			stillApplied, err := w.IsApplied(branch, dep)
			if err != nil {
				return err
			}
			if stillApplied {
				return ErrPatchHasDependents
			}
		}

		affected := map[ids.Key]bool{}
		for i := len(p.Changes) - 1; i >= 0; i-- {
			keys, err := unapplyChange(w, branch, pid, p.Changes[i])
			if err != nil {
				return err
			}
			for _, k := range keys {
				affected[k] = true
			}
		}

		for k := range affected {
			if err := contextRepair(w, branch, k, pid); err != nil {
				return err
			}
		}

		for _, dep := range p.Dependencies {
			depPid, ok, err := w.Internal(dep)
			if err != nil {
				return err
			}
			if ok {
				if err := w.RemoveRevdep(branch, depPid, pid); err != nil {
					return err
				}
			}
		}

		return w.RecordPatchUnapplied(branch, pid)
	})
}

// unapplyChange reverses one change pid applied, returning the vertices
// it touched (for the caller's context repair pass).
func unapplyChange(w *store.WriteTx, branch string, pid ids.PatchId, c patch.Change) ([]ids.Key, error) {
	switch v := c.(type) {
	case *patch.NewNodes:
		return unapplyNewNodes(w, branch, pid, v)
	case *patch.NewEdges:
		return unapplyNewEdges(w, branch, pid, v)
	default:
		return nil, nil
	}
}

func unapplyNewNodes(w *store.WriteTx, branch string, pid ids.PatchId, v *patch.NewNodes) ([]ids.Key, error) {
	var affected []ids.Key
	for i := range v.Nodes {
		vertex := ids.Key{Patch: pid, Line: v.LineNum + ids.LineId(i)}

		for _, up := range v.UpContext {
			from := localizeKey(up, pid)
			e := ids.Edge{Flag: v.Flag, Dest: vertex, IntroducedBy: pid}
			if err := w.DelEdgeBothDirs(branch, from, e); err != nil {
				return nil, err
			}
			affected = append(affected, from)
		}
		for _, down := range v.DownContext {
			to := localizeKey(down, pid)
			e := ids.Edge{Flag: v.Flag, Dest: to, IntroducedBy: pid}
			if err := w.DelEdgeBothDirs(branch, vertex, e); err != nil {
				return nil, err
			}
			affected = append(affected, to)
		}

		if err := w.Untouch(branch, vertex, pid); err != nil {
			return nil, err
		}
		if err := w.DeleteContents(branch, vertex); err != nil {
			return nil, err
		}
		affected = append(affected, vertex)
	}
	return affected, nil
}

func unapplyNewEdges(w *store.WriteTx, branch string, pid ids.PatchId, v *patch.NewEdges) ([]ids.Key, error) {
	var affected []ids.Key
	for _, pe := range v.Edges {
		from := localizeKey(pe.From, pid)
		to := localizeKey(pe.To, pid)
		introducedBy := pe.IntroducedBy
		if introducedBy == patch.ThisPatch {
			introducedBy = pid
		}

		updated := ids.Edge{Flag: v.Flag, Dest: to, IntroducedBy: introducedBy}
		if err := w.DelEdgeBothDirs(branch, from, updated); err != nil {
			return nil, err
		}
		restored := ids.Edge{Flag: v.Previous, Dest: to, IntroducedBy: introducedBy}
		if err := w.AddEdgeBothDirs(branch, from, restored); err != nil {
			return nil, err
		}

		if err := w.Untouch(branch, from, pid); err != nil {
			return nil, err
		}
		if err := w.Untouch(branch, to, pid); err != nil {
			return nil, err
		}
		affected = append(affected, from, to)
	}
	return affected, nil
}
