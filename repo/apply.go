package repo

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pijul-go/graphcore/ids"
	"github.com/pijul-go/graphcore/patch"
	"github.com/pijul-go/graphcore/store"
)

// RegisterExternal records hash as pid's external identity, without
// applying anything. Use this to seed the dependency table for patches a
// caller already knows about (e.g. received but not yet applied, or
// applied by a prior run), so a later ApplyPatch's Dependencies can
// resolve against them.
func RegisterExternal(ctx context.Context, s *store.Store, pid ids.PatchId, hash ids.Hash) error {
	return s.Update(ctx, func(w *store.WriteTx) error {
		return w.SetExternal(pid, hash)
	})
}

// ApplyPatch assigns p a fresh internal PatchId, registers its external
// Hash, checks that every declared dependency is known, localizes every
// patch.ThisPatch-tagged context key to the new id, and applies each
// change in order (spec §4.7). It returns the PatchId assigned.
func ApplyPatch(ctx context.Context, s *store.Store, branch string, hash ids.Hash, p *patch.Patch) (ids.PatchId, error) {
	var pid ids.PatchId
	err := s.Update(ctx, func(w *store.WriteTx) error {
		var err error
		pid, err = w.NextPatchId()
		if err != nil {
			return err
		}

		depPids := make([]ids.PatchId, len(p.Dependencies))
		for i, dep := range p.Dependencies {
			depPid, ok, err := w.Internal(dep)
			if err != nil {
				return err
			}
			if !ok {
				return ErrUnknownDependency
			}
			depPids[i] = depPid
		}

		if err := w.SetExternal(pid, hash); err != nil {
			return err
		}
		for _, depPid := range depPids {
			if err := w.AddRevdep(branch, depPid, pid); err != nil {
				return err
			}
		}

		for _, c := range p.Changes {
			if err := applyChange(w, branch, pid, c); err != nil {
				return err
			}
		}

		return w.RecordPatchApplied(branch, pid, time.Now().UnixNano())
	})
	if err != nil {
		return 0, err
	}
	return pid, nil
}

func applyChange(w *store.WriteTx, branch string, pid ids.PatchId, c patch.Change) error {
	switch v := c.(type) {
	case *patch.NewNodes:
		return applyNewNodes(w, branch, pid, v)
	case *patch.NewEdges:
		return applyNewEdges(w, branch, pid, v)
	default:
		logrus.WithField("type", v).Warn("repo: unknown change type, skipped")
		return nil
	}
}

// applyNewNodes introduces len(v.Nodes) fresh vertices, one per content
// blob, with consecutive LineIds starting at v.LineNum under pid. Every
// new vertex gets an edge from every (localized) up-context key and to
// every (localized) down-context key, carrying v.Flag and its
// ParentEdge mirror (spec §4.7).
func applyNewNodes(w *store.WriteTx, branch string, pid ids.PatchId, v *patch.NewNodes) error {
	for i, content := range v.Nodes {
		vertex := ids.Key{Patch: pid, Line: v.LineNum + ids.LineId(i)}
		if err := w.SetContents(branch, vertex, content); err != nil {
			return err
		}
		if err := w.Touch(branch, vertex, pid); err != nil {
			return err
		}

		for _, up := range v.UpContext {
			from := localizeKey(up, pid)
			e := ids.Edge{Flag: v.Flag, Dest: vertex, IntroducedBy: pid}
			if err := w.AddEdgeBothDirs(branch, from, e); err != nil {
				return err
			}
		}
		for _, down := range v.DownContext {
			to := localizeKey(down, pid)
			e := ids.Edge{Flag: v.Flag, Dest: to, IntroducedBy: pid}
			if err := w.AddEdgeBothDirs(branch, vertex, e); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyNewEdges replaces, for each listed edge, the stored flag
// v.Previous with v.Flag (both directions), localizing patch.ThisPatch
// sentinels in From/To/IntroducedBy to pid first.
func applyNewEdges(w *store.WriteTx, branch string, pid ids.PatchId, v *patch.NewEdges) error {
	for _, pe := range v.Edges {
		from := localizeKey(pe.From, pid)
		to := localizeKey(pe.To, pid)
		introducedBy := pe.IntroducedBy
		if introducedBy == patch.ThisPatch {
			introducedBy = pid
		}

		old := ids.Edge{Flag: v.Previous, Dest: to, IntroducedBy: introducedBy}
		if err := w.DelEdgeBothDirs(branch, from, old); err != nil {
			return err
		}
		updated := ids.Edge{Flag: v.Flag, Dest: to, IntroducedBy: introducedBy}
		if err := w.AddEdgeBothDirs(branch, from, updated); err != nil {
			return err
		}
		if err := w.Touch(branch, from, pid); err != nil {
			return err
		}
		if err := w.Touch(branch, to, pid); err != nil {
			return err
		}
	}
	return nil
}

// localizeKey replaces k's patch.ThisPatch sentinel (meaning "this
// patch") with pid, leaving any other patch id untouched.
func localizeKey(k ids.Key, pid ids.PatchId) ids.Key {
	if k.Patch == patch.ThisPatch {
		return ids.Key{Patch: pid, Line: k.Line}
	}
	return k
}
