package repo

import (
	"github.com/pijul-go/graphcore/ids"
	"github.com/pijul-go/graphcore/store"
)

// IterRevdep returns every patch on branch that directly declares pid as
// a dependency, as recorded in the revdep table: ApplyPatch adds a row
// and Unrecord removes it (spec §4.8's "the core exposes iter_revdep").
func IterRevdep(s *store.Store, branch string, pid ids.PatchId) ([]ids.PatchId, error) {
	var out []ids.PatchId
	err := s.View(func(r *store.ReadTx) error {
		var err error
		out, err = r.Revdep(branch, pid)
		return err
	})
	return out, err
}

// DependentsOf returns the full transitive closure of patches on branch
// that depend on pid, directly or through another dependent, visiting
// each patch at most once. Used to decide unrecord order beyond the
// single-level ErrPatchHasDependents check Unrecord itself performs.
func DependentsOf(s *store.Store, branch string, pid ids.PatchId) ([]ids.PatchId, error) {
	visited := map[ids.PatchId]bool{pid: true}
	var out []ids.PatchId

	err := s.View(func(r *store.ReadTx) error {
		frontier := []ids.PatchId{pid}
		for len(frontier) > 0 {
			cur := frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]

			direct, err := r.Revdep(branch, cur)
			if err != nil {
				return err
			}
			for _, d := range direct {
				if visited[d] {
					continue
				}
				visited[d] = true
				out = append(out, d)
				frontier = append(frontier, d)
			}
		}
		return nil
	})
	return out, err
}
