package repo

import (
	"context"

	"github.com/pijul-go/graphcore/ids"
	"github.com/pijul-go/graphcore/store"
)

// AddPartialRoot marks key as a root of a partially-cloned branch, per
// spec §4.12.
func AddPartialRoot(ctx context.Context, s *store.Store, branch string, key ids.Key) error {
	return s.Update(ctx, func(w *store.WriteTx) error {
		return w.AddPartialRoot(branch, key)
	})
}

// RemovePartialRoot un-marks key as a partial root.
func RemovePartialRoot(ctx context.Context, s *store.Store, branch string, key ids.Key) error {
	return s.Update(ctx, func(w *store.WriteTx) error {
		return w.RemovePartialRoot(branch, key)
	})
}

// PartialRoots lists every partial root currently recorded on branch.
func PartialRoots(s *store.Store, branch string) ([]ids.Key, error) {
	var out []ids.Key
	err := s.View(func(r *store.ReadTx) error {
		var err error
		out, err = r.PartialRoots(branch)
		return err
	})
	return out, err
}
