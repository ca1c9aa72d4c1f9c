package repo

import (
	"context"

	"github.com/pijul-go/graphcore/store"
)

// CreateBranch creates an empty branch named name.
func CreateBranch(ctx context.Context, s *store.Store, name string) error {
	return s.Update(ctx, func(w *store.WriteTx) error {
		return w.CreateBranch(name)
	})
}

// DeleteBranch removes branch name and everything stored under it.
func DeleteBranch(ctx context.Context, s *store.Store, name string) error {
	return s.Update(ctx, func(w *store.WriteTx) error {
		return w.DeleteBranch(name)
	})
}

// ForkBranch creates branch to as a full copy of from's current state.
func ForkBranch(ctx context.Context, s *store.Store, from, to string) error {
	return s.Update(ctx, func(w *store.WriteTx) error {
		return w.ForkBranch(from, to)
	})
}
