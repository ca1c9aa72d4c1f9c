package repo

import (
	"context"

	"github.com/pijul-go/graphcore/conflict"
	"github.com/pijul-go/graphcore/store"
)

// RemoveRedundantEdges deletes every (Key, Edge) pair conflict.Run
// proved redundant during numbering: pseudo-edges that only duplicated
// an already-reachable path and can never again affect conflict
// detection (spec §4.9). Safe to call with an empty or nil list.
func RemoveRedundantEdges(ctx context.Context, s *store.Store, branch string, forward []conflict.ForwardEdge) error {
	if len(forward) == 0 {
		return nil
	}
	return s.Update(ctx, func(w *store.WriteTx) error {
		for _, fe := range forward {
			if err := w.DelEdgeBothDirs(branch, fe.Key, fe.Edge); err != nil {
				return err
			}
		}
		return nil
	})
}
