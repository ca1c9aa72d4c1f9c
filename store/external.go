package store

import (
	"go.etcd.io/bbolt"

	"github.com/pijul-go/graphcore/ids"
)

// external/internal translate between a patch's local, compact PatchId
// (an arena-friendly uint64 assigned the first time a repository sees the
// patch) and its globally unique content Hash (spec §6). external maps
// PatchId -> Hash bytes; internal is its inverse, Hash bytes -> PatchId.
// Both are repository-wide rather than per-branch: two branches in the
// same repository always agree on a patch's id once either has seen it.

func topBucket(tx *bbolt.Tx, name string) (*bbolt.Bucket, error) {
	return tx.CreateBucketIfNotExists([]byte(name))
}

// SetExternal records the PatchId -> Hash and Hash -> PatchId mapping for
// a patch new to this repository.
func (w *WriteTx) SetExternal(pid ids.PatchId, h ids.Hash) error {
	external, err := topBucket(w.tx, bucketExternal)
	if err != nil {
		return err
	}
	internal, err := topBucket(w.tx, bucketInternal)
	if err != nil {
		return err
	}
	hb, err := h.Encode()
	if err != nil {
		return err
	}
	if err := external.Put(pid.Bytes(), hb); err != nil {
		return err
	}
	return internal.Put(hb, pid.Bytes())
}

// External looks up the Hash for a known PatchId.
func (r *ReadTx) External(pid ids.PatchId) (ids.Hash, bool, error) {
	b := r.tx.Bucket([]byte(bucketExternal))
	if b == nil {
		return ids.Hash{}, false, nil
	}
	v := b.Get(pid.Bytes())
	if v == nil {
		return ids.Hash{}, false, nil
	}
	h, _, err := ids.DecodeHash(v)
	if err != nil {
		return ids.Hash{}, false, err
	}
	return h, true, nil
}

// Internal looks up the PatchId for a known Hash, by its encoded bytes.
func (r *ReadTx) Internal(h ids.Hash) (ids.PatchId, bool, error) {
	b := r.tx.Bucket([]byte(bucketInternal))
	if b == nil {
		return 0, false, nil
	}
	hb, err := h.Encode()
	if err != nil {
		return 0, false, err
	}
	v := b.Get(hb)
	if v == nil {
		return 0, false, nil
	}
	pid, err := ids.DecodePatchId(v)
	if err != nil {
		return 0, false, err
	}
	return pid, true, nil
}
