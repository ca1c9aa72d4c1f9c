package store

import (
	"encoding/binary"

	"github.com/pijul-go/graphcore/ids"
)

// RecordPatchApplied marks pid as applied on branch at timestamp ts
// (unix nanoseconds), populating both patches and its revpatches inverse.
func (w *WriteTx) RecordPatchApplied(branch string, pid ids.PatchId, ts int64) error {
	patches := branchSubBucket(w.tx, branch, subBucketPatches)
	revpatches := branchSubBucket(w.tx, branch, subBucketRevpatches)
	if patches == nil || revpatches == nil {
		return ErrNoSuchBranch
	}
	var tsb [8]byte
	// Big-endian, so revpatches' byte order is timestamp order.
	binary.BigEndian.PutUint64(tsb[:], uint64(ts))
	if err := patches.Put(pid.Bytes(), tsb[:]); err != nil {
		return err
	}
	return revpatches.Put(tsb[:], pid.Bytes())
}

// RecordPatchUnapplied removes pid's entry from patches and revpatches.
func (w *WriteTx) RecordPatchUnapplied(branch string, pid ids.PatchId) error {
	patches := branchSubBucket(w.tx, branch, subBucketPatches)
	revpatches := branchSubBucket(w.tx, branch, subBucketRevpatches)
	if patches == nil || revpatches == nil {
		return ErrNoSuchBranch
	}
	ts := patches.Get(pid.Bytes())
	if ts != nil {
		if err := revpatches.Delete(ts); err != nil {
			return err
		}
	}
	return patches.Delete(pid.Bytes())
}

// IsApplied reports whether pid is currently applied on branch.
func (r *ReadTx) IsApplied(branch string, pid ids.PatchId) (bool, error) {
	patches := branchSubBucket(r.tx, branch, subBucketPatches)
	if patches == nil {
		return false, ErrNoSuchBranch
	}
	return patches.Get(pid.Bytes()) != nil, nil
}

// Patches returns every patch id applied on branch, in application order
// (oldest first), via the revpatches timestamp index.
func (r *ReadTx) Patches(branch string) ([]ids.PatchId, error) {
	revpatches := branchSubBucket(r.tx, branch, subBucketRevpatches)
	if revpatches == nil {
		return nil, ErrNoSuchBranch
	}
	var out []ids.PatchId
	c := revpatches.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		pid, err := ids.DecodePatchId(v)
		if err != nil {
			return nil, err
		}
		out = append(out, pid)
	}
	return out, nil
}
