package store

import "github.com/pijul-go/graphcore/ids"

// bucketPatchSeq holds a single bbolt auto-increment sequence, shared by
// the whole repository (not per-branch): PatchIds must be globally unique
// within one repository so that two branches always agree on a patch's
// id once either has recorded it (spec §6).
const bucketPatchSeq = "patchid_seq"

// NextPatchId allocates a fresh, repository-wide unique PatchId. Package
// repo calls this once per apply_patch, before localizing the patch's
// context keys to it.
func (w *WriteTx) NextPatchId() (ids.PatchId, error) {
	b, err := topBucket(w.tx, bucketPatchSeq)
	if err != nil {
		return 0, err
	}
	seq, err := b.NextSequence()
	if err != nil {
		return 0, err
	}
	// Sequence 0 is never handed out: RootPatchId (0) is reserved for the
	// implicit root patch (spec §3).
	return ids.PatchId(seq), nil
}
