package store

import "github.com/pijul-go/graphcore/ids"

// Contents returns key's stored payload. Absent keys return (nil, nil):
// spec §3 defines absent content as empty, not an error.
func (r *ReadTx) Contents(branch string, key ids.Key) ([]byte, error) {
	b := branchSubBucket(r.tx, branch, subBucketContents)
	if b == nil {
		return nil, ErrNoSuchBranch
	}
	v := b.Get(key.Bytes())
	if v == nil {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// SetContents overwrites key's stored payload.
func (w *WriteTx) SetContents(branch string, key ids.Key, content []byte) error {
	b := branchSubBucket(w.tx, branch, subBucketContents)
	if b == nil {
		return ErrNoSuchBranch
	}
	return b.Put(key.Bytes(), content)
}

// DeleteContents removes key's stored payload entirely. Package repo's
// Unrecord calls it for each vertex the unrecorded patch introduced.
func (w *WriteTx) DeleteContents(branch string, key ids.Key) error {
	b := branchSubBucket(w.tx, branch, subBucketContents)
	if b == nil {
		return ErrNoSuchBranch
	}
	return b.Delete(key.Bytes())
}
