package store

import "github.com/pijul-go/graphcore/ids"

// touched is a multimap: vertex Key -> set of PatchIds that touched it
// (spec §6: "Which patches touched this vertex").

// Touch records that pid touched key.
func (w *WriteTx) Touch(branch string, key ids.Key, pid ids.PatchId) error {
	outer := branchSubBucket(w.tx, branch, subBucketTouched)
	if outer == nil {
		return ErrNoSuchBranch
	}
	inner, err := outer.CreateBucketIfNotExists(key.Bytes())
	if err != nil {
		return err
	}
	return inner.Put(pid.Bytes(), nil)
}

// Untouch removes the record that pid touched key (used when unrecording
// pid's effect on key).
func (w *WriteTx) Untouch(branch string, key ids.Key, pid ids.PatchId) error {
	outer := branchSubBucket(w.tx, branch, subBucketTouched)
	if outer == nil {
		return ErrNoSuchBranch
	}
	inner := outer.Bucket(key.Bytes())
	if inner == nil {
		return nil
	}
	return inner.Delete(pid.Bytes())
}

// TouchedBy returns every patch id recorded as having touched key.
func (r *ReadTx) TouchedBy(branch string, key ids.Key) ([]ids.PatchId, error) {
	outer := branchSubBucket(r.tx, branch, subBucketTouched)
	if outer == nil {
		return nil, ErrNoSuchBranch
	}
	inner := outer.Bucket(key.Bytes())
	if inner == nil {
		return nil, nil
	}
	var out []ids.PatchId
	c := inner.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		pid, err := ids.DecodePatchId(k)
		if err != nil {
			return nil, err
		}
		out = append(out, pid)
	}
	return out, nil
}
