package store

import "github.com/pijul-go/graphcore/ids"

// partials is a set: the file-header keys covered by a partial checkout
// on this branch (spec §6). The graph core never consults this set when
// retrieving; it is pure bookkeeping for a partial-checkout-aware
// collaborator (spec §4.12).

// AddPartialRoot adds key to branch's partial-checkout root set.
func (w *WriteTx) AddPartialRoot(branch string, key ids.Key) error {
	b := branchSubBucket(w.tx, branch, subBucketPartials)
	if b == nil {
		return ErrNoSuchBranch
	}
	return b.Put(key.Bytes(), []byte{1})
}

// RemovePartialRoot removes key from branch's partial-checkout root set.
func (w *WriteTx) RemovePartialRoot(branch string, key ids.Key) error {
	b := branchSubBucket(w.tx, branch, subBucketPartials)
	if b == nil {
		return ErrNoSuchBranch
	}
	return b.Delete(key.Bytes())
}

// PartialRoots returns every key in branch's partial-checkout root set.
func (r *ReadTx) PartialRoots(branch string) ([]ids.Key, error) {
	b := branchSubBucket(r.tx, branch, subBucketPartials)
	if b == nil {
		return nil, ErrNoSuchBranch
	}
	var out []ids.Key
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		key, err := ids.DecodeKey(k)
		if err != nil {
			return nil, err
		}
		out = append(out, key)
	}
	return out, nil
}
