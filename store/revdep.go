package store

import "github.com/pijul-go/graphcore/ids"

// revdep is a multimap: dep PatchId -> set of dependent PatchIds, i.e.
// "which patches list dep as a dependency". Spec §4.8: "The core exposes
// iter_revdep so that the caller can compute the transitive closure"
// needed to unrecord patches in dependency order.

// AddRevdep records that dependent depends on dep.
func (w *WriteTx) AddRevdep(branch string, dep, dependent ids.PatchId) error {
	outer := branchSubBucket(w.tx, branch, subBucketRevdep)
	if outer == nil {
		return ErrNoSuchBranch
	}
	inner, err := outer.CreateBucketIfNotExists(dep.Bytes())
	if err != nil {
		return err
	}
	return inner.Put(dependent.Bytes(), nil)
}

// RemoveRevdep undoes AddRevdep.
func (w *WriteTx) RemoveRevdep(branch string, dep, dependent ids.PatchId) error {
	outer := branchSubBucket(w.tx, branch, subBucketRevdep)
	if outer == nil {
		return ErrNoSuchBranch
	}
	inner := outer.Bucket(dep.Bytes())
	if inner == nil {
		return nil
	}
	return inner.Delete(dependent.Bytes())
}

// Revdep returns every patch that lists dep as a dependency.
func (r *ReadTx) Revdep(branch string, dep ids.PatchId) ([]ids.PatchId, error) {
	outer := branchSubBucket(r.tx, branch, subBucketRevdep)
	if outer == nil {
		return nil, ErrNoSuchBranch
	}
	inner := outer.Bucket(dep.Bytes())
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
