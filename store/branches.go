package store

import "go.etcd.io/bbolt"

// CreateBranch creates a new, empty named branch with all of its
// sub-tables. Returns ErrBranchExists if the name is already taken.
func (w *WriteTx) CreateBranch(name string) error {
	return createBranchBuckets(w.tx, name)
}

// DeleteBranch removes a branch and all of its tables.
func (w *WriteTx) DeleteBranch(name string) error {
	branches := w.tx.Bucket([]byte(bucketBranches))
	if branches == nil || branches.Bucket([]byte(name)) == nil {
		return ErrNoSuchBranch
	}
	return branches.DeleteBucket([]byte(name))
}

// BranchExists reports whether a branch with the given name has been created.
func (r *ReadTx) BranchExists(name string) bool {
	return branchBucket(r.tx, name) != nil
}

// ForkBranch copies every key in every sub-table of `from` into a freshly
// created branch `to`. This is the graph-level half of Pijul's "fork"
// operation (original_source pijul/src/commands/fork.rs); the
// collaborator-level command additionally re-checks-out a working copy,
// which remains out of scope here.
func (w *WriteTx) ForkBranch(from, to string) error {
	src := branchBucket(w.tx, from)
	if src == nil {
		return ErrNoSuchBranch
	}
	if err := createBranchBuckets(w.tx, to); err != nil {
		return err
	}
	dst := branchBucket(w.tx, to)

	return src.ForEach(func(subName, _ []byte) error {
		srcSub := src.Bucket(subName)
		if srcSub == nil {
			return nil
		}
		dstSub := dst.Bucket(subName)
		return copyBucketTree(srcSub, dstSub)
	})
}

// copyBucketTree deep-copies every key/value (recursing into nested
// buckets, used by the nodes/revdep/touched multimaps) from src into dst.
func copyBucketTree(src, dst *bbolt.Bucket) error {
	return src.ForEach(func(k, v []byte) error {
		if v == nil {
			// Nested bucket.
			nestedSrc := src.Bucket(k)
			nestedDst, err := dst.CreateBucketIfNotExists(k)
			if err != nil {
				return err
			}
			return copyBucketTree(nestedSrc, nestedDst)
		}
		kCopy := append([]byte(nil), k...)
		vCopy := append([]byte(nil), v...)
		return dst.Put(kCopy, vCopy)
	})
}
