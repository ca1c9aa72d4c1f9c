package store

import (
	"go.etcd.io/bbolt"
)

// Top-level buckets. "branches" nests one sub-bucket per branch name;
// "external"/"internal" are repository-wide, matching spec §6's table
// listing (external/internal are not per-branch).
const (
	bucketBranches = "branches"
	bucketExternal = "external"
	bucketInternal = "internal"
)

// Per-branch sub-buckets, matching spec §6's table list.
const (
	subBucketNodes      = "nodes"
	subBucketContents   = "contents"
	subBucketPatches    = "patches"
	subBucketRevpatches = "revpatches"
	subBucketRevdep     = "revdep"
	subBucketTouched    = "touched"
	subBucketPartials   = "partials"
)

// branchBucket returns the named branch's top-level bucket, or nil if it
// does not exist.
func branchBucket(tx *bbolt.Tx, branch string) *bbolt.Bucket {
	branches := tx.Bucket([]byte(bucketBranches))
	if branches == nil {
		return nil
	}
	return branches.Bucket([]byte(branch))
}

// branchSubBucket returns the named sub-bucket (e.g. "nodes") of the
// named branch, or nil if either does not exist.
func branchSubBucket(tx *bbolt.Tx, branch, sub string) *bbolt.Bucket {
	b := branchBucket(tx, branch)
	if b == nil {
		return nil
	}
	return b.Bucket([]byte(sub))
}

// createBranchBuckets creates a fresh branch bucket with all of its
// empty sub-buckets. Fails with ErrBranchExists if the branch is already
// present.
func createBranchBuckets(tx *bbolt.Tx, branch string) error {
	branches, err := tx.CreateBucketIfNotExists([]byte(bucketBranches))
	if err != nil {
		return err
	}
	if branches.Bucket([]byte(branch)) != nil {
		return ErrBranchExists
	}
	b, err := branches.CreateBucket([]byte(branch))
	if err != nil {
		return err
	}
	for _, sub := range []string{
		subBucketNodes, subBucketContents, subBucketPatches,
		subBucketRevpatches, subBucketRevdep, subBucketTouched, subBucketPartials,
	} {
		if _, err := b.CreateBucketIfNotExists([]byte(sub)); err != nil {
			return err
		}
	}
	return nil
}
