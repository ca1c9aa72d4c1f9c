package store

import "errors"

// Sentinel errors for the store package. Callers should branch on these
// with errors.Is, never on string content.
var (
	// ErrNotEnoughSpace is returned by a write transaction whose net
	// table growth would exceed the store's configured InitialSize quota.
	// The transaction's edits are not committed. The caller must Close
	// the store and Open it again with a larger WithInitialSize, then
	// retry the whole operation from scratch (spec §5, §7, §9).
	ErrNotEnoughSpace = errors.New("store: not enough space, reopen with a larger size hint")

	// ErrNoSuchBranch indicates an operation referenced a branch that has
	// not been created with CreateBranch.
	ErrNoSuchBranch = errors.New("store: no such branch")

	// ErrBranchExists indicates CreateBranch was called with a name that
	// already has a bucket.
	ErrBranchExists = errors.New("store: branch already exists")

	// ErrPatchNotFound names the "no such patch" condition. No function
	// in this package returns it: External and Internal report a missing
	// row through their bool result.
	ErrPatchNotFound = errors.New("store: patch not found")

	// ErrLockTimeout is returned by Update when the advisory write lock
	// could not be acquired before the context passed to Update expired.
	ErrLockTimeout = errors.New("store: timed out waiting for the write lock")

	// ErrReadOnly is returned when a mutating call is attempted against a
	// store opened with WithReadOnly.
	ErrReadOnly = errors.New("store: store is read-only")
)
