package repo

import "errors"

// Sentinel errors for package repo. Callers should branch on these with
// errors.Is, never on string content.
var (
	// ErrUnknownDependency is returned by ApplyPatch when one of the
	// patch's declared Dependencies has no known internal PatchId (i.e.
	// a patch the caller has not yet applied or registered via
	// RegisterExternal).
	ErrUnknownDependency = errors.New("repo: unknown dependency hash")

	// ErrPatchHasDependents is returned by Unrecord when other applied
	// patches still depend on the one being unrecorded (spec §4.8's
	// dependency order requirement, checked against the revdep table).
	ErrPatchHasDependents = errors.New("repo: patch has dependents, unrecord them first")

	// ErrPatchNotApplied is returned by Unrecord when the given PatchId
	// is not currently recorded as applied on the branch.
	ErrPatchNotApplied = errors.New("repo: patch is not applied on this branch")
)
