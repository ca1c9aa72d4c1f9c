// Package ids defines the fixed-width binary identifiers the repository
// graph is built from: PatchId, LineId, Key, EdgeFlags and Edge.
//
// Every type here has a fixed little-endian on-disk layout (documented on
// the type itself) and a total order that matches the logical tuple order,
// not just the byte order — the persistent store's ordered range scans
// depend on that equivalence holding exactly (see codec and store).
//
// Errors:
//
//	ErrShortBuffer - a Decode call was given fewer bytes than the type's
//	                 fixed on-disk size.
//	ErrBadHashTag  - a Hash tag byte was not one of the three known values.
package ids

import "errors"

// Sentinel errors for decoding primitive identifiers.
var (
	// ErrShortBuffer indicates a Decode call received fewer bytes than required.
	ErrShortBuffer = errors.New("ids: buffer too short")

	// ErrBadHashTag indicates an unrecognized Hash algorithm tag byte.
	ErrBadHashTag = errors.New("ids: unrecognized hash tag")
)
