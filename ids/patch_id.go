package ids

import "encoding/binary"

// PatchIdSize is the fixed on-disk size of a PatchId, in bytes.
const PatchIdSize = 8

// RootPatchId is the local handle of the root patch. It is never assigned
// to a real patch and marks pseudo-edges synthesized post-hoc
// (introduced_by = RootPatchId).
var RootPatchId = PatchId(0)

// PatchId is a 64-bit opaque local handle for a patch. It is totally
// ordered and is the primary key of most store indices. PatchId(0) is the
// root patch; it is never assigned to a real applied patch.
type PatchId uint64

// IsRoot reports whether p is the root patch id.
func (p PatchId) IsRoot() bool { return p == RootPatchId }

// Less reports whether p sorts before o under PatchId's total order.
func (p PatchId) Less(o PatchId) bool { return p < o }

// Encode writes the 8-byte little-endian encoding of p into dst, which
// must be at least PatchIdSize bytes long.
func (p PatchId) Encode(dst []byte) {
	binary.LittleEndian.PutUint64(dst, uint64(p))
}

// Bytes returns the 8-byte little-endian encoding of p.
func (p PatchId) Bytes() []byte {
	b := make([]byte, PatchIdSize)
	p.Encode(b)
	return b
}

// DecodePatchId reads a PatchId from the first 8 bytes of src.
func DecodePatchId(src []byte) (PatchId, error) {
	if len(src) < PatchIdSize {
		return 0, ErrShortBuffer
	}
	return PatchId(binary.LittleEndian.Uint64(src)), nil
}
