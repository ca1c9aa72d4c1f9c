package ids

import "encoding/binary"

// LineIdSize is the fixed on-disk size of a LineId, in bytes.
const LineIdSize = 8

// RootLineId is reserved for the root/header vertex of a file.
var RootLineId = LineId(0)

// LineId is a 64-bit chunk index within a patch. LineId(0) is reserved for
// the root/header vertex of a file.
type LineId uint64

// IsRoot reports whether l is the root line id.
func (l LineId) IsRoot() bool { return l == RootLineId }

// Add returns l advanced by n consecutive positions, used when a patch
// introduces n new vertices starting at a given LineId.
func (l LineId) Add(n int) LineId { return l + LineId(n) }

// Encode writes the 8-byte little-endian encoding of l into dst, which
// must be at least LineIdSize bytes long.
func (l LineId) Encode(dst []byte) {
	binary.LittleEndian.PutUint64(dst, uint64(l))
}

// Bytes returns the 8-byte little-endian encoding of l.
func (l LineId) Bytes() []byte {
	b := make([]byte, LineIdSize)
	l.Encode(b)
	return b
}

// DecodeLineId reads a LineId from the first 8 bytes of src.
func DecodeLineId(src []byte) (LineId, error) {
	if len(src) < LineIdSize {
		return 0, ErrShortBuffer
	}
	return LineId(binary.LittleEndian.Uint64(src)), nil
}
