package ids

// KeySize is the fixed on-disk size of a Key, in bytes: PatchId ∥ LineId.
const KeySize = PatchIdSize + LineIdSize

// RootKey is the node at the root of the repository graph: patch 0, line 0.
var RootKey = Key{Patch: RootPatchId, Line: RootLineId}

// Key identifies a vertex in the repository graph: the patch that
// introduced it, and the line index within that patch's namespace. Its
// total order is lexicographic on (Patch, Line), matching the on-disk
// byte order of Encode.
type Key struct {
	Patch PatchId
	Line  LineId
}

// IsRoot reports whether k is the global root key.
func (k Key) IsRoot() bool { return k == RootKey }

// Compare returns -1, 0 or 1 as k sorts before, equal to, or after o under
// the lexicographic (Patch, Line) order.
func (k Key) Compare(o Key) int {
	if k.Patch != o.Patch {
		if k.Patch < o.Patch {
			return -1
		}
		return 1
	}
	if k.Line != o.Line {
		if k.Line < o.Line {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether k sorts before o.
func (k Key) Less(o Key) bool { return k.Compare(o) < 0 }

// Encode writes the 16-byte encoding of k (Patch ∥ Line, each little-endian)
// into dst, which must be at least KeySize bytes long.
func (k Key) Encode(dst []byte) {
	k.Patch.Encode(dst[:PatchIdSize])
	k.Line.Encode(dst[PatchIdSize:KeySize])
}

// Bytes returns the 16-byte encoding of k.
func (k Key) Bytes() []byte {
	b := make([]byte, KeySize)
	k.Encode(b)
	return b
}

// DecodeKey reads a Key from the first KeySize bytes of src.
func DecodeKey(src []byte) (Key, error) {
	if len(src) < KeySize {
		return Key{}, ErrShortBuffer
	}
	patch, err := DecodePatchId(src[:PatchIdSize])
	if err != nil {
		return Key{}, err
	}
	line, err := DecodeLineId(src[PatchIdSize:KeySize])
	if err != nil {
		return Key{}, err
	}
	return Key{Patch: patch, Line: line}, nil
}
