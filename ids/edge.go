package ids

// EdgeSize is the fixed on-disk size of an Edge, in bytes: flag(1) ∥
// dest(16) ∥ introduced_by(8).
const EdgeSize = 1 + KeySize + PatchIdSize

// Edge is the target-half of an edge in the repository graph: the value
// half of entries in the nodes table, whose key is the source vertex.
//
// Edge's total order is lexicographic on (Flag, Dest, IntroducedBy); this
// order is load-bearing for range scans that filter adjacency by flag
// (see store), so Encode must preserve it byte-for-byte.
type Edge struct {
	Flag         EdgeFlags
	Dest         Key
	IntroducedBy PatchId
}

// ZeroEdge returns an Edge with the given flags and all other fields
// zeroed (dest = RootKey, introduced_by = RootPatchId).
func ZeroEdge(flag EdgeFlags) Edge {
	return Edge{Flag: flag, Dest: RootKey, IntroducedBy: RootPatchId}
}

// MirrorFlag returns the flags carried by the reverse half of e, which
// coexists with e in the nodes table. Only the flags are computed here:
// the mirror's Dest is the edge's *source*, which the caller supplies
// since Edge itself does not carry its source key.
func (e Edge) MirrorFlag() EdgeFlags { return e.Flag.Mirror() }

// Compare returns -1, 0 or 1 as e sorts before, equal to, or after o under
// the lexicographic (Flag, Dest, IntroducedBy) order.
func (e Edge) Compare(o Edge) int {
	if e.Flag != o.Flag {
		if e.Flag < o.Flag {
			return -1
		}
		return 1
	}
	if c := e.Dest.Compare(o.Dest); c != 0 {
		return c
	}
	if e.IntroducedBy != o.IntroducedBy {
		if e.IntroducedBy < o.IntroducedBy {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether e sorts before o.
func (e Edge) Less(o Edge) bool { return e.Compare(o) < 0 }

// Encode writes the 25-byte encoding of e into dst, which must be at
// least EdgeSize bytes long. Field order on the wire matches field order
// in Compare, so a byte-wise comparison of two encodings equals Compare.
func (e Edge) Encode(dst []byte) {
	dst[0] = byte(e.Flag)
	e.Dest.Encode(dst[1 : 1+KeySize])
	e.IntroducedBy.Encode(dst[1+KeySize : EdgeSize])
}

// Bytes returns the 25-byte encoding of e.
func (e Edge) Bytes() []byte {
	b := make([]byte, EdgeSize)
	e.Encode(b)
	return b
}

// DecodeEdge reads an Edge from the first EdgeSize bytes of src.
func DecodeEdge(src []byte) (Edge, error) {
	if len(src) < EdgeSize {
		return Edge{}, ErrShortBuffer
	}
	dest, err := DecodeKey(src[1 : 1+KeySize])
	if err != nil {
		return Edge{}, err
	}
	introducedBy, err := DecodePatchId(src[1+KeySize : EdgeSize])
	if err != nil {
		return Edge{}, err
	}
	return Edge{
		Flag:         EdgeFlags(src[0]),
		Dest:         dest,
		IntroducedBy: introducedBy,
	}, nil
}
