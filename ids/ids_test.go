package ids_test

import (
	"testing"

	"github.com/pijul-go/graphcore/ids"
	"github.com/stretchr/testify/require"
)

// TestKeyEncodeRoundTrip checks the encoding round-trip invariant
// (spec §8.2) for Key.
func TestKeyEncodeRoundTrip(t *testing.T) {
	keys := []ids.Key{
		ids.RootKey,
		{Patch: 1, Line: 0},
		{Patch: 42, Line: 7},
		{Patch: ^ids.PatchId(0), Line: ^ids.LineId(0)},
	}
	for _, k := range keys {
		got, err := ids.DecodeKey(k.Bytes())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
}

func TestKeyDecodeShortBuffer(t *testing.T) {
	_, err := ids.DecodeKey(make([]byte, 4))
	require.ErrorIs(t, err, ids.ErrShortBuffer)
}

func TestKeyOrdering(t *testing.T) {
	a := ids.Key{Patch: 1, Line: 5}
	b := ids.Key{Patch: 1, Line: 6}
	c := ids.Key{Patch: 2, Line: 0}
	require.True(t, a.Less(b))
	require.True(t, b.Less(c))
	require.False(t, c.Less(a))
}

// TestEdgeEncodeRoundTrip checks the encoding round-trip invariant for Edge.
func TestEdgeEncodeRoundTrip(t *testing.T) {
	e := ids.Edge{
		Flag:         ids.PseudoEdge | ids.FolderEdge,
		Dest:         ids.Key{Patch: 3, Line: 9},
		IntroducedBy: 11,
	}
	require.Len(t, e.Bytes(), ids.EdgeSize)
	got, err := ids.DecodeEdge(e.Bytes())
	require.NoError(t, err)
	require.Equal(t, e, got)
}

// TestEdgeOrderingMatchesByteOrder checks that Edge.Compare agrees with a
// byte-wise comparison of the encodings, per spec §8.3.
func TestEdgeOrderingMatchesByteOrder(t *testing.T) {
	edges := []ids.Edge{
		{Flag: 0, Dest: ids.Key{Patch: 0, Line: 0}, IntroducedBy: 0},
		{Flag: ids.PseudoEdge, Dest: ids.Key{Patch: 0, Line: 0}, IntroducedBy: 0},
		{Flag: ids.PseudoEdge, Dest: ids.Key{Patch: 1, Line: 0}, IntroducedBy: 0},
		{Flag: ids.ParentEdge, Dest: ids.Key{Patch: 0, Line: 0}, IntroducedBy: 5},
	}
	for i := range edges {
		for j := range edges {
			logical := edges[i].Compare(edges[j])
			bi, bj := edges[i].Bytes(), edges[j].Bytes()
			byteCmp := compareBytes(bi, bj)
			require.Equal(t, sign(logical), sign(byteCmp), "edges[%d] vs edges[%d]", i, j)
		}
	}
}

func compareBytes(a, b []byte) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func TestEdgeFlagsHasAndMirror(t *testing.T) {
	f := ids.PseudoEdge | ids.FolderEdge
	require.True(t, f.Has(ids.PseudoEdge))
	require.False(t, f.Has(ids.ParentEdge))
	require.True(t, f.Any(ids.ParentEdge|ids.FolderEdge))

	mirrored := f.Mirror()
	require.True(t, mirrored.Has(ids.ParentEdge))
	require.Equal(t, f, mirrored.Mirror())
}

// TestHashEncodeRoundTrip checks the round-trip invariant for every Hash
// variant (spec §8.2).
func TestHashEncodeRoundTrip(t *testing.T) {
	nested := ids.Hash{Algo: ids.HashSHA512, Digest: make([]byte, 64)}
	cases := []ids.Hash{
		{Algo: ids.HashNone},
		{Algo: ids.HashSHA512, Digest: make([]byte, 64)},
		{Algo: ids.HashRecursive, Nested: &nested, Line: 12},
	}
	for _, h := range cases {
		b, err := h.Encode()
		require.NoError(t, err)
		got, n, err := ids.DecodeHash(b)
		require.NoError(t, err)
		require.Equal(t, len(b), n)
		require.True(t, h.Equal(got))
	}
}

func TestHashBadTag(t *testing.T) {
	_, _, err := ids.DecodeHash([]byte{99})
	require.ErrorIs(t, err, ids.ErrBadHashTag)
}

func TestPatchIdAndLineIdRoundTrip(t *testing.T) {
	p := ids.PatchId(123456789)
	got, err := ids.DecodePatchId(p.Bytes())
	require.NoError(t, err)
	require.Equal(t, p, got)

	l := ids.LineId(987654321)
	gotL, err := ids.DecodeLineId(l.Bytes())
	require.NoError(t, err)
	require.Equal(t, l, gotL)

	require.True(t, ids.RootPatchId.IsRoot())
	require.True(t, ids.RootLineId.IsRoot())
	require.True(t, ids.RootKey.IsRoot())
}
