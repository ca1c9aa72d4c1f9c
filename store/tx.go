package store

import (
	"github.com/pijul-go/graphcore/ids"
	"go.etcd.io/bbolt"
)

// Key and Edge are re-exported aliases so CanRead/CanWrite signatures read
// naturally without forcing every caller to import ids directly just for
// these two interfaces. The concrete type is always ids.Key / ids.Edge.
type (
	Key  = ids.Key
	Edge = ids.Edge
)

// ReadTx is a read-only view over one Store transaction. It satisfies
// CanRead.
type ReadTx struct {
	tx    *bbolt.Tx
	store *Store
}

// WriteTx is a read-write view over one Store transaction. It satisfies
// CanWrite (and, by embedding, CanRead).
type WriteTx struct {
	ReadTx
}

// CanRead is the minimum capability read-only graph algorithms need:
// ordered adjacency scans and content lookup. Parameterizing over this
// interface (rather than a concrete *ReadTx) lets the same algorithm run
// unchanged inside a read or a write transaction (design note:
// "polymorphism over transactions").
type CanRead interface {
	// Edges returns every edge from key, in Edge's total order.
	Edges(branch string, key Key) ([]Edge, error)
	// EdgesFrom returns every edge from key whose value is >= start, in
	// Edge's total order (an ordered range scan seeded at start).
	EdgesFrom(branch string, key Key, start Edge) ([]Edge, error)
	// HasAnyEdge reports whether key has at least one entry in nodes
	// (forward or mirror), i.e. whether the vertex is known to the store
	// at all.
	HasAnyEdge(branch string, key Key) (bool, error)
	// Contents returns key's stored payload, or (nil, nil) if absent
	// (spec §3: "Absent keys have empty content").
	Contents(branch string, key Key) ([]byte, error)
}

// CanWrite is CanRead plus the mutations the patch engine needs. A
// *WriteTx is the only implementation; algorithms that only read never
// see it.
type CanWrite interface {
	CanRead
	// AddEdgeBothDirs inserts the forward edge (src, e) and its
	// PARENT_EDGE mirror (e.Dest, mirror-of-e-pointing-back-to-src) in one
	// step, maintaining the mirror invariant (spec §3).
	AddEdgeBothDirs(branch string, src Key, e Edge) error
	// DelEdgeBothDirs removes the forward edge (src, e) and its mirror.
	DelEdgeBothDirs(branch string, src Key, e Edge) error
	// SetContents overwrites key's stored payload.
	SetContents(branch string, key Key, content []byte) error
}
