package store

import (
	"github.com/pijul-go/graphcore/ids"
)

// Edges returns every edge stored under key in the branch's nodes
// multimap, in Edge's total order. A vertex with no entries returns an
// empty, nil-error slice (spec §7.5: absence is not an error).
func (r *ReadTx) Edges(branch string, key ids.Key) ([]ids.Edge, error) {
	outer := branchSubBucket(r.tx, branch, subBucketNodes)
	if outer == nil {
		return nil, ErrNoSuchBranch
	}
	inner := outer.Bucket(key.Bytes())
	if inner == nil {
		return nil, nil
	}
	var out []ids.Edge
	c := inner.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		e, err := ids.DecodeEdge(k)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// EdgesFrom returns every edge stored under key whose encoding is >=
// start's encoding, in Edge's total order — an ordered range scan seeded
// at an arbitrary edge value, used by the zombie probe and by forward-edge
// lookups that only care about edges at or after a given flag/dest.
func (r *ReadTx) EdgesFrom(branch string, key ids.Key, start ids.Edge) ([]ids.Edge, error) {
	outer := branchSubBucket(r.tx, branch, subBucketNodes)
	if outer == nil {
		return nil, ErrNoSuchBranch
	}
	inner := outer.Bucket(key.Bytes())
	if inner == nil {
		return nil, nil
	}
	var out []ids.Edge
	c := inner.Cursor()
	for k, _ := c.Seek(start.Bytes()); k != nil; k, _ = c.Next() {
		e, err := ids.DecodeEdge(k)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// HasAnyEdge reports whether key has at least one entry in nodes.
func (r *ReadTx) HasAnyEdge(branch string, key ids.Key) (bool, error) {
	outer := branchSubBucket(r.tx, branch, subBucketNodes)
	if outer == nil {
		return false, ErrNoSuchBranch
	}
	inner := outer.Bucket(key.Bytes())
	if inner == nil {
		return false, nil
	}
	k, _ := inner.Cursor().First()
	return k != nil, nil
}

// addEdge inserts the single directed entry (src, e) into nodes, creating
// src's nested bucket if needed. It does not touch the mirror; callers
// maintaining the mirror invariant should use AddEdgeBothDirs.
func (w *WriteTx) addEdge(branch string, src ids.Key, e ids.Edge) error {
	outer := branchSubBucket(w.tx, branch, subBucketNodes)
	if outer == nil {
		return ErrNoSuchBranch
	}
	inner, err := outer.CreateBucketIfNotExists(src.Bytes())
	if err != nil {
		return err
	}
	return inner.Put(e.Bytes(), nil)
}

// delEdge removes the single directed entry (src, e) from nodes, if present.
func (w *WriteTx) delEdge(branch string, src ids.Key, e ids.Edge) error {
	outer := branchSubBucket(w.tx, branch, subBucketNodes)
	if outer == nil {
		return ErrNoSuchBranch
	}
	inner := outer.Bucket(src.Bytes())
	if inner == nil {
		return nil
	}
	return inner.Delete(e.Bytes())
}

// AddEdgeBothDirs inserts the forward edge (src, e) and its PARENT_EDGE
// mirror (e.Dest, e' where e'.Flag = e.Flag.Mirror(), e'.Dest = src,
// e'.IntroducedBy = e.IntroducedBy) in one step, maintaining the spec §3
// reverse-edge mirror invariant.
func (w *WriteTx) AddEdgeBothDirs(branch string, src ids.Key, e ids.Edge) error {
	if err := w.addEdge(branch, src, e); err != nil {
		return err
	}
	mirror := ids.Edge{Flag: e.Flag.Mirror(), Dest: src, IntroducedBy: e.IntroducedBy}
	return w.addEdge(branch, e.Dest, mirror)
}

// DelEdgeBothDirs removes the forward edge (src, e) and its mirror.
func (w *WriteTx) DelEdgeBothDirs(branch string, src ids.Key, e ids.Edge) error {
	if err := w.delEdge(branch, src, e); err != nil {
		return err
	}
	mirror := ids.Edge{Flag: e.Flag.Mirror(), Dest: src, IntroducedBy: e.IntroducedBy}
	return w.delEdge(branch, e.Dest, mirror)
}
