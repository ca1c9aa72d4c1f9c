package patch

import "github.com/pijul-go/graphcore/ids"

// ThisPatch is the sentinel PatchId a context key's Patch field (or a
// PatchEdge's IntroducedBy) carries to mean "this patch itself" (spec
// §4.7's "patch = None"), before package repo localizes it to the
// freshly-assigned real PatchId at apply time. No real patch is ever
// assigned this id.
const ThisPatch ids.PatchId = ^ids.PatchId(0)

func init() {
	// Change is a gob sum type: both concrete variants must be
	// registered before any Patch round-trips through Encode/Decode.
	registerGob()
}

// Change is one entry in a Patch's change list. The only two variants
// spec §4.7 names are NewNodes and NewEdges; both are registered for gob
// so a Patch's Changes slice round-trips without the caller doing
// anything extra.
type Change interface {
	isChange()
}

// PatchEdge is one (from, to, introduced_by) triple inside a NewEdges
// change — the wire shape of a single edge insertion/flag change, before
// it is localized into a store key and an ids.Edge.
type PatchEdge struct {
	From, To     ids.Key
	IntroducedBy ids.PatchId
}

// NewNodes introduces len(Nodes) new vertices with consecutive LineIds
// starting at LineNum, each carrying one entry of Nodes as its stored
// content. Every new vertex gets an edge from every UpContext key and to
// every DownContext key, carrying Flag (mirrored with ParentEdge).
//
// UpContext/DownContext entries may carry the ThisPatch sentinel as
// their Patch, meaning "this patch itself" (spec §4.7's "patch = None"); package
// repo's apply step localizes those to the patch's freshly assigned
// PatchId before insertion.
type NewNodes struct {
	UpContext, DownContext []ids.Key
	Flag                   ids.EdgeFlags
	LineNum                ids.LineId
	// Nodes holds one raw content blob per new vertex, in LineId order.
	Nodes [][]byte
	// Inode is non-nil when this change affects the file-tree hierarchy
	// (a FolderEdge chain), naming the owning directory entry's key.
	Inode *ids.Key
}

func (*NewNodes) isChange() {}

// NewEdges replaces the flag of each listed edge from Previous to Flag,
// in both directions, used to mark deletions and conflict-resolution
// moves (spec §4.7).
type NewEdges struct {
	Previous ids.EdgeFlags
	Flag     ids.EdgeFlags
	Edges    []PatchEdge
	Inode    *ids.Key
}

func (*NewEdges) isChange() {}

// Patch is an ordered sequence of changes plus the hashes of the patches
// it depends on. Dependencies are checked by package repo against the
// store's internal (Hash → PatchId) table before apply.
type Patch struct {
	Dependencies []ids.Hash
	Changes      []Change
}
