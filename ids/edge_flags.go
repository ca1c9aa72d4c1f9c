package ids

// EdgeFlags is a one-byte independent bitset. Many combinations are legal
// simultaneously; see the individual constants for their meaning.
type EdgeFlags uint8

const (
	// PseudoEdge marks a synthetic edge preserving connectivity or marking
	// a conflict, not literally present in any patch.
	PseudoEdge EdgeFlags = 1 << iota
	// FolderEdge encodes filesystem hierarchy (directory/entry/file chains).
	FolderEdge
	// EpsilonEdge marks a non-transitive "conflict-resolution" edge.
	EpsilonEdge
	// ParentEdge marks the mirror of a forward edge; every directed edge
	// has a mirror with this bit flipped relative to it.
	ParentEdge
	// DeletedEdge marks that the endpoint opposite the ParentEdge bit (if
	// set) or the edge's own target (if ParentEdge is not set) is deleted.
	DeletedEdge
)

// Has reports whether all bits of mask are set in f.
func (f EdgeFlags) Has(mask EdgeFlags) bool { return f&mask == mask }

// Any reports whether any bit of mask is set in f.
func (f EdgeFlags) Any(mask EdgeFlags) bool { return f&mask != 0 }

// WithFolder returns f with FolderEdge forced on, used when comparing
// flags while ignoring whether an edge happens to also be a folder edge.
func (f EdgeFlags) WithFolder() EdgeFlags { return f | FolderEdge }

// Mirror returns f with ParentEdge toggled, i.e. the flag value the
// reverse half of an edge pair must carry.
func (f EdgeFlags) Mirror() EdgeFlags { return f ^ ParentEdge }
