// Package graphcore is the graph-theoretic core of a Pijul-style
// distributed version control system: a persistent repository graph,
// strongly-connected-component numbering, conflict detection and
// rendering, and patch application/unrecord, with no working-copy or
// network layer of its own.
//
// Subpackages:
//
//	ids/      — fixed-layout PatchId, LineId, Key, Edge, Hash
//	codec/    — base58 encoding of the above for human-facing output
//	store/    — bbolt-backed persistent adapter (branches, nodes, contents, revdep, touched, partials)
//	graph/    — arena + flat-adjacency in-memory retrieval of a branch's live graph
//	tarjan/   — iterative strongly-connected-components numbering
//	conflict/ — conflict-detecting depth-first numbering and conflict-tree construction
//	output/   — file rendering with conflict markers
//	patch/    — the wire shape of a patch and its gob codec
//	repo/     — apply_patch, unrecord, context repair, branch management
//	cmd/pijulgraph/ — a thin CLI entry point
package graphcore
