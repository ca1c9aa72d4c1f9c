// Package repo is the graph core's top-level API: apply_patch,
// unrecord (with context repair), remove_redundant_edges, branch
// management, and the revdep/partial-root bookkeeping wrappers spec
// §4.7-§4.12 describe sitting directly on top of package store.
//
// Every mutating operation here runs inside one store.Store.Update
// transaction, so a caller never sees a patch half-applied.
package repo
