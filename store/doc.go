// Package store is the persistent store adapter: a concrete, bbolt-backed
// implementation of the key-ordered multi-map tables the graph core reads
// and writes (nodes, contents, branch patch sets, revdep, touched,
// partials, external/internal hash maps).
//
// The core (packages graph, tarjan, conflict, output, repo) never touches
// *bbolt.DB directly; it is parameterized over the minimum capability it
// needs via the CanRead / CanWrite interfaces (see tx.go), per the
// "polymorphism over transactions" design note: read-only algorithms take
// a CanRead, mutating ones in package repo take a *WriteTx, and a
// *WriteTx satisfies both interfaces.
//
// Read transactions (View) may run concurrently; at most one write
// transaction (Update) runs at a time, enforced twice over: bbolt itself
// serializes writers, and this package layers an advisory
// golang.org/x/sync/semaphore token on top so a caller can observe lock
// contention — via TryUpdate — without blocking inside bbolt.
package store
