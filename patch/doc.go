// Package patch defines this module's own concrete shape for the patch
// payload apply_patch and unrecord consume (spec §4.7 deliberately
// leaves the wire format out of scope). It is not the network format of
// any Pijul release: it exists to drive package repo's apply/unrecord
// from tests and from cmd/pijulgraph, standing in for the out-of-scope
// transport protocol.
package patch
