// Package codec provides the stable external text encodings of this
// module's binary identifiers: base58 of the raw on-disk bytes for
// PatchId, Key and Hash, and hex of PatchId ∥ LineId for Key.
//
// Base58 is the encoding callers see in logs, CLI output and patch
// dependency lists; it carries no semantic weight beyond being a
// reversible, URL/filename-safe rendering of the bytes in ids.
package codec
