package codec

import (
	"github.com/mr-tron/base58"
	"github.com/pijul-go/graphcore/ids"
)

// PatchIdToBase58 encodes p as base58 of its raw little-endian bytes.
func PatchIdToBase58(p ids.PatchId) string {
	return base58.Encode(p.Bytes())
}

// PatchIdFromBase58 decodes a PatchId previously produced by PatchIdToBase58.
func PatchIdFromBase58(s string) (ids.PatchId, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return 0, err
	}
	return ids.DecodePatchId(b)
}

// KeyToBase58 encodes k as base58 of its raw 16-byte (Patch ∥ Line) encoding.
func KeyToBase58(k ids.Key) string {
	return base58.Encode(k.Bytes())
}

// KeyFromBase58 decodes a Key previously produced by KeyToBase58.
func KeyFromBase58(s string) (ids.Key, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return ids.Key{}, err
	}
	return ids.DecodeKey(b)
}

// HashToBase58 encodes h as base58 of its raw tagged-union bytes.
func HashToBase58(h ids.Hash) (string, error) {
	b, err := h.Encode()
	if err != nil {
		return "", err
	}
	return base58.Encode(b), nil
}

// HashFromBase58 decodes a Hash previously produced by HashToBase58.
func HashFromBase58(s string) (ids.Hash, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return ids.Hash{}, err
	}
	h, _, err := ids.DecodeHash(b)
	return h, err
}
