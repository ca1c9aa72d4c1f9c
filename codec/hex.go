package codec

import (
	"encoding/hex"

	"github.com/pijul-go/graphcore/ids"
)

// KeyToHex encodes k as hex of PatchId ∥ LineId, matching the on-disk
// field order.
func KeyToHex(k ids.Key) string {
	return hex.EncodeToString(k.Bytes())
}

// KeyFromHex decodes a Key previously produced by KeyToHex.
func KeyFromHex(s string) (ids.Key, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return ids.Key{}, err
	}
	return ids.DecodeKey(b)
}
