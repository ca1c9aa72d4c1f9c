package patch

import (
	"bytes"
	"encoding/gob"
)

func registerGob() {
	gob.Register(&NewNodes{})
	gob.Register(&NewEdges{})
}

// Encode serializes p with encoding/gob. This is this module's own
// framing for driving apply/unrecord from tests and cmd/pijulgraph, not
// any Pijul release's wire format (spec §4.7's patch shape is otherwise
// unspecified).
func (p *Patch) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode deserializes a Patch previously produced by Encode.
func Decode(b []byte) (*Patch, error) {
	var p Patch
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
