// Package fingerprint computes stable content digests of settings trees.
//
// A tree is first encoded with CBOR Core Deterministic Encoding (sorted
// map keys, shortest integer forms), so two trees with the same content
// produce the same bytes regardless of map iteration order. The bytes are
// then hashed with BLAKE3.
package fingerprint

import (
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"
)

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("fingerprint: CBOR encoder initialization failed: " + err.Error())
	}
}

// Sum is a 32-byte BLAKE3 digest.
type Sum [32]byte

// String returns the hex encoding of the digest.
func (s Sum) String() string {
	return hex.EncodeToString(s[:])
}

// Short returns the first 12 hex characters, for log output.
func (s Sum) Short() string {
	return s.String()[:12]
}

// Of returns the fingerprint of v.
func Of(v any) (Sum, error) {
	data, err := encMode.Marshal(v)
	if err != nil {
		return Sum{}, fmt.Errorf("encoding settings for fingerprint: %w", err)
	}
	return blake3.Sum256(data), nil
}
