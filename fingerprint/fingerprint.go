// Package fingerprint computes content digests of recipes.
//
// A fingerprint is the BLAKE3 keyed hash of a recipe's canonical KDL
// encoding, so two documents that differ only in layout, comments,
// number spelling or shorthand form have the same fingerprint.
package fingerprint

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/KimNorgaard/go-recipe"
)

// Digest is a 32-byte BLAKE3 digest.
type Digest [32]byte

// domainKey separates recipe fingerprints from any other BLAKE3 use of
// the same bytes. It is the ASCII domain name, zero-padded to 32 bytes.
// Changing it invalidates every stored fingerprint.
var domainKey = [32]byte{
	'g', 'o', '-', 'r', 'e', 'c', 'i', 'p', 'e', '.', 'f', 'i', 'n', 'g', 'e', 'r',
	'p', 'r', 'i', 'n', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// canonicalIndent is fixed so that fingerprints do not depend on
// formatting options.
const canonicalIndent = 4

// Of returns the fingerprint of v encoded as a node called name.
func Of(name string, v recipe.NodeMarshaler) (Digest, error) {
	hasher, err := blake3.NewKeyed(domainKey[:])
	if err != nil {
		panic("fingerprint: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	var d Digest
	if err := recipe.NewEncoder(hasher, recipe.Indent(canonicalIndent)).Encode(name, v); err != nil {
		return d, fmt.Errorf("fingerprint: %w", err)
	}
	copy(d[:], hasher.Sum(nil))
	return d, nil
}

// String returns the lowercase hex encoding of d.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Short returns the first 12 hex characters of d, for display.
func (d Digest) Short() string {
	return hex.EncodeToString(d[:6])
}

// Parse parses a 64-character hex string into a Digest.
func Parse(s string) (Digest, error) {
	var d Digest
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("fingerprint: parsing digest: %w", err)
	}
	if len(decoded) != len(d) {
		return d, fmt.Errorf("fingerprint: digest is %d bytes, want %d", len(decoded), len(d))
	}
	copy(d[:], decoded)
	return d, nil
}
