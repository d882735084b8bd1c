// Package fingerprint computes deterministic content fingerprints for source
// files. Fingerprints are deliberately non-cryptographic: the input domain is
// a bounded set of trusted local fixture files, so hashing speed wins over
// collision resistance.
package fingerprint

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Sum is a fixed-width content fingerprint.
type Sum uint64

// String renders the fingerprint as 16 lowercase hex characters. This is the
// form used for cache marker filenames.
func (s Sum) String() string {
	return fmt.Sprintf("%016x", uint64(s))
}

// File hashes the full contents of the file at path followed by salt.
// Identical file bytes and identical salt always produce an identical Sum,
// across runs and machines.
func File(path string, salt []byte) (Sum, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return Bytes(data, salt), nil
}

// Bytes hashes data followed by salt.
func Bytes(data, salt []byte) Sum {
	digest := xxhash.New()
	digest.Write(data)
	digest.Write(salt)
	return Sum(digest.Sum64())
}
