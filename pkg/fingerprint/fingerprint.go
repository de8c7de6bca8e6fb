package fingerprint

import (
	_ "crypto/sha256" // registers SHA-256 for digest.Canonical

	"github.com/opencontainers/go-digest"
)

// Sum returns the fingerprint of data: the first Len hex characters of its
// SHA-256 digest.
func Sum(data []byte) string {
	return digest.FromBytes(data).Encoded()[:Len]
}

// String returns the fingerprint of the bytes of s.
func String(s string) string {
	return digest.FromString(s).Encoded()[:Len]
}

// Valid reports whether hash looks like a fingerprint produced by Sum.
func Valid(hash string) bool {
	if len(hash) != Len {
		return false
	}
	for i := 0; i < len(hash); i++ {
		c := hash[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// Verify checks that data hashes to the given fingerprint.
// Returns ErrInvalid for malformed fingerprints and ErrMismatch when the
// content does not match.
func Verify(data []byte, hash string) error {
	if !Valid(hash) {
		return ErrInvalid
	}
	if Sum(data) != hash {
		return ErrMismatch
	}
	return nil
}
