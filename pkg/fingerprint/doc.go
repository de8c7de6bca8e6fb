// Package fingerprint computes the short content fingerprints used for cache
// validation and versioned asset URLs.
//
// A fingerprint is the first 16 hex characters of the SHA-256 digest of a byte
// sequence. It depends on the input bytes only, so the same content yields the
// same fingerprint across calls, processes and machines.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/sitekit/pkg/fingerprint"
//
//	hash := fingerprint.Sum([]byte("body{}"))
//	// hash is 16 lowercase hex characters
//
//	if err := fingerprint.Verify(data, hash); err != nil {
//		// content changed or hash malformed
//	}
//
// # Content vs. name fingerprints
//
// Sum fingerprints file content and is what the embedded asset bundle stores
// per file. String fingerprints an identifying string such as an asset path
// or a client bundle name; it is used by the versioned path helpers in
// core/assets. The two are computed identically but answer different
// questions: a name fingerprint does not change when the file content does.
package fingerprint
