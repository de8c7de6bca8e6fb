package fingerprint

import "errors"

// Len is the number of hex characters kept from the SHA-256 digest (64 bits).
const Len = 16

var (
	// ErrMismatch is returned when data does not hash to the expected fingerprint.
	ErrMismatch = errors.New("fingerprint mismatch")

	// ErrInvalid is returned when a fingerprint is not Len lowercase hex characters.
	ErrInvalid = errors.New("invalid fingerprint format")
)
