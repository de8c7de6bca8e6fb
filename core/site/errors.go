package site

import "errors"

var (
	// ErrExport wraps every failure returned by App.Export.
	ErrExport = errors.New("site export failed")

	// ErrInvalidPagePath is returned when a Static route yields a path that
	// does not start with "/" or escapes the dist directory.
	ErrInvalidPagePath = errors.New("invalid page path")

	// ErrSameDir is returned when the dist directory would overwrite the
	// asset source.
	ErrSameDir = errors.New("dist directory overlaps asset directory")

	// ErrUnknownEncoding is returned for unsupported precompression encodings.
	ErrUnknownEncoding = errors.New("unknown precompression encoding")
)
