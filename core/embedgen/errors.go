package embedgen

import "errors"

var (
	ErrMissingRoot       = errors.New("source root is required")
	ErrMissingPackage    = errors.New("package name is required")
	ErrMissingOutput     = errors.New("output file is required")
	ErrInvalidIdentifier = errors.New("invalid Go identifier")
	ErrInvalidRoot       = errors.New("invalid source root")
	ErrReadFile          = errors.New("failed to read source file")
)
