package embedgen

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/sitekit/core/assets"
	"github.com/dmitrymomot/sitekit/pkg/fingerprint"
)

// Canonicalize resolves root to an absolute path with symlinks evaluated and
// checks that it is a directory.
func Canonicalize(root string) (string, error) {
	if root == "" {
		return "", ErrMissingRoot
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidRoot, root, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidRoot, root, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidRoot, root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}

	return resolved, nil
}

// Scan reads every regular file under root and returns them keyed by
// slash-separated path relative to root, each with its content fingerprint.
// Symlinks and directories are not embedded.
func Scan(root string) (map[string]assets.File, error) {
	canonical, err := Canonicalize(root)
	if err != nil {
		return nil, err
	}

	files := make(map[string]assets.File)
	err = filepath.WalkDir(canonical, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrReadFile, p, err)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(canonical, p)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrReadFile, p, err)
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrReadFile, p, err)
		}

		files[filepath.ToSlash(rel)] = assets.File{
			Data: data,
			Hash: fingerprint.Sum(data),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
