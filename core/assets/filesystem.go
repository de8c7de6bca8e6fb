package assets

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Filesystem is a live view of a directory on disk.
// Every Read hits the filesystem; nothing is cached and no hash is computed,
// since the content may change between requests.
type Filesystem struct {
	root string
}

var (
	_ Directory = Filesystem{}
	_ Walker    = Filesystem{}
)

// NewFilesystem returns a Filesystem rooted at root.
// The root is not required to exist yet.
func NewFilesystem(root string) Filesystem {
	return Filesystem{root: filepath.Clean(root)}
}

// Root returns the directory path this Filesystem reads from.
func (d Filesystem) Root() string {
	return d.root
}

// Read opens name under the root. Paths escaping the root, missing paths and
// anything that is not a regular file are reported as absent.
func (d Filesystem) Read(name string) (File, bool) {
	if name == "" {
		return File{}, false
	}

	// OpenInRoot rejects ".." and symlinks that leave the root.
	f, err := os.OpenInRoot(d.root, filepath.FromSlash(name))
	if err != nil {
		return File{}, false
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return File{}, false
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return File{}, false
	}

	return File{Data: data}, true
}

// Walk visits every regular file under the root in lexical order.
// Symlinks and directories are skipped. I/O errors abort the walk.
func (d Filesystem) Walk(fn func(name string, f File) error) error {
	return filepath.WalkDir(d.root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(d.root, p)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}

		return fn(filepath.ToSlash(rel), File{Data: data})
	})
}
