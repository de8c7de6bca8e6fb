package assets

import (
	"maps"
	"slices"
)

// Embedded is an immutable in-memory directory.
// Safe for concurrent use without synchronization.
type Embedded struct {
	files map[string]File
	paths []string
}

var (
	_ Directory = (*Embedded)(nil)
	_ Walker    = (*Embedded)(nil)
)

// NewEmbedded builds an Embedded directory from files.
// The map is copied; the File data slices are shared.
func NewEmbedded(files map[string]File) *Embedded {
	m := maps.Clone(files)
	if m == nil {
		m = map[string]File{}
	}
	return &Embedded{
		files: m,
		paths: slices.Sorted(maps.Keys(m)),
	}
}

// Read looks name up in the table.
func (d *Embedded) Read(name string) (File, bool) {
	f, ok := d.files[name]
	return f, ok
}

// Len returns the number of files.
func (d *Embedded) Len() int {
	return len(d.files)
}

// Paths returns all file paths in lexical order.
func (d *Embedded) Paths() []string {
	return slices.Clone(d.paths)
}

// Walk calls fn for every file in lexical path order and stops at the first error.
func (d *Embedded) Walk(fn func(name string, f File) error) error {
	for _, p := range d.paths {
		if err := fn(p, d.files[p]); err != nil {
			return err
		}
	}
	return nil
}
