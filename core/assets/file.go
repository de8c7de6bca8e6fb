package assets

// File is a single asset. Data is shared and must be treated as read-only.
// Hash is the content fingerprint, empty when the file came from a live
// filesystem.
type File struct {
	Data []byte
	Hash string
}

// ETag returns the validator for conditional requests.
// The second result is false when the file has no fingerprint.
func (f File) ETag() (string, bool) {
	return f.Hash, f.Hash != ""
}

// Directory is a read-only store of assets addressed by slash-separated
// paths relative to its root.
type Directory interface {
	// Read returns the file at name, or false if there is none.
	Read(name string) (File, bool)
}

// Walker is implemented by directories that can enumerate their contents.
// Files are visited in lexical path order.
type Walker interface {
	Walk(fn func(name string, f File) error) error
}
