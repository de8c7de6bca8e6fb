package assets

import (
	"path"
	"strings"

	"github.com/dmitrymomot/sitekit/pkg/fingerprint"
)

// contentTypes is the fixed extension table used for asset responses.
// Unknown extensions get no Content-Type header at all.
var contentTypes = map[string]string{
	".css":  "text/css",
	".js":   "text/javascript",
	".svg":  "image/svg+xml",
	".wasm": "application/wasm",
}

// ContentType returns the content type for name's extension.
func ContentType(name string) (string, bool) {
	ct, ok := contentTypes[path.Ext(name)]
	return ct, ok
}

// ClientPaths holds the versioned URLs of a compiled client bundle.
type ClientPaths struct {
	JS   string
	Wasm string
}

// AssetPath returns "/assets/{hash}.{ext}" where hash fingerprints the path
// string itself, not the file content.
func AssetPath(p string) string {
	return versioned(fingerprint.String(p), p)
}

// ContentAssetPath is like AssetPath but uses the stored content fingerprint
// when dir holds a hashed file at name, so the URL changes with the content.
// Falls back to AssetPath otherwise.
func ContentAssetPath(dir Directory, name string) string {
	if f, ok := dir.Read(strings.TrimPrefix(name, "/")); ok {
		if hash, ok := f.ETag(); ok {
			return versioned(hash, name)
		}
	}
	return AssetPath(name)
}

// NewClientPaths returns the JS loader and wasm module paths for the client
// bundle called name. The hash is a fingerprint of name.
func NewClientPaths(name string) ClientPaths {
	hash := fingerprint.String(name)
	return ClientPaths{
		JS:   "/js/" + hash + ".js",
		Wasm: "/js/" + hash + "_bg.wasm",
	}
}

func versioned(hash, name string) string {
	ext := path.Ext(name)
	return "/assets/" + hash + ext
}
