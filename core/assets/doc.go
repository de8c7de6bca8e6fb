// Package assets provides the read-only directory abstraction that backs a
// site's static files.
//
// A Directory has a single capability, Read, and two implementations:
//
//   - Embedded: an immutable path→File table generated at build time by
//     core/embedgen and compiled into the binary. Every File carries the
//     fingerprint of its content, computed once at generation time.
//   - Filesystem: a root path on disk. Every Read performs a live lookup and
//     never caches, so edits are visible immediately. Files read this way
//     never carry a fingerprint.
//
// Which one a program uses is decided at build time. The generated bundle
// declares the same variable twice behind complementary build tags:
//
//	//go:generate sitekit embed --root ./build/output --package web --output assets_gen.go
//
//	// go build            -> web.Assets is *assets.Embedded
//	// go build -tags dev  -> web.Assets is assets.Filesystem
//
// # Reading files
//
//	f, ok := web.Assets.Read("css/site.css")
//	if !ok {
//		// not found
//	}
//	if etag, ok := f.ETag(); ok {
//		// conditional caching is possible
//	}
//
// Consumers must treat a missing hash as "no conditional caching possible"
// and always respond with the full content.
//
// # Versioned paths
//
// AssetPath and ClientPaths build cache-busting URLs from an identifying name.
// ContentAssetPath prefers the content fingerprint when the file is embedded.
package assets
