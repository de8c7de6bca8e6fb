// Package embedgen is the build-time step that turns a directory of site
// assets into Go source.
//
// Scan walks the directory, keeps regular files only and fingerprints each
// one. Generate writes two files that declare the same package-level
// variable behind complementary build constraints:
//
//	assets_gen_embed.go  //go:build !dev   var Assets assets.Directory = assets.NewEmbedded(...)
//	assets_gen_dev.go    //go:build dev    var Assets assets.Directory = assets.NewFilesystem("/abs/root")
//
// A release build compiles the bytes and hashes straight into the binary; a
// development build (go build -tags dev) reads the live directory instead, so
// edits show up without regenerating.
//
// Any error while resolving the root or reading a file aborts generation;
// nothing is written in that case.
//
// The usual entry point is the sitekit CLI from a go:generate directive:
//
//	//go:generate sitekit embed --root ../build/output --package web --output assets_gen.go
package embedgen
