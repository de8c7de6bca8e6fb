// Package embedtest is generated from core/embedgen/testdata/site and
// compiled with the module, so embedgen tests read assets through real
// generated code. The dev variant's root is relative to core/embedgen, where
// those tests run.
package embedtest

//go:generate go run github.com/dmitrymomot/sitekit/cmd/sitekit embed --root ../../testdata/site --package embedtest --output assets.go --dev-root testdata/site
