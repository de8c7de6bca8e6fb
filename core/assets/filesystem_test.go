package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/core/assets"
)

func TestFilesystem_Read(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "css", "site.css"), []byte("body{}"), 0o644))

	dir := assets.NewFilesystem(root)
	assert.Equal(t, filepath.Clean(root), dir.Root())

	f, ok := dir.Read("css/site.css")
	require.True(t, ok)
	assert.Equal(t, "body{}", string(f.Data))
	_, hashed := f.ETag()
	assert.False(t, hashed)

	tests := []struct {
		name string
		path string
	}{
		{name: "missing", path: "css/missing.css"},
		{name: "directory", path: "css"},
		{name: "empty", path: ""},
		{name: "traversal", path: "../outside.txt"},
		{name: "absolute", path: "/etc/passwd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := dir.Read(tt.path)
			assert.False(t, ok)
		})
	}
}

func TestFilesystem_ReadSeesLiveChanges(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	file := filepath.Join(root, "app.js")
	require.NoError(t, os.WriteFile(file, []byte("console.log(1)"), 0o644))

	dir := assets.NewFilesystem(root)

	f, ok := dir.Read("app.js")
	require.True(t, ok)
	assert.Equal(t, "console.log(1)", string(f.Data))
	assert.Empty(t, f.Hash)

	require.NoError(t, os.WriteFile(file, []byte("console.log(2)"), 0o644))

	f, ok = dir.Read("app.js")
	require.True(t, ok)
	assert.Equal(t, "console.log(2)", string(f.Data))
	assert.Empty(t, f.Hash)

	require.NoError(t, os.Remove(file))
	_, ok = dir.Read("app.js")
	assert.False(t, ok)
}

func TestFilesystem_MissingRoot(t *testing.T) {
	t.Parallel()

	dir := assets.NewFilesystem(filepath.Join(t.TempDir(), "nope"))
	_, ok := dir.Read("a.css")
	assert.False(t, ok)
	assert.Error(t, dir.Walk(func(string, assets.File) error { return nil }))
}

func TestFilesystem_Walk(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "b", "c.svg"), []byte("<svg/>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "z.wasm"), []byte{0x00, 0x61}, 0o644))
	require.NoError(t, os.Symlink(filepath.Join(root, "z.wasm"), filepath.Join(root, "link.wasm")))

	got := map[string]string{}
	err := assets.NewFilesystem(root).Walk(func(name string, f assets.File) error {
		assert.Empty(t, f.Hash)
		got[name] = string(f.Data)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"a/b/c.svg": "<svg/>",
		"z.wasm":    string([]byte{0x00, 0x61}),
	}, got)
}
