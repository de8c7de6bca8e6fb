package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/core/config"
)

func TestRun_EmbedThenExport(t *testing.T) {
	root := t.TempDir()
	output := filepath.Join(root, "build")
	dist := filepath.Join(root, "dist")
	require.NoError(t, os.MkdirAll(filepath.Join(output, "output", "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(output, "output", "css", "site.css"), []byte("body{}"), 0o644))

	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("SITEKIT_OUTPUT_DIR", output)
	t.Setenv("SITEKIT_DIST_DIR", dist)
	t.Setenv("SITEKIT_LOG_LEVEL", "error")

	gen := filepath.Join(root, "gen", "assets.go")
	require.NoError(t, os.MkdirAll(filepath.Dir(gen), 0o755))

	var out bytes.Buffer
	err := run(context.Background(), []string{"embed", "--package", "gen", "--output", gen}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "assets_embed.go")
	assert.Contains(t, out.String(), "(1 files from")
	assert.FileExists(t, filepath.Join(root, "gen", "assets_embed.go"))
	assert.FileExists(t, filepath.Join(root, "gen", "assets_dev.go"))

	out.Reset()
	require.NoError(t, run(context.Background(), []string{"export"}, &out))
	assert.Contains(t, out.String(), "exported 0 pages and 1 assets")
	assert.FileExists(t, filepath.Join(dist, "css", "site.css"))
}

func TestRun_EmbedRequiresPackage(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("SITEKIT_OUTPUT_DIR", t.TempDir())
	t.Setenv("SITEKIT_LOG_LEVEL", "error")

	err := run(context.Background(), []string{"embed", "--output", filepath.Join(t.TempDir(), "a.go")}, io.Discard)
	assert.Error(t, err)
}
