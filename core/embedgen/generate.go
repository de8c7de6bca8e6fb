package embedgen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/google/renameio"

	"github.com/dmitrymomot/sitekit/core/assets"
)

const (
	// DefaultVar is the generated variable name.
	DefaultVar = "Assets"
	// DefaultTag is the build tag that selects the live filesystem.
	DefaultTag = "dev"
)

// Config describes one generation run.
type Config struct {
	// Root is the asset directory to embed.
	Root string
	// Package is the Go package name of the generated files.
	Package string
	// Var is the variable to declare. Defaults to DefaultVar.
	Var string
	// Output is the base file name; "_embed" and "_dev" are inserted before
	// the extension.
	Output string
	// Tag is the build tag that selects the filesystem variant. Defaults to DefaultTag.
	Tag string
	// DevRoot is the root path written into the filesystem variant.
	// Defaults to the canonical Root. Set it to a path relative to the
	// program's working directory when the generated files are committed.
	DevRoot string
}

// Result reports what Generate wrote.
type Result struct {
	Root      string
	EmbedFile string
	DevFile   string
	Files     int
	Bytes     int
}

func (c *Config) normalize() error {
	if c.Var == "" {
		c.Var = DefaultVar
	}
	if c.Tag == "" {
		c.Tag = DefaultTag
	}

	switch {
	case c.Root == "":
		return ErrMissingRoot
	case c.Package == "":
		return ErrMissingPackage
	case c.Output == "":
		return ErrMissingOutput
	}

	for _, ident := range []string{c.Package, c.Var, c.Tag} {
		if !token.IsIdentifier(ident) {
			return fmt.Errorf("%w: %q", ErrInvalidIdentifier, ident)
		}
	}
	return nil
}

// OutputFiles returns the embed and dev file names derived from output.
func OutputFiles(output string) (embedFile, devFile string) {
	ext := filepath.Ext(output)
	if ext == "" {
		ext = ".go"
	}
	base := strings.TrimSuffix(output, filepath.Ext(output))
	return base + "_embed" + ext, base + "_dev" + ext
}

// Generate scans cfg.Root and writes the embedded and development files.
// Both files are rendered before either is written.
func Generate(cfg Config) (*Result, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	root, err := Canonicalize(cfg.Root)
	if err != nil {
		return nil, err
	}
	files, err := Scan(root)
	if err != nil {
		return nil, err
	}

	embedSrc, err := RenderEmbedded(cfg, files)
	if err != nil {
		return nil, err
	}
	devRoot := root
	if cfg.DevRoot != "" {
		devRoot = cfg.DevRoot
	}
	devSrc, err := RenderFilesystem(cfg, devRoot)
	if err != nil {
		return nil, err
	}

	embedFile, devFile := OutputFiles(cfg.Output)
	if err := renameio.WriteFile(embedFile, embedSrc, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", embedFile, err)
	}
	if err := renameio.WriteFile(devFile, devSrc, 0o644); err != nil {
		// The variants only build as a pair.
		_ = os.Remove(embedFile)
		return nil, fmt.Errorf("write %s: %w", devFile, err)
	}

	total := 0
	for _, f := range files {
		total += len(f.Data)
	}

	return &Result{
		Root:      root,
		EmbedFile: embedFile,
		DevFile:   devFile,
		Files:     len(files),
		Bytes:     total,
	}, nil
}

type embedEntry struct {
	Path string
	Data string
	Hash string
}

type templateData struct {
	Config
	Root    string
	Entries []embedEntry
}

var embedTemplate = template.Must(template.New("embed").Parse(`// Code generated by sitekit embed. DO NOT EDIT.

//go:build !{{.Tag}}

package {{.Package}}

import "github.com/dmitrymomot/sitekit/core/assets"

// {{.Var}} holds the site assets compiled into the binary.
var {{.Var}} assets.Directory = assets.NewEmbedded(map[string]assets.File{
{{- range .Entries}}
	{{.Path}}: {Data: []byte({{.Data}}), Hash: {{.Hash}}},
{{- end}}
})
`))

var devTemplate = template.Must(template.New("dev").Parse(`// Code generated by sitekit embed. DO NOT EDIT.

//go:build {{.Tag}}

package {{.Package}}

import "github.com/dmitrymomot/sitekit/core/assets"

// {{.Var}} reads the site assets live from disk.
var {{.Var}} assets.Directory = assets.NewFilesystem({{.Root}})
`))

// RenderEmbedded returns formatted Go source embedding files.
func RenderEmbedded(cfg Config, files map[string]assets.File) ([]byte, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	entries := make([]embedEntry, 0, len(files))
	for _, name := range slices.Sorted(maps.Keys(files)) {
		f := files[name]
		entries = append(entries, embedEntry{
			Path: strconv.Quote(name),
			Data: strconv.Quote(string(f.Data)),
			Hash: strconv.Quote(f.Hash),
		})
	}

	return render(embedTemplate, templateData{Config: cfg, Entries: entries})
}

// RenderFilesystem returns formatted Go source for the development variant.
func RenderFilesystem(cfg Config, root string) ([]byte, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return render(devTemplate, templateData{Config: cfg, Root: strconv.Quote(root)})
}

func render(tmpl *template.Template, data templateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s template: %w", tmpl.Name(), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}
