package site

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/renameio"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/dmitrymomot/sitekit/core/logger"
	"github.com/dmitrymomot/sitekit/core/route"
)

// AssetDir is the asset bundle root inside a build output directory.
const AssetDir = "output"

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// Encoding is a precompression format written next to exported files.
type Encoding string

const (
	// EncodingGzip writes "<file>.gz".
	EncodingGzip Encoding = "gzip"
	// EncodingZstd writes "<file>.zst".
	EncodingZstd Encoding = "zstd"
)

type exportConfig struct {
	encodings []Encoding
}

// ExportOption configures Export.
type ExportOption func(*exportConfig)

// WithPrecompress writes a compressed sibling of every exported file for
// each encoding, for servers that serve precompressed files directly.
func WithPrecompress(encodings ...Encoding) ExportOption {
	return func(c *exportConfig) {
		c.encodings = append(c.encodings, encodings...)
	}
}

// ExportReport summarizes an export.
type ExportReport struct {
	// Assets is the number of files copied from the asset root.
	Assets int
	// Pages is the number of rendered HTML files.
	Pages int
	// Skipped is the number of Dynamic routes left out.
	Skipped int
	// Compressed is the number of precompressed siblings written.
	Compressed int
	// Files lists every primary file written, relative to distDir.
	Files []string
}

// Export writes the whole site under distDir. See the package documentation
// for the layout. Any error aborts immediately and is wrapped in ErrExport;
// partial output is left in place for the next run to remove.
func (a *App) Export(outputDir, distDir string, opts ...ExportOption) (*ExportReport, error) {
	cfg := &exportConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	for _, enc := range cfg.encodings {
		if enc != EncodingGzip && enc != EncodingZstd {
			return nil, fmt.Errorf("%w: %w: %q", ErrExport, ErrUnknownEncoding, enc)
		}
	}

	start := time.Now()
	assetRoot := filepath.Join(outputDir, AssetDir)

	if err := checkOverlap(assetRoot, distDir); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExport, err)
	}

	e := &exporter{cfg: cfg, dist: distDir, report: &ExportReport{}}

	if err := os.RemoveAll(distDir); err != nil {
		return nil, fmt.Errorf("%w: remove %s: %w", ErrExport, distDir, err)
	}
	if err := os.MkdirAll(distDir, dirPerm); err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", ErrExport, distDir, err)
	}

	if err := e.copyAssets(assetRoot); err != nil {
		return e.report, fmt.Errorf("%w: %w", ErrExport, err)
	}

	for _, init := range a.routes {
		switch rt := init.Init().(type) {
		case *route.Static:
			for _, p := range rt.ExportPaths(init.Pattern) {
				if err := e.writePage(p, rt.Render); err != nil {
					return e.report, fmt.Errorf("%w: route %s: %w", ErrExport, init.Pattern, err)
				}
				a.logger.Debug("page exported", logger.Path(p))
			}
		default:
			e.report.Skipped++
			a.logger.Debug("skipping dynamic route", logger.Path(init.Pattern))
		}
	}

	a.logger.Info("site exported",
		logger.Path(distDir),
		logger.Count("assets", e.report.Assets),
		logger.Count("pages", e.report.Pages),
		logger.Count("skipped", e.report.Skipped),
		logger.Elapsed(start),
	)

	return e.report, nil
}

// HTMLFileName maps a page path to its file name relative to the dist
// directory: "/" → "index.html", "/blog/" → "blog/index.html",
// "/about" → "about.html".
func HTMLFileName(pagePath string) (string, error) {
	if !strings.HasPrefix(pagePath, "/") {
		return "", fmt.Errorf("%w: %q must start with /", ErrInvalidPagePath, pagePath)
	}

	var name string
	switch {
	case pagePath == "/":
		name = "index.html"
	case strings.HasSuffix(pagePath, "/"):
		name = pagePath[1:] + "index.html"
	default:
		name = pagePath[1:] + ".html"
	}

	if !filepath.IsLocal(filepath.FromSlash(name)) {
		return "", fmt.Errorf("%w: %q escapes the dist directory", ErrInvalidPagePath, pagePath)
	}
	return name, nil
}

type exporter struct {
	cfg    *exportConfig
	dist   string
	report *ExportReport
}

func (e *exporter) copyAssets(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", p, err)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}

		if err := e.write(filepath.ToSlash(rel), data); err != nil {
			return err
		}
		e.report.Assets++
		return nil
	})
}

func (e *exporter) writePage(pagePath string, render route.StaticRenderer) error {
	name, err := HTMLFileName(pagePath)
	if err != nil {
		return err
	}
	if err := e.write(name, []byte(render(pagePath))); err != nil {
		return err
	}
	e.report.Pages++
	return nil
}

// write creates parent directories and replaces dist/name atomically.
func (e *exporter) write(name string, data []byte) error {
	dst := filepath.Join(e.dist, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return fmt.Errorf("create directory for %s: %w", name, err)
	}
	if err := renameio.WriteFile(dst, data, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	e.report.Files = append(e.report.Files, name)

	for _, enc := range e.cfg.encodings {
		if err := e.precompress(dst, data, enc); err != nil {
			return fmt.Errorf("precompress %s (%s): %w", name, enc, err)
		}
		e.report.Compressed++
	}
	return nil
}

func (e *exporter) precompress(dst string, data []byte, enc Encoding) error {
	var buf bytes.Buffer
	var ext string

	switch enc {
	case EncodingGzip:
		ext = ".gz"
		zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
		if err != nil {
			return err
		}
		if _, err := zw.Write(data); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
	case EncodingZstd:
		ext = ".zst"
		zw, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return err
		}
		if _, err := zw.Write(data); err != nil {
			_ = zw.Close()
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
	default:
		return ErrUnknownEncoding
	}

	return renameio.WriteFile(dst+ext, buf.Bytes(), filePerm)
}

// checkOverlap refuses layouts where recreating distDir would delete or
// recursively copy the asset source.
func checkOverlap(assetRoot, distDir string) error {
	src, err := filepath.Abs(assetRoot)
	if err != nil {
		return err
	}
	dst, err := filepath.Abs(distDir)
	if err != nil {
		return err
	}
	if within(src, dst) || within(dst, src) {
		return fmt.Errorf("%w: %s and %s", ErrSameDir, assetRoot, distDir)
	}
	return nil
}

// within reports whether p is base or inside it.
func within(p, base string) bool {
	rel, err := filepath.Rel(base, p)
	if err != nil {
		return false
	}
	return rel == "." || filepath.IsLocal(rel)
}
