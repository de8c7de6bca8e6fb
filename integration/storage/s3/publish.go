package s3

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/sitekit/core/assets"
	"github.com/dmitrymomot/sitekit/core/logger"
)

// PublishReport summarizes one Publish call.
type PublishReport struct {
	Objects int
	Bytes   int64
	Keys    []string
}

// precompressed maps sibling suffixes to their Content-Encoding.
var precompressed = map[string]string{
	".gz":  "gzip",
	".zst": "zstd",
}

// Publish uploads every regular file under distDir. Uploads run concurrently,
// bounded by WithConcurrency; the first failure cancels the rest.
func (s *Storage) Publish(ctx context.Context, distDir string) (*PublishReport, error) {
	start := time.Now()

	info, err := os.Stat(distDir)
	if err != nil {
		return nil, fmt.Errorf("s3: publish %s: %w", distDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, distDir)
	}

	var names []string
	err = filepath.WalkDir(distDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(distDir, p)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("s3: walk %s: %w", distDir, err)
	}

	keys := make([]string, len(names))
	for i, name := range names {
		if keys[i], err = s.Key(name); err != nil {
			return nil, err
		}
	}

	var total atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, name := range names {
		key := keys[i]
		g.Go(func() error {
			data, err := os.ReadFile(filepath.Join(distDir, filepath.FromSlash(name)))
			if err != nil {
				return fmt.Errorf("s3: read %s: %w", name, err)
			}
			contentType, encoding := ObjectType(name)
			if err := s.put(gctx, key, data, contentType, encoding); err != nil {
				return err
			}
			total.Add(int64(len(data)))
			s.logger.DebugContext(gctx, "object uploaded",
				logger.Component("s3"),
				logger.File(key),
				logger.BytesOut(int64(len(data))),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &PublishReport{
		Objects: len(keys),
		Bytes:   total.Load(),
		Keys:    keys,
	}
	s.logger.InfoContext(ctx, "site published",
		logger.Component("s3"),
		logger.Action("publish"),
		logger.Count("objects", report.Objects),
		logger.Elapsed(start),
	)
	return report, nil
}

// ObjectType returns the Content-Type and Content-Encoding for name.
// A ".gz" or ".zst" suffix is treated as a precompressed sibling of the
// file without it.
func ObjectType(name string) (contentType, encoding string) {
	ext := path.Ext(name)
	if enc, ok := precompressed[ext]; ok {
		if base := strings.TrimSuffix(name, ext); path.Ext(base) != "" {
			return contentTypeOf(base), enc
		}
	}
	return contentTypeOf(name), ""
}

func contentTypeOf(name string) string {
	if ct, ok := assets.ContentType(name); ok {
		return ct
	}
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
