// Package s3 publishes an exported site tree to Amazon S3 and S3-compatible
// services (MinIO, DigitalOcean Spaces, Wasabi, Cloudflare R2).
//
// Basic usage:
//
//	import (
//		"context"
//
//		"github.com/dmitrymomot/sitekit/integration/storage/s3"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		cfg := s3.Config{
//			Bucket: "www.example.com",
//			Region: "us-east-1",
//		}
//
//		store, err := s3.New(ctx, cfg, s3.WithConcurrency(16))
//		if err != nil {
//			panic(err)
//		}
//
//		report, err := store.Publish(ctx, "dist")
//		if err != nil {
//			panic(err)
//		}
//		_ = report.Objects
//	}
//
// # Object Layout
//
// Publish walks the dist tree and uploads every regular file under its
// slash-separated relative path, optionally below a key prefix set with
// WithPrefix. Each object carries a Content-Type and a "fingerprint" metadata
// entry holding the content fingerprint of its bytes. Precompressed siblings
// ending in .gz or .zst are uploaded with the matching Content-Encoding and
// the Content-Type of the uncompressed file.
//
// # S3-Compatible Services
//
//	cfg := s3.Config{
//		Bucket:         "site",
//		Region:         "us-east-1",
//		Endpoint:       "http://localhost:9000",
//		AccessKeyID:    "minioadmin",
//		SecretKey:      "minioadmin",
//		ForcePathStyle: true,
//	}
//
// # Error Handling
//
// AWS errors are classified into package sentinels:
//
//	if errors.Is(err, s3.ErrAccessDenied) {
//		// credentials lack s3:PutObject
//	}
//
// # Testing
//
// WithS3Client accepts any S3Client implementation, so tests can record
// PutObject calls without network access.
package s3
