package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/sitekit/pkg/fingerprint"
)

// FingerprintMetadataKey is the object metadata key holding the content fingerprint.
const FingerprintMetadataKey = "fingerprint"

// DefaultConcurrency bounds parallel uploads when WithConcurrency is not set.
const DefaultConcurrency = 8

// S3Client defines the S3 operations used by Storage.
type S3Client interface {
	PutObject(ctx context.Context, params *s3aws.PutObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error)
}

// Storage uploads site files to one bucket. Safe for concurrent use.
type Storage struct {
	client        S3Client
	bucket        string
	prefix        string
	uploadTimeout time.Duration
	concurrency   int
	logger        *slog.Logger
}

// Config contains connection settings for a bucket.
type Config struct {
	Bucket         string `env:"S3_BUCKET"`
	Region         string `env:"S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"`
	Prefix         string `env:"S3_PREFIX"`
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE" envDefault:"false"`
}

// Option configures Storage.
type Option func(*options)

type options struct {
	httpClient      *http.Client
	s3Client        S3Client
	s3ConfigOptions []func(*config.LoadOptions) error
	s3ClientOptions []func(*s3aws.Options)
	uploadTimeout   time.Duration
	concurrency     int
	prefix          string
	logger          *slog.Logger
}

// WithS3Client sets a pre-configured S3 client. Primarily used for testing.
func WithS3Client(client S3Client) Option {
	return func(o *options) {
		o.s3Client = client
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) Option {
	return func(o *options) {
		o.s3ConfigOptions = append(o.s3ConfigOptions, option)
	}
}

// WithS3ClientOption adds a custom S3 client option.
func WithS3ClientOption(option func(*s3aws.Options)) Option {
	return func(o *options) {
		o.s3ClientOptions = append(o.s3ClientOptions, option)
	}
}

// WithUploadTimeout bounds each PutObject call.
// If not set, relies on the caller's context deadline.
func WithUploadTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.uploadTimeout = timeout
	}
}

// WithConcurrency sets the number of parallel uploads used by Publish.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithPrefix places every published key below prefix. Overrides Config.Prefix.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithLogger sets the logger used for upload progress.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates a Storage for cfg.Bucket.
// Static credentials are used when both keys are set; otherwise the default
// AWS credential chain applies.
func New(ctx context.Context, cfg Config, opts ...Option) (*Storage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	o := &options{
		concurrency: DefaultConcurrency,
		prefix:      cfg.Prefix,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.concurrency < 1 {
		o.concurrency = 1
	}

	client := o.s3Client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}
		if o.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(o.httpClient))
		}
		awsOptions = append(awsOptions, o.s3ConfigOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("s3: load AWS config: %w", err)
		}

		client = s3aws.NewFromConfig(awsConfig, func(so *s3aws.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle
			for _, opt := range o.s3ClientOptions {
				opt(so)
			}
		})
	}

	return &Storage{
		client:        client,
		bucket:        cfg.Bucket,
		prefix:        strings.Trim(o.prefix, "/"),
		uploadTimeout: o.uploadTimeout,
		concurrency:   o.concurrency,
		logger:        o.logger,
	}, nil
}

// Bucket returns the target bucket name.
func (s *Storage) Bucket() string {
	return s.bucket
}

// Key maps a slash-separated relative name to its object key.
func (s *Storage) Key(name string) (string, error) {
	name = strings.TrimPrefix(name, "/")
	if name == "." || !fs.ValidPath(name) || strings.Contains(name, "\\") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, name)
	}
	if s.prefix == "" {
		return name, nil
	}
	return path.Join(s.prefix, name), nil
}

// Put uploads one object. The key is used as-is; callers map names with Key.
func (s *Storage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	return s.put(ctx, key, data, contentType, "")
}

func (s *Storage) put(ctx context.Context, key string, data []byte, contentType, contentEncoding string) error {
	if key == "" {
		return ErrInvalidKey
	}

	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}

	input := &s3aws.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		Metadata: map[string]string{
			FingerprintMetadataKey: fingerprint.Sum(data),
		},
	}
	if contentEncoding != "" {
		input.ContentEncoding = aws.String(contentEncoding)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return classifyS3Error(err, "put "+key)
	}
	return nil
}
