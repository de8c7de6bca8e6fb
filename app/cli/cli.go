package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/sitekit/core/config"
	"github.com/dmitrymomot/sitekit/core/logger"
	"github.com/dmitrymomot/sitekit/core/server"
	"github.com/dmitrymomot/sitekit/core/site"
	"github.com/dmitrymomot/sitekit/integration/storage/s3"
)

type runner struct {
	name       string
	app        *site.App
	cfg        *Config
	out        io.Writer
	logger     *slog.Logger
	serverOpts []server.Option
	s3Opts     []s3.Option
	extra      []*Command
}

// Option configures Run.
type Option func(*runner)

// WithName sets the binary name shown in help. Defaults to "site".
func WithName(name string) Option {
	return func(r *runner) {
		r.name = name
	}
}

// WithConfig uses cfg instead of loading Config from the environment.
func WithConfig(cfg Config) Option {
	return func(r *runner) {
		r.cfg = &cfg
	}
}

// WithOutput sets where reports and help are written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(r *runner) {
		if w != nil {
			r.out = w
		}
	}
}

// WithLogger overrides the logger built from Config.
func WithLogger(l *slog.Logger) Option {
	return func(r *runner) {
		r.logger = l
	}
}

// WithServerOptions appends options for the serve command's server.
func WithServerOptions(opts ...server.Option) Option {
	return func(r *runner) {
		r.serverOpts = append(r.serverOpts, opts...)
	}
}

// WithStorageOptions appends options for the publish command's storage.
func WithStorageOptions(opts ...s3.Option) Option {
	return func(r *runner) {
		r.s3Opts = append(r.s3Opts, opts...)
	}
}

// WithCommands adds commands next to serve, export and publish.
func WithCommands(commands ...*Command) Option {
	return func(r *runner) {
		r.extra = append(r.extra, commands...)
	}
}

// Run dispatches args to a subcommand. app may be nil when only commands
// added with WithCommands are used.
func Run(ctx context.Context, app *site.App, args []string, opts ...Option) error {
	r := &runner{
		name: "site",
		app:  app,
		out:  os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.cfg == nil {
		var cfg Config
		if err := config.Load(&cfg); err != nil {
			return err
		}
		r.cfg = &cfg
	}
	if r.logger == nil {
		r.logger = r.cfg.NewLogger()
	}

	commands := append([]*Command{r.serveCommand(), r.exportCommand(), r.publishCommand()}, r.extra...)
	return dispatch(ctx, r.name, r.out, commands, args)
}

func (r *runner) requireApp(args []string) error {
	if r.app == nil {
		return ErrNoApp
	}
	if len(args) > 0 {
		return fmt.Errorf("%w: %v", ErrUnexpectedArgs, args)
	}
	return nil
}

func (r *runner) serveCommand() *Command {
	cfg := r.cfg.Server
	if cfg.Addr == "" {
		cfg = server.DefaultConfig()
	}
	return &Command{
		Name:    "serve",
		Summary: "Serve pages and assets over HTTP",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
			fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
			fs.BoolVar(&cfg.AccessLog, "access-log", cfg.AccessLog, "log every request")
			return fs
		},
		Run: func(ctx context.Context, args []string) error {
			if err := r.requireApp(args); err != nil {
				return err
			}

			opts := append([]server.Option{server.WithLogger(r.logger)}, r.serverOpts...)
			srv, err := server.NewFromConfig(cfg, opts...)
			if err != nil {
				return err
			}

			g, ctx := errgroup.WithContext(ctx)
			g.Go(srv.Run(ctx, r.app))
			return g.Wait()
		},
	}
}

func (r *runner) exportCommand() *Command {
	output, dist := r.cfg.OutputDir, r.cfg.DistDir
	var gzip, zstd bool
	return &Command{
		Name:    "export",
		Summary: "Render static routes and copy assets into a dist directory",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("export", pflag.ContinueOnError)
			fs.StringVar(&output, "output", output, "build output directory holding the asset root")
			fs.StringVar(&dist, "dist", dist, "directory to recreate with the exported site")
			fs.BoolVar(&gzip, "gzip", false, "write .gz siblings")
			fs.BoolVar(&zstd, "zstd", false, "write .zst siblings")
			return fs
		},
		Run: func(ctx context.Context, args []string) error {
			if err := r.requireApp(args); err != nil {
				return err
			}

			var encodings []site.Encoding
			if gzip {
				encodings = append(encodings, site.EncodingGzip)
			}
			if zstd {
				encodings = append(encodings, site.EncodingZstd)
			}

			report, err := r.app.Export(output, dist, site.WithPrecompress(encodings...))
			if err != nil {
				return err
			}
			fmt.Fprintf(r.out, "exported %d pages and %d assets to %s (%d dynamic routes skipped, %d compressed files)\n",
				report.Pages, report.Assets, dist, report.Skipped, report.Compressed)
			return nil
		},
	}
}

func (r *runner) publishCommand() *Command {
	dist := r.cfg.DistDir
	cfg := r.cfg.S3
	concurrency := s3.DefaultConcurrency
	return &Command{
		Name:    "publish",
		Summary: "Upload an exported dist directory to S3",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("publish", pflag.ContinueOnError)
			fs.StringVar(&dist, "dist", dist, "exported site directory")
			fs.StringVar(&cfg.Bucket, "bucket", cfg.Bucket, "target bucket")
			fs.StringVar(&cfg.Region, "region", cfg.Region, "bucket region")
			fs.StringVar(&cfg.Endpoint, "endpoint", cfg.Endpoint, "custom endpoint for S3-compatible services")
			fs.StringVar(&cfg.Prefix, "prefix", cfg.Prefix, "key prefix")
			fs.BoolVar(&cfg.ForcePathStyle, "path-style", cfg.ForcePathStyle, "use path-style addressing")
			fs.IntVar(&concurrency, "concurrency", concurrency, "parallel uploads")
			return fs
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %v", ErrUnexpectedArgs, args)
			}

			opts := append([]s3.Option{
				s3.WithConcurrency(concurrency),
				s3.WithLogger(r.logger),
			}, r.s3Opts...)
			store, err := s3.New(ctx, cfg, opts...)
			if err != nil {
				return err
			}

			report, err := store.Publish(ctx, dist)
			if err != nil {
				return err
			}
			r.logger.DebugContext(ctx, "publish finished", logger.Component("cli"), logger.Count("objects", report.Objects))
			fmt.Fprintf(r.out, "published %d objects (%d bytes) to s3://%s\n", report.Objects, report.Bytes, store.Bucket())
			return nil
		},
	}
}
