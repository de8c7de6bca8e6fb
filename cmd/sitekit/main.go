// Command sitekit generates asset embedding code and serves, exports or
// publishes a pages-free site built from a build output directory.
//
//	sitekit embed --root build/output --package assets --output internal/assets/assets.go
//	sitekit serve --addr :8080
//	sitekit export --dist dist --gzip
//	sitekit publish --bucket www.example.com
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/dmitrymomot/sitekit/app/cli"
	"github.com/dmitrymomot/sitekit/core/assets"
	"github.com/dmitrymomot/sitekit/core/config"
	"github.com/dmitrymomot/sitekit/core/embedgen"
	"github.com/dmitrymomot/sitekit/core/logger"
	"github.com/dmitrymomot/sitekit/core/site"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "sitekit:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	var cfg cli.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	log := cfg.NewLogger()

	dir := assets.NewFilesystem(filepath.Join(cfg.OutputDir, site.AssetDir))
	app := site.New(dir, nil, nil, site.WithLogger(log))

	return cli.Run(ctx, app, args,
		cli.WithName("sitekit"),
		cli.WithConfig(cfg),
		cli.WithLogger(log),
		cli.WithOutput(out),
		cli.WithCommands(embedCommand(cfg, log, out)),
	)
}

func embedCommand(cfg cli.Config, log *slog.Logger, out io.Writer) *cli.Command {
	gen := embedgen.Config{
		Root: filepath.Join(cfg.OutputDir, site.AssetDir),
	}
	return &cli.Command{
		Name:    "embed",
		Summary: "Generate embedded and live-filesystem asset variables",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("embed", pflag.ContinueOnError)
			fs.StringVar(&gen.Root, "root", gen.Root, "asset directory to embed")
			fs.StringVar(&gen.Package, "package", "", "package name of the generated files")
			fs.StringVar(&gen.Output, "output", "", "generated file base name")
			fs.StringVar(&gen.Var, "var", embedgen.DefaultVar, "variable name")
			fs.StringVar(&gen.Tag, "tag", embedgen.DefaultTag, "build tag selecting the live filesystem")
			fs.StringVar(&gen.DevRoot, "dev-root", "", "root path written into the live filesystem variant (default: canonical --root)")
			return fs
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %v", cli.ErrUnexpectedArgs, args)
			}
			res, err := embedgen.Generate(gen)
			if err != nil {
				return err
			}
			log.InfoContext(ctx, "assets embedded",
				logger.Component("embedgen"),
				logger.Count("files", res.Files),
				logger.Count("bytes", res.Bytes),
				logger.File(res.EmbedFile),
			)
			fmt.Fprintf(out, "wrote %s and %s (%d files from %s)\n", res.EmbedFile, res.DevFile, res.Files, res.Root)
			return nil
		},
	}
}
