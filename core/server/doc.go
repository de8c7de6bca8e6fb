// Package server provides an HTTP server with graceful shutdown, configurable
// timeouts, and optional access logging. It serves a site application (or any
// http.Handler) during development and in long-running deployments.
//
// # Basic Usage
//
//	import (
//		"context"
//		"net/http"
//
//		"github.com/dmitrymomot/sitekit/core/server"
//	)
//
//	func main() {
//		ctx := context.Background()
//		if err := server.Run(ctx, ":8080", app); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Server Configuration
//
//	srv := server.New(":8080",
//		server.WithShutdownTimeout(10*time.Second),
//		server.WithReadTimeout(5*time.Second),
//		server.WithLogger(slog.Default()),
//		server.WithAccessLog(),
//	)
//
// Config carries the same settings with env tags (SERVER_ADDR,
// SERVER_READ_TIMEOUT, SERVER_ACCESS_LOG, ...) for use with core/config:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//	srv, err := server.NewFromConfig(cfg)
//
// # Lifecycle with errgroup
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, app))
//	if err := g.Wait(); err != nil {
//		log.Fatal(err)
//	}
//
// Run returns nil when the context is canceled and the server stopped cleanly.
// Addr reports the bound address, so ":0" can be used in tests.
package server
