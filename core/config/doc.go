// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file (if present) on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/sitekit/core/config"
//
//	type ExportConfig struct {
//		OutputDir string `env:"SITEKIT_OUTPUT_DIR" envDefault:"build"`
//		DistDir   string `env:"SITEKIT_DIST_DIR" envDefault:"dist"`
//	}
//
//	func main() {
//		var cfg ExportConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process. Different types are
// cached independently. Reset clears the cache, which is mostly useful in tests.
package config
