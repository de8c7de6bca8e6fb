package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/sitekit/core/logger"
	"github.com/dmitrymomot/sitekit/core/server"
	"github.com/dmitrymomot/sitekit/integration/storage/s3"
)

// Config holds defaults for every subcommand.
type Config struct {
	OutputDir string `env:"SITEKIT_OUTPUT_DIR" envDefault:"build"`
	DistDir   string `env:"SITEKIT_DIST_DIR" envDefault:"dist"`
	LogLevel  string `env:"SITEKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"SITEKIT_LOG_FORMAT" envDefault:"text"`

	Server server.Config
	S3     s3.Config
}

// NewLogger builds the process logger from LogLevel and LogFormat.
// Logs go to stderr so command output stays clean.
func (c Config) NewLogger() *slog.Logger {
	opts := []logger.Option{
		logger.WithLevel(logger.ParseLevel(c.LogLevel)),
		logger.WithOutput(os.Stderr),
	}
	if strings.EqualFold(c.LogFormat, "json") {
		opts = append(opts, logger.WithJSONFormatter())
	}
	return logger.New(opts...)
}
