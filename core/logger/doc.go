// Package logger builds slog loggers and provides attribute helpers used
// across sitekit.
//
// # Creating a logger
//
//	log := logger.New(
//		logger.WithDevelopment("sitekit"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log := logger.New(
//		logger.WithProduction("sitekit"),
//		logger.WithOutput(os.Stderr),
//	)
//
// New without options logs text at info level to stdout.
//
// # Attribute helpers
//
// Helpers return an empty slog.Attr for nil or empty values, so they can be
// passed unconditionally:
//
//	log.Error("export failed", logger.Error(err), logger.Path(dist))
//
//	log.Debug("asset served",
//		logger.Method(r.Method),
//		logger.Path(r.URL.Path),
//		logger.StatusCode(http.StatusNotModified),
//		logger.Hash(etag),
//		logger.Latency(time.Since(start)),
//	)
package logger
