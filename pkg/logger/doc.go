// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers that keep key names consistent across the
// session packages and binaries.
//
// # Usage
//
//	log := logger.New(logger.WithEnvironment("production", "session-gc"))
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "session gc finished",
//	    logger.SaveHandler("files"),
//	    logger.Count(removed),
//	    logger.Duration(time.Since(start)),
//	)
//
// # Configuration
//
//   - WithEnvironment – presets for development, staging and production.
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   - WithLevel – minimum slog.Level.
//   - WithOutput – destination writer (default os.Stdout).
//   - WithAttr – static attributes on every record.
//
// Error and SessionID return an empty slog.Attr for zero values, so they can
// be passed unconditionally.
package logger
