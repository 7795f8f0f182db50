// Package logger builds log/slog loggers for the file cabinet binaries.
//
// New takes functional options (WithLevel, WithLevelName, WithFormat,
// WithOutput, WithAttr, WithEnvironment) and returns a *slog.Logger writing
// text or JSON. Records go to stderr by default so the console transcript on
// stdout stays clean.
//
// attr.go holds constructors for the attribute keys used across the
// codebase (error, component, command, record_id, field, path, count) so key
// names stay consistent:
//
//	log := logger.New(logger.WithEnvironment(environment.Development, "filecabinet"))
//	log.Debug("record created", logger.RecordID(id))
//	log.Warn("export failed", logger.Path(path), logger.Error(err))
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
