// Package log provides a concurrency-safe logging interface based on
// [log/slog], extended with a Trace level below Debug for high-volume
// diagnostics like token streams and parse steps.
//
// Loggers are configured at creation time with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatText))
//
// The zero value Logger is valid and discards everything, so library
// code can log unconditionally and leave enablement to the caller.
//
// A package-level default logger writes to standard error; [Config]
// reconfigures it in place for use by command entry points.
package log
