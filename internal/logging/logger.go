// Package logging defines the structured-logging interface used across
// schedulenest, with an implementation over log/slog.
package logging

// Logger is a structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Warn("discarding corrupt document", "key", key, "err", err)
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}
