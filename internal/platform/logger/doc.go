// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package, emitting JSON in
// production and devslog's colored output when the text format is
// configured. Request-scoped loggers travel on the context.
package logger
