// Package logger provides structured logging functionality for the application.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/golang-cz/devslog"
	"github.com/phrazzld/news-api/internal/config"
)

// ParseLevel converts a configured level name (case-insensitive) to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// New creates a logger writing to out using the level and format from cfg.
// The "text" format uses devslog for readable local output; anything else
// produces JSON.
func New(out io.Writer, cfg config.ServerConfig) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "text") {
		opts.AddSource = true
		handler = devslog.NewHandler(out, &devslog.Options{
			HandlerOptions:  opts,
			NewLineAfterLog: true,
		})
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	return slog.New(handler), nil
}

// Setup initializes the application's logging system based on the provided
// configuration, writing to stdout, and installs the result as the default
// logger so package-level slog calls share it.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	l, err := New(os.Stdout, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to configure logger: %w", err)
	}

	slog.SetDefault(l)
	return l, nil
}
