package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
)

// TableName is the table goose uses to record applied versions.
const TableName = "schema_migrations"

const dir = "sql"

// Supported commands for Run.
const (
	CommandUp      = "up"
	CommandDown    = "down"
	CommandReset   = "reset"
	CommandStatus  = "status"
	CommandVersion = "version"
)

//go:embed sql/*.sql
var files embed.FS

// goose keeps its configuration in package globals.
var mu sync.Mutex

// Logger receives goose progress output.
type Logger = goose.Logger

// Run executes a goose command against db using the embedded migrations.
func Run(ctx context.Context, db *sql.DB, command string, log Logger) error {
	mu.Lock()
	defer mu.Unlock()

	if err := configure(log); err != nil {
		return err
	}

	var err error
	switch command {
	case CommandUp:
		err = goose.UpContext(ctx, db, dir)
	case CommandDown:
		err = goose.DownContext(ctx, db, dir)
	case CommandReset:
		err = goose.ResetContext(ctx, db, dir)
	case CommandStatus:
		err = goose.StatusContext(ctx, db, dir)
	case CommandVersion:
		err = goose.VersionContext(ctx, db, dir)
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	return nil
}

// Count returns the number of embedded migrations.
func Count() (int, error) {
	mu.Lock()
	defer mu.Unlock()

	if err := configure(nil); err != nil {
		return 0, err
	}
	ms, err := goose.CollectMigrations(dir, 0, goose.MaxVersion)
	if err != nil {
		return 0, fmt.Errorf("failed to collect migrations: %w", err)
	}
	return len(ms), nil
}

func configure(log Logger) error {
	goose.SetBaseFS(files)
	goose.SetTableName(TableName)
	if log == nil {
		log = NewSlogLogger(slog.Default())
	}
	goose.SetLogger(log)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// SlogLogger forwards goose output to a slog.Logger. Fatalf logs at error
// level and returns; failures reach the caller as errors from Run.
type SlogLogger struct {
	log *slog.Logger
}

// NewSlogLogger returns a goose logger backed by log.
func NewSlogLogger(log *slog.Logger) *SlogLogger {
	return &SlogLogger{log: log.With("component", "migrations")}
}

func (l *SlogLogger) Printf(format string, v ...any) {
	l.log.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *SlogLogger) Fatalf(format string, v ...any) {
	l.log.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
