package testdb

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"testing"

	"github.com/phrazzld/news-api/internal/platform/migrations"
	"github.com/phrazzld/news-api/internal/store"
	"github.com/stretchr/testify/require"
)

//go:embed seed.sql
var seedSQL string

// Migrate applies pending schema migrations and loads the seed data into an
// empty database. A database that already holds topics is left untouched.
func Migrate(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	if err := migrations.Run(ctx, db, migrations.CommandUp, silentLogger{}); err != nil {
		return err
	}

	var seeded bool
	if err := db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM topics)").Scan(&seeded); err != nil {
		return fmt.Errorf("failed to check seed data: %w", err)
	}
	if seeded {
		return nil
	}
	return seed(ctx, db)
}

// Reset rolls every migration back and applies them again, leaving exactly
// the seed data in place.
func Reset(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	log := &testLogger{t: t}
	require.NoError(t, migrations.Run(ctx, db, migrations.CommandReset, log), "failed to roll back migrations")
	require.NoError(t, migrations.Run(ctx, db, migrations.CommandUp, log), "failed to apply migrations")
	require.NoError(t, seed(ctx, db), "failed to load seed data")
}

// seedStatements splits seed.sql into single statements. Statement ends are
// matched on ";\n" because seeded text may itself contain semicolons.
func seedStatements() []string {
	var stmts []string
	for _, s := range strings.Split(seedSQL, ";\n") {
		if s = strings.TrimSpace(s); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func seed(ctx context.Context, db *sql.DB) error {
	return store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		for _, stmt := range seedStatements() {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to seed: %w", err)
			}
		}
		return nil
	})
}

// testLogger routes goose output to the test log.
type testLogger struct {
	t *testing.T
}

func (l *testLogger) Printf(format string, v ...any) {
	l.t.Log("goose: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *testLogger) Fatalf(format string, v ...any) {
	l.t.Error("goose: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// silentLogger discards goose output; failures surface as returned errors.
type silentLogger struct{}

func (silentLogger) Printf(string, ...any) {}

func (silentLogger) Fatalf(string, ...any) {}
