package testdb

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/news-api/internal/redact"
	"github.com/stretchr/testify/require"
)

// Environment variables consulted for the test database, in order.
const (
	EnvDatabaseURL     = "DATABASE_URL"
	EnvNewsDatabaseURL = "NEWS_DATABASE_URL"
)

// TestTimeout bounds setup queries issued by this package.
const TestTimeout = 5 * time.Second

// DatabaseURL returns the test database URL, or "" when none is configured.
func DatabaseURL() string {
	for _, key := range []string{EnvDatabaseURL, EnvNewsDatabaseURL} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// ShouldSkipDatabaseTest reports whether no database is configured.
func ShouldSkipDatabaseTest() bool {
	return DatabaseURL() == ""
}

// Open connects to the test database, skipping the test when none is
// configured. The connection is closed when the test finishes.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := DatabaseURL()
	if dbURL == "" {
		t.Skip(EnvDatabaseURL + " not set - skipping integration test")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "failed to open database %s", redact.String(dbURL))

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "failed to reach database %s", redact.String(dbURL))

	t.Cleanup(func() { _ = db.Close() })
	return db
}
