package postgres_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Severity:   "ERROR",
		Code:       code,
		Message:    "error message",
		SchemaName: "public",
	}
}

func newForeignKeyError(detail, constraint string) *pgconn.PgError {
	pgErr := newPgError("23503")
	pgErr.Message = "insert or update on table \"comments\" violates foreign key constraint"
	pgErr.TableName = "comments"
	pgErr.Detail = detail
	pgErr.ConstraintName = constraint
	return pgErr
}

// MockResult implements sql.Result for testing
type MockResult struct {
	rowsAffected int64
	err          error
}

func (m MockResult) LastInsertId() (int64, error) {
	return 0, m.err
}

func (m MockResult) RowsAffected() (int64, error) {
	return m.rowsAffected, m.err
}

func TestIsInvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"invalid text representation", newPgError("22P02"), true},
		{"numeric out of range", newPgError("22003"), true},
		{"not null violation", newPgError("23502"), true},
		{"wrapped invalid text", fmt.Errorf("query: %w", newPgError("22P02")), true},
		{"foreign key violation", newPgError("23503"), false},
		{"unique violation", newPgError("23505"), false},
		{"plain error", errors.New("22P02"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, postgres.IsInvalidInput(tt.err))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsForeignKeyViolation(newPgError("23503")))
	assert.True(t, postgres.IsForeignKeyViolation(fmt.Errorf("wrapped: %w", newPgError("23503"))))
	assert.False(t, postgres.IsForeignKeyViolation(newPgError("22P02")))
	assert.False(t, postgres.IsForeignKeyViolation(errors.New("some error")))
	assert.False(t, postgres.IsForeignKeyViolation(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsUniqueViolation(newPgError("23505")))
	assert.False(t, postgres.IsUniqueViolation(newPgError("23503")))
	assert.False(t, postgres.IsUniqueViolation(nil))
}

func TestForeignKeyTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantTable string
		wantOK    bool
	}{
		{
			name:      "article from detail",
			err:       newForeignKeyError(`Key (article_id)=(10000) is not present in table "articles".`, ""),
			wantTable: postgres.TableArticles,
			wantOK:    true,
		},
		{
			name:      "user from detail",
			err:       newForeignKeyError(`Key (author)=(nobody) is not present in table "users".`, ""),
			wantTable: postgres.TableUsers,
			wantOK:    true,
		},
		{
			name:      "schema qualified table",
			err:       newForeignKeyError(`Key (topic)=(x) is not present in table "public.topics".`, ""),
			wantTable: postgres.TableTopics,
			wantOK:    true,
		},
		{
			name:      "detail wins over constraint",
			err:       newForeignKeyError(`Key (author)=(nobody) is not present in table "users".`, "comments_article_id_fkey"),
			wantTable: postgres.TableUsers,
			wantOK:    true,
		},
		{
			name:      "article from constraint",
			err:       newForeignKeyError("", "comments_article_id_fkey"),
			wantTable: postgres.TableArticles,
			wantOK:    true,
		},
		{
			name:      "user from constraint",
			err:       newForeignKeyError("", "comments_author_fkey"),
			wantTable: postgres.TableUsers,
			wantOK:    true,
		},
		{
			name:      "unknown reference",
			err:       newForeignKeyError("", "widgets_owner_fkey"),
			wantTable: "",
			wantOK:    true,
		},
		{
			name:      "wrapped",
			err:       fmt.Errorf("create comment: %w", newForeignKeyError(`Key (article_id)=(9) is not present in table "articles".`, "")),
			wantTable: postgres.TableArticles,
			wantOK:    true,
		},
		{
			name:   "not a foreign key violation",
			err:    newPgError("22P02"),
			wantOK: false,
		},
		{
			name:   "plain error",
			err:    errors.New("boom"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			table, ok := postgres.ForeignKeyTable(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTable, table)
		})
	}
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	notFound := domain.NotFound(domain.MsgCommentNotFound)

	t.Run("rows affected", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, postgres.CheckRowsAffected(MockResult{rowsAffected: 1}, notFound))
	})

	t.Run("no rows affected", func(t *testing.T) {
		t.Parallel()
		err := postgres.CheckRowsAffected(MockResult{rowsAffected: 0}, notFound)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})

	t.Run("rows affected error", func(t *testing.T) {
		t.Parallel()
		resultErr := errors.New("driver does not support RowsAffected")
		err := postgres.CheckRowsAffected(MockResult{err: resultErr}, notFound)
		require.Error(t, err)
		assert.ErrorIs(t, err, resultErr)
	})

	t.Run("nil result", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, postgres.CheckRowsAffected(nil, notFound))
	})
}
