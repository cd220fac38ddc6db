package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commentRowColumns = []string{"comment_id", "body", "article_id", "author", "votes", "created_at"}

func newCommentStoreWithMock(t *testing.T) (*PostgresCommentStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresCommentStore(db, nil), mock
}

func TestPostgresCommentStore_ListByArticle(t *testing.T) {
	t.Parallel()

	s, mock := newCommentStoreWithMock(t)
	newer := time.Date(2020, 11, 3, 21, 0, 0, 0, time.UTC)
	older := time.Date(2020, 4, 6, 12, 17, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, comment_id DESC")).
		WithArgs("1").
		WillReturnRows(sqlmock.NewRows(commentRowColumns).
			AddRow(int64(5), "I hate streaming noses", int64(1), "icellusedkars", int64(0), newer).
			AddRow(int64(2), "The beautiful thing about treasure", int64(1), "butter_bridge", int64(14), older))

	comments, err := s.ListByArticle(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, int64(5), comments[0].CommentID)
	assert.Equal(t, int64(1), comments[1].ArticleID)
	assert.Equal(t, 14, comments[1].Votes)
	assert.True(t, comments[0].CreatedAt.After(comments[1].CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCommentStore_ListByArticleEmpty(t *testing.T) {
	t.Parallel()

	s, mock := newCommentStoreWithMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM comments")).
		WithArgs("2").
		WillReturnRows(sqlmock.NewRows(commentRowColumns))

	comments, err := s.ListByArticle(context.Background(), "2")
	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}

func TestPostgresCommentStore_Create(t *testing.T) {
	t.Parallel()

	query := regexp.QuoteMeta("INSERT INTO comments (article_id, author, body)")

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		s, mock := newCommentStoreWithMock(t)
		created := time.Now().UTC().Truncate(time.Second)
		mock.ExpectQuery(query).
			WithArgs("2", "butter_bridge", "hello").
			WillReturnRows(sqlmock.NewRows(commentRowColumns).
				AddRow(int64(19), "hello", int64(2), "butter_bridge", int64(0), created))

		comment, err := s.Create(context.Background(), "2", domain.NewComment{Username: "butter_bridge", Body: "hello"})
		require.NoError(t, err)
		assert.Equal(t, int64(19), comment.CommentID)
		assert.Equal(t, int64(2), comment.ArticleID)
		assert.Equal(t, "butter_bridge", comment.Author)
		assert.Equal(t, 0, comment.Votes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign key violation is passed through", func(t *testing.T) {
		t.Parallel()
		s, mock := newCommentStoreWithMock(t)
		mock.ExpectQuery(query).
			WithArgs("10000", "butter_bridge", "hello").
			WillReturnError(newForeignKeyViolation(TableArticles))

		_, err := s.Create(context.Background(), "10000", domain.NewComment{Username: "butter_bridge", Body: "hello"})
		require.Error(t, err)
		table, ok := ForeignKeyTable(err)
		require.True(t, ok)
		assert.Equal(t, TableArticles, table)
	})
}

func TestPostgresCommentStore_UpdateVotes(t *testing.T) {
	t.Parallel()

	query := regexp.QuoteMeta("UPDATE comments")

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		s, mock := newCommentStoreWithMock(t)
		mock.ExpectQuery(query).
			WithArgs(1, "1").
			WillReturnRows(sqlmock.NewRows(commentRowColumns).
				AddRow(int64(1), "body", int64(9), "butter_bridge", int64(17), time.Now()))

		comment, err := s.UpdateVotes(context.Background(), "1", 1)
		require.NoError(t, err)
		assert.Equal(t, 17, comment.Votes)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		s, mock := newCommentStoreWithMock(t)
		mock.ExpectQuery(query).
			WithArgs(1, "10000").
			WillReturnRows(sqlmock.NewRows(commentRowColumns))

		_, err := s.UpdateVotes(context.Background(), "10000", 1)
		de, ok := domain.AsError(err)
		require.True(t, ok)
		assert.Equal(t, domain.MsgCommentNotFound, de.Msg)
	})
}

func TestPostgresCommentStore_Delete(t *testing.T) {
	t.Parallel()

	query := regexp.QuoteMeta("DELETE FROM comments WHERE comment_id = $1")

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()
		s, mock := newCommentStoreWithMock(t)
		mock.ExpectExec(query).WithArgs("1").WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, s.Delete(context.Background(), "1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		s, mock := newCommentStoreWithMock(t)
		mock.ExpectExec(query).WithArgs("10000").WillReturnResult(sqlmock.NewResult(0, 0))
		err := s.Delete(context.Background(), "10000")
		de, ok := domain.AsError(err)
		require.True(t, ok)
		assert.Equal(t, domain.KindNotFound, de.Kind)
		assert.Equal(t, domain.MsgCommentNotFound, de.Msg)
	})

	t.Run("malformed id", func(t *testing.T) {
		t.Parallel()
		s, mock := newCommentStoreWithMock(t)
		mock.ExpectExec(query).WithArgs("abc").WillReturnError(newInvalidTextError())
		err := s.Delete(context.Background(), "abc")
		assert.True(t, IsInvalidInput(err))
	})

	t.Run("rows affected unavailable", func(t *testing.T) {
		t.Parallel()
		s, mock := newCommentStoreWithMock(t)
		resultErr := errors.New("rows affected unavailable")
		mock.ExpectExec(query).WithArgs("1").WillReturnResult(sqlmock.NewErrorResult(resultErr))
		err := s.Delete(context.Background(), "1")
		assert.ErrorIs(t, err, resultErr)
		assert.False(t, domain.IsKind(err, domain.KindNotFound))
	})
}
