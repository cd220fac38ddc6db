package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/store"
)

const commentColumns = `comment_id, body, article_id, author, votes, created_at`

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the CommentStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComment(row rowScanner) (*domain.Comment, error) {
	var c domain.Comment
	if err := row.Scan(
		&c.CommentID,
		&c.Body,
		&c.ArticleID,
		&c.Author,
		&c.Votes,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByArticle implements store.CommentStore.ListByArticle
func (s *PostgresCommentStore) ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC, comment_id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, articleID)
	if err != nil {
		logQueryFailure(log, "list comments", err, slog.String("article_id", articleID))
		return nil, wrapQueryError("list comments", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, wrapQueryError("scan comment", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("iterate comments", err)
	}

	return comments, nil
}

// Create implements store.CommentStore.Create
func (s *PostgresCommentStore) Create(
	ctx context.Context,
	articleID string,
	comment domain.NewComment,
) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns

	created, err := scanComment(s.db.QueryRowContext(ctx, query, articleID, comment.Username, comment.Body))
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("comment references missing row",
				slog.String("article_id", articleID),
				slog.String("username", comment.Username),
				slog.String("error", err.Error()))
			return nil, wrapQueryError("create comment", err)
		}
		logQueryFailure(log, "create comment", err, slog.String("article_id", articleID))
		return nil, wrapQueryError("create comment", err)
	}

	log.Info("comment created",
		slog.Int64("comment_id", created.CommentID),
		slog.Int64("article_id", created.ArticleID),
		slog.String("author", created.Author))
	return created, nil
}

// UpdateVotes implements store.CommentStore.UpdateVotes
func (s *PostgresCommentStore) UpdateVotes(
	ctx context.Context,
	commentID string,
	delta int,
) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING ` + commentColumns

	updated, err := scanComment(s.db.QueryRowContext(ctx, query, delta, commentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("comment not found for vote update", slog.String("comment_id", commentID))
			return nil, domain.NotFound(domain.MsgCommentNotFound)
		}
		logQueryFailure(log, "update comment votes", err, slog.String("comment_id", commentID))
		return nil, wrapQueryError("update comment votes", err)
	}

	return updated, nil
}

// Delete implements store.CommentStore.Delete
func (s *PostgresCommentStore) Delete(ctx context.Context, commentID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, commentID)
	if err != nil {
		logQueryFailure(log, "delete comment", err, slog.String("comment_id", commentID))
		return wrapQueryError("delete comment", err)
	}

	if err := CheckRowsAffected(result, domain.NotFound(domain.MsgCommentNotFound)); err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			log.Debug("comment not found for deletion", slog.String("comment_id", commentID))
			return err
		}
		return wrapQueryError("delete comment", err)
	}

	log.Info("comment deleted", slog.String("comment_id", commentID))
	return nil
}
