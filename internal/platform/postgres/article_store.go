package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/store"
)

// sortColumns maps each allowed sort field to its column expression.
// Nothing outside this map is ever written into an ORDER BY clause.
var sortColumns = map[store.SortField]string{
	store.SortByTitle:     "a.title",
	store.SortByTopic:     "a.topic",
	store.SortByAuthor:    "a.author",
	store.SortByCreatedAt: "a.created_at",
	store.SortByVotes:     "a.votes",
}

var sortDirections = map[store.SortOrder]string{
	store.OrderAsc:  "ASC",
	store.OrderDesc: "DESC",
}

const articleSummaryColumns = `
		a.article_id, a.author, a.title, a.topic, a.created_at, a.votes,
		a.article_img_url, COUNT(c.comment_id)::INT AS comment_count`

// PostgresArticleStore implements the store.ArticleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresArticleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresArticleStore creates a new PostgreSQL implementation of the ArticleStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresArticleStore(db store.DBTX, logger *slog.Logger) *PostgresArticleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresArticleStore{
		db:     db,
		logger: logger.With(slog.String("component", "article_store")),
	}
}

// Ensure PostgresArticleStore implements store.ArticleStore interface
var _ store.ArticleStore = (*PostgresArticleStore)(nil)

// buildListQuery assembles the listing statement for q. The topic filter is
// always a bound parameter.
func buildListQuery(q store.ArticleQuery) (string, []any, error) {
	field, order, err := q.Sort()
	if err != nil {
		return "", nil, err
	}
	column, ok := sortColumns[field]
	if !ok {
		return "", nil, domain.InvalidQuery(domain.MsgBadRequest)
	}

	var b strings.Builder
	var args []any

	b.WriteString("SELECT")
	b.WriteString(articleSummaryColumns)
	b.WriteString("\n\tFROM articles a\n\tLEFT JOIN comments c ON c.article_id = a.article_id")
	if q.Topic != "" {
		args = append(args, q.Topic)
		fmt.Fprintf(&b, "\n\tWHERE a.topic = $%d", len(args))
	}
	b.WriteString("\n\tGROUP BY a.article_id")
	fmt.Fprintf(&b, "\n\tORDER BY %s %s, a.article_id ASC", column, sortDirections[order])

	return b.String(), args, nil
}

// List implements store.ArticleStore.List
func (s *PostgresArticleStore) List(ctx context.Context, q store.ArticleQuery) ([]domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := buildListQuery(q)
	if err != nil {
		log.Debug("rejected article listing parameters",
			slog.String("sort_by", q.SortBy),
			slog.String("order", q.Order))
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query articles",
			slog.String("error", err.Error()),
			slog.String("topic", q.Topic))
		return nil, wrapQueryError("list articles", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(
			&a.ArticleID,
			&a.Author,
			&a.Title,
			&a.Topic,
			&a.CreatedAt,
			&a.Votes,
			&a.ArticleImgURL,
			&a.CommentCount,
		); err != nil {
			return nil, wrapQueryError("scan article", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("iterate articles", err)
	}

	log.Debug("listed articles",
		slog.Int("count", len(articles)),
		slog.String("topic", q.Topic))
	return articles, nil
}

// GetByID implements store.ArticleStore.GetByID
func (s *PostgresArticleStore) GetByID(ctx context.Context, articleID string) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT a.article_id, a.author, a.title, a.body, a.topic, a.created_at, a.votes,
			a.article_img_url, COUNT(c.comment_id)::INT AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		WHERE a.article_id = $1
		GROUP BY a.article_id
	`

	var a domain.Article
	err := s.db.QueryRowContext(ctx, query, articleID).Scan(
		&a.ArticleID,
		&a.Author,
		&a.Title,
		&a.Body,
		&a.Topic,
		&a.CreatedAt,
		&a.Votes,
		&a.ArticleImgURL,
		&a.CommentCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("article not found", slog.String("article_id", articleID))
			return nil, domain.NotFound(domain.MsgArticleNotFound)
		}
		logQueryFailure(log, "get article", err, slog.String("article_id", articleID))
		return nil, wrapQueryError("get article", err)
	}

	return &a, nil
}

// Exists implements store.ArticleStore.Exists
func (s *PostgresArticleStore) Exists(ctx context.Context, articleID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`, articleID,
	).Scan(&exists)
	if err != nil {
		logQueryFailure(log, "check article", err, slog.String("article_id", articleID))
		return wrapQueryError("check article", err)
	}
	if !exists {
		log.Debug("article not found", slog.String("article_id", articleID))
		return domain.NotFound(domain.MsgArticleNotFound)
	}
	return nil
}

// UpdateVotes implements store.ArticleStore.UpdateVotes
func (s *PostgresArticleStore) UpdateVotes(
	ctx context.Context,
	articleID string,
	delta int,
) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, author, title, body, topic, created_at, votes, article_img_url,
			(SELECT COUNT(*)::INT FROM comments c WHERE c.article_id = articles.article_id) AS comment_count
	`

	var a domain.Article
	err := s.db.QueryRowContext(ctx, query, delta, articleID).Scan(
		&a.ArticleID,
		&a.Author,
		&a.Title,
		&a.Body,
		&a.Topic,
		&a.CreatedAt,
		&a.Votes,
		&a.ArticleImgURL,
		&a.CommentCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("article not found for vote update", slog.String("article_id", articleID))
			return nil, domain.NotFound(domain.MsgArticleNotFound)
		}
		logQueryFailure(log, "update article votes", err, slog.String("article_id", articleID))
		return nil, wrapQueryError("update article votes", err)
	}

	log.Debug("article votes updated",
		slog.String("article_id", articleID),
		slog.Int("delta", delta),
		slog.Int("votes", a.Votes))
	return &a, nil
}
