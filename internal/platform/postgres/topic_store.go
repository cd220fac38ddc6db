package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/store"
)

// PostgresTopicStore implements the store.TopicStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTopicStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTopicStore creates a new PostgreSQL implementation of the TopicStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresTopicStore(db store.DBTX, logger *slog.Logger) *PostgresTopicStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTopicStore{
		db:     db,
		logger: logger.With(slog.String("component", "topic_store")),
	}
}

// Ensure PostgresTopicStore implements store.TopicStore interface
var _ store.TopicStore = (*PostgresTopicStore)(nil)

// List implements store.TopicStore.List
func (s *PostgresTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT slug, description FROM topics ORDER BY slug ASC`)
	if err != nil {
		log.Error("failed to query topics", slog.String("error", err.Error()))
		return nil, wrapQueryError("list topics", err)
	}
	defer func() { _ = rows.Close() }()

	topics := make([]domain.Topic, 0)
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, wrapQueryError("scan topic", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("iterate topics", err)
	}

	log.Debug("listed topics", slog.Int("count", len(topics)))
	return topics, nil
}

// Exists implements store.TopicStore.Exists
func (s *PostgresTopicStore) Exists(ctx context.Context, slug string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM topics WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		log.Error("failed to check topic existence",
			slog.String("error", err.Error()),
			slog.String("topic", slug))
		return wrapQueryError("check topic", err)
	}
	if !exists {
		log.Debug("topic not found", slog.String("topic", slug))
		return domain.NotFound(domain.MsgTopicNotFound)
	}
	return nil
}
