package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/news-api/internal/api"
	"github.com/phrazzld/news-api/internal/api/middleware"
	"github.com/phrazzld/news-api/internal/config"
	"github.com/phrazzld/news-api/internal/platform/postgres"
	"github.com/phrazzld/news-api/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds the shared dependencies of the server so they can be
// wired once and released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	registry *prometheus.Registry
	metrics  *middleware.Metrics
	limiter  *middleware.RateLimiter

	topicHandler   *api.TopicHandler
	articleHandler *api.ArticleHandler
	commentHandler *api.CommentHandler
	userHandler    *api.UserHandler
}

// newApplication wires stores, services and handlers on top of an open
// database pool.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		registry: prometheus.NewRegistry(),
	}

	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, "news"),
	)
	app.metrics = middleware.NewMetrics(app.registry)

	if cfg.Server.RateLimitRPS > 0 {
		app.limiter = middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	}

	topics := postgres.NewPostgresTopicStore(db, logger)
	articles := postgres.NewPostgresArticleStore(db, logger)
	comments := postgres.NewPostgresCommentStore(db, logger)
	users := postgres.NewPostgresUserStore(db, logger)

	articleService, err := service.NewArticleService(topics, articles, comments, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create article service: %w", err)
	}

	app.topicHandler = api.NewTopicHandler(topics, logger)
	app.articleHandler = api.NewArticleHandler(articleService, logger)
	app.commentHandler = api.NewCommentHandler(comments, logger)
	app.userHandler = api.NewUserHandler(users, logger)

	logger.Info("application initialized")
	return app, nil
}

// Run serves HTTP until ctx is canceled or a listener fails.
func (app *application) Run(ctx context.Context) error {
	if err := app.serve(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
