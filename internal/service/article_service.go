package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/store"
	"golang.org/x/sync/errgroup"
)

// ArticleService provides article and comment use cases.
type ArticleService interface {
	// ListArticles lists articles. When q.Topic is set the topic must exist;
	// an existing topic without articles yields an empty slice.
	ListArticles(ctx context.Context, q store.ArticleQuery) ([]domain.Article, error)

	// GetArticle returns one article with its body and comment_count.
	GetArticle(ctx context.Context, articleID string) (*domain.Article, error)

	// VoteArticle adds delta to the article's votes.
	VoteArticle(ctx context.Context, articleID string, delta int) (*domain.Article, error)

	// ListComments lists an existing article's comments, most recent first.
	ListComments(ctx context.Context, articleID string) ([]domain.Comment, error)

	// AddComment posts a comment on an article.
	AddComment(ctx context.Context, articleID string, comment domain.NewComment) (*domain.Comment, error)
}

type articleServiceImpl struct {
	topics   store.TopicStore
	articles store.ArticleStore
	comments store.CommentStore
	logger   *slog.Logger
}

// NewArticleService creates a new ArticleService.
// It returns an error if any of the required stores are nil.
func NewArticleService(
	topics store.TopicStore,
	articles store.ArticleStore,
	comments store.CommentStore,
	logger *slog.Logger,
) (ArticleService, error) {
	if topics == nil {
		return nil, fmt.Errorf("%w: topics", ErrNilDependency)
	}
	if articles == nil {
		return nil, fmt.Errorf("%w: articles", ErrNilDependency)
	}
	if comments == nil {
		return nil, fmt.Errorf("%w: comments", ErrNilDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &articleServiceImpl{
		topics:   topics,
		articles: articles,
		comments: comments,
		logger:   logger.With(slog.String("component", "article_service")),
	}, nil
}

// ListArticles implements ArticleService.ListArticles
func (s *articleServiceImpl) ListArticles(
	ctx context.Context,
	q store.ArticleQuery,
) ([]domain.Article, error) {
	if q.Topic == "" {
		return s.articles.List(ctx, q)
	}

	log := logger.FromContextOrDefault(ctx, s.logger)

	var articles []domain.Article
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.topics.Exists(gctx, q.Topic)
	})
	g.Go(func() error {
		var err error
		articles, err = s.articles.List(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Debug("article listing failed",
			slog.String("topic", q.Topic),
			slog.String("error", err.Error()))
		return nil, err
	}

	return articles, nil
}

// GetArticle implements ArticleService.GetArticle
func (s *articleServiceImpl) GetArticle(ctx context.Context, articleID string) (*domain.Article, error) {
	return s.articles.GetByID(ctx, articleID)
}

// VoteArticle implements ArticleService.VoteArticle
func (s *articleServiceImpl) VoteArticle(
	ctx context.Context,
	articleID string,
	delta int,
) (*domain.Article, error) {
	return s.articles.UpdateVotes(ctx, articleID, delta)
}

// ListComments implements ArticleService.ListComments
func (s *articleServiceImpl) ListComments(ctx context.Context, articleID string) ([]domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var comments []domain.Comment
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.articles.Exists(gctx, articleID)
	})
	g.Go(func() error {
		var err error
		comments, err = s.comments.ListByArticle(gctx, articleID)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Debug("comment listing failed",
			slog.String("article_id", articleID),
			slog.String("error", err.Error()))
		return nil, err
	}

	return comments, nil
}

// AddComment implements ArticleService.AddComment
func (s *articleServiceImpl) AddComment(
	ctx context.Context,
	articleID string,
	comment domain.NewComment,
) (*domain.Comment, error) {
	return s.comments.Create(ctx, articleID, comment)
}
