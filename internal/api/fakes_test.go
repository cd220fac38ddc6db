package api

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/store"
)

type fakeTopicStore struct {
	listFn   func(ctx context.Context) ([]domain.Topic, error)
	existsFn func(ctx context.Context, slug string) error
}

func (f *fakeTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	return f.listFn(ctx)
}

func (f *fakeTopicStore) Exists(ctx context.Context, slug string) error {
	return f.existsFn(ctx, slug)
}

type fakeArticleService struct {
	listArticlesFn func(ctx context.Context, q store.ArticleQuery) ([]domain.Article, error)
	getArticleFn   func(ctx context.Context, id string) (*domain.Article, error)
	voteArticleFn  func(ctx context.Context, id string, delta int) (*domain.Article, error)
	listCommentsFn func(ctx context.Context, id string) ([]domain.Comment, error)
	addCommentFn   func(ctx context.Context, id string, c domain.NewComment) (*domain.Comment, error)
}

func (f *fakeArticleService) ListArticles(ctx context.Context, q store.ArticleQuery) ([]domain.Article, error) {
	return f.listArticlesFn(ctx, q)
}

func (f *fakeArticleService) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	return f.getArticleFn(ctx, id)
}

func (f *fakeArticleService) VoteArticle(ctx context.Context, id string, delta int) (*domain.Article, error) {
	return f.voteArticleFn(ctx, id, delta)
}

func (f *fakeArticleService) ListComments(ctx context.Context, id string) ([]domain.Comment, error) {
	return f.listCommentsFn(ctx, id)
}

func (f *fakeArticleService) AddComment(
	ctx context.Context,
	id string,
	c domain.NewComment,
) (*domain.Comment, error) {
	return f.addCommentFn(ctx, id, c)
}

type fakeCommentStore struct {
	updateVotesFn func(ctx context.Context, id string, delta int) (*domain.Comment, error)
	deleteFn      func(ctx context.Context, id string) error
}

func (f *fakeCommentStore) ListByArticle(ctx context.Context, id string) ([]domain.Comment, error) {
	panic("not used by CommentHandler")
}

func (f *fakeCommentStore) Create(ctx context.Context, id string, c domain.NewComment) (*domain.Comment, error) {
	panic("not used by CommentHandler")
}

func (f *fakeCommentStore) UpdateVotes(ctx context.Context, id string, delta int) (*domain.Comment, error) {
	return f.updateVotesFn(ctx, id, delta)
}

func (f *fakeCommentStore) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeUserStore struct {
	listFn func(ctx context.Context) ([]domain.User, error)
	getFn  func(ctx context.Context, username string) (*domain.User, error)
}

func (f *fakeUserStore) List(ctx context.Context) ([]domain.User, error) {
	return f.listFn(ctx)
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return f.getFn(ctx, username)
}
