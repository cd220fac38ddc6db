package service

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockTopicStore mocks the store.TopicStore interface
type MockTopicStore struct {
	mock.Mock
}

func (m *MockTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Topic), args.Error(1)
}

func (m *MockTopicStore) Exists(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

// MockArticleStore mocks the store.ArticleStore interface
type MockArticleStore struct {
	mock.Mock
}

func (m *MockArticleStore) List(ctx context.Context, q store.ArticleQuery) ([]domain.Article, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *MockArticleStore) GetByID(ctx context.Context, articleID string) (*domain.Article, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleStore) Exists(ctx context.Context, articleID string) error {
	args := m.Called(ctx, articleID)
	return args.Error(0)
}

func (m *MockArticleStore) UpdateVotes(
	ctx context.Context,
	articleID string,
	delta int,
) (*domain.Article, error) {
	args := m.Called(ctx, articleID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

// MockCommentStore mocks the store.CommentStore interface
type MockCommentStore struct {
	mock.Mock
}

func (m *MockCommentStore) ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *MockCommentStore) Create(
	ctx context.Context,
	articleID string,
	comment domain.NewComment,
) (*domain.Comment, error) {
	args := m.Called(ctx, articleID, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentStore) UpdateVotes(
	ctx context.Context,
	commentID string,
	delta int,
) (*domain.Comment, error) {
	args := m.Called(ctx, commentID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentStore) Delete(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}
