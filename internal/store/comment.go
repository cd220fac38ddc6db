package store

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
)

// CommentStore defines persistence operations for comments.
//
// Identifiers are passed through as the raw strings received from the caller;
// the datastore rejects values that are not valid for the id column.
type CommentStore interface {
	// ListByArticle returns the article's comments, most recent first.
	// It does not check that the article exists; an empty slice is returned
	// both for an article without comments and for an unknown article.
	ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error)

	// Create inserts a comment and returns the persisted record including the
	// generated comment_id and created_at. Referential violations (unknown
	// article or username) are returned unclassified.
	Create(ctx context.Context, articleID string, comment domain.NewComment) (*domain.Comment, error)

	// UpdateVotes atomically adds delta to the comment's votes.
	// Returns a domain.KindNotFound error ("Comment ID not found") on miss.
	UpdateVotes(ctx context.Context, commentID string, delta int) (*domain.Comment, error)

	// Delete removes the comment.
	// Returns a domain.KindNotFound error ("Comment ID not found") when no row was removed.
	Delete(ctx context.Context, commentID string) error
}
