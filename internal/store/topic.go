package store

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
)

// TopicStore defines read access to topics.
type TopicStore interface {
	// List returns every topic. An empty result is not an error.
	List(ctx context.Context) ([]domain.Topic, error)

	// Exists resolves silently when a topic with the given slug exists and
	// returns a domain.KindNotFound error ("Topic not found") otherwise.
	Exists(ctx context.Context, slug string) error
}
