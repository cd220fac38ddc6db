package store

import (
	"context"
	"strings"

	"github.com/phrazzld/news-api/internal/domain"
)

// SortField is an article attribute that listings may be ordered by.
type SortField string

// Sortable article attributes.
const (
	SortByTitle     SortField = "title"
	SortByTopic     SortField = "topic"
	SortByAuthor    SortField = "author"
	SortByCreatedAt SortField = "created_at"
	SortByVotes     SortField = "votes"
)

var sortFields = map[string]SortField{
	string(SortByTitle):     SortByTitle,
	string(SortByTopic):     SortByTopic,
	string(SortByAuthor):    SortByAuthor,
	string(SortByCreatedAt): SortByCreatedAt,
	string(SortByVotes):     SortByVotes,
}

// SortOrder is the direction of an article listing.
type SortOrder string

// Sort directions.
const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ArticleQuery carries the raw listing parameters received from the caller.
type ArticleQuery struct {
	Topic  string
	SortBy string
	Order  string
}

// Sort resolves SortBy and Order against the allow-lists.
//
// An empty SortBy selects created_at; any other value outside the allow-list
// fails with a domain.KindInvalidQuery error. Order falls back to descending
// for anything other than asc/desc, including the empty string.
func (q ArticleQuery) Sort() (SortField, SortOrder, error) {
	field := SortByCreatedAt
	if q.SortBy != "" {
		f, ok := sortFields[q.SortBy]
		if !ok {
			return "", "", domain.InvalidQuery(domain.MsgBadRequest)
		}
		field = f
	}

	order := OrderDesc
	if strings.EqualFold(q.Order, string(OrderAsc)) {
		order = OrderAsc
	}

	return field, order, nil
}

// ArticleStore defines persistence operations for articles.
type ArticleStore interface {
	// List returns articles (without body) with their comment_count, filtered
	// by topic when q.Topic is set and ordered per q.Sort. Topic existence is
	// not checked here.
	List(ctx context.Context, q ArticleQuery) ([]domain.Article, error)

	// GetByID returns the article including body and comment_count.
	// Returns a domain.KindNotFound error ("Article ID not found") on miss.
	GetByID(ctx context.Context, articleID string) (*domain.Article, error)

	// Exists resolves silently when the article exists and returns a
	// domain.KindNotFound error ("Article ID not found") otherwise.
	Exists(ctx context.Context, articleID string) error

	// UpdateVotes atomically adds delta (which may be negative) to the
	// article's votes and returns the updated article. Votes are not clamped.
	// Returns a domain.KindNotFound error ("Article ID not found") on miss.
	UpdateVotes(ctx context.Context, articleID string, delta int) (*domain.Article, error)
}
