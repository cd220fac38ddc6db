package api

import (
	"time"

	"github.com/phrazzld/news-api/internal/domain"
)

// Common request/response structures

// VotesRequest defines the payload for the vote adjustment endpoints.
// A pointer distinguishes a missing field from an explicit zero.
type VotesRequest struct {
	IncVotes *int `json:"inc_votes" validate:"required"`
}

// CommentPayload is the comment being posted.
type CommentPayload struct {
	Username *string `json:"username" validate:"required"`
	Body     *string `json:"body"     validate:"required"`
}

// CreateCommentRequest defines the payload for the create comment endpoint.
type CreateCommentRequest struct {
	Comment *CommentPayload `json:"comment" validate:"required"`
}

// ArticleSummary is an article as it appears in listings, without body.
type ArticleSummary struct {
	ArticleID     int64     `json:"article_id"`
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// ArticleResponse is a single article including its body.
type ArticleResponse struct {
	ArticleID     int64     `json:"article_id"`
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Topic         string    `json:"topic"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// TopicsResponse wraps GET /api/topics.
type TopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

// ArticlesResponse wraps GET /api/articles.
type ArticlesResponse struct {
	Articles []ArticleSummary `json:"articles"`
}

// ArticleEnvelope wraps single-article responses.
type ArticleEnvelope struct {
	Article ArticleResponse `json:"article"`
}

// CommentsResponse wraps GET /api/articles/{article_id}/comments.
type CommentsResponse struct {
	Comments []domain.Comment `json:"comments"`
}

// CommentEnvelope wraps single-comment responses.
type CommentEnvelope struct {
	Comment domain.Comment `json:"comment"`
}

// UsersResponse wraps GET /api/users.
type UsersResponse struct {
	Users []domain.User `json:"users"`
}

// UserEnvelope wraps GET /api/users/{username}.
type UserEnvelope struct {
	User domain.User `json:"user"`
}

func toArticleSummaries(articles []domain.Article) []ArticleSummary {
	out := make([]ArticleSummary, 0, len(articles))
	for _, a := range articles {
		out = append(out, ArticleSummary{
			ArticleID:     a.ArticleID,
			Author:        a.Author,
			Title:         a.Title,
			Topic:         a.Topic,
			CreatedAt:     a.CreatedAt,
			Votes:         a.Votes,
			ArticleImgURL: a.ArticleImgURL,
			CommentCount:  a.CommentCount,
		})
	}
	return out
}

func toArticleResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ArticleID:     a.ArticleID,
		Author:        a.Author,
		Title:         a.Title,
		Body:          a.Body,
		Topic:         a.Topic,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
		CommentCount:  a.CommentCount,
	}
}
