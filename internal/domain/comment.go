package domain

import "time"

// Comment is a reader's response to an article.
type Comment struct {
	CommentID int64     `json:"comment_id"`
	Body      string    `json:"body"`
	ArticleID int64     `json:"article_id"`
	Author    string    `json:"author"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment holds the caller-supplied fields of a comment to be created.
type NewComment struct {
	Username string
	Body     string
}
