package domain

import "time"

// Article is a published piece of writing. CommentCount is not stored; the
// query layer derives it from the comments table at read time.
type Article struct {
	ArticleID     int64
	Author        string
	Title         string
	Body          string
	Topic         string
	CreatedAt     time.Time
	Votes         int
	ArticleImgURL string
	CommentCount  int
}
