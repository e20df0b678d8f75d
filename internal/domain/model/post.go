package model

import "time"

// PostSummary is the post shape embedded in a cafe detail response.
type PostSummary struct {
	ID         string    `json:"_id"`
	Title      string    `json:"title"`
	CreateDate time.Time `json:"createDate"`
	Writer     *UserRef  `json:"writer"`
}

// WriterName returns the writer's username, or empty for a deleted account.
func (p PostSummary) WriterName() string {
	if p.Writer == nil {
		return ""
	}
	return p.Writer.Username
}

// Post is the detail shape returned by GET /post/{id}.
type Post struct {
	ID         string    `json:"_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreateDate time.Time `json:"createDate"`
	Writer     *UserRef  `json:"writer"`
	Comments   []Comment `json:"comments"`
}

// WriterName returns the writer's username, or empty for a deleted account.
func (p Post) WriterName() string {
	if p.Writer == nil {
		return ""
	}
	return p.Writer.Username
}

// WrittenBy reports whether username wrote the post.
func (p Post) WrittenBy(username string) bool {
	return username != "" && p.Writer != nil && p.Writer.Username == username
}

// Comment is a single comment on a post.
type Comment struct {
	ID         string    `json:"_id"`
	Content    string    `json:"content"`
	CreateDate time.Time `json:"createDate"`
	Writer     *UserRef  `json:"writer"`
}

// WriterName returns the writer's username, or empty for a deleted account.
func (c Comment) WriterName() string {
	if c.Writer == nil {
		return ""
	}
	return c.Writer.Username
}

// WrittenBy reports whether username wrote the comment.
func (c Comment) WrittenBy(username string) bool {
	return username != "" && c.Writer != nil && c.Writer.Username == username
}
