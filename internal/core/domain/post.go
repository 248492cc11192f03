package domain

import "time"

// Post is an immutable published message. Posts are created once at publish
// time and never edited or deleted; timelines reference them by ID only.
type Post struct {
	ID         uint64    `json:"id"`
	AuthorID   uint64    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
