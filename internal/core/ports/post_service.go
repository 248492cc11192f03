package ports

import (
	"context"
	"time"
)

// PublishInput carries a new post from the transport layer to PostService.
type PublishInput struct {
	AuthorID   uint64
	AuthorName string
	Message    string
}

// PublishResult reports the outcome of a publish, including the fan-out
// delivery tally. The post itself is durably created even when some
// follower deliveries fail.
type PublishResult struct {
	PostID          uint64
	CreatedAt       time.Time
	Followers       int
	Delivered       int
	FailedFollowers []string
}

// PostService publishes posts and fans them out to follower timelines.
type PostService interface {
	Publish(ctx context.Context, input PublishInput) (*PublishResult, error)
}
