package ports

import "context"

// FeedItem is a display-ready feed entry. PostedAgo is a human-relative age
// such as "4 minutes ago".
type FeedItem struct {
	Author    string `json:"author"`
	Message   string `json:"message"`
	PostedAgo string `json:"posted_ago"`
}

// FeedService assembles a user's feed from their timeline index.
type FeedService interface {
	// Assemble reads the recent timeline window, resolves each entry
	// against the post store, and returns items newest first. A timeline
	// entry whose post is missing yields domain.ErrFeedInconsistent.
	Assemble(ctx context.Context, username string) ([]FeedItem, error)
}
