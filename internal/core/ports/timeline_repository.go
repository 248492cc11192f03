package ports

import "context"

// TimelineRepository maintains the per-user timeline index: an ordered,
// newest-first sequence of post IDs. Timelines grow without bound; reads
// surface only a bounded recent window.
type TimelineRepository interface {
	// Push prepends a post ID to the user's timeline. Atomic per timeline.
	Push(ctx context.Context, username string, postID uint64) error

	// Recent returns up to limit post IDs, newest first.
	Recent(ctx context.Context, username string, limit int) ([]uint64, error)
}
