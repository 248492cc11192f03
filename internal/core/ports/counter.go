package ports

import "context"

// Counter names used by the core. Each is an independent monotonic sequence.
const (
	CounterUserID = "userid"
	CounterPostID = "postid"
)

// Counter issues globally unique, monotonically increasing identifiers.
type Counter interface {
	// Next atomically increments the named counter and returns the new
	// value. No two concurrent callers ever observe the same value.
	Next(ctx context.Context, name string) (uint64, error)
}
