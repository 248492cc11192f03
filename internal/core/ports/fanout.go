package ports

import "context"

// DeliveryFailure records a single follower whose timeline append failed.
type DeliveryFailure struct {
	Follower string
	Err      error
}

// FanoutDeliverer pushes a post ID into every follower's timeline. Delivery
// is at-least-once per follower: a failed append is reported, never dropped
// silently. Implementations may parallelise, but appends to any single
// timeline must stay ordered.
type FanoutDeliverer interface {
	Deliver(ctx context.Context, postID uint64, followers []string) (delivered int, failed []DeliveryFailure)
}
