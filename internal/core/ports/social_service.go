package ports

import "context"

// SocialService manages the follow graph.
type SocialService interface {
	// Follow records follower → followee. Idempotent. The followee is not
	// checked for existence; following an unregistered username is
	// accepted silently.
	Follow(ctx context.Context, follower, followee string) error

	// Suggestions returns all registered usernames minus the user
	// themselves and the accounts they already follow.
	Suggestions(ctx context.Context, username string) ([]string, error)
}
