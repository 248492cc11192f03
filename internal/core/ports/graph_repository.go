package ports

import "context"

// GraphRepository stores the directed follow relation, keyed by username and
// held redundantly as two sets: following(u) and followers(u).
type GraphRepository interface {
	// AddFollow inserts followee into following(follower) and follower
	// into followers(followee). Idempotent. The two set inserts are
	// independent keys; symmetry between them is best-effort only.
	AddFollow(ctx context.Context, follower, followee string) error

	// Following returns the usernames that username follows, unordered.
	Following(ctx context.Context, username string) ([]string, error)

	// Followers returns the usernames following username, unordered.
	Followers(ctx context.Context, username string) ([]string, error)
}
