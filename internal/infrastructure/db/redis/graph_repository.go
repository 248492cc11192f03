package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Key layout:
//
//	following:<name>  set  usernames that <name> follows
//	followers:<name>  set  usernames following <name>
func followingKey(username string) string {
	return "following:" + username
}

func followersKey(username string) string {
	return "followers:" + username
}

// GraphRepository persists the follow graph as two redundant Redis sets per
// user.
type GraphRepository struct {
	client *redis.Client
}

func NewGraphRepository(client *redis.Client) *GraphRepository {
	return &GraphRepository{client: client}
}

// AddFollow inserts both directions of the edge. SADD is idempotent, so a
// duplicate follow is a no-op. The two writes hit independent keys; a
// failure between them breaks symmetry with no rollback.
func (r *GraphRepository) AddFollow(ctx context.Context, follower, followee string) error {
	if err := r.client.SAdd(ctx, followingKey(follower), followee).Err(); err != nil {
		return fmt.Errorf("add following %s→%s: %w", follower, followee, err)
	}
	if err := r.client.SAdd(ctx, followersKey(followee), follower).Err(); err != nil {
		return fmt.Errorf("add follower %s→%s: %w", follower, followee, err)
	}
	return nil
}

func (r *GraphRepository) Following(ctx context.Context, username string) ([]string, error) {
	members, err := r.client.SMembers(ctx, followingKey(username)).Result()
	if err != nil {
		return nil, fmt.Errorf("following of %s: %w", username, err)
	}
	return members, nil
}

func (r *GraphRepository) Followers(ctx context.Context, username string) ([]string, error) {
	members, err := r.client.SMembers(ctx, followersKey(username)).Result()
	if err != nil {
		return nil, fmt.Errorf("followers of %s: %w", username, err)
	}
	return members, nil
}
