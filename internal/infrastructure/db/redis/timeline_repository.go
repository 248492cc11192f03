package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Key layout:
//
//	timeline:<name>  list  post IDs, newest first (LPUSH)
func timelineKey(username string) string {
	return "timeline:" + username
}

// TimelineRepository persists per-user timeline indexes as Redis lists.
type TimelineRepository struct {
	client *redis.Client
}

func NewTimelineRepository(client *redis.Client) *TimelineRepository {
	return &TimelineRepository{client: client}
}

// Push prepends the post ID. LPUSH is atomic per key, which is the only
// ordering guarantee the timeline needs: entries appear in insertion order.
func (r *TimelineRepository) Push(ctx context.Context, username string, postID uint64) error {
	if err := r.client.LPush(ctx, timelineKey(username), postID).Err(); err != nil {
		return fmt.Errorf("push timeline %s: %w", username, err)
	}
	return nil
}

func (r *TimelineRepository) Recent(ctx context.Context, username string, limit int) ([]uint64, error) {
	if limit <= 0 {
		return nil, nil
	}
	raw, err := r.client.LRange(ctx, timelineKey(username), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read timeline %s: %w", username, err)
	}

	ids := make([]uint64, 0, len(raw))
	for _, entry := range raw {
		id, err := strconv.ParseUint(entry, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("read timeline %s: corrupt entry %q: %w", username, entry, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
