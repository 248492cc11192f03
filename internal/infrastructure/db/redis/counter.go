package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// CounterService issues unique IDs backed by Redis INCR.
// Key format: the raw counter name ("userid", "postid").
type CounterService struct {
	client *redis.Client
}

// NewCounterService creates a CounterService wrapping the given Redis client.
func NewCounterService(client *redis.Client) *CounterService {
	return &CounterService{client: client}
}

// Next atomically increments the named counter and returns the new value.
// INCR is linearizable per key, so concurrent callers never collide.
func (s *CounterService) Next(ctx context.Context, name string) (uint64, error) {
	n, err := s.client.Incr(ctx, name).Result()
	if err != nil {
		return 0, fmt.Errorf("counter %s: %w", name, err)
	}
	return uint64(n), nil
}
