package fanout

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/micropost/micropost/internal/api/metrics"
	"github.com/micropost/micropost/internal/core/ports"
)

const defaultWorkers = 8

// Pool delivers a post ID to follower timelines using a fixed set of workers.
// Followers are sharded by an fnv hash of the username, so all appends to any
// single timeline run on the same worker and stay ordered.
type Pool struct {
	workers   int
	timelines ports.TimelineRepository
	log       zerolog.Logger
}

// New creates a Pool with numWorkers delivery shards.
// If numWorkers <= 0, defaultWorkers is used.
func New(numWorkers int, timelines ports.TimelineRepository, log zerolog.Logger) *Pool {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Pool{workers: numWorkers, timelines: timelines, log: log}
}

// Deliver pushes postID into every follower's timeline and reports the
// outcome. Every follower is attempted exactly once; a failed append is
// collected and returned, never dropped. Deliver blocks until all shards
// finish, so the caller sees the complete tally.
func (p *Pool) Deliver(ctx context.Context, postID uint64, followers []string) (int, []ports.DeliveryFailure) {
	if len(followers) == 0 {
		return 0, nil
	}

	shards := make([][]string, p.workers)
	for _, follower := range followers {
		i := p.shardIndex(follower)
		shards[i] = append(shards[i], follower)
	}

	failures := make(chan ports.DeliveryFailure, len(followers))
	var wg sync.WaitGroup
	for _, shard := range shards {
		if len(shard) == 0 {
			continue
		}
		wg.Add(1)
		go func(shard []string) {
			defer wg.Done()
			for _, follower := range shard {
				if err := p.timelines.Push(ctx, follower, postID); err != nil {
					p.log.Error().Err(err).
						Uint64("post_id", postID).
						Str("follower", follower).
						Msg("timeline delivery failed")
					metrics.FanoutDeliveriesTotal.WithLabelValues("failed").Inc()
					failures <- ports.DeliveryFailure{Follower: follower, Err: err}
					continue
				}
				metrics.FanoutDeliveriesTotal.WithLabelValues("ok").Inc()
			}
		}(shard)
	}
	wg.Wait()
	close(failures)

	var failed []ports.DeliveryFailure
	for f := range failures {
		failed = append(failed, f)
	}
	return len(followers) - len(failed), failed
}

// shardIndex maps a follower deterministically to a worker index.
func (p *Pool) shardIndex(follower string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(follower))
	return int(h.Sum32()) % p.workers
}
