package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/micropost/micropost/internal/api/metrics"
	"github.com/micropost/micropost/internal/core/domain"
	"github.com/micropost/micropost/internal/core/ports"
)

// PostArchive mirrors published posts into durable storage (MongoDB).
// Archive writes are off the consistency path: a failure is logged, never
// surfaced to the publisher.
type PostArchive interface {
	Insert(ctx context.Context, post *domain.Post) error
}

// PostService is the fan-out engine. Publishing writes the post once, then
// distributes its ID into the author's timeline and every current
// follower's timeline (fan-out-on-write: publish cost is O(followers),
// feed reads stay a single bounded list read).
type PostService struct {
	counter   ports.Counter
	posts     ports.PostRepository
	graph     ports.GraphRepository
	timelines ports.TimelineRepository
	fanout    ports.FanoutDeliverer
	archive   PostArchive
	log       zerolog.Logger
}

func NewPostService(
	counter ports.Counter,
	posts ports.PostRepository,
	graph ports.GraphRepository,
	timelines ports.TimelineRepository,
	fanout ports.FanoutDeliverer,
	archive PostArchive,
	log zerolog.Logger,
) *PostService {
	return &PostService{
		counter:   counter,
		posts:     posts,
		graph:     graph,
		timelines: timelines,
		fanout:    fanout,
		archive:   archive,
		log:       log,
	}
}

// Publish creates the post and fans it out. Order matters: the post record
// is persisted before any timeline write, so a failure mid-fan-out can leave
// timelines partially updated but never a timeline entry pointing at a
// missing post. The follower set is a snapshot at publish time; followers
// added afterwards do not receive this post retroactively.
//
// Per-follower delivery failures do not abort the publish — the post is
// already durable — they are reported in the result instead.
func (s *PostService) Publish(ctx context.Context, input ports.PublishInput) (*ports.PublishResult, error) {
	id, err := s.counter.Next(ctx, ports.CounterPostID)
	if err != nil {
		return nil, fmt.Errorf("publish: allocate id: %w", err)
	}

	post := &domain.Post{
		ID:         id,
		AuthorID:   input.AuthorID,
		AuthorName: input.AuthorName,
		Message:    input.Message,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}
	metrics.PostsPublishedTotal.Inc()

	// Self fan-out: authors see their own posts in their feed.
	if err := s.timelines.Push(ctx, input.AuthorName, id); err != nil {
		return nil, fmt.Errorf("publish: author timeline: %w", err)
	}

	followers, err := s.graph.Followers(ctx, input.AuthorName)
	if err != nil {
		return nil, fmt.Errorf("publish: follower snapshot: %w", err)
	}
	metrics.FanoutBatchSize.Observe(float64(len(followers)))

	delivered, failed := s.fanout.Deliver(ctx, id, followers)

	if err := s.archive.Insert(ctx, post); err != nil {
		s.log.Warn().Err(err).Uint64("post_id", id).Msg("post archive insert failed")
	}

	result := &ports.PublishResult{
		PostID:    id,
		CreatedAt: post.CreatedAt,
		Followers: len(followers),
		Delivered: delivered,
	}
	for _, f := range failed {
		result.FailedFollowers = append(result.FailedFollowers, f.Follower)
	}

	if len(failed) > 0 {
		s.log.Warn().
			Uint64("post_id", id).
			Str("author", input.AuthorName).
			Int("followers", len(followers)).
			Int("delivered", delivered).
			Strs("failed_followers", result.FailedFollowers).
			Msg("post published with delivery failures")
	} else {
		s.log.Info().
			Uint64("post_id", id).
			Str("author", input.AuthorName).
			Int("followers", len(followers)).
			Int("delivered", delivered).
			Msg("post published")
	}

	return result, nil
}
