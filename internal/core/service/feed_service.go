package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/micropost/micropost/internal/api/metrics"
	"github.com/micropost/micropost/internal/core/domain"
	"github.com/micropost/micropost/internal/core/ports"
)

const defaultFeedWindow = 100

// FeedService assembles display-ready feeds from timeline indexes.
type FeedService struct {
	timelines ports.TimelineRepository
	posts     ports.PostRepository
	window    int
	log       zerolog.Logger
}

// NewFeedService creates a FeedService reading up to window timeline entries
// per feed. If window <= 0, defaultFeedWindow is used.
func NewFeedService(timelines ports.TimelineRepository, posts ports.PostRepository, window int, log zerolog.Logger) *FeedService {
	if window <= 0 {
		window = defaultFeedWindow
	}
	return &FeedService{timelines: timelines, posts: posts, window: window, log: log}
}

// Assemble reads the recent timeline window and joins each entry against
// the post store, preserving timeline order (newest first). Timelines only
// ever reference created posts, so a missing post is surfaced as
// domain.ErrFeedInconsistent rather than skipped.
func (s *FeedService) Assemble(ctx context.Context, username string) ([]ports.FeedItem, error) {
	start := time.Now()

	ids, err := s.timelines.Recent(ctx, username, s.window)
	if err != nil {
		return nil, fmt.Errorf("assemble feed for %s: %w", username, err)
	}

	items := make([]ports.FeedItem, 0, len(ids))
	for _, id := range ids {
		post, err := s.posts.FindByID(ctx, id)
		if errors.Is(err, domain.ErrPostNotFound) {
			s.log.Error().Uint64("post_id", id).Str("username", username).Msg("timeline entry resolves to no post")
			return nil, fmt.Errorf("assemble feed for %s: post %d: %w", username, id, domain.ErrFeedInconsistent)
		}
		if err != nil {
			return nil, fmt.Errorf("assemble feed for %s: %w", username, err)
		}

		items = append(items, ports.FeedItem{
			Author:    post.AuthorName,
			Message:   post.Message,
			PostedAgo: humanize.Time(post.CreatedAt),
		})
	}

	metrics.FeedAssemblyDuration.Observe(time.Since(start).Seconds())
	return items, nil
}
