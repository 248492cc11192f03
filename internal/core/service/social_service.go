package service

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	"github.com/micropost/micropost/internal/core/ports"
)

// SocialService manages follow relations and who-to-follow suggestions.
type SocialService struct {
	graph ports.GraphRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewSocialService(graph ports.GraphRepository, users ports.UserRepository, log zerolog.Logger) *SocialService {
	return &SocialService{graph: graph, users: users, log: log}
}

// Follow records the edge in both direction sets. The followee is not
// validated against the identity registry; following an unregistered
// username is accepted silently.
func (s *SocialService) Follow(ctx context.Context, follower, followee string) error {
	if err := s.graph.AddFollow(ctx, follower, followee); err != nil {
		return err
	}
	s.log.Info().Str("follower", follower).Str("followee", followee).Msg("follow recorded")
	return nil
}

// Suggestions returns every registered username except the user themselves
// and the accounts they already follow.
func (s *SocialService) Suggestions(ctx context.Context, username string) ([]string, error) {
	names, err := s.users.ListUsernames(ctx)
	if err != nil {
		return nil, err
	}
	following, err := s.graph.Following(ctx, username)
	if err != nil {
		return nil, err
	}

	suggestions := make([]string, 0, len(names))
	for _, name := range names {
		if name == username || slices.Contains(following, name) {
			continue
		}
		suggestions = append(suggestions, name)
	}
	return suggestions, nil
}
