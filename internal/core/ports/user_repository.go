package ports

import (
	"context"

	"github.com/micropost/micropost/internal/core/domain"
)

// UserRepository is the identity registry: it maps usernames to user IDs and
// user IDs to their stored records.
type UserRepository interface {
	// LookupID resolves a username to its user ID. The boolean reports
	// whether the username is registered; an unknown username is not an
	// error.
	LookupID(ctx context.Context, username string) (uint64, bool, error)

	// Create stores the username index entry and the user record. The two
	// writes are independent keys with no mutual atomicity; a crash
	// between them leaves a dangling username mapping.
	Create(ctx context.Context, user *domain.User) error

	// FindByID loads a user record. Returns domain.ErrUserNotFound when
	// the ID has no backing record.
	FindByID(ctx context.Context, id uint64) (*domain.User, error)

	// ListUsernames returns every registered username, unordered.
	ListUsernames(ctx context.Context) ([]string, error)
}
