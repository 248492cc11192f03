package ports

import (
	"context"

	"github.com/micropost/micropost/internal/core/domain"
)

// PostRepository stores immutable post records keyed by post ID.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error

	// FindByID loads a post record. Returns domain.ErrPostNotFound when
	// the ID was never created.
	FindByID(ctx context.Context, id uint64) (*domain.Post, error)
}
