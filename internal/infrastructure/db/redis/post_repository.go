package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/micropost/micropost/internal/core/domain"
)

// Key layout:
//
//	post:<id>  hash  userid, username, message, timestamp (unix millis)
func postKey(id uint64) string {
	return fmt.Sprintf("post:%d", id)
}

// PostRepository persists immutable post records in Redis.
type PostRepository struct {
	client *redis.Client
}

func NewPostRepository(client *redis.Client) *PostRepository {
	return &PostRepository{client: client}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	fields := map[string]any{
		"userid":    post.AuthorID,
		"username":  post.AuthorName,
		"message":   post.Message,
		"timestamp": post.CreatedAt.UnixMilli(),
	}
	if err := r.client.HSet(ctx, postKey(post.ID), fields).Err(); err != nil {
		return fmt.Errorf("store post %d: %w", post.ID, err)
	}
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id uint64) (*domain.Post, error) {
	fields, err := r.client.HGetAll(ctx, postKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("find post %d: %w", id, err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrPostNotFound
	}

	authorID, err := strconv.ParseUint(fields["userid"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("find post %d: corrupt userid %q: %w", id, fields["userid"], err)
	}
	ms, err := strconv.ParseInt(fields["timestamp"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("find post %d: corrupt timestamp %q: %w", id, fields["timestamp"], err)
	}

	return &domain.Post{
		ID:         id,
		AuthorID:   authorID,
		AuthorName: fields["username"],
		Message:    fields["message"],
		CreatedAt:  time.UnixMilli(ms).UTC(),
	}, nil
}
