package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/micropost/micropost/internal/core/domain"
)

// Key layout:
//
//	users          hash  username → userid
//	user:<id>      hash  hash, username, created_at
const usersKey = "users"

func userKey(id uint64) string {
	return fmt.Sprintf("user:%d", id)
}

// UserRepository persists user identities in Redis.
type UserRepository struct {
	client *redis.Client
}

func NewUserRepository(client *redis.Client) *UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) LookupID(ctx context.Context, username string) (uint64, bool, error) {
	raw, err := r.client.HGet(ctx, usersKey, username).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lookup user %s: %w", username, err)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("lookup user %s: corrupt id %q: %w", username, raw, err)
	}
	return id, true, nil
}

// Create writes the username index entry and the user record. Two keys, no
// transaction: a crash between the writes leaves a username mapping with no
// backing record. Concurrent first-time signups for the same username may
// both proceed; the later index write wins.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.client.HSet(ctx, usersKey, user.Username, user.ID).Err(); err != nil {
		return fmt.Errorf("index user %s: %w", user.Username, err)
	}

	fields := map[string]any{
		"hash":       user.CredentialHash,
		"username":   user.Username,
		"created_at": user.CreatedAt.UnixMilli(),
	}
	if err := r.client.HSet(ctx, userKey(user.ID), fields).Err(); err != nil {
		return fmt.Errorf("store user %d: %w", user.ID, err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	fields, err := r.client.HGetAll(ctx, userKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrUserNotFound
	}

	user := &domain.User{
		ID:             id,
		Username:       fields["username"],
		CredentialHash: fields["hash"],
	}
	if raw := fields["created_at"]; raw != "" {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("find user %d: corrupt created_at %q: %w", id, raw, err)
		}
		user.CreatedAt = time.UnixMilli(ms).UTC()
	}
	return user, nil
}

func (r *UserRepository) ListUsernames(ctx context.Context) ([]string, error) {
	names, err := r.client.HKeys(ctx, usersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list usernames: %w", err)
	}
	return names, nil
}
