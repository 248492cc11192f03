package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/micropost/micropost/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared by the service tests. All are safe for concurrent
// use so the real fan-out pool can run against them.
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubCounter struct {
	mu     sync.Mutex
	counts map[string]uint64
	err    error // if set, Next returns this error
}

func (c *stubCounter) Next(_ context.Context, name string) (uint64, error) {
	if c.err != nil {
		return 0, c.err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = make(map[string]uint64)
	}
	c.counts[name]++
	return c.counts[name], nil
}

type stubUserRepo struct {
	mu        sync.Mutex
	ids       map[string]uint64
	records   map[uint64]*domain.User
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		ids:     make(map[string]uint64),
		records: make(map[uint64]*domain.User),
	}
}

func (r *stubUserRepo) LookupID(_ context.Context, username string) (uint64, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.ids[username]
	return id, ok, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *user
	r.ids[user.Username] = user.ID
	r.records[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.records[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *stubUserRepo) ListUsernames(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.ids))
	for name := range r.ids {
		names = append(names, name)
	}
	return names, nil
}

type stubGraphRepo struct {
	mu        sync.Mutex
	following map[string]map[string]bool
	followers map[string]map[string]bool
}

func newStubGraphRepo() *stubGraphRepo {
	return &stubGraphRepo{
		following: make(map[string]map[string]bool),
		followers: make(map[string]map[string]bool),
	}
}

func (r *stubGraphRepo) AddFollow(_ context.Context, follower, followee string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.following[follower] == nil {
		r.following[follower] = make(map[string]bool)
	}
	if r.followers[followee] == nil {
		r.followers[followee] = make(map[string]bool)
	}
	r.following[follower][followee] = true
	r.followers[followee][follower] = true
	return nil
}

func (r *stubGraphRepo) Following(_ context.Context, username string) ([]string, error) {
	return r.members(r.following, username), nil
}

func (r *stubGraphRepo) Followers(_ context.Context, username string) ([]string, error) {
	return r.members(r.followers, username), nil
}

func (r *stubGraphRepo) members(sets map[string]map[string]bool, username string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for name := range sets[username] {
		out = append(out, name)
	}
	return out
}

type stubPostRepo struct {
	mu        sync.Mutex
	posts     map[uint64]*domain.Post
	createErr error
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[uint64]*domain.Post)}
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *post
	r.posts[post.ID] = &clone
	return nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id uint64) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *post
	return &clone, nil
}

type stubTimelineRepo struct {
	mu        sync.Mutex
	timelines map[string][]uint64 // newest first
	failFor   map[string]error    // username → error on Push
}

func newStubTimelineRepo() *stubTimelineRepo {
	return &stubTimelineRepo{
		timelines: make(map[string][]uint64),
		failFor:   make(map[string]error),
	}
}

func (r *stubTimelineRepo) Push(_ context.Context, username string, postID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failFor[username]; err != nil {
		return err
	}
	r.timelines[username] = append([]uint64{postID}, r.timelines[username]...)
	return nil
}

func (r *stubTimelineRepo) Recent(_ context.Context, username string, limit int) ([]uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.timelines[username]
	if len(entries) > limit {
		entries = entries[:limit]
	}
	out := make([]uint64, len(entries))
	copy(out, entries)
	return out, nil
}

func (r *stubTimelineRepo) entries(username string) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint64, len(r.timelines[username]))
	copy(out, r.timelines[username])
	return out
}

func (r *stubTimelineRepo) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timelines)
}

type stubArchive struct {
	mu       sync.Mutex
	inserted []uint64
	err      error
}

func (a *stubArchive) Insert(_ context.Context, post *domain.Post) error {
	if a.err != nil {
		return a.err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.inserted = append(a.inserted, post.ID)
	return nil
}
