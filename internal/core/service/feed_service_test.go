package service

import (
	"context"
	"errors"
	"testing"

	"github.com/micropost/micropost/internal/core/domain"
	"github.com/micropost/micropost/internal/core/ports"
)

func TestFeedService_Assemble_FollowedAuthorAppears(t *testing.T) {
	f := newPublishFixture()
	feeds := NewFeedService(f.timelines, f.posts, 100, discardLogger)

	// alice follows bob; bob publishes "hello".
	if err := f.graph.AddFollow(context.Background(), "alice", "bob"); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if _, err := f.svc.Publish(context.Background(), ports.PublishInput{AuthorID: 2, AuthorName: "bob", Message: "hello"}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	items, err := feeds.Assemble(context.Background(), "alice")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("expected 1 feed item, got %d", len(items))
	}
	if items[0].Author != "bob" || items[0].Message != "hello" {
		t.Errorf("unexpected item: %+v", items[0])
	}
	if items[0].PostedAgo == "" {
		t.Error("expected a human-relative age")
	}
}

func TestFeedService_Assemble_NewestFirst(t *testing.T) {
	f := newPublishFixture()
	feeds := NewFeedService(f.timelines, f.posts, 100, discardLogger)

	for _, msg := range []string{"first", "second", "third"} {
		if _, err := f.svc.Publish(context.Background(), ports.PublishInput{AuthorID: 1, AuthorName: "bob", Message: msg}); err != nil {
			t.Fatalf("publish %q: %v", msg, err)
		}
	}

	items, err := feeds.Assemble(context.Background(), "bob")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	want := []string{"third", "second", "first"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, msg := range want {
		if items[i].Message != msg {
			t.Errorf("position %d: expected %q, got %q", i, msg, items[i].Message)
		}
	}
}

func TestFeedService_Assemble_BoundedWindow(t *testing.T) {
	f := newPublishFixture()
	feeds := NewFeedService(f.timelines, f.posts, 5, discardLogger)

	for i := 0; i < 8; i++ {
		if _, err := f.svc.Publish(context.Background(), ports.PublishInput{AuthorID: 1, AuthorName: "bob", Message: "m"}); err != nil {
			t.Fatalf("publish %d: %v", i, err)
		}
	}

	items, err := feeds.Assemble(context.Background(), "bob")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("expected window of 5 items, got %d", len(items))
	}
}

func TestFeedService_Assemble_MissingPostIsFatal(t *testing.T) {
	timelines := newStubTimelineRepo()
	posts := newStubPostRepo()
	feeds := NewFeedService(timelines, posts, 100, discardLogger)

	// Timeline references a post that was never created.
	if err := timelines.Push(context.Background(), "alice", 42); err != nil {
		t.Fatalf("seed timeline: %v", err)
	}

	_, err := feeds.Assemble(context.Background(), "alice")
	if !errors.Is(err, domain.ErrFeedInconsistent) {
		t.Fatalf("expected ErrFeedInconsistent, got %v", err)
	}
}

func TestFeedService_Assemble_EmptyTimeline(t *testing.T) {
	feeds := NewFeedService(newStubTimelineRepo(), newStubPostRepo(), 100, discardLogger)

	items, err := feeds.Assemble(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty feed, got %d items", len(items))
	}
}
