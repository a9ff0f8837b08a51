package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"tastebook/internal/domain/profile"
	"tastebook/internal/domain/social"
)

func TestFollowSelf(t *testing.T) {
	me := profile.Profile{ID: uuid.New(), Username: "budi"}
	uc := NewFollowUsecase(newStubFollowRepo(), &stubProfileRepo{profiles: []profile.Profile{me}}, nil)

	_, err := uc.Follow(context.Background(), me.ID, "budi")
	if !errors.Is(err, social.ErrSelfFollow) {
		t.Fatalf("expected ErrSelfFollow, got %v", err)
	}
}

func TestFollowUnknownTarget(t *testing.T) {
	uc := NewFollowUsecase(newStubFollowRepo(), &stubProfileRepo{}, nil)

	_, err := uc.Follow(context.Background(), uuid.New(), "ghost")
	if !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected profile.ErrNotFound, got %v", err)
	}
}

func TestFollowTwiceReturnsConflict(t *testing.T) {
	me := profile.Profile{ID: uuid.New(), Username: "budi"}
	target := profile.Profile{ID: uuid.New(), Username: "sari"}
	uc := NewFollowUsecase(newStubFollowRepo(), &stubProfileRepo{profiles: []profile.Profile{me, target}}, nil)
	ctx := context.Background()

	name, err := uc.Follow(ctx, me.ID, "sari")
	if err != nil {
		t.Fatalf("first follow failed: %v", err)
	}
	if name != "sari" {
		t.Fatalf("expected canonical username sari, got %q", name)
	}

	_, err = uc.Follow(ctx, me.ID, "sari")
	if !errors.Is(err, social.ErrAlreadyFollowing) {
		t.Fatalf("expected ErrAlreadyFollowing, got %v", err)
	}
}

func TestFollowNotifiesTarget(t *testing.T) {
	me := profile.Profile{ID: uuid.New(), Username: "budi"}
	target := profile.Profile{ID: uuid.New(), Username: "sari"}
	notifier := &recordingNotifier{}
	uc := NewFollowUsecase(newStubFollowRepo(), &stubProfileRepo{profiles: []profile.Profile{me, target}}, notifier)

	if _, err := uc.Follow(context.Background(), me.ID, "sari"); err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if len(notifier.events) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.events))
	}
	ev := notifier.events[0]
	if ev.ownerID != target.ID || ev.actor != "budi" {
		t.Fatalf("unexpected notification: %+v", ev)
	}
}

func TestUnfollowIsIdempotent(t *testing.T) {
	me := profile.Profile{ID: uuid.New(), Username: "budi"}
	target := profile.Profile{ID: uuid.New(), Username: "sari"}
	follows := newStubFollowRepo()
	uc := NewFollowUsecase(follows, &stubProfileRepo{profiles: []profile.Profile{me, target}}, nil)
	ctx := context.Background()

	// Never followed; unfollow still succeeds.
	name, err := uc.Unfollow(ctx, me.ID, "sari")
	if err != nil {
		t.Fatalf("unfollow of non-followed target failed: %v", err)
	}
	if name != "sari" {
		t.Fatalf("expected canonical username sari, got %q", name)
	}

	if _, err := uc.Follow(ctx, me.ID, "sari"); err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if _, err := uc.Unfollow(ctx, me.ID, "sari"); err != nil {
		t.Fatalf("unfollow failed: %v", err)
	}
	if _, err := uc.Unfollow(ctx, me.ID, "sari"); err != nil {
		t.Fatalf("repeat unfollow failed: %v", err)
	}
	if len(follows.edges) != 0 {
		t.Fatalf("expected no edges left, got %d", len(follows.edges))
	}
}

func TestUnfollowUnknownTarget(t *testing.T) {
	uc := NewFollowUsecase(newStubFollowRepo(), &stubProfileRepo{}, nil)

	_, err := uc.Unfollow(context.Background(), uuid.New(), "ghost")
	if !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected profile.ErrNotFound, got %v", err)
	}
}
