package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"tastebook/internal/domain/content"
	"tastebook/internal/domain/profile"
	"tastebook/internal/domain/social"
)

func TestLikeRejectsInvalidKind(t *testing.T) {
	uc := NewLikeUsecase(newStubLikeRepo(), newStubContentRepo(), &stubProfileRepo{}, nil)

	_, err := uc.Like(context.Background(), uuid.New(), uuid.New(), content.Kind("podcast"))
	if !errors.Is(err, content.ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func TestLikeMissingTarget(t *testing.T) {
	uc := NewLikeUsecase(newStubLikeRepo(), newStubContentRepo(), &stubProfileRepo{}, nil)

	_, err := uc.Like(context.Background(), uuid.New(), uuid.New(), content.KindRecipe)
	if !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLikeTwiceReturnsAlreadyLiked(t *testing.T) {
	owner := uuid.New()
	liker := uuid.New()
	target := content.Item{ID: uuid.New(), Title: "Rendang", UserID: owner}

	contents := newStubContentRepo()
	contents.put(content.KindRecipe, target)

	uc := NewLikeUsecase(newStubLikeRepo(), contents, &stubProfileRepo{}, nil)

	if _, err := uc.Like(context.Background(), liker, target.ID, content.KindRecipe); err != nil {
		t.Fatalf("first like failed: %v", err)
	}
	_, err := uc.Like(context.Background(), liker, target.ID, content.KindRecipe)
	if !errors.Is(err, social.ErrAlreadyLiked) {
		t.Fatalf("expected ErrAlreadyLiked, got %v", err)
	}
}

func TestLikeNotifiesOwnerNotSelf(t *testing.T) {
	owner := uuid.New()
	liker := uuid.New()
	target := content.Item{ID: uuid.New(), Title: "Rendang", UserID: owner}

	contents := newStubContentRepo()
	contents.put(content.KindRecipe, target)

	profiles := &stubProfileRepo{profiles: []profile.Profile{
		{ID: liker, Username: "budi"},
		{ID: owner, Username: "sari"},
	}}
	notifier := &recordingNotifier{}

	uc := NewLikeUsecase(newStubLikeRepo(), contents, profiles, notifier)

	if _, err := uc.Like(context.Background(), liker, target.ID, content.KindRecipe); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if len(notifier.events) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.events))
	}
	ev := notifier.events[0]
	if ev.ownerID != owner || ev.actor != "budi" || ev.kind != "recipe" {
		t.Fatalf("unexpected notification: %+v", ev)
	}

	// Liking your own item should stay silent.
	own := content.Item{ID: uuid.New(), Title: "Soto", UserID: liker}
	contents.put(content.KindRecipe, own)
	if _, err := uc.Like(context.Background(), liker, own.ID, content.KindRecipe); err != nil {
		t.Fatalf("self like failed: %v", err)
	}
	if len(notifier.events) != 1 {
		t.Fatalf("self like must not notify, got %d events", len(notifier.events))
	}
}

func TestUnlikeWithoutLike(t *testing.T) {
	uc := NewLikeUsecase(newStubLikeRepo(), newStubContentRepo(), &stubProfileRepo{}, nil)

	err := uc.Unlike(context.Background(), uuid.New(), uuid.New(), content.KindBlog)
	if !errors.Is(err, social.ErrNotLiked) {
		t.Fatalf("expected ErrNotLiked, got %v", err)
	}
}

func TestLikeUnlikeLikeCycle(t *testing.T) {
	liker := uuid.New()
	target := content.Item{ID: uuid.New(), Title: "Nasi Goreng", UserID: uuid.New()}

	contents := newStubContentRepo()
	contents.put(content.KindBlog, target)

	uc := NewLikeUsecase(newStubLikeRepo(), contents, &stubProfileRepo{}, nil)
	ctx := context.Background()

	if _, err := uc.Like(ctx, liker, target.ID, content.KindBlog); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if err := uc.Unlike(ctx, liker, target.ID, content.KindBlog); err != nil {
		t.Fatalf("unlike failed: %v", err)
	}
	if _, err := uc.Like(ctx, liker, target.ID, content.KindBlog); err != nil {
		t.Fatalf("re-like after unlike failed: %v", err)
	}
}

func TestListByUserKeepsOrphanedLikes(t *testing.T) {
	viewer := profile.Profile{ID: uuid.New(), Username: "sari"}

	likes := newStubLikeRepo()
	likes.byUser = []social.LikedTarget{
		{ID: uuid.New(), Type: content.KindRecipe, TargetID: uuid.New(), Title: "Rendang", ImageURL: "https://img/1"},
		{ID: uuid.New(), Type: content.KindBlog, TargetID: uuid.New(), Title: "", ImageURL: ""},
	}

	uc := NewLikeUsecase(likes, newStubContentRepo(), &stubProfileRepo{profiles: []profile.Profile{viewer}}, nil)

	got, err := uc.ListByUser(context.Background(), "sari")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 liked targets, got %d", len(got))
	}
	if got[1].Title != "" || got[1].ImageURL != "" {
		t.Fatalf("orphaned like must keep empty target fields, got %+v", got[1])
	}
}

func TestListByUserUnknownUsername(t *testing.T) {
	uc := NewLikeUsecase(newStubLikeRepo(), newStubContentRepo(), &stubProfileRepo{}, nil)

	_, err := uc.ListByUser(context.Background(), "nobody")
	if !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected profile.ErrNotFound, got %v", err)
	}
}
