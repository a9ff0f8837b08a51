package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"tastebook/internal/domain/content"
	"tastebook/internal/domain/profile"
)

func TestCreateCommentRejectsInvalidType(t *testing.T) {
	uc := NewCommentUsecase(newStubCommentRepo(), newStubContentRepo(), &stubProfileRepo{}, nil)

	_, err := uc.Create(context.Background(), uuid.New(), CreateCommentInput{
		Comment:  "nice",
		TargetID: uuid.New(),
		Type:     content.Kind("story"),
	})
	if !errors.Is(err, content.ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func TestCreateCommentSkipsTargetCheck(t *testing.T) {
	// The target id is never validated; a comment against an id that does
	// not exist is stored all the same.
	uc := NewCommentUsecase(newStubCommentRepo(), newStubContentRepo(), &stubProfileRepo{}, nil)

	created, err := uc.Create(context.Background(), uuid.New(), CreateCommentInput{
		Comment:  "looks great",
		TargetID: uuid.New(),
		Type:     content.KindRecipe,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected a generated id")
	}
}

func TestCreateCommentRejectsBlankText(t *testing.T) {
	uc := NewCommentUsecase(newStubCommentRepo(), newStubContentRepo(), &stubProfileRepo{}, nil)

	_, err := uc.Create(context.Background(), uuid.New(), CreateCommentInput{
		Comment:  "   ",
		TargetID: uuid.New(),
		Type:     content.KindBlog,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateCommentNotifiesTargetOwner(t *testing.T) {
	owner := uuid.New()
	author := uuid.New()
	target := content.Item{ID: uuid.New(), Title: "Rendang", UserID: owner}

	contents := newStubContentRepo()
	contents.put(content.KindRecipe, target)

	profiles := &stubProfileRepo{profiles: []profile.Profile{{ID: author, Username: "budi"}}}
	notifier := &recordingNotifier{}
	uc := NewCommentUsecase(newStubCommentRepo(), contents, profiles, notifier)

	_, err := uc.Create(context.Background(), author, CreateCommentInput{
		Comment:  "great",
		TargetID: target.ID,
		Type:     content.KindRecipe,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(notifier.events) != 1 || notifier.events[0].ownerID != owner {
		t.Fatalf("expected a notification to the owner, got %+v", notifier.events)
	}
}

func TestUpdateForeignComment(t *testing.T) {
	comments := newStubCommentRepo()
	uc := NewCommentUsecase(comments, newStubContentRepo(), &stubProfileRepo{}, nil)
	ctx := context.Background()

	author := uuid.New()
	created, err := uc.Create(ctx, author, CreateCommentInput{
		Comment:  "original",
		TargetID: uuid.New(),
		Type:     content.KindBlog,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = uc.Update(ctx, uuid.New(), created.ID, "hijacked")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := uc.Update(ctx, author, created.ID, "edited")
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Comment != "edited" {
		t.Fatalf("expected edited text, got %q", updated.Comment)
	}
}

func TestUpdateMissingCommentLooksForbidden(t *testing.T) {
	uc := NewCommentUsecase(newStubCommentRepo(), newStubContentRepo(), &stubProfileRepo{}, nil)

	_, err := uc.Update(context.Background(), uuid.New(), uuid.New(), "text")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("missing comment must fail like a foreign one, got %v", err)
	}
}

func TestDeleteComment(t *testing.T) {
	comments := newStubCommentRepo()
	uc := NewCommentUsecase(comments, newStubContentRepo(), &stubProfileRepo{}, nil)
	ctx := context.Background()

	author := uuid.New()
	created, err := uc.Create(ctx, author, CreateCommentInput{
		Comment:  "delete me",
		TargetID: uuid.New(),
		Type:     content.KindRecipe,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := uc.Delete(ctx, uuid.New(), created.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for a stranger, got %v", err)
	}
	if err := uc.Delete(ctx, author, created.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if err := uc.Delete(ctx, author, created.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("deleted comment must fail like a foreign one, got %v", err)
	}
}

func TestListForTargetAcceptsEmptyKind(t *testing.T) {
	comments := newStubCommentRepo()
	uc := NewCommentUsecase(comments, newStubContentRepo(), &stubProfileRepo{}, nil)
	ctx := context.Background()

	target := uuid.New()
	author := uuid.New()
	for _, kind := range []content.Kind{content.KindRecipe, content.KindBlog} {
		if _, err := uc.Create(ctx, author, CreateCommentInput{Comment: "hi", TargetID: target, Type: kind}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	all, err := uc.ListForTarget(ctx, target, "")
	if err != nil {
		t.Fatalf("ListForTarget failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both kinds without a filter, got %d", len(all))
	}

	only, err := uc.ListForTarget(ctx, target, content.KindBlog)
	if err != nil {
		t.Fatalf("filtered ListForTarget failed: %v", err)
	}
	if len(only) != 1 {
		t.Fatalf("expected 1 blog comment, got %d", len(only))
	}

	if _, err := uc.ListForTarget(ctx, target, content.Kind("video")); !errors.Is(err, content.ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}
