package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"tastebook/internal/domain/content"
)

func TestCreateContentSetsOwnerFromIdentity(t *testing.T) {
	contents := newStubContentRepo()
	uc := NewContentUsecase(contents, nil)
	identity := uuid.New()

	created, err := uc.Create(context.Background(), identity, content.KindRecipe, CreateContentInput{
		Title:   "Rendang",
		Content: "Slow-cooked beef in coconut milk.",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.UserID != identity {
		t.Fatalf("owner must come from the identity, got %s", created.UserID)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected a generated id")
	}
}

func TestCreateContentRejectsBlankFields(t *testing.T) {
	uc := NewContentUsecase(newStubContentRepo(), nil)

	_, err := uc.Create(context.Background(), uuid.New(), content.KindBlog, CreateContentInput{
		Title:   "   ",
		Content: "body",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank title, got %v", err)
	}

	_, err = uc.Create(context.Background(), uuid.New(), content.KindBlog, CreateContentInput{
		Title:   "title",
		Content: "",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank content, got %v", err)
	}
}

func TestDeleteContentByOwner(t *testing.T) {
	owner := uuid.New()
	item := content.Item{ID: uuid.New(), Title: "Soto", UserID: owner}

	contents := newStubContentRepo()
	contents.put(content.KindRecipe, item)

	uc := NewContentUsecase(contents, nil)
	if err := uc.Delete(context.Background(), owner, content.KindRecipe, item.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(contents.deleted) != 1 || contents.deleted[0] != item.ID {
		t.Fatalf("expected item deleted, got %v", contents.deleted)
	}
}

func TestDeleteContentByStranger(t *testing.T) {
	item := content.Item{ID: uuid.New(), Title: "Soto", UserID: uuid.New()}

	contents := newStubContentRepo()
	contents.put(content.KindRecipe, item)

	uc := NewContentUsecase(contents, nil)
	err := uc.Delete(context.Background(), uuid.New(), content.KindRecipe, item.ID)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(contents.deleted) != 0 {
		t.Fatal("foreign delete must not remove the item")
	}
}

func TestDeleteMissingContentLooksForbidden(t *testing.T) {
	uc := NewContentUsecase(newStubContentRepo(), nil)

	err := uc.Delete(context.Background(), uuid.New(), content.KindBlog, uuid.New())
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("missing item must fail like a foreign one, got %v", err)
	}
}

func TestListAllRejectsInvalidKind(t *testing.T) {
	uc := NewContentUsecase(newStubContentRepo(), nil)

	_, err := uc.ListAll(context.Background(), content.Kind("video"))
	if !errors.Is(err, content.ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func TestListMineFiltersByOwner(t *testing.T) {
	mine := uuid.New()
	other := uuid.New()

	contents := newStubContentRepo()
	contents.put(content.KindBlog, content.Item{ID: uuid.New(), Title: "A", UserID: mine})
	contents.put(content.KindBlog, content.Item{ID: uuid.New(), Title: "B", UserID: other})
	contents.put(content.KindRecipe, content.Item{ID: uuid.New(), Title: "C", UserID: mine})

	uc := NewContentUsecase(contents, nil)
	got, err := uc.ListMine(context.Background(), mine, content.KindBlog)
	if err != nil {
		t.Fatalf("ListMine failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "A" {
		t.Fatalf("expected only my blog, got %+v", got)
	}
}
