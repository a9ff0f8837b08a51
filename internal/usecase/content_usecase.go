package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"tastebook/internal/domain/content"
	"tastebook/internal/infrastructure/cache"
)

type CreateContentInput struct {
	Title    string
	Content  string
	ImageURL string
}

type ContentUsecase interface {
	ListAll(ctx context.Context, kind content.Kind) ([]content.Item, error)
	Create(ctx context.Context, identity uuid.UUID, kind content.Kind, in CreateContentInput) (content.Item, error)
	ListMine(ctx context.Context, identity uuid.UUID, kind content.Kind) ([]content.Item, error)
	Delete(ctx context.Context, identity uuid.UUID, kind content.Kind, id uuid.UUID) error
}

type Contents struct {
	contents content.Repository
	cache    *cache.Redis
}

func NewContentUsecase(contents content.Repository, c *cache.Redis) *Contents {
	return &Contents{contents: contents, cache: c}
}

func feedKey(kind content.Kind) string {
	if kind == content.KindRecipe {
		return cache.KeyRecipeFeed
	}
	return cache.KeyBlogFeed
}

func (s *Contents) ListAll(ctx context.Context, kind content.Kind) ([]content.Item, error) {
	if !kind.Valid() {
		return nil, content.ErrInvalidKind
	}

	var cached []content.Item
	if ok, _ := s.cache.GetJSON(ctx, feedKey(kind), &cached); ok {
		return cached, nil
	}

	items, err := s.contents.ListAll(ctx, kind)
	if err != nil {
		return nil, err
	}

	_ = s.cache.SetJSON(ctx, feedKey(kind), items, 0)
	return items, nil
}

func (s *Contents) Create(ctx context.Context, identity uuid.UUID, kind content.Kind, in CreateContentInput) (content.Item, error) {
	if !kind.Valid() {
		return content.Item{}, content.ErrInvalidKind
	}

	title := strings.TrimSpace(in.Title)
	if title == "" || strings.TrimSpace(in.Content) == "" {
		return content.Item{}, ErrInvalidInput
	}

	// Owner always comes from the resolved identity, never from the payload.
	created, err := s.contents.Create(ctx, kind, content.Item{
		Title:    title,
		Content:  in.Content,
		ImageURL: strings.TrimSpace(in.ImageURL),
		UserID:   identity,
	})
	if err != nil {
		return content.Item{}, err
	}

	_ = s.cache.Delete(ctx, feedKey(kind))
	return created, nil
}

func (s *Contents) ListMine(ctx context.Context, identity uuid.UUID, kind content.Kind) ([]content.Item, error) {
	if !kind.Valid() {
		return nil, content.ErrInvalidKind
	}
	return s.contents.ListByOwner(ctx, kind, identity)
}

// Delete fetches first, then authorizes against the stored owner. A missing
// item and a foreign item fail the same way so callers cannot probe ids.
func (s *Contents) Delete(ctx context.Context, identity uuid.UUID, kind content.Kind, id uuid.UUID) error {
	if !kind.Valid() {
		return content.ErrInvalidKind
	}

	it, err := s.contents.GetByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return ErrForbidden
		}
		return err
	}
	if err := authorizeOwner(identity, it.UserID); err != nil {
		return err
	}

	if err := s.contents.Delete(ctx, kind, id); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, feedKey(kind))
	return nil
}
