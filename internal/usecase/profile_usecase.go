package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"tastebook/internal/domain/content"
	"tastebook/internal/domain/profile"
	"tastebook/internal/infrastructure/cache"
)

type CreateProfileInput struct {
	Username  string
	Bio       string
	AvatarURL string
}

type UpdateProfileInput struct {
	Username  string
	Bio       string
	AvatarURL string
}

type ProfileUsecase interface {
	GetByUsername(ctx context.Context, username string) (profile.Profile, error)
	ListContent(ctx context.Context, username string, kind content.Kind) ([]content.Item, error)
	Create(ctx context.Context, identity uuid.UUID, in CreateProfileInput) error
	Update(ctx context.Context, identity uuid.UUID, in UpdateProfileInput) error
}

type Profiles struct {
	profiles profile.Repository
	contents content.Repository
	cache    *cache.Redis
}

func NewProfileUsecase(profiles profile.Repository, contents content.Repository, c *cache.Redis) *Profiles {
	return &Profiles{profiles: profiles, contents: contents, cache: c}
}

func (s *Profiles) GetByUsername(ctx context.Context, username string) (profile.Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return profile.Profile{}, profile.ErrNotFound
	}

	key := cache.ProfileKey(username)
	var cached profile.Profile
	if ok, _ := s.cache.GetJSON(ctx, key, &cached); ok {
		return cached, nil
	}

	p, err := s.profiles.GetByUsername(ctx, username)
	if err != nil {
		return profile.Profile{}, err
	}

	_ = s.cache.SetJSON(ctx, key, p, 0)
	return p, nil
}

func (s *Profiles) ListContent(ctx context.Context, username string, kind content.Kind) ([]content.Item, error) {
	if !kind.Valid() {
		return nil, content.ErrInvalidKind
	}

	p, err := s.profiles.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}

	return s.contents.ListByOwner(ctx, kind, p.ID)
}

func (s *Profiles) Create(ctx context.Context, identity uuid.UUID, in CreateProfileInput) error {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return ErrInvalidInput
	}

	return s.profiles.Create(ctx, profile.Profile{
		ID:        identity,
		Username:  username,
		Bio:       strings.TrimSpace(in.Bio),
		AvatarURL: strings.TrimSpace(in.AvatarURL),
	})
}

func (s *Profiles) Update(ctx context.Context, identity uuid.UUID, in UpdateProfileInput) error {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return ErrInvalidInput
	}

	// Invalidate under both the old and the new username.
	if old, err := s.profiles.GetByID(ctx, identity); err == nil {
		_ = s.cache.Delete(ctx, cache.ProfileKey(old.Username))
	}

	err := s.profiles.Update(ctx, profile.Profile{
		ID:        identity,
		Username:  username,
		Bio:       strings.TrimSpace(in.Bio),
		AvatarURL: strings.TrimSpace(in.AvatarURL),
	})
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.ProfileKey(username))
	return nil
}
