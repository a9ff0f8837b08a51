package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"tastebook/internal/domain/content"
	"tastebook/internal/domain/profile"
	"tastebook/internal/domain/social"
)

type LikeUsecase interface {
	Like(ctx context.Context, identity, targetID uuid.UUID, kind content.Kind) (social.Like, error)
	Unlike(ctx context.Context, identity, targetID uuid.UUID, kind content.Kind) error
	ListForTarget(ctx context.Context, targetID uuid.UUID, kind content.Kind) ([]social.Like, error)
	ListMine(ctx context.Context, identity uuid.UUID) ([]social.Like, error)
	ListByUser(ctx context.Context, username string) ([]social.LikedTarget, error)
}

type Likes struct {
	likes    social.LikeRepository
	contents content.Repository
	profiles profile.Repository
	notifier Notifier
}

func NewLikeUsecase(likes social.LikeRepository, contents content.Repository, profiles profile.Repository, notifier Notifier) *Likes {
	return &Likes{likes: likes, contents: contents, profiles: profiles, notifier: notifier}
}

// Like verifies the target exists, then inserts. The exists pre-check on the
// like itself only gives the common path a clean error; two racing requests
// are settled by the unique constraint, which the repository reports as
// ErrAlreadyLiked.
func (s *Likes) Like(ctx context.Context, identity, targetID uuid.UUID, kind content.Kind) (social.Like, error) {
	if !kind.Valid() {
		return social.Like{}, content.ErrInvalidKind
	}

	exists, err := s.contents.Exists(ctx, kind, targetID)
	if err != nil {
		return social.Like{}, err
	}
	if !exists {
		return social.Like{}, content.ErrNotFound
	}

	liked, err := s.likes.Exists(ctx, identity, targetID, kind)
	if err != nil {
		return social.Like{}, err
	}
	if liked {
		return social.Like{}, social.ErrAlreadyLiked
	}

	created, err := s.likes.Insert(ctx, social.Like{
		UserID:   identity,
		TargetID: targetID,
		Type:     kind,
	})
	if err != nil {
		return social.Like{}, err
	}

	s.notifyOwner(ctx, identity, targetID, kind)
	return created, nil
}

func (s *Likes) Unlike(ctx context.Context, identity, targetID uuid.UUID, kind content.Kind) error {
	if !kind.Valid() {
		return content.ErrInvalidKind
	}

	deleted, err := s.likes.Delete(ctx, identity, targetID, kind)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return social.ErrNotLiked
	}
	return nil
}

func (s *Likes) ListForTarget(ctx context.Context, targetID uuid.UUID, kind content.Kind) ([]social.Like, error) {
	if !kind.Valid() {
		return nil, content.ErrInvalidKind
	}
	return s.likes.ListByTarget(ctx, targetID, kind)
}

func (s *Likes) ListMine(ctx context.Context, identity uuid.UUID) ([]social.Like, error) {
	return s.likes.ListByUser(ctx, identity)
}

// ListByUser keeps likes whose target has since been deleted; those entries
// come back with empty title and image_url.
func (s *Likes) ListByUser(ctx context.Context, username string) ([]social.LikedTarget, error) {
	p, err := s.profiles.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	return s.likes.ListByUserWithTargets(ctx, p.ID)
}

func (s *Likes) notifyOwner(ctx context.Context, identity, targetID uuid.UUID, kind content.Kind) {
	if s.notifier == nil {
		return
	}
	it, err := s.contents.GetByID(ctx, kind, targetID)
	if err != nil || it.UserID == identity {
		return
	}
	actor, err := s.profiles.GetByID(ctx, identity)
	if err != nil {
		return
	}
	notify(s.notifier, it.UserID, eventLiked, actor.Username, string(kind), targetID)
}
