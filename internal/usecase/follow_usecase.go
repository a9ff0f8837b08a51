package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"tastebook/internal/domain/profile"
	"tastebook/internal/domain/social"
)

type FollowUsecase interface {
	Follow(ctx context.Context, identity uuid.UUID, targetUsername string) (string, error)
	Unfollow(ctx context.Context, identity uuid.UUID, targetUsername string) (string, error)
	Followers(ctx context.Context, username string) ([]profile.Public, error)
	Following(ctx context.Context, username string) ([]profile.Public, error)
}

type Follows struct {
	follows  social.FollowRepository
	profiles profile.Repository
	notifier Notifier
}

func NewFollowUsecase(follows social.FollowRepository, profiles profile.Repository, notifier Notifier) *Follows {
	return &Follows{follows: follows, profiles: profiles, notifier: notifier}
}

// Follow returns the target's canonical username for the confirmation
// message. The unique pair constraint is the real duplicate guard; the
// repository reports its violation as ErrAlreadyFollowing.
func (s *Follows) Follow(ctx context.Context, identity uuid.UUID, targetUsername string) (string, error) {
	target, err := s.profiles.GetByUsername(ctx, strings.TrimSpace(targetUsername))
	if err != nil {
		return "", err
	}

	if target.ID == identity {
		return "", social.ErrSelfFollow
	}

	if err := s.follows.Insert(ctx, identity, target.ID); err != nil {
		return "", err
	}

	if actor, err := s.profiles.GetByID(ctx, identity); err == nil {
		notify(s.notifier, target.ID, eventFollowed, actor.Username, "", uuid.Nil)
	}

	return target.Username, nil
}

// Unfollow deletes the edge if present; unfollowing someone never followed
// still succeeds.
func (s *Follows) Unfollow(ctx context.Context, identity uuid.UUID, targetUsername string) (string, error) {
	target, err := s.profiles.GetByUsername(ctx, strings.TrimSpace(targetUsername))
	if err != nil {
		return "", err
	}

	if err := s.follows.Delete(ctx, identity, target.ID); err != nil {
		return "", err
	}
	return target.Username, nil
}

func (s *Follows) Followers(ctx context.Context, username string) ([]profile.Public, error) {
	p, err := s.profiles.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	return s.follows.ListFollowers(ctx, p.ID)
}

func (s *Follows) Following(ctx context.Context, username string) ([]profile.Public, error) {
	p, err := s.profiles.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	return s.follows.ListFollowing(ctx, p.ID)
}
