package social

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"tastebook/internal/domain/content"
	"tastebook/internal/domain/profile"
)

var (
	ErrAlreadyLiked     = errors.New("already liked")
	ErrNotLiked         = errors.New("not liked")
	ErrAlreadyFollowing = errors.New("already following")
	ErrSelfFollow       = errors.New("cannot follow yourself")
)

type LikeRepository interface {
	// Insert returns ErrAlreadyLiked when the unique constraint rejects the row.
	Insert(ctx context.Context, l Like) (Like, error)
	Exists(ctx context.Context, userID, targetID uuid.UUID, kind content.Kind) (bool, error)
	// Delete reports how many rows were removed.
	Delete(ctx context.Context, userID, targetID uuid.UUID, kind content.Kind) (int64, error)
	ListByTarget(ctx context.Context, targetID uuid.UUID, kind content.Kind) ([]Like, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Like, error)
	ListByUserWithTargets(ctx context.Context, userID uuid.UUID) ([]LikedTarget, error)
}

type FollowRepository interface {
	// Insert returns ErrAlreadyFollowing when the edge already exists.
	Insert(ctx context.Context, followerID, followingID uuid.UUID) error
	// Delete is idempotent; deleting a missing edge is not an error.
	Delete(ctx context.Context, followerID, followingID uuid.UUID) error
	ListFollowers(ctx context.Context, profileID uuid.UUID) ([]profile.Public, error)
	ListFollowing(ctx context.Context, profileID uuid.UUID) ([]profile.Public, error)
}
