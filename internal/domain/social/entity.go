package social

import (
	"time"

	"github.com/google/uuid"

	"tastebook/internal/domain/content"
)

// Like marks that a user liked one blog or recipe. At most one row may exist
// per (user_id, target_id, type); the unique constraint in the schema is the
// authoritative enforcement, application pre-checks only improve the error.
type Like struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"user_id"`
	TargetID  uuid.UUID    `json:"target_id"`
	Type      content.Kind `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
}

// LikedTarget is a like joined with its target's display metadata. Title and
// ImageURL are empty when the target has been deleted; orphaned likes are
// tolerated, not purged.
type LikedTarget struct {
	ID       uuid.UUID    `json:"id"`
	Type     content.Kind `json:"type"`
	TargetID uuid.UUID    `json:"target_id"`
	Title    string       `json:"title"`
	ImageURL string       `json:"image_url"`
}

// Follow is a directed edge: follower follows following. Self-edges are
// rejected before insert and by a schema check constraint.
type Follow struct {
	FollowerID  uuid.UUID `json:"follower_id"`
	FollowingID uuid.UUID `json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}
