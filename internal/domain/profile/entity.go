package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the public face of a user. Its id equals the auth user's id;
// one profile per user, created by the owner after registration.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// Public is the subset exposed in follower/following listings.
type Public struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}
