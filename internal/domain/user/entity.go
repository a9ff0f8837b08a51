package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an authentication identity. Public-facing data lives on the
// matching Profile row, keyed by the same id.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
