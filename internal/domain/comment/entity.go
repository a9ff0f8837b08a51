package comment

import (
	"time"

	"github.com/google/uuid"

	"tastebook/internal/domain/content"
)

// Comment attaches free text to a blog or recipe. The target is stored as a
// (target_id, type) pair without a foreign key; unlike likes, target
// existence is not checked on insert.
type Comment struct {
	ID        uuid.UUID    `json:"id"`
	Comment   string       `json:"comment"`
	UserID    uuid.UUID    `json:"user_id"`
	TargetID  uuid.UUID    `json:"target_id"`
	Type      content.Kind `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
}
