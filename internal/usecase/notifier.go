package usecase

import (
	"github.com/google/uuid"
)

// Notifier pushes social events to the affected user's open connections.
// Implementations must never block; delivery is best effort.
type Notifier interface {
	Notify(ownerID uuid.UUID, eventType, actor, kind string, targetID uuid.UUID)
}

const (
	eventFollowed  = "followed"
	eventLiked     = "liked"
	eventCommented = "commented"
)

func notify(n Notifier, ownerID uuid.UUID, eventType, actor, kind string, targetID uuid.UUID) {
	if n == nil || ownerID == uuid.Nil {
		return
	}
	n.Notify(ownerID, eventType, actor, kind, targetID)
}
