package content

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("content not found")

type Repository interface {
	ListAll(ctx context.Context, kind Kind) ([]Item, error)
	ListByOwner(ctx context.Context, kind Kind, ownerID uuid.UUID) ([]Item, error)
	Create(ctx context.Context, kind Kind, it Item) (Item, error)
	GetByID(ctx context.Context, kind Kind, id uuid.UUID) (Item, error)
	Exists(ctx context.Context, kind Kind, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, kind Kind, id uuid.UUID) error
}
