package comment

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"tastebook/internal/domain/content"
)

var ErrNotFound = errors.New("comment not found")

type Repository interface {
	Create(ctx context.Context, c Comment) (Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (Comment, error)
	// ListByTarget filters by kind only when kind is non-empty.
	ListByTarget(ctx context.Context, targetID uuid.UUID, kind content.Kind) ([]Comment, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) (Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
