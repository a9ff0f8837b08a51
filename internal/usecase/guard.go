package usecase

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// authorizeOwner is the single ownership check applied before every mutation
// of an owned resource. The owner id must come from the fetched row, never
// from the request payload.
func authorizeOwner(identity, ownerID uuid.UUID) error {
	if identity == uuid.Nil || identity != ownerID {
		return ErrForbidden
	}
	return nil
}
