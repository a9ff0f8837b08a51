package handler

import (
	"errors"

	"tastebook/internal/delivery/http/middleware"
	"tastebook/internal/domain/comment"
	"tastebook/internal/domain/content"
	"tastebook/internal/domain/profile"
	"tastebook/internal/domain/social"
	"tastebook/internal/pkg/response"
	"tastebook/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// identityFromCtx reads the user id the auth middleware stored. A missing id
// on a protected route means the middleware was bypassed; treat as 401.
func identityFromCtx(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}

func parseUUIDParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+name, nil, err)
	}
	return id, nil
}

// mapDomainError is the one place domain sentinels become HTTP statuses.
func mapDomainError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, content.ErrInvalidKind):
		return middleware.NewAppError(fiber.StatusBadRequest, `Invalid type. Must be "blog" or "recipe".`, nil, err)
	case errors.Is(err, profile.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, content.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, comment.ErrNotFound):
		return middleware.NewAppError(fiber.StatusForbidden, "Unauthorized or comment not found", nil, err)
	case errors.Is(err, profile.ErrUsernameTaken):
		return middleware.NewAppError(fiber.StatusConflict, "Username already taken", nil, err)
	case errors.Is(err, social.ErrSelfFollow):
		return middleware.NewAppError(fiber.StatusBadRequest, "You can't follow yourself", nil, err)
	case errors.Is(err, social.ErrAlreadyFollowing):
		return middleware.NewAppError(fiber.StatusConflict, "Already following this user", nil, err)
	case errors.Is(err, social.ErrAlreadyLiked):
		return middleware.NewAppError(fiber.StatusBadRequest, "Already liked", nil, err)
	case errors.Is(err, social.ErrNotLiked):
		return middleware.NewAppError(fiber.StatusNotFound, "Not liked", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, response.MessageForbidden, nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
