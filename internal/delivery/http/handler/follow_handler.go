package handler

import (
	"fmt"

	"tastebook/internal/pkg/response"
	"tastebook/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type FollowHandler struct {
	uc     usecase.FollowUsecase
	authMw fiber.Handler
}

func NewFollowHandler(uc usecase.FollowUsecase, authMw fiber.Handler) *FollowHandler {
	return &FollowHandler{uc: uc, authMw: authMw}
}

func (h *FollowHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/followers/:username", h.Followers)
	r.Get("/following/:username", h.Following)
	r.Post("/:username", h.authMw, h.Follow)
	r.Delete("/:username", h.authMw, h.Unfollow)
}

func (h *FollowHandler) Follow(c fiber.Ctx) error {
	identity, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	username, err := h.uc.Follow(c.Context(), identity, c.Params("username"))
	if err != nil {
		return mapDomainError(err)
	}

	return response.Success(c, fiber.StatusOK, fmt.Sprintf("You are now following %s", username), nil)
}

func (h *FollowHandler) Unfollow(c fiber.Ctx) error {
	identity, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	username, err := h.uc.Unfollow(c.Context(), identity, c.Params("username"))
	if err != nil {
		return mapDomainError(err)
	}

	return response.Success(c, fiber.StatusOK, fmt.Sprintf("You unfollowed %s", username), nil)
}

func (h *FollowHandler) Followers(c fiber.Ctx) error {
	followers, err := h.uc.Followers(c.Context(), c.Params("username"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, followers)
}

func (h *FollowHandler) Following(c fiber.Ctx) error {
	following, err := h.uc.Following(c.Context(), c.Params("username"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, following)
}
