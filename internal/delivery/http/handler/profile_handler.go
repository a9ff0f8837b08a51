package handler

import (
	"tastebook/internal/delivery/http/dto"
	"tastebook/internal/delivery/http/middleware"
	"tastebook/internal/domain/content"
	"tastebook/internal/pkg/response"
	"tastebook/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	authMw fiber.Handler
}

type profileRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=32"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

func NewProfileHandler(uc usecase.ProfileUsecase, authMw fiber.Handler) *ProfileHandler {
	return &ProfileHandler{uc: uc, authMw: authMw}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.authMw, h.Create)
	r.Put("/", h.authMw, h.Update)
	r.Get("/:username", h.Get)
	r.Get("/:username/recipes", h.recipes())
	r.Get("/:username/blogs", h.blogs())
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	p, err := h.uc.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return mapDomainError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ProfileResponse{
		ID:        p.ID,
		Username:  p.Username,
		Bio:       p.Bio,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt,
	})
}

func (h *ProfileHandler) recipes() fiber.Handler {
	return h.listContent(content.KindRecipe)
}

func (h *ProfileHandler) blogs() fiber.Handler {
	return h.listContent(content.KindBlog)
}

func (h *ProfileHandler) listContent(kind content.Kind) fiber.Handler {
	return func(c fiber.Ctx) error {
		items, err := h.uc.ListContent(c.Context(), c.Params("username"), kind)
		if err != nil {
			return mapDomainError(err)
		}
		return response.Success(c, fiber.StatusOK, response.MessageOK, items)
	}
}

func (h *ProfileHandler) Create(c fiber.Ctx) error {
	identity, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	if err := h.uc.Create(c.Context(), identity, usecase.CreateProfileInput{
		Username:  req.Username,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	}); err != nil {
		return mapDomainError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Profile created", nil)
}

func (h *ProfileHandler) Update(c fiber.Ctx) error {
	identity, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	if err := h.uc.Update(c.Context(), identity, usecase.UpdateProfileInput{
		Username:  req.Username,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	}); err != nil {
		return mapDomainError(err)
	}

	return response.Success(c, fiber.StatusOK, "Profile updated", nil)
}
