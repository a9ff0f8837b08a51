package handler

import (
	"tastebook/internal/delivery/http/middleware"
	"tastebook/internal/domain/content"
	"tastebook/internal/pkg/response"
	"tastebook/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CommentHandler struct {
	uc     usecase.CommentUsecase
	authMw fiber.Handler
}

type createCommentRequest struct {
	Comment  string    `json:"comment" validate:"required"`
	TargetID uuid.UUID `json:"target_id" validate:"required"`
	Type     string    `json:"type" validate:"required"`
}

type updateCommentRequest struct {
	Comment string `json:"comment" validate:"required"`
}

func NewCommentHandler(uc usecase.CommentUsecase, authMw fiber.Handler) *CommentHandler {
	return &CommentHandler{uc: uc, authMw: authMw}
}

func (h *CommentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.authMw, h.Create)
	r.Get("/:target_id", h.ListForTarget)
	r.Put("/:id", h.authMw, h.Update)
	r.Delete("/:id", h.authMw, h.Delete)
}

func (h *CommentHandler) Create(c fiber.Ctx) error {
	identity, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	kind, err := content.ParseKind(req.Type)
	if err != nil {
		return mapDomainError(err)
	}

	created, err := h.uc.Create(c.Context(), identity, usecase.CreateCommentInput{
		Comment:  req.Comment,
		TargetID: req.TargetID,
		Type:     kind,
	})
	if err != nil {
		return mapDomainError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, created)
}

// ListForTarget treats type as an optional filter, unlike the like listings
// where it is required.
func (h *CommentHandler) ListForTarget(c fiber.Ctx) error {
	targetID, err := parseUUIDParam(c, "target_id")
	if err != nil {
		return err
	}

	var kind content.Kind
	if q := c.Query("type"); q != "" {
		kind, err = content.ParseKind(q)
		if err != nil {
			return mapDomainError(err)
		}
	}

	comments, err := h.uc.ListForTarget(c.Context(), targetID, kind)
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, comments)
}

func (h *CommentHandler) Update(c fiber.Ctx) error {
	identity, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateCommentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	updated, err := h.uc.Update(c.Context(), identity, id, req.Comment)
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *CommentHandler) Delete(c fiber.Ctx) error {
	identity, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), identity, id); err != nil {
		return mapDomainError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
