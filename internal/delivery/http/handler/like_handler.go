package handler

import (
	"tastebook/internal/delivery/http/middleware"
	"tastebook/internal/domain/content"
	"tastebook/internal/pkg/response"
	"tastebook/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type LikeHandler struct {
	uc     usecase.LikeUsecase
	authMw fiber.Handler
}

type createLikeRequest struct {
	TargetID uuid.UUID `json:"target_id" validate:"required"`
	Type     string    `json:"type" validate:"required"`
}

func NewLikeHandler(uc usecase.LikeUsecase, authMw fiber.Handler) *LikeHandler {
	return &LikeHandler{uc: uc, authMw: authMw}
}

func (h *LikeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	// Static segments before the :target_id wildcard. The auth middleware
	// must precede the handler; fiber runs route handlers in argument order.
	r.Get("/my-likes", h.authMw, h.ListMine)
	r.Get("/user/:username", h.ListByUser)
	r.Post("/", h.authMw, h.Like)
	r.Get("/:target_id", h.ListForTarget)
	r.Delete("/:target_id", h.authMw, h.Unlike)
}

func (h *LikeHandler) Like(c fiber.Ctx) error {
	identity, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	var req createLikeRequest
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

	created, err := h.uc.Like(c.Context(), identity, req.TargetID, kind)
	if err != nil {
		return mapDomainError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, created)
}

// Unlike keeps the original's asymmetry: 200 with a message body, unlike
// comment deletion's 204.
func (h *LikeHandler) Unlike(c fiber.Ctx) error {
	identity, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	targetID, err := parseUUIDParam(c, "target_id")
	if err != nil {
		return err
	}

	kind, err := kindFromQuery(c)
	if err != nil {
		return err
	}

	if err := h.uc.Unlike(c.Context(), identity, targetID, kind); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, "Successfully unliked", nil)
}

func (h *LikeHandler) ListForTarget(c fiber.Ctx) error {
	targetID, err := parseUUIDParam(c, "target_id")
	if err != nil {
		return err
	}

	kind, err := kindFromQuery(c)
	if err != nil {
		return err
	}

	likes, err := h.uc.ListForTarget(c.Context(), targetID, kind)
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, likes)
}

func (h *LikeHandler) ListMine(c fiber.Ctx) error {
	identity, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	likes, err := h.uc.ListMine(c.Context(), identity)
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, likes)
}

func (h *LikeHandler) ListByUser(c fiber.Ctx) error {
	liked, err := h.uc.ListByUser(c.Context(), c.Params("username"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, liked)
}

func kindFromQuery(c fiber.Ctx) (content.Kind, error) {
	kind, err := content.ParseKind(c.Query("type"))
	if err != nil {
		return "", mapDomainError(err)
	}
	return kind, nil
}
