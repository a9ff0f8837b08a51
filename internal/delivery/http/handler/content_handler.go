package handler

import (
	"tastebook/internal/delivery/http/middleware"
	"tastebook/internal/domain/content"
	"tastebook/internal/pkg/response"
	"tastebook/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// ContentHandler serves one content kind; the same handler type is mounted
// once under /recipes and once under /blogs.
type ContentHandler struct {
	uc     usecase.ContentUsecase
	kind   content.Kind
	label  string
	myPath string
	authMw fiber.Handler
}

type createContentRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

func NewRecipeHandler(uc usecase.ContentUsecase, authMw fiber.Handler) *ContentHandler {
	return &ContentHandler{uc: uc, kind: content.KindRecipe, label: "Recipe", myPath: "/my-recipes", authMw: authMw}
}

func NewBlogHandler(uc usecase.ContentUsecase, authMw fiber.Handler) *ContentHandler {
	return &ContentHandler{uc: uc, kind: content.KindBlog, label: "Blog", myPath: "/my-blogs", authMw: authMw}
}

func (h *ContentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListAll)
	r.Post("/", h.authMw, h.Create)
	r.Get(h.myPath, h.authMw, h.ListMine)
	r.Delete(h.myPath+"/:id", h.authMw, h.Delete)
}

func (h *ContentHandler) ListAll(c fiber.Ctx) error {
	items, err := h.uc.ListAll(c.Context(), h.kind)
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ContentHandler) Create(c fiber.Ctx) error {
	identity, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	var req createContentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	created, err := h.uc.Create(c.Context(), identity, h.kind, usecase.CreateContentInput{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return mapDomainError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, created)
}

func (h *ContentHandler) ListMine(c fiber.Ctx) error {
	identity, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListMine(c.Context(), identity, h.kind)
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ContentHandler) Delete(c fiber.Ctx) error {
	identity, err := identityFromCtx(c)
	if err != nil {
		return err
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), identity, h.kind, id); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, h.label+" deleted", nil)
}
