package routes

import (
	"tastebook/internal/delivery/http/handler"
	"tastebook/internal/pkg/response"
	"tastebook/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry owns the route table. Handlers register themselves under their
// resource group; path shapes follow the public API surface exactly.
type Registry struct {
	Auth     *handler.AuthHandler
	Profiles *handler.ProfileHandler
	Recipes  *handler.ContentHandler
	Blogs    *handler.ContentHandler
	Follows  *handler.FollowHandler
	Likes    *handler.LikeHandler
	Comments *handler.CommentHandler

	WS     *ws.Handler
	AuthMw fiber.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", func(c fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
	})

	r.Auth.RegisterRoutes(app.Group("/auth"))
	r.Profiles.RegisterRoutes(app.Group("/profiles"))
	r.Recipes.RegisterRoutes(app.Group("/recipes"))
	r.Blogs.RegisterRoutes(app.Group("/blogs"))
	r.Follows.RegisterRoutes(app.Group("/follows"))
	r.Likes.RegisterRoutes(app.Group("/likes"))
	r.Comments.RegisterRoutes(app.Group("/comments"))

	if r.WS != nil && r.AuthMw != nil {
		app.Get("/ws/notifications", r.AuthMw, r.WS.HandleNotifications)
	}
}
