package routes

import (
	"github.com/gofiber/fiber/v2"

	"qna_workspace/internal/handlers"
)

func UserRoutes(app *fiber.App, auth fiber.Handler, h *handlers.UserHandler) {
	user := app.Group("/user")

	user.Post("/signup", h.Signup)
	user.Post("/login", h.Login)
	user.Post("/logout", h.Logout)
	user.Get("/profile", auth, h.GetProfile)
}
