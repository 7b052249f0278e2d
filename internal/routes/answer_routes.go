package routes

import (
	"github.com/gofiber/fiber/v2"

	"qna_workspace/internal/handlers"
)

func AnswerRoutes(app *fiber.App, auth fiber.Handler, h *handlers.AnswerHandler) {
	answer := app.Group("/answer")

	answer.Post("/addAnswer", auth, h.Add)
	answer.Post("/:aid/comment", auth, h.AddComment)
	answer.Get("/:aid/comment", h.ListComments)
	answer.Patch("/:aid/upvote", auth, h.Upvote)
	answer.Patch("/:aid/downvote", auth, h.Downvote)
}
