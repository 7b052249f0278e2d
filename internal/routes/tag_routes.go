package routes

import (
	"github.com/gofiber/fiber/v2"

	"qna_workspace/internal/handlers"
)

func TagRoutes(app *fiber.App, h *handlers.TagHandler) {
	tag := app.Group("/tag")

	tag.Get("/getTagsWithQuestionNumber", h.TagsWithQuestionNumber)
}
