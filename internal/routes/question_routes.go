package routes

import (
	"github.com/gofiber/fiber/v2"

	"qna_workspace/internal/handlers"
)

func QuestionRoutes(app *fiber.App, auth fiber.Handler, h *handlers.QuestionHandler) {
	question := app.Group("/question")

	question.Post("/addQuestion", auth, h.Add)
	question.Get("/getQuestion", h.List)
	question.Get("/getQuestionById/:qid", h.GetByID)
}
