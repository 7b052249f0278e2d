package handlers

import (
	"github.com/gofiber/fiber/v2"

	"qna_workspace/internal/repository"
)

type TagHandler struct {
	Questions *repository.QuestionRepository
}

// GET /tag/getTagsWithQuestionNumber
func (h *TagHandler) TagsWithQuestionNumber(c *fiber.Ctx) error {
	counts, err := h.Questions.CountByTag(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(counts)
}
