package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"qna_workspace/dto"
	"qna_workspace/internal/authctx"
	"qna_workspace/internal/repository"
	"qna_workspace/model"
	"qna_workspace/services"
)

type QuestionHandler struct {
	Questions *repository.QuestionRepository
	Answers   *repository.AnswerRepository
	Tags      *repository.TagRepository
	Users     *repository.UserRepository
}

// POST /question/addQuestion
func (h *QuestionHandler) Add(c *fiber.Ctx) error {
	uid, ok := authctx.UserID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Unauthorized"})
	}
	username, _ := authctx.Username(c)

	var body dto.CreateQuestionReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(validationFailure(".body", "must be valid JSON"))
	}
	if verr := validateQuestion(body); verr != nil {
		return c.Status(http.StatusBadRequest).JSON(verr)
	}
	askDateTime, err := time.Parse(time.RFC3339, body.AskDateTime)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(validationFailure(".body.ask_date_time", "must be date-time"))
	}

	if _, err := h.Users.FindByID(c.Context(), uid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Message: "User not found"})
		}
		return internalError(c, err)
	}

	tagNames := make([]string, 0, len(body.Tags))
	for _, t := range body.Tags {
		if name := strings.TrimSpace(t.Name); name != "" {
			tagNames = append(tagNames, name)
		}
	}
	tags, err := h.Tags.FindOrCreateMany(c.Context(), tagNames)
	if err != nil {
		return internalError(c, err)
	}
	tagIDs := make([]bson.ObjectID, 0, len(tags))
	for _, t := range tags {
		tagIDs = append(tagIDs, t.ID)
	}

	question, err := h.Questions.Insert(c.Context(), model.Question{
		Title:       body.Title,
		Text:        body.Text,
		AskedBy:     username,
		AskDateTime: askDateTime,
		Views:       0,
		Answers:     []bson.ObjectID{},
		Tags:        tagIDs,
	})
	if err != nil {
		return internalError(c, err)
	}
	// back-reference on the author; separate write, no rollback on failure
	if err := h.Users.PushQuestion(c.Context(), uid, question.ID); err != nil {
		return internalError(c, err)
	}

	resp := dto.Question{
		ID:          question.ID.Hex(),
		Title:       question.Title,
		Text:        question.Text,
		AskedBy:     question.AskedBy,
		AskDateTime: question.AskDateTime,
		Views:       question.Views,
		Answers:     []dto.Answer{},
		Tags:        make([]dto.Tag, 0, len(tags)),
	}
	for _, t := range tags {
		resp.Tags = append(resp.Tags, dto.Tag{ID: t.ID.Hex(), Name: t.Name})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GET /question/getQuestion?order=&search=
func (h *QuestionHandler) List(c *fiber.Ctx) error {
	order := c.Query("order")
	search := c.Query("search")

	var (
		questions []model.Question
		err       error
	)
	switch order {
	case "active":
		questions, err = h.Questions.ListAll(c.Context())
	case "unanswered":
		questions, err = h.Questions.ListUnanswered(c.Context())
	default:
		questions, err = h.Questions.ListNewest(c.Context())
	}
	if err != nil {
		return internalError(c, err)
	}

	populated, err := services.PopulateQuestions(c.Context(), questions, h.Answers, h.Tags)
	if err != nil {
		return internalError(c, err)
	}
	if order == "active" {
		populated = services.SortActive(populated)
	}
	if search != "" {
		populated = services.FilterBySearch(populated, search)
	}
	return c.JSON(populated)
}

// GET /question/getQuestionById/:qid
func (h *QuestionHandler) GetByID(c *fiber.Ctx) error {
	qid, err := bson.ObjectIDFromHex(c.Params("qid"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid question id"})
	}

	question, err := h.Questions.FindByIDAndIncrementViews(c.Context(), qid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Message: "Question not found"})
		}
		return internalError(c, err)
	}

	populated, err := services.PopulateQuestions(c.Context(), []model.Question{question}, h.Answers, h.Tags)
	if err != nil {
		return internalError(c, err)
	}
	services.SortAnswersNewestFirst(populated[0].Answers)
	return c.JSON(populated[0])
}

func validateQuestion(body dto.CreateQuestionReq) *dto.ValidationError {
	if body.Title == "" || body.Text == "" || body.AskDateTime == "" {
		return validationFailure(".body", "must not be empty")
	}
	return nil
}

func validationFailure(path, message string) *dto.ValidationError {
	return &dto.ValidationError{
		Message: "Validation failed",
		Errors: []dto.ValidationErrorItem{
			{Path: path, Message: message, ErrorCode: "type.openapi.validation"},
		},
	}
}

func internalError(c *fiber.Ctx, err error) error {
	log.Println("internal error:", err)
	return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal Server Error"})
}
