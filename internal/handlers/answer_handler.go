package handlers

import (
	"errors"
	"net/http"
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

type AnswerHandler struct {
	Answers   *repository.AnswerRepository
	Questions *repository.QuestionRepository
	Comments  *repository.CommentRepository
	Users     *repository.UserRepository
}

// POST /answer/addAnswer
func (h *AnswerHandler) Add(c *fiber.Ctx) error {
	uid, ok := authctx.UserID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Unauthorized"})
	}
	username, _ := authctx.Username(c)

	var body dto.CreateAnswerReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(validationFailure(".body", "must be valid JSON"))
	}
	if body.QID == "" || body.Ans.Text == "" || body.Ans.AnsDateTime == "" {
		return c.Status(http.StatusBadRequest).JSON(validationFailure(".body", "must not be empty"))
	}
	qid, err := bson.ObjectIDFromHex(body.QID)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid question id"})
	}
	ansDateTime, err := time.Parse(time.RFC3339, body.Ans.AnsDateTime)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(validationFailure(".body.ans.ans_date_time", "must be date-time"))
	}

	answer, err := h.Answers.Insert(c.Context(), model.Answer{
		QID:         qid,
		Text:        body.Ans.Text,
		AnsBy:       username,
		AnsDateTime: ansDateTime,
	})
	if err != nil {
		return internalError(c, err)
	}

	// dual write: question and author each carry a reference. The three
	// writes are not wrapped in a transaction; a failure here leaves the
	// earlier ones in place and surfaces as a 500.
	if err := h.Questions.PushAnswer(c.Context(), qid, answer.ID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Message: "Question not found"})
		}
		return internalError(c, err)
	}
	if err := h.Users.PushAnswer(c.Context(), uid, answer.ID); err != nil {
		return internalError(c, err)
	}

	return c.Status(http.StatusOK).JSON(services.BuildAnswer(answer))
}

// POST /answer/:aid/comment
func (h *AnswerHandler) AddComment(c *fiber.Ctx) error {
	uid, ok := authctx.UserID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Unauthorized"})
	}
	username, _ := authctx.Username(c)

	aid, err := bson.ObjectIDFromHex(c.Params("aid"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid answer id"})
	}

	var body dto.CreateCommentReq
	if err := c.BodyParser(&body); err != nil || body.Text == "" {
		return c.Status(http.StatusBadRequest).JSON(validationFailure(".body.text", "must not be empty"))
	}
	commentDateTime, err := time.Parse(time.RFC3339, body.CommentDateTime)
	if err != nil {
		commentDateTime = time.Now().UTC()
	}

	comment, err := h.Comments.Insert(c.Context(), body.Text, username, commentDateTime)
	if err != nil {
		return internalError(c, err)
	}
	if err := h.Answers.PushComment(c.Context(), aid, comment.ID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Message: "Answer not found"})
		}
		return internalError(c, err)
	}
	if err := h.Users.PushComment(c.Context(), uid, comment.ID); err != nil {
		return internalError(c, err)
	}

	return c.SendStatus(http.StatusOK)
}

// GET /answer/:aid/comment
func (h *AnswerHandler) ListComments(c *fiber.Ctx) error {
	aid, err := bson.ObjectIDFromHex(c.Params("aid"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid answer id"})
	}

	answer, err := h.Answers.FindByID(c.Context(), aid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Message: "Answer not found"})
		}
		return internalError(c, err)
	}

	commentByID, err := h.Comments.MapByIDs(c.Context(), answer.Comments)
	if err != nil {
		return internalError(c, err)
	}

	comments := make([]dto.Comment, 0, len(answer.Comments))
	for _, cid := range answer.Comments {
		if com, ok := commentByID[cid]; ok {
			t := com.CommentDateTime
			comments = append(comments, dto.Comment{
				ID:              com.ID.Hex(),
				Text:            com.Text,
				User:            com.User,
				CommentDateTime: &t,
			})
		} else {
			// dangling reference left by a partial write
			now := time.Now().UTC()
			comments = append(comments, dto.Comment{
				ID:              cid.Hex(),
				Text:            "Comment not loaded properly",
				User:            "Unknown",
				CommentDateTime: &now,
			})
		}
	}
	return c.JSON(comments)
}

// PATCH /answer/:aid/upvote
func (h *AnswerHandler) Upvote(c *fiber.Ctx) error {
	return h.vote(c, services.VoteUp)
}

// PATCH /answer/:aid/downvote
func (h *AnswerHandler) Downvote(c *fiber.Ctx) error {
	return h.vote(c, services.VoteDown)
}

func (h *AnswerHandler) vote(c *fiber.Ctx, dir services.VoteDirection) error {
	uid, ok := authctx.UserID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Unauthorized"})
	}

	aid, err := bson.ObjectIDFromHex(c.Params("aid"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid answer id"})
	}

	updated, err := services.ApplyVote(c.Context(), h.Answers, aid, uid.Hex(), dir)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Message: "Answer not found"})
		}
		return internalError(c, err)
	}
	return c.JSON(updated)
}
