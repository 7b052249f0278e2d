package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qna_workspace/dto"
)

// Validation failures must reject the request before any store is touched,
// so these apps run with zero-value handlers and a stubbed identity.
func newQuestionTestApp(authenticated bool) *fiber.App {
	app := fiber.New()
	h := &QuestionHandler{}
	app.Post("/question/addQuestion", func(c *fiber.Ctx) error {
		if authenticated {
			c.Locals("user_id", "65f0c2b7a1b2c3d4e5f60718")
			c.Locals("username", "alice")
		}
		return h.Add(c)
	})
	return app
}

func TestAddQuestionRequiresIdentity(t *testing.T) {
	app := newQuestionTestApp(false)

	req := httptest.NewRequest(http.MethodPost, "/question/addQuestion", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAddQuestionValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "empty body",
			body: `{}`,
		},
		{
			name: "missing title",
			body: `{"text":"t","tags":["go"],"ask_date_time":"2024-03-01T12:00:00Z"}`,
		},
		{
			name: "missing text",
			body: `{"title":"t","tags":["go"],"ask_date_time":"2024-03-01T12:00:00Z"}`,
		},
		{
			name: "missing ask date",
			body: `{"title":"t","text":"x","tags":["go"]}`,
		},
		{
			name: "malformed ask date",
			body: `{"title":"t","text":"x","tags":["go"],"ask_date_time":"yesterday"}`,
		},
		{
			name: "tags not an array",
			body: `{"title":"t","text":"x","tags":5,"ask_date_time":"2024-03-01T12:00:00Z"}`,
		},
	}

	app := newQuestionTestApp(true)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/question/addQuestion", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var verr dto.ValidationError
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&verr))
			assert.Equal(t, "Validation failed", verr.Message)
			require.NotEmpty(t, verr.Errors)
			assert.Equal(t, "type.openapi.validation", verr.Errors[0].ErrorCode)
		})
	}
}

func TestGetQuestionByIDRejectsBadHex(t *testing.T) {
	app := fiber.New()
	h := &QuestionHandler{}
	app.Get("/question/getQuestionById/:qid", h.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/question/getQuestionById/zzz", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
