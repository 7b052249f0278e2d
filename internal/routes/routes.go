package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"qna_workspace/configs"
	"qna_workspace/internal/handlers"
	"qna_workspace/internal/middleware"
	"qna_workspace/internal/repository"
	"qna_workspace/services"
)

type Deps struct {
	DB  *mongo.Database
	Cfg configs.Config
}

func Register(app *fiber.App, deps Deps) {
	questions := repository.NewQuestionRepository(deps.DB)
	answers := repository.NewAnswerRepository(deps.DB)
	comments := repository.NewCommentRepository(deps.DB)
	tags := repository.NewTagRepository(deps.DB)
	users := repository.NewUserRepository(deps.DB)

	auth := middleware.AuthRequired(deps.Cfg.JWTSecret)

	QuestionRoutes(app, auth, &handlers.QuestionHandler{
		Questions: questions,
		Answers:   answers,
		Tags:      tags,
		Users:     users,
	})
	AnswerRoutes(app, auth, &handlers.AnswerHandler{
		Answers:   answers,
		Questions: questions,
		Comments:  comments,
		Users:     users,
	})
	TagRoutes(app, &handlers.TagHandler{Questions: questions})
	UserRoutes(app, auth, &handlers.UserHandler{
		Users: users,
		Profile: services.ProfileRepos{
			Questions: questions,
			Answers:   answers,
			Comments:  comments,
			Tags:      tags,
		},
		JWTSecret:     deps.Cfg.JWTSecret,
		SecureCookies: deps.Cfg.SecureCookies,
	})

	app.Get("/whoami", auth, handlers.Whoami)
}
