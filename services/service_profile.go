package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"qna_workspace/dto"
	"qna_workspace/internal/repository"
	"qna_workspace/model"
)

// ProfileRepos bundles the stores the profile walk reads from.
type ProfileRepos struct {
	Questions *repository.QuestionRepository
	Answers   *repository.AnswerRepository
	Comments  *repository.CommentRepository
	Tags      *repository.TagRepository
}

// BuildProfile denormalizes everything the user authored: questions with
// populated tags, answers with populated comments and the parent question
// title, and standalone comments. The reference graph is re-walked on
// every call; nothing is cached.
func BuildProfile(ctx context.Context, user model.User, repos ProfileRepos) (dto.Profile, error) {
	profile := dto.Profile{
		ID:        user.ID.Hex(),
		Username:  user.Username,
		Email:     user.Email,
		Questions: []dto.Question{},
		Answers:   []dto.Answer{},
		Comments:  []dto.Comment{},
	}

	questionByID, err := repos.Questions.MapByIDs(ctx, user.Questions)
	if err != nil {
		return dto.Profile{}, err
	}
	answerByID, err := repos.Answers.MapByIDs(ctx, user.Answers)
	if err != nil {
		return dto.Profile{}, err
	}

	tagIDs := make([]bson.ObjectID, 0)
	for _, q := range questionByID {
		tagIDs = append(tagIDs, q.Tags...)
	}
	tagByID, err := repos.Tags.MapByIDs(ctx, tagIDs)
	if err != nil {
		return dto.Profile{}, err
	}

	commentIDs := append([]bson.ObjectID{}, user.Comments...)
	for _, a := range answerByID {
		commentIDs = append(commentIDs, a.Comments...)
	}
	commentByID, err := repos.Comments.MapByIDs(ctx, commentIDs)
	if err != nil {
		return dto.Profile{}, err
	}

	// question titles for the user's answers
	parentIDs := make([]bson.ObjectID, 0, len(answerByID))
	for _, a := range answerByID {
		parentIDs = append(parentIDs, a.QID)
	}
	parentByID, err := repos.Questions.MapByIDs(ctx, parentIDs)
	if err != nil {
		return dto.Profile{}, err
	}

	for _, qid := range user.Questions {
		q, ok := questionByID[qid]
		if !ok {
			profile.Questions = append(profile.Questions, dto.Question{ID: qid.Hex()})
			continue
		}
		profile.Questions = append(profile.Questions, buildQuestion(q, nil, tagByID))
	}

	for _, aid := range user.Answers {
		a, ok := answerByID[aid]
		if !ok {
			profile.Answers = append(profile.Answers, dto.Answer{ID: aid.Hex()})
			continue
		}
		da := BuildAnswer(a)
		da.Comments = buildComments(a.Comments, commentByID)
		if parent, ok := parentByID[a.QID]; ok {
			da.QuestionTitle = parent.Title
		}
		profile.Answers = append(profile.Answers, da)
	}

	for _, cid := range user.Comments {
		c, ok := commentByID[cid]
		if !ok {
			profile.Comments = append(profile.Comments, dto.Comment{ID: cid.Hex()})
			continue
		}
		profile.Comments = append(profile.Comments, buildComment(c))
	}

	return profile, nil
}

func buildComments(ids []bson.ObjectID, commentByID map[bson.ObjectID]model.Comment) []dto.Comment {
	out := make([]dto.Comment, 0, len(ids))
	for _, cid := range ids {
		if c, ok := commentByID[cid]; ok {
			out = append(out, buildComment(c))
		} else {
			out = append(out, dto.Comment{ID: cid.Hex()})
		}
	}
	return out
}

func buildComment(c model.Comment) dto.Comment {
	t := c.CommentDateTime
	return dto.Comment{
		ID:              c.ID.Hex(),
		Text:            c.Text,
		User:            c.User,
		CommentDateTime: &t,
	}
}
