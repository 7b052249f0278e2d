package services

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"

	"qna_workspace/dto"
	"qna_workspace/internal/repository"
	"qna_workspace/model"
)

// PopulateQuestions resolves tag and answer references one level deep and
// converts the documents to their wire shape. Answer comments stay as id
// stubs at this depth. Reference order is preserved; a dangling id turns
// into a stub carrying only the id.
func PopulateQuestions(
	ctx context.Context,
	questions []model.Question,
	answers *repository.AnswerRepository,
	tags *repository.TagRepository,
) ([]dto.Question, error) {
	answerIDs := make([]bson.ObjectID, 0)
	tagIDs := make([]bson.ObjectID, 0)
	for _, q := range questions {
		answerIDs = append(answerIDs, q.Answers...)
		tagIDs = append(tagIDs, q.Tags...)
	}

	answerByID, err := answers.MapByIDs(ctx, answerIDs)
	if err != nil {
		return nil, err
	}
	tagByID, err := tags.MapByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}

	out := make([]dto.Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, buildQuestion(q, answerByID, tagByID))
	}
	return out, nil
}

func buildQuestion(q model.Question, answerByID map[bson.ObjectID]model.Answer, tagByID map[bson.ObjectID]model.Tag) dto.Question {
	dq := dto.Question{
		ID:          q.ID.Hex(),
		Title:       q.Title,
		Text:        q.Text,
		AskedBy:     q.AskedBy,
		AskDateTime: q.AskDateTime,
		Views:       q.Views,
		Answers:     make([]dto.Answer, 0, len(q.Answers)),
		Tags:        make([]dto.Tag, 0, len(q.Tags)),
	}
	for _, aid := range q.Answers {
		if a, ok := answerByID[aid]; ok {
			dq.Answers = append(dq.Answers, BuildAnswer(a))
		} else {
			dq.Answers = append(dq.Answers, dto.Answer{ID: aid.Hex()})
		}
	}
	for _, tid := range q.Tags {
		if t, ok := tagByID[tid]; ok {
			dq.Tags = append(dq.Tags, dto.Tag{ID: t.ID.Hex(), Name: t.Name})
		} else {
			dq.Tags = append(dq.Tags, dto.Tag{ID: tid.Hex()})
		}
	}
	return dq
}

// BuildAnswer converts an answer document to its wire shape with comment
// references left as stubs.
func BuildAnswer(a model.Answer) dto.Answer {
	t := a.AnsDateTime
	da := dto.Answer{
		ID:          a.ID.Hex(),
		QID:         a.QID.Hex(),
		Text:        a.Text,
		AnsBy:       a.AnsBy,
		AnsDateTime: &t,
		Comments:    make([]dto.Comment, 0, len(a.Comments)),
		UpVotes:     a.UpVotes,
		DownVotes:   a.DownVotes,
	}
	if da.UpVotes == nil {
		da.UpVotes = []string{}
	}
	if da.DownVotes == nil {
		da.DownVotes = []string{}
	}
	for _, cid := range a.Comments {
		da.Comments = append(da.Comments, dto.Comment{ID: cid.Hex()})
	}
	return da
}

// SortAnswersNewestFirst orders populated answers by answer time, latest
// first. Stubs without a time sink to the end.
func SortAnswersNewestFirst(answers []dto.Answer) {
	sort.SliceStable(answers, func(i, j int) bool {
		ti, tj := answers[i].AnsDateTime, answers[j].AnsDateTime
		if ti == nil {
			return false
		}
		if tj == nil {
			return true
		}
		return ti.After(*tj)
	})
}
