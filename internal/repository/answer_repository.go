package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"qna_workspace/model"
)

type AnswerRepository struct {
	col *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *AnswerRepository {
	return &AnswerRepository{col: db.Collection("Answer")}
}

func (r *AnswerRepository) Insert(ctx context.Context, answer model.Answer) (model.Answer, error) {
	if answer.ID.IsZero() {
		answer.ID = bson.NewObjectID()
	}
	if answer.Comments == nil {
		answer.Comments = []bson.ObjectID{}
	}
	if answer.UpVotes == nil {
		answer.UpVotes = []string{}
	}
	if answer.DownVotes == nil {
		answer.DownVotes = []string{}
	}
	if _, err := r.col.InsertOne(ctx, answer); err != nil {
		return model.Answer{}, err
	}
	return answer, nil
}

func (r *AnswerRepository) FindByID(ctx context.Context, id bson.ObjectID) (model.Answer, error) {
	var answer model.Answer
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&answer)
	return answer, err
}

func (r *AnswerRepository) MapByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.Answer, error) {
	out := make(map[bson.ObjectID]model.Answer, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var answers []model.Answer
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, err
	}
	for _, a := range answers {
		out[a.ID] = a
	}
	return out, nil
}

func (r *AnswerRepository) PushComment(ctx context.Context, answerID, commentID bson.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": answerID},
		bson.M{"$push": bson.M{"comments": commentID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetVotes replaces both vote arrays in one write. The surrounding
// read-modify-write is not guarded by a version token; same-user races
// resolve to whichever write lands last.
func (r *AnswerRepository) SetVotes(ctx context.Context, answerID bson.ObjectID, upVotes, downVotes []string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": answerID},
		bson.M{"$set": bson.M{"upVotes": upVotes, "downVotes": downVotes}},
	)
	return err
}
