package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"qna_workspace/model"
)

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection("Comment")}
}

func (r *CommentRepository) Insert(ctx context.Context, text, user string, at time.Time) (model.Comment, error) {
	comment := model.Comment{
		ID:              bson.NewObjectID(),
		Text:            text,
		User:            user,
		CommentDateTime: at,
	}
	if _, err := r.col.InsertOne(ctx, comment); err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

func (r *CommentRepository) MapByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.Comment, error) {
	out := make(map[bson.ObjectID]model.Comment, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []model.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	for _, c := range comments {
		out[c.ID] = c
	}
	return out, nil
}
