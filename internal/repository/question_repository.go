package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"qna_workspace/dto"
	"qna_workspace/model"
)

type QuestionRepository struct {
	col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{col: db.Collection("Question")}
}

func (r *QuestionRepository) Insert(ctx context.Context, q model.Question) (model.Question, error) {
	if q.ID.IsZero() {
		q.ID = bson.NewObjectID()
	}
	if q.Answers == nil {
		q.Answers = []bson.ObjectID{}
	}
	if q.Tags == nil {
		q.Tags = []bson.ObjectID{}
	}
	if _, err := r.col.InsertOne(ctx, q); err != nil {
		return model.Question{}, err
	}
	return q, nil
}

// ListNewest returns all questions, latest asked first.
func (r *QuestionRepository) ListNewest(ctx context.Context) ([]model.Question, error) {
	return r.list(ctx, bson.M{}, bson.D{{Key: "ask_date_time", Value: -1}})
}

// ListUnanswered returns questions with no answers, latest asked first.
func (r *QuestionRepository) ListUnanswered(ctx context.Context) ([]model.Question, error) {
	return r.list(ctx, bson.M{"answers": bson.M{"$size": 0}}, bson.D{{Key: "ask_date_time", Value: -1}})
}

// ListAll returns every question in collection order; the active ordering
// is computed in memory on top of this.
func (r *QuestionRepository) ListAll(ctx context.Context) ([]model.Question, error) {
	return r.list(ctx, bson.M{}, nil)
}

func (r *QuestionRepository) list(ctx context.Context, filter bson.M, sort bson.D) ([]model.Question, error) {
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := []model.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// FindByIDAndIncrementViews bumps the view counter atomically and returns
// the document after the increment.
func (r *QuestionRepository) FindByIDAndIncrementViews(ctx context.Context, id bson.ObjectID) (model.Question, error) {
	var q model.Question
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&q)
	return q, err
}

func (r *QuestionRepository) FindByID(ctx context.Context, id bson.ObjectID) (model.Question, error) {
	var q model.Question
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&q)
	return q, err
}

func (r *QuestionRepository) MapByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.Question, error) {
	out := make(map[bson.ObjectID]model.Question, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []model.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	for _, q := range questions {
		out[q.ID] = q
	}
	return out, nil
}

func (r *QuestionRepository) PushAnswer(ctx context.Context, questionID, answerID bson.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": questionID},
		bson.M{"$push": bson.M{"answers": answerID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// CountByTag aggregates how many questions carry each tag.
func (r *QuestionRepository) CountByTag(ctx context.Context) ([]dto.TagCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$tags"}},
		{{Key: "$group", Value: bson.M{"_id": "$tags", "qcnt": bson.M{"$sum": 1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "Tag",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "tag",
		}}},
		{{Key: "$unwind", Value: "$tag"}},
		{{Key: "$project", Value: bson.M{
			"_id":  0,
			"name": "$tag.name",
			"qcnt": 1,
		}}},
	}
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := []dto.TagCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
