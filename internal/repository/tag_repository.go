package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"qna_workspace/model"
)

type TagRepository struct {
	col *mongo.Collection
}

func NewTagRepository(db *mongo.Database) *TagRepository {
	return &TagRepository{col: db.Collection("Tag")}
}

// FindOrCreateMany resolves tag names to documents, creating any that do
// not exist yet. Names match exactly as stored; tags are never deleted.
func (r *TagRepository) FindOrCreateMany(ctx context.Context, names []string) ([]model.Tag, error) {
	tags := make([]model.Tag, 0, len(names))
	for _, name := range names {
		var tag model.Tag
		err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&tag)
		if err == nil {
			tags = append(tags, tag)
			continue
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		tag = model.Tag{ID: bson.NewObjectID(), Name: name}
		if _, err := r.col.InsertOne(ctx, tag); err != nil {
			// lost the race against a concurrent create; re-read
			var we mongo.WriteException
			if errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000 {
				if err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&tag); err != nil {
					return nil, err
				}
				tags = append(tags, tag)
				continue
			}
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// ValidateTags reports whether every id references an existing tag.
func (r *TagRepository) ValidateTags(ctx context.Context, ids []bson.ObjectID) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return false, err
	}
	return count == int64(len(ids)), nil
}

// MapByIDs loads the given tags keyed by id. Missing ids are simply absent.
func (r *TagRepository) MapByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.Tag, error) {
	out := make(map[bson.ObjectID]model.Tag, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tags []model.Tag
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	for _, t := range tags {
		out[t.ID] = t
	}
	return out, nil
}
