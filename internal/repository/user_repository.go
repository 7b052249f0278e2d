package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"qna_workspace/model"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("User")}
}

func (r *UserRepository) Insert(ctx context.Context, u model.User) (model.User, error) {
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	if u.Questions == nil {
		u.Questions = []bson.ObjectID{}
	}
	if u.Answers == nil {
		u.Answers = []bson.ObjectID{}
	}
	if u.Comments == nil {
		u.Comments = []bson.ObjectID{}
	}
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	return u, err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	return u, err
}

// FindByUsernameOrEmail backs the duplicate-signup check.
func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, bson.M{
		"$or": []bson.M{{"username": username}, {"email": email}},
	}).Decode(&u)
	return u, err
}

func (r *UserRepository) PushQuestion(ctx context.Context, userID, questionID bson.ObjectID) error {
	return r.push(ctx, userID, "questions", questionID)
}

func (r *UserRepository) PushAnswer(ctx context.Context, userID, answerID bson.ObjectID) error {
	return r.push(ctx, userID, "answers", answerID)
}

func (r *UserRepository) PushComment(ctx context.Context, userID, commentID bson.ObjectID) error {
	return r.push(ctx, userID, "comments", commentID)
}

func (r *UserRepository) push(ctx context.Context, userID bson.ObjectID, field string, id bson.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{field: id}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IsDuplicateKey reports whether err is a unique index violation.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
