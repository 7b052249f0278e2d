package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Questions/Answers/Comments are back-references maintained alongside the
// owning collections on every create. The writes are separate, not
// transactional.
type User struct {
	ID        bson.ObjectID   `json:"id"        bson:"_id,omitempty"`
	Username  string          `json:"username"  bson:"username"`
	Email     string          `json:"email"     bson:"email"`
	Password  string          `json:"-"         bson:"password"`
	Questions []bson.ObjectID `json:"questions" bson:"questions"`
	Answers   []bson.ObjectID `json:"answers"   bson:"answers"`
	Comments  []bson.ObjectID `json:"comments"  bson:"comments"`
}
