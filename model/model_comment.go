package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comments are append-only; there is no edit or delete path.
type Comment struct {
	ID              bson.ObjectID `json:"id"              bson:"_id,omitempty"`
	Text            string        `json:"text"            bson:"text"`
	User            string        `json:"user"            bson:"user"`
	CommentDateTime time.Time     `json:"commentDateTime" bson:"comment_date_time"`
}
