package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Question struct {
	ID          bson.ObjectID   `json:"id"            bson:"_id,omitempty"`
	Title       string          `json:"title"         bson:"title"`
	Text        string          `json:"text"          bson:"text"`
	AskedBy     string          `json:"askedBy"       bson:"asked_by"`
	AskDateTime time.Time       `json:"askDateTime"   bson:"ask_date_time"`
	Views       int             `json:"views"         bson:"views"`
	Answers     []bson.ObjectID `json:"answers"       bson:"answers"`
	Tags        []bson.ObjectID `json:"tags"          bson:"tags"`
}
