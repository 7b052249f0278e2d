package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UpVotes/DownVotes hold user id hex strings. A user id lives in at most
// one of the two arrays at a time.
type Answer struct {
	ID          bson.ObjectID   `json:"id"           bson:"_id,omitempty"`
	QID         bson.ObjectID   `json:"qid"          bson:"qid"`
	Text        string          `json:"text"         bson:"text"`
	AnsBy       string          `json:"ansBy"        bson:"ans_by"`
	AnsDateTime time.Time       `json:"ansDateTime"  bson:"ans_date_time"`
	Comments    []bson.ObjectID `json:"comments"     bson:"comments"`
	UpVotes     []string        `json:"upVotes"      bson:"upVotes"`
	DownVotes   []string        `json:"downVotes"    bson:"downVotes"`
}
