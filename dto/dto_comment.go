package dto

import "time"

// Comment with only ID set is an unpopulated reference stub.
type Comment struct {
	ID              string     `json:"_id,omitempty"`
	Text            string     `json:"text,omitempty"`
	User            string     `json:"user,omitempty"`
	CommentDateTime *time.Time `json:"comment_date_time,omitempty"`
}

type CreateCommentReq struct {
	Text            string `json:"text"`
	CommentDateTime string `json:"comment_date_time"`
}
