package dto

import "time"

// Answer mirrors the Answer document on the wire. When an answer rides
// inside a populated question its comments are id-only Comment stubs.
// QuestionTitle is filled only where the parent question got populated
// (profile view).
type Answer struct {
	ID            string     `json:"_id,omitempty"`
	QID           string     `json:"qid,omitempty"`
	Text          string     `json:"text,omitempty"`
	AnsBy         string     `json:"ans_by,omitempty"`
	AnsDateTime   *time.Time `json:"ans_date_time,omitempty"`
	Comments      []Comment  `json:"comments,omitempty"`
	UpVotes       []string   `json:"upVotes"`
	DownVotes     []string   `json:"downVotes"`
	QuestionTitle string     `json:"questionTitle,omitempty"`
}

type CreateAnswerReq struct {
	QID string       `json:"qid"`
	Ans CreateAnswer `json:"ans"`
}

type CreateAnswer struct {
	Text        string `json:"text"`
	AnsDateTime string `json:"ans_date_time"`
}
