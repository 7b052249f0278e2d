package dto

import (
	"encoding/json"
	"time"
)

// Question is the wire shape the client consumes. Answers and Tags are
// populated one level deep on list/detail endpoints; deeper references
// (answer comments) stay as bare ids there.
type Question struct {
	ID          string    `json:"_id,omitempty"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	AskedBy     string    `json:"asked_by"`
	AskDateTime time.Time `json:"ask_date_time"`
	Views       int       `json:"views"`
	Answers     []Answer  `json:"answers"`
	Tags        []Tag     `json:"tags"`
}

type CreateQuestionReq struct {
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	Tags        []TagName `json:"tags"`
	AskDateTime string    `json:"ask_date_time"`
}

// TagName accepts either a plain string or an object {"name": "..."} in the
// request body; older clients sent full tag objects.
type TagName struct {
	Name string
}

func (t *TagName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.Name = s
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	t.Name = obj.Name
	return nil
}
