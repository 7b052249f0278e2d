package dto

type Tag struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}

// TagCount is one row of the tag usage aggregation.
type TagCount struct {
	Name string `json:"name"`
	Qcnt int    `json:"qcnt"`
}
