package dto

// Profile is the fully denormalized snapshot of everything a user authored.
// It is rebuilt from the reference graph on every request.
type Profile struct {
	ID        string     `json:"_id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Questions []Question `json:"questions"`
	Answers   []Answer   `json:"answers"`
	Comments  []Comment  `json:"comments"`
}
