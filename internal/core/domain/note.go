package domain

// Note is a free-form user note, optionally categorised.
type Note struct {
	NoteID   string `json:"id"` // Primary Key (UUID)
	UserID   string `json:"-"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	AuditFields
}
