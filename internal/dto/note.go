package dto

import (
	"time"

	"github.com/budgetbuddy/bb_backend/internal/core/domain"
)

// CreateNoteRequest defines the body for creating a note.
type CreateNoteRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// UpdateNoteRequest defines the data allowed when editing a note.
// Pointers differentiate omitted fields from zero values.
type UpdateNoteRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

// ListNotesParams defines query parameters for listing notes.
type ListNotesParams struct {
	Category string `form:"category"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

// NoteResponse is the wire representation of a note.
type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToNoteResponse converts a domain note to its wire shape.
func ToNoteResponse(note domain.Note) NoteResponse {
	return NoteResponse{
		ID:        note.NoteID,
		Title:     note.Title,
		Content:   note.Content,
		Category:  note.Category,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.LastUpdatedAt,
	}
}

// ToNoteResponses converts a slice of domain notes.
func ToNoteResponses(notes []domain.Note) []NoteResponse {
	out := make([]NoteResponse, len(notes))
	for i, note := range notes {
		out[i] = ToNoteResponse(note)
	}
	return out
}
