package repositories

import (
	"context"

	"github.com/budgetbuddy/bb_backend/internal/core/domain"
)

// NoteReader defines read operations for note data.
type NoteReader interface {
	// FindNoteByID retrieves a single note owned by the user.
	FindNoteByID(ctx context.Context, userID string, noteID string) (*domain.Note, error)

	// FindNotes retrieves the user's notes, newest first, optionally filtered
	// by category. A limit of zero means no cap.
	FindNotes(ctx context.Context, userID string, category string, limit int) ([]domain.Note, error)

	// SearchNotes retrieves the user's notes whose title or content contains
	// the query, case-insensitively, newest first.
	SearchNotes(ctx context.Context, userID string, query string) ([]domain.Note, error)
}

// NoteWriter defines write operations for note data.
type NoteWriter interface {
	// SaveNote persists a new note.
	SaveNote(ctx context.Context, note domain.Note) error

	// UpdateNote updates an existing note owned by the user.
	UpdateNote(ctx context.Context, note domain.Note) error

	// DeleteNote removes a note owned by the user.
	DeleteNote(ctx context.Context, userID string, noteID string) error
}

// NoteRepositoryFacade combines all note repository interfaces.
type NoteRepositoryFacade interface {
	NoteReader
	NoteWriter
}
