package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/budgetbuddy/bb_backend/internal/apperrors"
	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	portsrepo "github.com/budgetbuddy/bb_backend/internal/core/ports/repositories"
	portssvc "github.com/budgetbuddy/bb_backend/internal/core/ports/services"
	"github.com/budgetbuddy/bb_backend/internal/dto"
	"github.com/google/uuid"
)

// noteService implements the NoteSvcFacade interface.
type noteService struct {
	BaseService
	noteRepo portsrepo.NoteRepositoryFacade
}

// NewNoteService creates a new note service.
func NewNoteService(repo portsrepo.NoteRepositoryFacade) portssvc.NoteSvcFacade {
	return &noteService{
		noteRepo: repo,
	}
}

// Ensure noteService implements the NoteSvcFacade interface.
var _ portssvc.NoteSvcFacade = (*noteService)(nil)

// CreateNote validates and persists a new note. Title and content are
// trimmed before storage.
func (s *noteService) CreateNote(ctx context.Context, userID string, req dto.CreateNoteRequest) (*domain.Note, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: note title is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	note := domain.Note{
		NoteID:   uuid.NewString(),
		UserID:   userID,
		Title:    title,
		Content:  strings.TrimSpace(req.Content),
		Category: req.Category,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.noteRepo.SaveNote(ctx, note); err != nil {
		s.LogError(ctx, err, "Failed to save note")
		return nil, fmt.Errorf("failed to save note: %w", err)
	}

	s.LogInfo(ctx, "Note created", slog.String("note_id", note.NoteID))
	return &note, nil
}

// GetNoteByID retrieves a single note owned by the user.
func (s *noteService) GetNoteByID(ctx context.Context, userID string, noteID string) (*domain.Note, error) {
	return s.noteRepo.FindNoteByID(ctx, userID, noteID)
}

// ListNotes retrieves the user's notes, newest first.
func (s *noteService) ListNotes(ctx context.Context, userID string, params dto.ListNotesParams) ([]domain.Note, error) {
	notes, err := s.noteRepo.FindNotes(ctx, userID, params.Category, params.Limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notes")
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// SearchNotes retrieves notes matching the query in title or content.
// An empty or blank query returns all notes.
func (s *noteService) SearchNotes(ctx context.Context, userID string, query string) ([]domain.Note, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.ListNotes(ctx, userID, dto.ListNotesParams{})
	}

	notes, err := s.noteRepo.SearchNotes(ctx, userID, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to search notes", slog.String("query", query))
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}
	return notes, nil
}

// UpdateNote applies a partial update to a note owned by the user.
func (s *noteService) UpdateNote(ctx context.Context, userID string, noteID string, req dto.UpdateNoteRequest) (*domain.Note, error) {
	existing, err := s.noteRepo.FindNoteByID(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: note title must not be empty", apperrors.ErrValidation)
		}
		existing.Title = title
	}
	if req.Content != nil {
		existing.Content = strings.TrimSpace(*req.Content)
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	existing.LastUpdatedAt = time.Now().UTC()

	if err := s.noteRepo.UpdateNote(ctx, *existing); err != nil {
		s.LogError(ctx, err, "Failed to update note", slog.String("note_id", noteID))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	s.LogInfo(ctx, "Note updated", slog.String("note_id", noteID))
	return existing, nil
}

// DeleteNote removes a note owned by the user.
func (s *noteService) DeleteNote(ctx context.Context, userID string, noteID string) error {
	if err := s.noteRepo.DeleteNote(ctx, userID, noteID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Note deleted", slog.String("note_id", noteID))
	return nil
}
