package handlers

import (
	"net/http"

	portssvc "github.com/budgetbuddy/bb_backend/internal/core/ports/services"
	"github.com/budgetbuddy/bb_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// noteHandler handles HTTP requests related to notes.
type noteHandler struct {
	noteService portssvc.NoteSvcFacade
}

// newNoteHandler creates a new noteHandler.
func newNoteHandler(ns portssvc.NoteSvcFacade) *noteHandler {
	return &noteHandler{
		noteService: ns,
	}
}

// registerNoteRoutes registers all note-related routes.
func registerNoteRoutes(rg *gin.RouterGroup, noteService portssvc.NoteSvcFacade) {
	h := newNoteHandler(noteService)

	notes := rg.Group("/notes")
	{
		notes.GET("", h.listNotes)
		notes.POST("", h.createNote)
		notes.GET("/search", h.searchNotes)
		notes.GET("/:id", h.getNote)
		notes.PUT("/:id", h.updateNote)
		notes.DELETE("/:id", h.deleteNote)
	}
}

// listNotes godoc
// @Summary List notes
// @Description Retrieves the user's notes, newest first
// @Tags notes
// @Produce json
// @Param category query string false "Filter by category"
// @Param limit query int false "Maximum number of notes"
// @Success 200 {object} dto.Envelope{data=[]dto.NoteResponse}
// @Failure 401 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /notes [get]
func (h *noteHandler) listNotes(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.ListNotesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	notes, err := h.noteService.ListNotes(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list notes")
		return
	}
	c.JSON(http.StatusOK, dto.OKCount(dto.ToNoteResponses(notes), len(notes)))
}

// searchNotes godoc
// @Summary Search notes
// @Description Retrieves notes whose title or content contains the query, case-insensitively
// @Tags notes
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} dto.Envelope{data=[]dto.NoteResponse}
// @Failure 401 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /notes/search [get]
func (h *noteHandler) searchNotes(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	notes, err := h.noteService.SearchNotes(c.Request.Context(), userID, c.Query("q"))
	if err != nil {
		respondError(c, err, "Failed to search notes")
		return
	}
	c.JSON(http.StatusOK, dto.OKCount(dto.ToNoteResponses(notes), len(notes)))
}

// createNote godoc
// @Summary Create a note
// @Description Persists a new note for the user
// @Tags notes
// @Accept json
// @Produce json
// @Param note body dto.CreateNoteRequest true "Note details"
// @Success 201 {object} dto.Envelope{data=dto.NoteResponse}
// @Failure 400 {object} dto.ErrorEnvelope
// @Failure 401 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /notes [post]
func (h *noteHandler) createNote(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.noteService.CreateNote(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create note")
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToNoteResponse(*created)))
}

// getNote godoc
// @Summary Get a note
// @Description Retrieves a single note owned by the user
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} dto.Envelope{data=dto.NoteResponse}
// @Failure 401 {object} dto.ErrorEnvelope
// @Failure 404 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /notes/{id} [get]
func (h *noteHandler) getNote(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	note, err := h.noteService.GetNoteByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Note not found")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToNoteResponse(*note)))
}

// updateNote godoc
// @Summary Update a note
// @Description Applies a partial update to a note owned by the user
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param note body dto.UpdateNoteRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.NoteResponse}
// @Failure 400 {object} dto.ErrorEnvelope
// @Failure 401 {object} dto.ErrorEnvelope
// @Failure 404 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /notes/{id} [put]
func (h *noteHandler) updateNote(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.noteService.UpdateNote(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Note not found")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToNoteResponse(*updated)))
}

// deleteNote godoc
// @Summary Delete a note
// @Description Removes a note owned by the user
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.ErrorEnvelope
// @Failure 404 {object} dto.ErrorEnvelope
// @Security BearerAuth
// @Router /notes/{id} [delete]
func (h *noteHandler) deleteNote(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.noteService.DeleteNote(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Note not found")
		return
	}
	c.JSON(http.StatusOK, dto.OK(gin.H{"message": "Note deleted"}))
}
