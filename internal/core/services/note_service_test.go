package services_test

import (
	"context"
	"testing"

	"github.com/budgetbuddy/bb_backend/internal/apperrors"
	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	portssvc "github.com/budgetbuddy/bb_backend/internal/core/ports/services"
	"github.com/budgetbuddy/bb_backend/internal/core/services"
	"github.com/budgetbuddy/bb_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock NoteRepository ---
type MockNoteRepository struct {
	mock.Mock
	FindNoteByIDFn func(ctx context.Context, userID string, noteID string) (*domain.Note, error)
	FindNotesFn    func(ctx context.Context, userID string, category string, limit int) ([]domain.Note, error)
	SearchNotesFn  func(ctx context.Context, userID string, query string) ([]domain.Note, error)
	SaveNoteFn     func(ctx context.Context, note domain.Note) error
	UpdateNoteFn   func(ctx context.Context, note domain.Note) error
	DeleteNoteFn   func(ctx context.Context, userID string, noteID string) error
}

func (m *MockNoteRepository) FindNoteByID(ctx context.Context, userID string, noteID string) (*domain.Note, error) {
	if m.FindNoteByIDFn != nil {
		return m.FindNoteByIDFn(ctx, userID, noteID)
	}
	args := m.Called(ctx, userID, noteID)
	var note *domain.Note
	if args.Get(0) != nil {
		note = args.Get(0).(*domain.Note)
	}
	return note, args.Error(1)
}

func (m *MockNoteRepository) FindNotes(ctx context.Context, userID string, category string, limit int) ([]domain.Note, error) {
	if m.FindNotesFn != nil {
		return m.FindNotesFn(ctx, userID, category, limit)
	}
	args := m.Called(ctx, userID, category, limit)
	var notes []domain.Note
	if args.Get(0) != nil {
		notes = args.Get(0).([]domain.Note)
	}
	return notes, args.Error(1)
}

func (m *MockNoteRepository) SearchNotes(ctx context.Context, userID string, query string) ([]domain.Note, error) {
	if m.SearchNotesFn != nil {
		return m.SearchNotesFn(ctx, userID, query)
	}
	args := m.Called(ctx, userID, query)
	var notes []domain.Note
	if args.Get(0) != nil {
		notes = args.Get(0).([]domain.Note)
	}
	return notes, args.Error(1)
}

func (m *MockNoteRepository) SaveNote(ctx context.Context, note domain.Note) error {
	if m.SaveNoteFn != nil {
		return m.SaveNoteFn(ctx, note)
	}
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) UpdateNote(ctx context.Context, note domain.Note) error {
	if m.UpdateNoteFn != nil {
		return m.UpdateNoteFn(ctx, note)
	}
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) DeleteNote(ctx context.Context, userID string, noteID string) error {
	if m.DeleteNoteFn != nil {
		return m.DeleteNoteFn(ctx, userID, noteID)
	}
	args := m.Called(ctx, userID, noteID)
	return args.Error(0)
}

// --- Test Suite ---
type NoteServiceTestSuite struct {
	suite.Suite
	mockRepo *MockNoteRepository
	service  portssvc.NoteSvcFacade
	userID   string
}

func (suite *NoteServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockNoteRepository)
	suite.service = services.NewNoteService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

func (suite *NoteServiceTestSuite) TestCreateNote_TrimsTitleAndContent() {
	ctx := context.Background()
	req := dto.CreateNoteRequest{
		Title:    "  Shopping list  ",
		Content:  "  milk, eggs  ",
		Category: "personal",
	}

	suite.mockRepo.On("SaveNote", ctx, mock.MatchedBy(func(note domain.Note) bool {
		return note.Title == "Shopping list" && note.Content == "milk, eggs" && note.UserID == suite.userID
	})).Return(nil).Once()

	created, err := suite.service.CreateNote(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal("Shopping list", created.Title)
	suite.NotEmpty(created.NoteID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NoteServiceTestSuite) TestCreateNote_RejectsBlankTitle() {
	ctx := context.Background()
	req := dto.CreateNoteRequest{Title: "   ", Content: "body", Category: "personal"}

	created, err := suite.service.CreateNote(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveNote")
}

func (suite *NoteServiceTestSuite) TestSearchNotes_BlankQueryListsAll() {
	ctx := context.Background()
	notes := []domain.Note{{NoteID: uuid.NewString(), Title: "a"}}

	suite.mockRepo.On("FindNotes", ctx, suite.userID, "", 0).Return(notes, nil).Once()

	found, err := suite.service.SearchNotes(ctx, suite.userID, "   ")

	suite.Require().NoError(err)
	suite.Equal(notes, found)
	suite.mockRepo.AssertNotCalled(suite.T(), "SearchNotes")
}

func (suite *NoteServiceTestSuite) TestSearchNotes_DelegatesQuery() {
	ctx := context.Background()
	notes := []domain.Note{{NoteID: uuid.NewString(), Title: "Groceries"}}

	suite.mockRepo.On("SearchNotes", ctx, suite.userID, "grocer").Return(notes, nil).Once()

	found, err := suite.service.SearchNotes(ctx, suite.userID, " grocer ")

	suite.Require().NoError(err)
	suite.Equal(notes, found)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NoteServiceTestSuite) TestUpdateNote_PartialUpdate() {
	ctx := context.Background()
	noteID := uuid.NewString()
	existing := &domain.Note{NoteID: noteID, UserID: suite.userID, Title: "Old", Content: "body", Category: "personal"}
	newContent := "  new body  "

	suite.mockRepo.On("FindNoteByID", ctx, suite.userID, noteID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateNote", ctx, mock.MatchedBy(func(note domain.Note) bool {
		return note.Title == "Old" && note.Content == "new body"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateNote(ctx, suite.userID, noteID, dto.UpdateNoteRequest{Content: &newContent})

	suite.Require().NoError(err)
	suite.Equal("new body", updated.Content)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NoteServiceTestSuite) TestUpdateNote_RejectsBlankTitle() {
	ctx := context.Background()
	noteID := uuid.NewString()
	existing := &domain.Note{NoteID: noteID, UserID: suite.userID, Title: "Old"}
	blank := " "

	suite.mockRepo.On("FindNoteByID", ctx, suite.userID, noteID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateNote(ctx, suite.userID, noteID, dto.UpdateNoteRequest{Title: &blank})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateNote")
}

func (suite *NoteServiceTestSuite) TestDeleteNote_NotFound() {
	ctx := context.Background()
	noteID := uuid.NewString()

	suite.mockRepo.On("DeleteNote", ctx, suite.userID, noteID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteNote(ctx, suite.userID, noteID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestNoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NoteServiceTestSuite))
}
