package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/budgetbuddy/bb_backend/internal/apperrors"
	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	portsrepo "github.com/budgetbuddy/bb_backend/internal/core/ports/repositories"
	portssvc "github.com/budgetbuddy/bb_backend/internal/core/ports/services"
	"github.com/budgetbuddy/bb_backend/internal/core/services"
	"github.com/budgetbuddy/bb_backend/internal/dto"
	"github.com/budgetbuddy/bb_backend/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
	FindTransactionByIDFn func(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)
	FindTransactionsFn    func(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error)
	SaveTransactionFn     func(ctx context.Context, txn domain.Transaction) error
	UpdateTransactionFn   func(ctx context.Context, txn domain.Transaction) error
	DeleteTransactionFn   func(ctx context.Context, userID string, transactionID string) error
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	if m.FindTransactionByIDFn != nil {
		return m.FindTransactionByIDFn(ctx, userID, transactionID)
	}
	args := m.Called(ctx, userID, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	if m.FindTransactionsFn != nil {
		return m.FindTransactionsFn(ctx, userID, filter)
	}
	args := m.Called(ctx, userID, filter)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	if m.SaveTransactionFn != nil {
		return m.SaveTransactionFn(ctx, txn)
	}
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	if m.UpdateTransactionFn != nil {
		return m.UpdateTransactionFn(ctx, txn)
	}
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	if m.DeleteTransactionFn != nil {
		return m.DeleteTransactionFn(ctx, userID, transactionID)
	}
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
	userID   string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Income() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:      decimal.RequireFromString("2500.00"),
		Category:    "Salary",
		Description: "Monthly salary",
		Date:        "2024-05-01",
		Source:      "Employer",
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.UserID == suite.userID &&
			txn.Kind == domain.Income &&
			txn.Amount.Equal(req.Amount) &&
			txn.Source == "Employer" &&
			txn.PaymentMethod == "" &&
			txn.OccurredAt.Format("2006-01-02") == "2024-05-01"
	})).Return(nil).Once()

	created, err := suite.service.CreateTransaction(ctx, suite.userID, domain.Income, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.TransactionID)
	suite.Equal(domain.Income, created.Kind)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ExpenseIgnoresSource() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:        decimal.RequireFromString("42.50"),
		Category:      "Food",
		Description:   "Groceries",
		Date:          "2024-05-02",
		Source:        "should be dropped",
		PaymentMethod: "card",
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Kind == domain.Expense && txn.Source == "" && txn.PaymentMethod == "card"
	})).Return(nil).Once()

	created, err := suite.service.CreateTransaction(ctx, suite.userID, domain.Expense, req)

	suite.Require().NoError(err)
	suite.Equal("", created.Source)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()

	for _, amount := range []string{"0", "-10.00"} {
		req := dto.CreateTransactionRequest{
			Amount:      decimal.RequireFromString(amount),
			Category:    "Food",
			Description: "bad",
			Date:        "2024-05-02",
		}
		created, err := suite.service.CreateTransaction(ctx, suite.userID, domain.Expense, req)
		suite.Require().Error(err)
		suite.Nil(created)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsBadDate() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:      decimal.RequireFromString("10"),
		Category:    "Food",
		Description: "bad date",
		Date:        "05/02/2024",
	}

	created, err := suite.service.CreateTransaction(ctx, suite.userID, domain.Expense, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_NextTokenOnFullPage() {
	ctx := context.Background()

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	rows := make([]domain.Transaction, 3)
	for i := range rows {
		rows[i] = domain.Transaction{
			TransactionID: uuid.NewString(),
			UserID:        suite.userID,
			Kind:          domain.Expense,
			Amount:        decimal.RequireFromString("5"),
			Category:      "Food",
			OccurredAt:    day.AddDate(0, 0, -i),
			AuditFields:   domain.AuditFields{CreatedAt: day},
		}
	}

	// The service asks for limit+1 rows to detect a next page.
	suite.mockRepo.On("FindTransactions", ctx, suite.userID, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.Limit == 3
	})).Return(rows, nil).Once()

	txns, nextToken, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(txns, 2)
	suite.Require().NotEmpty(nextToken)

	occurredAt, createdAt, id, err := pagination.DecodeToken(nextToken)
	suite.Require().NoError(err)
	suite.True(occurredAt.Equal(rows[1].OccurredAt))
	suite.True(createdAt.Equal(rows[1].CreatedAt))
	suite.Equal(rows[1].TransactionID, id)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_NoTokenOnLastPage() {
	ctx := context.Background()
	rows := []domain.Transaction{{TransactionID: uuid.NewString()}}

	suite.mockRepo.On("FindTransactions", ctx, suite.userID, mock.Anything).Return(rows, nil).Once()

	txns, nextToken, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{Limit: 50})

	suite.Require().NoError(err)
	suite.Len(txns, 1)
	suite.Empty(nextToken)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_CursorDecodedIntoFilter() {
	ctx := context.Background()
	occurredAt := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	token := pagination.EncodeToken(occurredAt, createdAt, "txn-42")

	suite.mockRepo.On("FindTransactions", ctx, suite.userID, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.AfterOccurredAt != nil && f.AfterOccurredAt.Equal(occurredAt) &&
			f.AfterCreatedAt != nil && f.AfterCreatedAt.Equal(createdAt) &&
			f.AfterID == "txn-42"
	})).Return([]domain.Transaction{}, nil).Once()

	_, _, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{NextToken: token})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_RejectsBadToken() {
	ctx := context.Background()

	_, _, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{NextToken: "not-a-token"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTransactions")
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_PartialUpdate() {
	ctx := context.Background()
	txnID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID: txnID,
		UserID:        suite.userID,
		Kind:          domain.Expense,
		Amount:        decimal.RequireFromString("15.00"),
		Category:      "Food",
		Description:   "Lunch",
		OccurredAt:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	newAmount := decimal.RequireFromString("18.00")
	suite.mockRepo.On("FindTransactionByID", ctx, suite.userID, txnID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount.Equal(newAmount) && txn.Category == "Food"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, suite.userID, txnID, dto.UpdateTransactionRequest{
		Amount: &newAmount,
	})

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(newAmount))
	suite.Equal("Lunch", updated.Description)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	ctx := context.Background()
	txnID := uuid.NewString()

	suite.mockRepo.On("FindTransactionByID", ctx, suite.userID, txnID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateTransaction(ctx, suite.userID, txnID, dto.UpdateTransactionRequest{})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction() {
	ctx := context.Background()
	txnID := uuid.NewString()

	suite.mockRepo.On("DeleteTransaction", ctx, suite.userID, txnID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, txnID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
