package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/budgetbuddy/bb_backend/internal/apperrors"
	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	portsrepo "github.com/budgetbuddy/bb_backend/internal/core/ports/repositories"
	portssvc "github.com/budgetbuddy/bb_backend/internal/core/ports/services"
	"github.com/budgetbuddy/bb_backend/internal/dto"
	"github.com/budgetbuddy/bb_backend/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// transactionService implements the TransactionSvcFacade interface.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: repo,
	}
}

// Ensure transactionService implements the TransactionSvcFacade interface.
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates and persists a new transaction of the given kind.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, kind domain.TransactionKind, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, kind)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be a positive number", apperrors.ErrValidation)
	}

	occurredAt, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Kind:          kind,
		Amount:        req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		OccurredAt:    occurredAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	switch kind {
	case domain.Income:
		txn.Source = req.Source
	case domain.Expense:
		txn.PaymentMethod = req.PaymentMethod
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(kind)))
	return &txn, nil
}

// GetTransactionByID retrieves a single transaction owned by the user.
func (s *transactionService) GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// ListTransactions retrieves a filtered page of the user's transactions and
// an opaque cursor for the next page.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, string, error) {
	filter, err := buildFilter(params)
	if err != nil {
		return nil, "", err
	}

	// Fetch one extra row to know whether a next page exists.
	requested := filter.Limit
	if requested > 0 {
		filter.Limit = requested + 1
	}

	txns, err := s.transactionRepo.FindTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, "", fmt.Errorf("failed to list transactions: %w", err)
	}

	nextToken := ""
	if requested > 0 && len(txns) > requested {
		txns = txns[:requested]
		last := txns[len(txns)-1]
		nextToken = pagination.EncodeToken(last.OccurredAt, last.CreatedAt, last.TransactionID)
	}

	return txns, nextToken, nil
}

// UpdateTransaction applies a partial update to a transaction owned by the user.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Kind != nil {
		if !req.Kind.IsValid() {
			return nil, fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, *req.Kind)
		}
		existing.Kind = *req.Kind
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be a positive number", apperrors.ErrValidation)
		}
		existing.Amount = *req.Amount
	}
	if req.Category != nil {
		if *req.Category == "" {
			return nil, fmt.Errorf("%w: category must not be empty", apperrors.ErrValidation)
		}
		existing.Category = *req.Category
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Date != nil {
		occurredAt, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", apperrors.ErrValidation)
		}
		existing.OccurredAt = occurredAt
	}
	if req.Source != nil {
		existing.Source = *req.Source
	}
	if req.PaymentMethod != nil {
		existing.PaymentMethod = *req.PaymentMethod
	}
	existing.LastUpdatedAt = time.Now().UTC()

	if err := s.transactionRepo.UpdateTransaction(ctx, *existing); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return existing, nil
}

// DeleteTransaction removes a transaction owned by the user.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// buildFilter translates list query parameters into a repository filter.
func buildFilter(params dto.ListTransactionsParams) (portsrepo.TransactionFilter, error) {
	filter := portsrepo.TransactionFilter{
		Category: params.Category,
		Limit:    params.Limit,
	}

	if params.Kind != "" {
		kind := domain.TransactionKind(params.Kind)
		if !kind.IsValid() {
			return portsrepo.TransactionFilter{}, fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, params.Kind)
		}
		filter.Kind = kind
	}
	if params.StartDate != "" {
		start, err := time.Parse(dateLayout, params.StartDate)
		if err != nil {
			return portsrepo.TransactionFilter{}, fmt.Errorf("%w: invalid startDate format, use YYYY-MM-DD", apperrors.ErrValidation)
		}
		filter.StartDate = &start
	}
	if params.EndDate != "" {
		end, err := time.Parse(dateLayout, params.EndDate)
		if err != nil {
			return portsrepo.TransactionFilter{}, fmt.Errorf("%w: invalid endDate format, use YYYY-MM-DD", apperrors.ErrValidation)
		}
		filter.EndDate = &end
	}
	if params.NextToken != "" {
		occurredAt, createdAt, id, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return portsrepo.TransactionFilter{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		filter.AfterOccurredAt = &occurredAt
		filter.AfterCreatedAt = &createdAt
		filter.AfterID = id
	}

	return filter, nil
}
