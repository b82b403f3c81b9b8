package services

import (
	"context"

	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	"github.com/budgetbuddy/bb_backend/internal/dto"
)

// TransactionSvcFacade defines operations for managing a user's transactions.
// Every operation is scoped to the authenticated user; ownership of other
// users' records is not expressible through this interface.
type TransactionSvcFacade interface {
	// CreateTransaction persists a new transaction of the given kind.
	CreateTransaction(ctx context.Context, userID string, kind domain.TransactionKind, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// GetTransactionByID retrieves a single transaction owned by the user.
	GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered page of the user's transactions
	// plus an opaque cursor for the next page (empty when exhausted).
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, string, error)

	// UpdateTransaction applies a partial update to a transaction.
	UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}
