package repositories

import (
	"context"
	"time"

	"github.com/budgetbuddy/bb_backend/internal/core/domain"
)

// TransactionFilter narrows a transaction listing. All fields are optional;
// the zero value means "all transactions for the user".
type TransactionFilter struct {
	Kind      domain.TransactionKind // empty means both kinds
	Category  string
	StartDate *time.Time
	EndDate   *time.Time

	// Limit caps the number of rows returned. Zero means no cap.
	Limit int

	// Cursor fields resume a previous listing; all three are set together.
	// They mirror the ordering (occurred_at desc, created_at desc, id asc).
	AfterOccurredAt *time.Time
	AfterCreatedAt  *time.Time
	AfterID         string
}

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction owned by the user.
	FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// FindTransactions retrieves the user's transactions matching the filter,
	// ordered by occurred_at desc, created_at desc, transaction_id asc.
	FindTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates an existing transaction owned by the user.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction owned by the user.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
