package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/budgetbuddy/bb_backend/internal/apperrors"
	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	portsrepo "github.com/budgetbuddy/bb_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, user_id, kind, amount, category, description, source, payment_method, occurred_at, created_at, last_updated_at`

// TransactionRepository provides PostgreSQL persistence for transactions.
type TransactionRepository struct {
	db *pgxpool.Pool
}

// NewTransactionRepository creates a new transaction repository.
func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Ensure TransactionRepository implements the facade.
var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
        INSERT INTO transactions (` + transactionColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		txn.TransactionID,
		txn.UserID,
		txn.Kind,
		txn.Amount,
		txn.Category,
		txn.Description,
		txn.Source,
		txn.PaymentMethod,
		txn.OccurredAt,
		txn.CreatedAt,
		txn.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE user_id = $1 AND transaction_id = $2;
    `
	row := r.db.QueryRow(ctx, query, userID, transactionID)
	txn, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID: %w", err)
	}
	return txn, nil
}

func (r *TransactionRepository) FindTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`)
	args := []interface{}{userID}

	if filter.Kind != "" {
		args = append(args, filter.Kind)
		sb.WriteString(` AND kind = $` + strconv.Itoa(len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		sb.WriteString(` AND category = $` + strconv.Itoa(len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		sb.WriteString(` AND occurred_at >= $` + strconv.Itoa(len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		sb.WriteString(` AND occurred_at <= $` + strconv.Itoa(len(args)))
	}

	// Cursor condition mirroring the sort order: rows strictly after the
	// cursor position in (occurred_at desc, created_at desc, id asc).
	if filter.AfterOccurredAt != nil && filter.AfterCreatedAt != nil {
		args = append(args, *filter.AfterOccurredAt)
		occArg := len(args)
		args = append(args, *filter.AfterCreatedAt)
		createdArg := len(args)
		args = append(args, filter.AfterID)
		idArg := len(args)
		sb.WriteString(fmt.Sprintf(
			` AND (occurred_at < $%d OR (occurred_at = $%d AND created_at < $%d) OR (occurred_at = $%d AND created_at = $%d AND transaction_id > $%d))`,
			occArg, occArg, createdArg, occArg, createdArg, idArg,
		))
	}

	sb.WriteString(` ORDER BY occurred_at DESC, created_at DESC, transaction_id ASC`)
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(` LIMIT $` + strconv.Itoa(len(args)))
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, *txn)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return transactions, nil
}

func (r *TransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
        UPDATE transactions
        SET kind = $1, amount = $2, category = $3, description = $4, source = $5, payment_method = $6, occurred_at = $7, last_updated_at = $8
        WHERE user_id = $9 AND transaction_id = $10;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		txn.Kind,
		txn.Amount,
		txn.Category,
		txn.Description,
		txn.Source,
		txn.PaymentMethod,
		txn.OccurredAt,
		txn.LastUpdatedAt,
		txn.UserID,
		txn.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	query := `
        DELETE FROM transactions
        WHERE user_id = $1 AND transaction_id = $2;
    `
	cmdTag, err := r.db.Exec(ctx, query, userID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// scanTransaction reads one transaction from a row.
func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.UserID,
		&txn.Kind,
		&txn.Amount,
		&txn.Category,
		&txn.Description,
		&txn.Source,
		&txn.PaymentMethod,
		&txn.OccurredAt,
		&txn.CreatedAt,
		&txn.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}
