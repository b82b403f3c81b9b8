package dto

import (
	"time"

	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for transaction dates.
const dateLayout = "2006-01-02"

// CreateTransactionRequest defines the body for creating a transaction.
// The kind is fixed by the route (/transactions/income vs /expenses), not by
// the body. Amount positivity is enforced by the service since binding tags
// cannot compare decimals.
type CreateTransactionRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	Source        string          `json:"source"`        // Income only
	PaymentMethod string          `json:"paymentMethod"` // Expense only
}

// UpdateTransactionRequest defines the data allowed when editing a
// transaction. Pointers differentiate omitted fields from zero values.
type UpdateTransactionRequest struct {
	Kind          *domain.TransactionKind `json:"type" binding:"omitempty,txnkind"`
	Amount        *decimal.Decimal        `json:"amount"`
	Category      *string                 `json:"category"`
	Description   *string                 `json:"description"`
	Date          *string                 `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Source        *string                 `json:"source"`
	PaymentMethod *string                 `json:"paymentMethod"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Kind      string `form:"type" binding:"omitempty,txnkind"`
	Category  string `form:"category"`
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Limit     int    `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// TransactionResponse is the wire representation of a transaction. The date
// is serialized as YYYY-MM-DD; audit instants as RFC3339.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Source        string          `json:"source,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Date          string          `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ListTransactionsResponse wraps a page of transactions with the cursor for
// the next page, if any.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain transaction to its wire shape.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            txn.TransactionID,
		Type:          string(txn.Kind),
		Amount:        txn.Amount,
		Category:      txn.Category,
		Description:   txn.Description,
		Source:        txn.Source,
		PaymentMethod: txn.PaymentMethod,
		Date:          txn.OccurredAt.Format(dateLayout),
		CreatedAt:     txn.CreatedAt,
		UpdatedAt:     txn.LastUpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		out[i] = ToTransactionResponse(txn)
	}
	return out
}
