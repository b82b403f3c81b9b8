package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction is income or an expense.
// The direction of the cash flow is carried solely by the kind; Amount is
// always a positive magnitude.
type TransactionKind string

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
)

// IsValid reports whether the kind is one of the known variants.
func (k TransactionKind) IsValid() bool {
	return k == Income || k == Expense
}

// Transaction represents one ledger entry belonging to a single user.
// It is immutable for aggregation purposes; edits supersede the record and
// callers re-aggregate from the updated set.
type Transaction struct {
	TransactionID string          `json:"id"`     // Primary Key (UUID)
	UserID        string          `json:"-"`      // Owning user; never serialized
	Kind          TransactionKind `json:"type"`   // income or expense
	Amount        decimal.Decimal `json:"amount"` // Strictly positive magnitude
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Source        string          `json:"source,omitempty"`        // Income only (e.g. employer)
	PaymentMethod string          `json:"paymentMethod,omitempty"` // Expense only
	OccurredAt    time.Time       `json:"date"`                    // Calendar date, no time-of-day semantics
	AuditFields
}
