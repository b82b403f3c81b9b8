package reports

import (
	"fmt"

	"github.com/budgetbuddy/bb_backend/internal/apperrors"
	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// savingsRateScale is the number of decimal places the savings rate is
// rounded to. Rounding is half away from zero (decimal.Round semantics),
// matching the two-decimal display convention.
const savingsRateScale = 2

// validateRecord checks the transaction record invariants that aggregation
// relies on. A violation fails the whole aggregation call.
func validateRecord(txn domain.Transaction) error {
	if !txn.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %q for transaction %s", apperrors.ErrMalformedRecord, txn.Kind, txn.TransactionID)
	}
	if txn.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: non-positive amount %s for transaction %s", apperrors.ErrMalformedRecord, txn.Amount.String(), txn.TransactionID)
	}
	if txn.Category == "" {
		return fmt.Errorf("%w: empty category for transaction %s", apperrors.ErrMalformedRecord, txn.TransactionID)
	}
	return nil
}

// Summarize reduces a set of transactions into aggregate totals, balance,
// savings rate and per-kind category breakdowns. The input order is
// irrelevant; summation uses exact decimal arithmetic with no intermediate
// rounding. An empty input yields an all-zero Summary.
func Summarize(txns []domain.Transaction) (domain.Summary, error) {
	summary := domain.Summary{
		TotalIncome:        decimal.Zero,
		TotalExpenses:      decimal.Zero,
		Balance:            decimal.Zero,
		SavingsRate:        decimal.Zero,
		IncomeByCategory:   make(map[string]decimal.Decimal),
		ExpensesByCategory: make(map[string]decimal.Decimal),
	}

	for _, txn := range txns {
		if err := validateRecord(txn); err != nil {
			return domain.Summary{}, err
		}

		switch txn.Kind {
		case domain.Income:
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
			addToCategory(summary.IncomeByCategory, txn.Category, txn.Amount)
		case domain.Expense:
			summary.TotalExpenses = summary.TotalExpenses.Add(txn.Amount)
			addToCategory(summary.ExpensesByCategory, txn.Category, txn.Amount)
		}
	}

	summary.TransactionCount = len(txns)
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpenses)
	summary.SavingsRate = savingsRate(summary.Balance, summary.TotalIncome)
	return summary, nil
}

// addToCategory accumulates an amount under the exact category string.
// No normalization: "Food" and "food" are distinct categories.
func addToCategory(breakdown map[string]decimal.Decimal, category string, amount decimal.Decimal) {
	if existing, ok := breakdown[category]; ok {
		breakdown[category] = existing.Add(amount)
		return
	}
	breakdown[category] = amount
}

// savingsRate computes balance/income as a percentage rounded to two
// decimals. Income of zero is defined as a rate of zero rather than a
// division error.
func savingsRate(balance, totalIncome decimal.Decimal) decimal.Decimal {
	if totalIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return balance.Div(totalIncome).Mul(decimal.NewFromInt(100)).Round(savingsRateScale)
}
