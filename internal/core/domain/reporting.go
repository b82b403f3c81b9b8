package domain

import (
	"github.com/shopspring/decimal"
)

// Granularity selects how transactions are bucketed into reporting periods.
type Granularity string

const (
	Daily   Granularity = "daily"
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

// IsValid reports whether the granularity is one of the known variants.
func (g Granularity) IsValid() bool {
	return g == Daily || g == Monthly || g == Yearly
}

// Summary holds the aggregate totals for a set of transactions.
// Income and expense category breakdowns are kept separate; map iteration
// order is not significant.
type Summary struct {
	TotalIncome        decimal.Decimal            `json:"totalIncome"`
	TotalExpenses      decimal.Decimal            `json:"totalExpenses"`
	Balance            decimal.Decimal            `json:"balance"`     // income - expenses, may be negative
	SavingsRate        decimal.Decimal            `json:"savingsRate"` // percent, 2 decimals; 0 when income is 0
	TransactionCount   int                        `json:"transactionCount"`
	IncomeByCategory   map[string]decimal.Decimal `json:"incomeByCategory"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expensesByCategory"`
}

// PeriodSeriesEntry is one reporting-period bucket of a chart series.
type PeriodSeriesEntry struct {
	Period   string          `json:"period"` // e.g. "2024-01" for monthly
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Savings  decimal.Decimal `json:"savings"` // income - expenses within the bucket
}

// DashboardSummary is the Summary plus the most recently occurring
// transactions, as consumed by the dashboard stats endpoint.
type DashboardSummary struct {
	Summary
	RecentTransactions []Transaction `json:"recentTransactions"`
}
