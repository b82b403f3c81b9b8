package dto

import (
	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ChartParams defines query parameters for the dashboard chart series.
type ChartParams struct {
	Period    string `form:"period,default=monthly" binding:"omitempty,granularity"`
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// DashboardStatsResponse is the payload of GET /dashboard/stats.
type DashboardStatsResponse struct {
	TotalIncome        decimal.Decimal            `json:"totalIncome"`
	TotalExpenses      decimal.Decimal            `json:"totalExpenses"`
	Balance            decimal.Decimal            `json:"balance"`
	SavingsRate        decimal.Decimal            `json:"savingsRate"`
	TransactionCount   int                        `json:"transactionCount"`
	ExpenseCategories  map[string]decimal.Decimal `json:"expenseCategories"`
	IncomeCategories   map[string]decimal.Decimal `json:"incomeCategories"`
	RecentTransactions []TransactionResponse      `json:"recentTransactions"`
}

// UserStatsResponse is the payload of GET /users/stats: the same aggregate
// totals without the recent transaction list.
type UserStatsResponse struct {
	TotalIncome        decimal.Decimal            `json:"totalIncome"`
	TotalExpenses      decimal.Decimal            `json:"totalExpenses"`
	Balance            decimal.Decimal            `json:"balance"`
	SavingsRate        decimal.Decimal            `json:"savingsRate"`
	TransactionCount   int                        `json:"transactionCount"`
	IncomeByCategory   map[string]decimal.Decimal `json:"incomeByCategory"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expensesByCategory"`
}

// ChartPoint is one period bucket in the chart series payload.
type ChartPoint struct {
	Period   string          `json:"period"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Savings  decimal.Decimal `json:"savings"`
}

// ChartSeriesResponse is the payload of GET /dashboard/charts, tagged with
// the requested granularity.
type ChartSeriesResponse struct {
	Period string       `json:"period"`
	Data   []ChartPoint `json:"data"`
}

// ToDashboardStatsResponse converts the engine output to its wire shape.
func ToDashboardStatsResponse(result domain.DashboardSummary) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalIncome:        result.TotalIncome,
		TotalExpenses:      result.TotalExpenses,
		Balance:            result.Balance,
		SavingsRate:        result.SavingsRate,
		TransactionCount:   result.TransactionCount,
		ExpenseCategories:  result.ExpensesByCategory,
		IncomeCategories:   result.IncomeByCategory,
		RecentTransactions: ToTransactionResponses(result.RecentTransactions),
	}
}

// ToUserStatsResponse converts a summary to its wire shape.
func ToUserStatsResponse(summary domain.Summary) UserStatsResponse {
	return UserStatsResponse{
		TotalIncome:        summary.TotalIncome,
		TotalExpenses:      summary.TotalExpenses,
		Balance:            summary.Balance,
		SavingsRate:        summary.SavingsRate,
		TransactionCount:   summary.TransactionCount,
		IncomeByCategory:   summary.IncomeByCategory,
		ExpensesByCategory: summary.ExpensesByCategory,
	}
}

// ToChartSeriesResponse converts a period series to its wire shape.
func ToChartSeriesResponse(granularity domain.Granularity, series []domain.PeriodSeriesEntry) ChartSeriesResponse {
	points := make([]ChartPoint, len(series))
	for i, entry := range series {
		points[i] = ChartPoint{
			Period:   entry.Period,
			Income:   entry.Income,
			Expenses: entry.Expenses,
			Savings:  entry.Savings,
		}
	}
	return ChartSeriesResponse{
		Period: string(granularity),
		Data:   points,
	}
}
