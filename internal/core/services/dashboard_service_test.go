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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.DashboardSvcFacade
	userID   string
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewDashboardService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

func (suite *DashboardServiceTestSuite) sampleTransactions() []domain.Transaction {
	may := func(day int) time.Time { return time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC) }
	return []domain.Transaction{
		{
			TransactionID: "t1",
			Kind:          domain.Income,
			Amount:        decimal.RequireFromString("2500.00"),
			Category:      "Salary",
			OccurredAt:    may(1),
		},
		{
			TransactionID: "t2",
			Kind:          domain.Expense,
			Amount:        decimal.RequireFromString("60.25"),
			Category:      "Food",
			OccurredAt:    may(3),
		},
		{
			TransactionID: "t3",
			Kind:          domain.Expense,
			Amount:        decimal.RequireFromString("25.25"),
			Category:      "Transport",
			OccurredAt:    may(7),
		},
	}
}

func (suite *DashboardServiceTestSuite) TestGetDashboardStats() {
	ctx := context.Background()

	suite.mockRepo.On("FindTransactions", ctx, suite.userID, mock.Anything).
		Return(suite.sampleTransactions(), nil).Once()

	stats, err := suite.service.GetDashboardStats(ctx, suite.userID, 0)

	suite.Require().NoError(err)
	suite.Equal("2500", stats.TotalIncome.String())
	suite.Equal("85.5", stats.TotalExpenses.String())
	suite.Equal("2414.5", stats.Balance.String())
	suite.Equal("96.58", stats.SavingsRate.String())
	suite.Equal(3, stats.TransactionCount)
	suite.Equal("60.25", stats.ExpensesByCategory["Food"].String())

	// Recent transactions are newest first.
	suite.Require().Len(stats.RecentTransactions, 3)
	suite.Equal("t3", stats.RecentTransactions[0].TransactionID)
	suite.Equal("t2", stats.RecentTransactions[1].TransactionID)
	suite.Equal("t1", stats.RecentTransactions[2].TransactionID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestGetDashboardStats_Empty() {
	ctx := context.Background()

	suite.mockRepo.On("FindTransactions", ctx, suite.userID, mock.Anything).
		Return([]domain.Transaction{}, nil).Once()

	stats, err := suite.service.GetDashboardStats(ctx, suite.userID, 0)

	suite.Require().NoError(err)
	suite.True(stats.TotalIncome.IsZero())
	suite.True(stats.SavingsRate.IsZero())
	suite.Empty(stats.RecentTransactions)
}

func (suite *DashboardServiceTestSuite) TestGetChartSeries_Monthly() {
	ctx := context.Background()

	suite.mockRepo.On("FindTransactions", ctx, suite.userID, mock.Anything).
		Return(suite.sampleTransactions(), nil).Once()

	series, err := suite.service.GetChartSeries(ctx, suite.userID, domain.Monthly, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(series, 1)
	suite.Equal("2024-05", series[0].Period)
	suite.Equal("2500", series[0].Income.String())
	suite.Equal("85.5", series[0].Expenses.String())
	suite.Equal("2414.5", series[0].Savings.String())
}

func (suite *DashboardServiceTestSuite) TestGetChartSeries_DateRangePassedThrough() {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.FindTransactionsFn = func(_ context.Context, _ string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
		suite.Require().NotNil(filter.StartDate)
		suite.Require().NotNil(filter.EndDate)
		suite.True(filter.StartDate.Equal(start))
		suite.True(filter.EndDate.Equal(end))
		return []domain.Transaction{}, nil
	}

	series, err := suite.service.GetChartSeries(ctx, suite.userID, domain.Daily, &start, &end)

	suite.Require().NoError(err)
	suite.Empty(series)
}

func (suite *DashboardServiceTestSuite) TestGetChartSeries_UnknownGranularity() {
	ctx := context.Background()

	suite.mockRepo.On("FindTransactions", ctx, suite.userID, mock.Anything).
		Return(suite.sampleTransactions(), nil).Once()

	series, err := suite.service.GetChartSeries(ctx, suite.userID, domain.Granularity("weekly"), nil, nil)

	suite.Require().Error(err)
	suite.Nil(series)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DashboardServiceTestSuite) TestGetUserStats() {
	ctx := context.Background()

	suite.mockRepo.On("FindTransactions", ctx, suite.userID, mock.Anything).
		Return(suite.sampleTransactions(), nil).Once()

	summary, err := suite.service.GetUserStats(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("2500", summary.TotalIncome.String())
	suite.Equal("96.58", summary.SavingsRate.String())
	suite.Equal("2500", summary.IncomeByCategory["Salary"].String())
}

// Keep the DTO conversion close to the aggregation it serves.
func (suite *DashboardServiceTestSuite) TestChartSeriesResponseShape() {
	series := []domain.PeriodSeriesEntry{
		{Period: "2024-05", Income: decimal.RequireFromString("100"), Expenses: decimal.RequireFromString("40"), Savings: decimal.RequireFromString("60")},
	}

	resp := dto.ToChartSeriesResponse(domain.Monthly, series)

	suite.Equal("monthly", resp.Period)
	suite.Require().Len(resp.Data, 1)
	suite.Equal("2024-05", resp.Data[0].Period)
	suite.Equal("60", resp.Data[0].Savings.String())
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
