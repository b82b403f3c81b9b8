package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	portsrepo "github.com/budgetbuddy/bb_backend/internal/core/ports/repositories"
	portssvc "github.com/budgetbuddy/bb_backend/internal/core/ports/services"
	"github.com/budgetbuddy/bb_backend/internal/utils/reports"
)

// dashboardService implements the DashboardSvcFacade interface. It fetches
// the user's transaction set through the repository port and delegates all
// computation to the pure reports package.
type dashboardService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(repo portsrepo.TransactionReader) portssvc.DashboardSvcFacade {
	return &dashboardService{
		transactionRepo: repo,
	}
}

// Ensure dashboardService implements the DashboardSvcFacade interface.
var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// GetDashboardStats aggregates all of the user's transactions into the
// dashboard summary with recent transactions.
func (s *dashboardService) GetDashboardStats(ctx context.Context, userID string, recentLimit int) (*domain.DashboardSummary, error) {
	txns, err := s.transactionRepo.FindTransactions(ctx, userID, portsrepo.TransactionFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions for dashboard stats")
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	result, err := reports.BuildSummary(txns, recentLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate dashboard stats")
		return nil, err
	}

	s.LogInfo(ctx, "Dashboard stats generated",
		slog.Int("transaction_count", result.TransactionCount))
	return &result, nil
}

// GetChartSeries buckets the user's transactions into chart series entries.
func (s *dashboardService) GetChartSeries(ctx context.Context, userID string, granularity domain.Granularity, startDate, endDate *time.Time) ([]domain.PeriodSeriesEntry, error) {
	filter := portsrepo.TransactionFilter{
		StartDate: startDate,
		EndDate:   endDate,
	}
	txns, err := s.transactionRepo.FindTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions for chart series")
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	series, err := reports.BuildSeries(txns, granularity)
	if err != nil {
		s.LogError(ctx, err, "Failed to build chart series", slog.String("granularity", string(granularity)))
		return nil, err
	}

	s.LogInfo(ctx, "Chart series generated",
		slog.String("granularity", string(granularity)),
		slog.Int("bucket_count", len(series)))
	return series, nil
}

// GetUserStats aggregates all of the user's transactions into a summary
// without the recent transaction list.
func (s *dashboardService) GetUserStats(ctx context.Context, userID string) (*domain.Summary, error) {
	txns, err := s.transactionRepo.FindTransactions(ctx, userID, portsrepo.TransactionFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch transactions for user stats")
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	summary, err := reports.Summarize(txns)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate user stats")
		return nil, err
	}

	return &summary, nil
}
