package services

import (
	"context"
	"time"

	"github.com/budgetbuddy/bb_backend/internal/core/domain"
)

// DashboardSvcFacade defines operations for aggregate reporting over a
// user's transactions.
type DashboardSvcFacade interface {
	// GetDashboardStats aggregates all of the user's transactions into the
	// dashboard summary, including the recentLimit most recent records
	// (non-positive limit selects the default of 5).
	GetDashboardStats(ctx context.Context, userID string, recentLimit int) (*domain.DashboardSummary, error)

	// GetChartSeries buckets the user's transactions, optionally restricted
	// to a date range, into one entry per non-empty period.
	GetChartSeries(ctx context.Context, userID string, granularity domain.Granularity, startDate, endDate *time.Time) ([]domain.PeriodSeriesEntry, error)

	// GetUserStats aggregates all of the user's transactions into a summary
	// without the recent transaction list.
	GetUserStats(ctx context.Context, userID string) (*domain.Summary, error)
}
