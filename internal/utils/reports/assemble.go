package reports

import (
	"sort"

	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultRecentLimit is the number of recent transactions returned by
// BuildSummary when the caller passes a non-positive limit.
const DefaultRecentLimit = 5

// BuildSummary produces the dashboard view: aggregate totals plus the
// recentLimit most recently occurring transactions. Recency order is
// OccurredAt descending, ties broken by CreatedAt descending, then by
// TransactionID ascending, so the result is a total order and identical
// inputs always produce identical output.
func BuildSummary(txns []domain.Transaction, recentLimit int) (domain.DashboardSummary, error) {
	summary, err := Summarize(txns)
	if err != nil {
		return domain.DashboardSummary{}, err
	}

	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}

	// Sort a copy; the input set is never mutated.
	recent := make([]domain.Transaction, len(txns))
	copy(recent, txns)
	sort.SliceStable(recent, func(i, j int) bool {
		if !recent[i].OccurredAt.Equal(recent[j].OccurredAt) {
			return recent[i].OccurredAt.After(recent[j].OccurredAt)
		}
		if !recent[i].CreatedAt.Equal(recent[j].CreatedAt) {
			return recent[i].CreatedAt.After(recent[j].CreatedAt)
		}
		return recent[i].TransactionID < recent[j].TransactionID
	})
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	return domain.DashboardSummary{
		Summary:            summary,
		RecentTransactions: recent,
	}, nil
}

// BuildSeries buckets transactions by reporting period and sums income and
// expenses within each bucket. One entry is emitted per non-empty bucket,
// sorted ascending by period key; periods with no transactions are simply
// absent (no synthetic zero entries), so callers wanting a continuous chart
// axis must fill gaps themselves.
func BuildSeries(txns []domain.Transaction, granularity domain.Granularity) ([]domain.PeriodSeriesEntry, error) {
	buckets := make(map[string]*domain.PeriodSeriesEntry)

	for _, txn := range txns {
		if err := validateRecord(txn); err != nil {
			return nil, err
		}

		key, err := PeriodKey(txn.OccurredAt, granularity)
		if err != nil {
			return nil, err
		}

		entry, ok := buckets[key]
		if !ok {
			entry = &domain.PeriodSeriesEntry{
				Period:   key,
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
			}
			buckets[key] = entry
		}

		switch txn.Kind {
		case domain.Income:
			entry.Income = entry.Income.Add(txn.Amount)
		case domain.Expense:
			entry.Expenses = entry.Expenses.Add(txn.Amount)
		}
	}

	series := make([]domain.PeriodSeriesEntry, 0, len(buckets))
	for _, entry := range buckets {
		entry.Savings = entry.Income.Sub(entry.Expenses)
		series = append(series, *entry)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Period < series[j].Period
	})

	return series, nil
}
