package reports_test

import (
	"testing"
	"time"

	"github.com/budgetbuddy/bb_backend/internal/apperrors"
	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	"github.com/budgetbuddy/bb_backend/internal/utils/reports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodKey(t *testing.T) {
	tests := []struct {
		name        string
		date        time.Time
		granularity domain.Granularity
		want        string
	}{
		{"daily", date(2024, 1, 5), domain.Daily, "2024-01-05"},
		{"monthly", date(2024, 1, 5), domain.Monthly, "2024-01"},
		{"yearly", date(2024, 1, 5), domain.Yearly, "2024"},
		{"single digit month is zero padded", date(2024, 9, 30), domain.Monthly, "2024-09"},
		{"december", date(2023, 12, 31), domain.Monthly, "2023-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reports.PeriodKey(tt.date, tt.granularity)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriodKey_UnknownGranularity(t *testing.T) {
	_, err := reports.PeriodKey(date(2024, 1, 1), domain.Granularity("weekly"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

// Lexicographic order of keys must equal chronological order.
func TestPeriodKey_Sortable(t *testing.T) {
	earlier, err := reports.PeriodKey(date(2024, 2, 1), domain.Monthly)
	require.NoError(t, err)
	later, err := reports.PeriodKey(date(2024, 10, 1), domain.Monthly)
	require.NoError(t, err)
	assert.Less(t, earlier, later)
}
