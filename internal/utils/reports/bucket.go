package reports

import (
	"fmt"
	"time"

	"github.com/budgetbuddy/bb_backend/internal/apperrors"
	"github.com/budgetbuddy/bb_backend/internal/core/domain"
)

// PeriodKey maps a transaction date to its reporting-period key. Keys are
// zero-padded, machine-sortable strings: lexicographic order equals
// chronological order. The stored calendar date is used as-is; timezone
// normalization is the responsibility of whoever produced the date, so a
// record is never shifted into a different period here.
func PeriodKey(date time.Time, granularity domain.Granularity) (string, error) {
	switch granularity {
	case domain.Daily:
		return date.Format("2006-01-02"), nil
	case domain.Monthly:
		return date.Format("2006-01"), nil
	case domain.Yearly:
		return date.Format("2006"), nil
	default:
		return "", fmt.Errorf("%w: unknown granularity %q", apperrors.ErrValidation, granularity)
	}
}
