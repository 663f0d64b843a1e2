package report

import (
	"fmt"
	"go-hnbex/domain"
	"time"
)

// Dates resolves the period of a range query. A zero from means the days
// ending with to, both ends included.
func Dates(from, to time.Time, days int) (time.Time, time.Time, error) {
	if from.IsZero() {
		if days < 1 {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: number of days must be at least 1, got %d", domain.ErrValidation, days)
		}
		from = to.AddDate(0, 0, -(days - 1))
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start date cannot be greater than end date", domain.ErrValidation)
	}
	return from, to, nil
}
