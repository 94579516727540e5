package insights

import (
	"time"

	"pocketledger/internal/models"
)

// TimeRange is a symbolic relative date range used to filter transactions
// before aggregation.
type TimeRange string

const (
	TimeRange7d  TimeRange = "7d"
	TimeRange30d TimeRange = "30d"
	TimeRange90d TimeRange = "90d"
	TimeRange1y  TimeRange = "1y"
	TimeRangeAll TimeRange = "all"
)

// Valid reports whether r is one of the supported ranges.
func (r TimeRange) Valid() bool {
	switch r {
	case TimeRange7d, TimeRange30d, TimeRange90d, TimeRange1y, TimeRangeAll:
		return true
	}
	return false
}

// Cutoff returns the epoch-millisecond cutoff for the range relative to now.
// The second return is false for "all", meaning unbounded.
func (r TimeRange) Cutoff(now time.Time) (int64, bool) {
	var days int
	switch r {
	case TimeRange7d:
		days = 7
	case TimeRange30d:
		days = 30
	case TimeRange90d:
		days = 90
	case TimeRange1y:
		days = 365
	default:
		return 0, false
	}
	return now.Add(-time.Duration(days) * 24 * time.Hour).UnixMilli(), true
}

// FilterByRange retains transactions dated at or after the range cutoff.
func FilterByRange(transactions []models.Transaction, r TimeRange, now time.Time) []models.Transaction {
	cutoff, bounded := r.Cutoff(now)
	if !bounded {
		return transactions
	}

	filtered := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Date >= cutoff {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// FilterByCategory retains transactions tagged with the given category.
// An empty or "all" selection returns the input unchanged.
func FilterByCategory(transactions []models.Transaction, categoryID string) []models.Transaction {
	if categoryID == "" || categoryID == "all" {
		return transactions
	}

	filtered := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.CategoryID == categoryID {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
