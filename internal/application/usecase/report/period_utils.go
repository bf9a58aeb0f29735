// Package report contains analytics report use cases.
package report

import (
	"fmt"
	"time"

	"github.com/salon-pos/backend/internal/domain/entity"
)

// Grain represents the reporting granularity.
type Grain string

const (
	GrainDaily   Grain = "daily"
	GrainWeekly  Grain = "weekly"
	GrainMonthly Grain = "monthly"
)

// PeriodBounds returns the inclusive calendar-day range of the period
// containing the given date for the grain. Weeks run Monday through Sunday.
func PeriodBounds(date time.Time, grain Grain) (start, end time.Time) {
	day := entity.NormalizeDay(date)

	switch grain {
	case GrainWeekly:
		weekday := int(day.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday is 7
		}
		start = day.AddDate(0, 0, -(weekday - 1))
		end = start.AddDate(0, 0, 6)
	case GrainMonthly:
		start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, -1)
	default:
		start = day
		end = day
	}
	return start, end
}

// MonthBounds returns the inclusive day range of the given calendar month.
func MonthBounds(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// PeriodLabel generates a human-readable label for a period, used in the
// filename hint and the narrative prompt.
func PeriodLabel(start, end time.Time, grain Grain) string {
	switch grain {
	case GrainWeekly:
		return fmt.Sprintf("week %s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	case GrainMonthly:
		return start.Format("January 2006")
	default:
		return start.Format("2006-01-02")
	}
}
