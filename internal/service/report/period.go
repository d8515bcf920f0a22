package report

import (
	"time"

	"roomreport/internal/model/report"
)

const day = 24 * time.Hour

// ResolveTimeRange maps a period to a concrete [start, end) interval around
// now. The start of "today" is computed in now's location. Unrecognized
// periods fall back to the 7-day window; that is intentional, not an error.
func ResolveTimeRange(period report.Period, now time.Time) report.TimeRange {
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch period {
	case report.PeriodToday:
		return report.TimeRange{Start: todayStart.UnixMilli(), End: todayStart.Add(day).UnixMilli()}
	case report.PeriodYesterday:
		return report.TimeRange{Start: todayStart.Add(-day).UnixMilli(), End: todayStart.UnixMilli()}
	case report.Period30Days:
		return report.TimeRange{Start: todayStart.Add(-30 * day).UnixMilli(), End: now.UnixMilli()}
	case report.PeriodYear:
		yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return report.TimeRange{Start: yearStart.UnixMilli(), End: now.UnixMilli()}
	default:
		// 7days and anything unrecognized.
		return report.TimeRange{Start: todayStart.Add(-7 * day).UnixMilli(), End: now.UnixMilli()}
	}
}

// PeriodLabel returns the human-readable label used in prompts and in the
// "no messages" notice.
func PeriodLabel(period report.Period) string {
	switch period {
	case report.PeriodToday:
		return "today"
	case report.PeriodYesterday:
		return "yesterday"
	case report.Period7Days:
		return "the last 7 days"
	case report.Period30Days:
		return "the last 30 days"
	case report.PeriodYear:
		return "this year"
	default:
		return "the selected period"
	}
}
