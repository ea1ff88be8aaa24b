package controller

import "time"

const dateLayout = "2006-01-02"

// Quick date range names understood by QuickRange.
const (
	RangeToday      = "today"
	RangeYesterday  = "yesterday"
	RangeThisWeek   = "this_week"
	RangeThisMonth  = "this_month"
	RangeLast30Days = "last_30_days"
)

// QuickRange resolves a named quick range into a start/end date pair. The
// week starts on Monday.
func QuickRange(name string, now time.Time) (from, to string, ok bool) {
	switch name {
	case RangeToday:
		d := now.Format(dateLayout)
		return d, d, true
	case RangeYesterday:
		d := now.AddDate(0, 0, -1).Format(dateLayout)
		return d, d, true
	case RangeThisWeek:
		wd := int(now.Weekday())
		if wd == 0 {
			wd = 7 // Sunday
		}
		start := now.AddDate(0, 0, -(wd - 1))
		end := start.AddDate(0, 0, 6)
		return start.Format(dateLayout), end.Format(dateLayout), true
	case RangeThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, -1)
		return start.Format(dateLayout), end.Format(dateLayout), true
	case RangeLast30Days:
		start := now.AddDate(0, 0, -29)
		return start.Format(dateLayout), now.Format(dateLayout), true
	}
	return "", "", false
}

// Today returns the current date in the wire format.
func Today(now time.Time) string {
	return now.Format(dateLayout)
}

// MinEndDate is the minimum the end-date input accepts once a start date is
// chosen. Ranges are kept valid at input time, never rejected afterwards.
func MinEndDate(startDate string) string {
	return startDate
}
