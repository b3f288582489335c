package core

import "time"

// TimestampLayout is the persisted timestamp format: UTC with millisecond
// precision, e.g. "2024-03-11T00:00:00.000Z".
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// WeekStart returns local midnight of the Monday of the week containing t,
// in t's location. Sunday belongs to the week that started six days earlier.
func WeekStart(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	y, m, d := t.Date()
	return time.Date(y, m, d-(wd-1), 0, 0, 0, 0, t.Location())
}

// WeekEnd returns Sunday 23:59:59.999 of the week containing t.
func WeekEnd(t time.Time) time.Time {
	y, m, d := WeekStart(t).Date()
	return time.Date(y, m, d+6, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// FormatWeekRange renders a week as "Mar 11 - Mar 17, 2024". The end date is
// computed with the same calendar arithmetic as WeekEnd so that weeks
// crossing a DST change or a year boundary display correctly.
func FormatWeekRange(weekStart time.Time) string {
	y, m, d := weekStart.Date()
	end := time.Date(y, m, d+6, 0, 0, 0, 0, weekStart.Location())
	return weekStart.Format("Jan 2") + " - " + end.Format("Jan 2, 2006")
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses any RFC 3339 timestamp, including TimestampLayout.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
