package dateutil

import "time"

// ISODate is the layout for calendar-date strings ("YYYY-MM-DD").
const ISODate = "2006-01-02"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// FormatISODate formats a date as "YYYY-MM-DD"
func FormatISODate(date time.Time) string {
	return date.Format(ISODate)
}

// ParseISODate parses a "YYYY-MM-DD" string into a UTC date
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(ISODate, s)
}

// NthWeekdayOfMonth returns the nth occurrence of the given weekday in the
// month (n is 1-based): the first occurrence of the weekday plus 7*(n-1) days.
func NthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+7*(n-1))
}

// LastWeekdayOfMonth returns the last occurrence of the given weekday in the
// month, found by scanning backward from the month's final day.
func LastWeekdayOfMonth(year int, month time.Month, weekday time.Weekday) time.Time {
	last := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	for last.Weekday() != weekday {
		last = last.AddDate(0, 0, -1)
	}
	return last
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1).Day()
}
