// Package holiday decides whether a calendar date is a designated US
// federal holiday. The truck stays parked on federal holidays, so the
// schedule generator consults this before assigning a location.
package holiday

import (
	"time"

	"github.com/secondchapter/booktruck/pkg/dateutil"
)

// Result reports whether a date is a federal holiday and, if so, its name.
type Result struct {
	IsHoliday bool
	Name      string
}

// Federal returns the holiday designation for the given calendar date.
// It is a pure function of the date's year, month, day and weekday.
func Federal(date time.Time) Result {
	year, month, day := date.Year(), date.Month(), date.Day()

	// Fixed-date holidays
	switch {
	case month == time.January && day == 1:
		return Result{IsHoliday: true, Name: "New Year's Day"}
	case month == time.June && day == 19:
		return Result{IsHoliday: true, Name: "Juneteenth"}
	case month == time.July && day == 4:
		return Result{IsHoliday: true, Name: "Independence Day"}
	case month == time.November && day == 11:
		return Result{IsHoliday: true, Name: "Veterans Day"}
	case month == time.December && day == 25:
		return Result{IsHoliday: true, Name: "Christmas Day"}
	}

	// Floating holidays only need evaluating when the weekday matches the
	// rule's target weekday; every other date falls through to "not a
	// holiday" without any month arithmetic.
	switch date.Weekday() {
	case time.Monday:
		switch month {
		case time.January:
			if day == dateutil.NthWeekdayOfMonth(year, month, time.Monday, 3).Day() {
				return Result{IsHoliday: true, Name: "Martin Luther King Jr. Day"}
			}
		case time.February:
			if day == dateutil.NthWeekdayOfMonth(year, month, time.Monday, 3).Day() {
				return Result{IsHoliday: true, Name: "Presidents Day"}
			}
		case time.May:
			if day == dateutil.LastWeekdayOfMonth(year, month, time.Monday).Day() {
				return Result{IsHoliday: true, Name: "Memorial Day"}
			}
		case time.September:
			if day == dateutil.NthWeekdayOfMonth(year, month, time.Monday, 1).Day() {
				return Result{IsHoliday: true, Name: "Labor Day"}
			}
		case time.October:
			if day == dateutil.NthWeekdayOfMonth(year, month, time.Monday, 2).Day() {
				return Result{IsHoliday: true, Name: "Columbus Day"}
			}
		}
	case time.Thursday:
		if month == time.November && day == dateutil.NthWeekdayOfMonth(year, month, time.Thursday, 4).Day() {
			return Result{IsHoliday: true, Name: "Thanksgiving"}
		}
	}

	return Result{}
}
