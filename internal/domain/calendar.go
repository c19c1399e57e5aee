package domain

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DayStart returns midnight of the calendar day of t in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// NextDayStart returns midnight of the day after t in loc.
func NextDayStart(t time.Time, loc *time.Location) time.Time {
	// AddDate keeps wall-clock midnight across DST changes, Add(24h) does not.
	return DayStart(t, loc).AddDate(0, 0, 1)
}

// ParseDate parses a YYYY-MM-DD calendar date as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders the calendar day of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// WeekdayName returns the lowercase English weekday of t, the meal plan key.
func WeekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// AttendanceSource tells which roll call feeds a meal: breakfast and lunch are
// cooked for the headcount of the previous evening, dinner for the same evening.
func AttendanceSource(meal MealType, date time.Time) (SessionType, time.Time) {
	if meal == MealDinner {
		return SessionEvening, date
	}
	return SessionEvening, date.AddDate(0, 0, -1)
}
