package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// ParseError reports a date component that is not an integer, or a value too
// short to hold a YYYY-MM-DD prefix.
type ParseError struct {
	Value     string
	Component string
	Err       error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("parse date %q: invalid %s", e.Value, e.Component)
	}
	return fmt.Sprintf("parse date %q: invalid %s: %v", e.Value, e.Component, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidDateError reports integer components that do not name a calendar day.
type InvalidDateError struct {
	Year  int
	Month int
	Day   int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid calendar date: year %d, month %d, day %d", e.Year, e.Month, e.Day)
}

// ParseLogDate reads a date from the fixed positions of a YYYY-MM-DD prefix.
// Bytes 4 and 7 are separators and are never inspected; anything after the
// tenth byte is ignored. The result is midnight UTC of that calendar day.
func ParseLogDate(value string) (time.Time, error) {
	if len(value) < 10 {
		return time.Time{}, &ParseError{Value: value, Component: "length"}
	}

	year, err := strconv.ParseInt(value[0:4], 10, 32)
	if err != nil {
		return time.Time{}, &ParseError{Value: value, Component: "year", Err: err}
	}
	month, err := parseUnsigned(value[5:7])
	if err != nil {
		return time.Time{}, &ParseError{Value: value, Component: "month", Err: err}
	}
	day, err := parseUnsigned(value[8:10])
	if err != nil {
		return time.Time{}, &ParseError{Value: value, Component: "day", Err: err}
	}

	return CalendarDate(int(year), int(month), int(day))
}

// parseUnsigned accepts one optional leading '+'; a '-' is rejected.
func parseUnsigned(value string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(value, "+"), 10, 32)
}

// CalendarDate builds midnight UTC for year/month/day, rejecting combinations
// that time.Date would otherwise normalise (month 13, February 30).
func CalendarDate(year, month, day int) (time.Time, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, &InvalidDateError{Year: year, Month: month, Day: day}
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, &InvalidDateError{Year: year, Month: month, Day: day}
	}
	return date, nil
}

// LocalDate returns the calendar day of value, as seen in value's location,
// at midnight UTC so it can be compared with ParseLogDate results.
func LocalDate(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole calendar days from -> to. Both arguments are
// reduced to their calendar day first; the result is negative when to is
// earlier than from.
func DaysBetween(from, to time.Time) int64 {
	return (LocalDate(to).Unix() - LocalDate(from).Unix()) / secondsPerDay
}
