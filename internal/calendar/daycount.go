package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/carlosjhr64/jd"
)

var (
	isoDatePattern  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	isoMonthPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
)

// Date is a Gregorian calendar date with no time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// minDate is Julian day 0 (24 November 4714 BC, proleptic Gregorian,
// astronomical year -4713). Day numbers are only exact from here on.
var minDate = Date{Year: -4713, Month: time.November, Day: 24}

// MinDate returns the earliest date the converter accepts.
func MinDate() Date { return minDate }

// NewDate validates year, month and day as a Gregorian date.
// A field that would be normalized (such as 30 February), or a date
// before MinDate, is rejected with ErrInvalidCalendarDate.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidCalendarDate, year, int(month), day)
	}
	if t.Before(minDate.Time()) {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d is before %s", ErrInvalidCalendarDate, year, int(month), day, minDate)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseDateString parses a date in YYYY-MM-DD format.
func ParseDateString(s string) (Date, error) {
	m := isoDatePattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}, fmt.Errorf("%w: %q, use YYYY-MM-DD", ErrInvalidDateFormat, s)
	}

	// The pattern guarantees digits, so Atoi cannot fail.
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	return NewDate(year, time.Month(month), day)
}

// ParseMonthString parses a Gregorian month in YYYY-MM format.
func ParseMonthString(s string) (int, time.Month, error) {
	m := isoMonthPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q, use YYYY-MM", ErrInvalidDateFormat, s)
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: month %d", ErrInvalidCalendarDate, month)
	}

	return year, time.Month(month), nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns the date n days after d (before, if n is negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.julianDay() < other.julianDay()
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) julianDay() int {
	return jd.YMD2J(d.Year, int(d.Month), d.Day)
}

// DaysFromAnchor returns the signed number of whole days from the anchor
// date to d (d minus anchor).
func DaysFromAnchor(d Date) int {
	return d.julianDay() - anchorJulianDay
}

// offsetInRange reports whether offset lands on or after MinDate.
func offsetInRange(offset int) bool {
	return anchorJulianDay+offset >= 0
}

// DateFromOffset returns the Gregorian date offset days from the anchor.
// The result is only meaningful for offsets on or after MinDate.
func DateFromOffset(offset int) Date {
	y, m, d := jd.J2YMD(anchorJulianDay + offset)
	return Date{Year: y, Month: time.Month(m), Day: d}
}
