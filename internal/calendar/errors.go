package calendar

import "errors"

// Conversion errors. Each failing call wraps exactly one of these, so
// callers can classify a failure with errors.Is.
var (
	// ErrInvalidDateFormat is returned when input does not parse into year, month and day.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidCalendarDate is returned when the parsed fields do not form a Gregorian date.
	ErrInvalidCalendarDate = errors.New("invalid calendar date")

	// ErrInvalidJavaneseMonth is returned for an unrecognized Javanese month name.
	ErrInvalidJavaneseMonth = errors.New("invalid javanese month")

	// ErrInvalidJavaneseDate is returned when a day is outside its Javanese month.
	ErrInvalidJavaneseDate = errors.New("invalid javanese date")

	// ErrInvalidRange is returned when a range ends before it starts.
	ErrInvalidRange = errors.New("invalid date range")
)
