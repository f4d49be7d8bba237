package calendar

import (
	"fmt"
	"strings"
)

// JavaneseDate is a date in the Javanese calendar.
type JavaneseDate struct {
	Date     int
	Month    Month
	YearType YearType
	Year     int
}

// Windu returns the Windu label of the date's year.
func (j JavaneseDate) Windu() Windu {
	return j.YearType.Windu()
}

// String formats j as "1 Sura 1955".
func (j JavaneseDate) String() string {
	return fmt.Sprintf("%d %s %d", j.Date, j.Month, j.Year)
}

// ParseMonth resolves a Javanese month name, ignoring case and
// surrounding whitespace.
func ParseMonth(name string) (Month, error) {
	name = strings.TrimSpace(name)
	for i, n := range monthNames {
		if strings.EqualFold(n, name) {
			return Month(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidJavaneseMonth, name)
}

// =============================================================================
// Stepping state
// =============================================================================

// state is a position in the Javanese calendar while stepping.
type state struct {
	date     int
	month    Month
	yearType YearType
	year     int
}

func anchorState() state {
	j := anchor.Javanese
	return state{date: j.Date, month: j.Month, yearType: j.YearType, year: j.Year}
}

// newState validates a target date before any stepping happens.
func newState(date int, month Month, year int) (state, error) {
	if !month.valid() {
		return state{}, fmt.Errorf("%w: %d", ErrInvalidJavaneseMonth, int(month))
	}
	yt := YearTypeOf(year)
	if n := MonthLength(month, yt); date < 1 || date > n {
		return state{}, fmt.Errorf("%w: %s %d (%s) has %d days, got %d",
			ErrInvalidJavaneseDate, month, year, yt, n, date)
	}
	return state{date: date, month: month, yearType: yt, year: year}, nil
}

func (s state) javanese() JavaneseDate {
	return JavaneseDate{Date: s.date, Month: s.month, YearType: s.yearType, Year: s.year}
}

// next advances s by one day.
func (s *state) next() {
	if s.date < MonthLength(s.month, s.yearType) {
		s.date++
		return
	}
	s.date = 1
	s.month = (s.month + 1) % monthCount
	if s.month == Sura {
		s.yearType = (s.yearType + 1) % yearTypeCount
		s.year++
	}
}

// prev moves s back by one day.
func (s *state) prev() {
	if s.date > 1 {
		s.date--
		return
	}
	if s.month == Sura {
		s.month = Besar
		s.yearType = (s.yearType + yearTypeCount - 1) % yearTypeCount
		s.year--
	} else {
		s.month--
	}
	s.date = MonthLength(s.month, s.yearType)
}

// before orders states by (year, month, date).
func (s state) before(other state) bool {
	if s.year != other.year {
		return s.year < other.year
	}
	if s.month != other.month {
		return s.month < other.month
	}
	return s.date < other.date
}

// =============================================================================
// Day-by-day walkers
// =============================================================================

// WalkForward returns the Javanese date offset days from the anchor,
// stepping one day at a time. Cost is linear in |offset|; JavaneseAt
// computes the same value in bounded time.
func WalkForward(offset int) JavaneseDate {
	s := anchorState()
	for ; offset > 0; offset-- {
		s.next()
	}
	for ; offset < 0; offset++ {
		s.prev()
	}
	return s.javanese()
}

// WalkToJavanese returns the day offset from the anchor to the given
// Javanese date, stepping one day at a time toward it.
func WalkToJavanese(date int, month Month, year int) (int, error) {
	target, err := newState(date, month, year)
	if err != nil {
		return 0, err
	}

	s := anchorState()
	offset := 0
	for s.before(target) {
		s.next()
		offset++
	}
	for target.before(s) {
		s.prev()
		offset--
	}
	return offset, nil
}

// =============================================================================
// Block arithmetic
// =============================================================================

// dayOfYear is the zero-based index of s within its year.
func (s state) dayOfYear() int {
	n := s.date - 1
	for m := Sura; m < s.month; m++ {
		n += MonthLength(m, s.yearType)
	}
	return n
}

// daysBeforeYear counts days from 1 Sura of the anchor year to 1 Sura of year.
func daysBeforeYear(year int) int {
	cycles := floorDiv(year-anchor.Javanese.Year, yearTypeCount)
	n := cycles * winduCycleDays
	for y := anchor.Javanese.Year + cycles*yearTypeCount; y < year; y++ {
		n += YearLength(YearTypeOf(y))
	}
	return n
}

// ordinal counts days from 1 Sura of the anchor year to s.
func (s state) ordinal() int {
	return daysBeforeYear(s.year) + s.dayOfYear()
}

// JavaneseAt returns the Javanese date offset days from the anchor.
// It skips whole eight-year cycles, then at most seven years and eleven
// months, and always agrees with WalkForward.
func JavaneseAt(offset int) JavaneseDate {
	total := anchorState().ordinal() + offset

	cycles := floorDiv(total, winduCycleDays)
	year := anchor.Javanese.Year + cycles*yearTypeCount
	rest := total - cycles*winduCycleDays

	yt := YearTypeOf(year)
	for rest >= YearLength(yt) {
		rest -= YearLength(yt)
		year++
		yt = YearTypeOf(year)
	}

	m := Sura
	for rest >= MonthLength(m, yt) {
		rest -= MonthLength(m, yt)
		m++
	}

	return JavaneseDate{Date: rest + 1, Month: m, YearType: yt, Year: year}
}

// OffsetOf returns the day offset from the anchor to the given Javanese
// date. It always agrees with WalkToJavanese.
func OffsetOf(date int, month Month, year int) (int, error) {
	target, err := newState(date, month, year)
	if err != nil {
		return 0, err
	}
	return target.ordinal() - anchorState().ordinal(), nil
}
