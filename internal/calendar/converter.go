package calendar

import (
	"fmt"
	"time"
)

// GregorianInfo describes the Gregorian side of a conversion.
type GregorianInfo struct {
	Date     string    `json:"date" yaml:"date"`         // YYYY-MM-DD
	DayName  string    `json:"dayName" yaml:"dayName"`   // Senin through Minggu
	Datetime time.Time `json:"datetime" yaml:"datetime"` // midnight UTC
}

// JavaneseInfo describes the Javanese side of a conversion.
type JavaneseInfo struct {
	Date     int    `json:"date" yaml:"date"`
	Month    string `json:"month" yaml:"month"`
	YearType string `json:"yearType" yaml:"yearType"`
	Year     int    `json:"year" yaml:"year"`
	Windu    string `json:"windu" yaml:"windu"`
}

// CycleInfo holds the Pasaran and Wuku positions of a day.
type CycleInfo struct {
	Pasaran string `json:"pasaran" yaml:"pasaran"`
	Wuku    string `json:"wuku" yaml:"wuku"`
	WukuDay string `json:"wukuDay" yaml:"wukuDay"`
}

// Result is a complete conversion of one day.
type Result struct {
	Gregorian GregorianInfo `json:"gregorian" yaml:"gregorian"`
	Javanese  JavaneseInfo  `json:"javanese" yaml:"javanese"`
	Cycles    CycleInfo     `json:"cycles" yaml:"cycles"`
	Formatted string        `json:"formatted" yaml:"formatted"`

	date     Date
	offset   int
	javanese JavaneseDate
	pasaran  Pasaran
	wuku     Wuku
	wukuDay  WukuDay
}

// Date returns the Gregorian date of r.
func (r *Result) Date() Date { return r.date }

// Offset returns the signed day count from the anchor to r.
func (r *Result) Offset() int { return r.offset }

// JavaneseDate returns the typed Javanese date of r.
func (r *Result) JavaneseDate() JavaneseDate { return r.javanese }

// Pasaran returns the typed Pasaran of r.
func (r *Result) Pasaran() Pasaran { return r.pasaran }

// Wuku returns the typed Wuku week and day of r.
func (r *Result) Wuku() (Wuku, WukuDay) { return r.wuku, r.wukuDay }

// Weton is the day name paired with the Pasaran, e.g. "Selasa Pon".
func (r *Result) Weton() string {
	return r.Gregorian.DayName + " " + r.Cycles.Pasaran
}

// JavaneseInput identifies a Javanese date for reverse conversion.
type JavaneseInput struct {
	Date  int    `json:"date" yaml:"date"`
	Month string `json:"month" yaml:"month"`
	Year  int    `json:"year" yaml:"year"`
}

// =============================================================================
// Converter
// =============================================================================

// Converter converts dates in both directions.
// The zero value is not usable; create one with NewConverter.
type Converter struct {
	iterative bool
	now       func() time.Time
}

// Option configures a Converter.
type Option func(*Converter)

// WithIterativeStepping makes the converter walk day by day instead of
// using block arithmetic. Results are identical; cost grows with the
// distance from the anchor.
func WithIterativeStepping() Option {
	return func(c *Converter) {
		c.iterative = true
	}
}

// WithClock sets the clock used by Today.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		c.now = now
	}
}

// NewConverter creates a Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Iterative reports whether c walks day by day.
func (c *Converter) Iterative() bool {
	return c.iterative
}

// Convert converts a YYYY-MM-DD string.
func (c *Converter) Convert(s string) (*Result, error) {
	d, err := ParseDateString(s)
	if err != nil {
		return nil, err
	}
	return c.build(d), nil
}

// ConvertDate converts a Gregorian date, validating its fields first.
func (c *Converter) ConvertDate(d Date) (*Result, error) {
	d, err := NewDate(d.Year, d.Month, d.Day)
	if err != nil {
		return nil, err
	}
	return c.build(d), nil
}

// ConvertTime converts the calendar date of t in t's own location.
func (c *Converter) ConvertTime(t time.Time) *Result {
	return c.build(DateOf(t))
}

// Today converts the current date.
func (c *Converter) Today() *Result {
	return c.ConvertTime(c.now())
}

// FromJavanese converts a Javanese date back to the Gregorian calendar
// and returns the full result for that day.
func (c *Converter) FromJavanese(in JavaneseInput) (*Result, error) {
	month, err := ParseMonth(in.Month)
	if err != nil {
		return nil, err
	}

	// The closed form also bounds the walk below.
	offset, err := OffsetOf(in.Date, month, in.Year)
	if err != nil {
		return nil, err
	}
	if !offsetInRange(offset) {
		return nil, fmt.Errorf("%w: %d %s %d is before %s",
			ErrInvalidJavaneseDate, in.Date, month, in.Year, minDate)
	}

	if c.iterative {
		if offset, err = WalkToJavanese(in.Date, month, in.Year); err != nil {
			return nil, err
		}
	}

	return c.build(DateFromOffset(offset)), nil
}

// Range converts every day from start to end inclusive.
func (c *Converter) Range(start, end Date) ([]*Result, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s is after %s", ErrInvalidRange, start, end)
	}

	first := DaysFromAnchor(start)
	last := DaysFromAnchor(end)
	results := make([]*Result, 0, last-first+1)
	for d := start; !end.Before(d); d = d.AddDays(1) {
		results = append(results, c.build(d))
	}
	return results, nil
}

func (c *Converter) javaneseAt(offset int) JavaneseDate {
	if c.iterative {
		return WalkForward(offset)
	}
	return JavaneseAt(offset)
}

// build assumes d is a valid date.
func (c *Converter) build(d Date) *Result {
	offset := DaysFromAnchor(d)
	j := c.javaneseAt(offset)
	p := PasaranAt(offset)
	w, wd := WukuAt(offset)

	r := &Result{
		Gregorian: GregorianInfo{
			Date:     d.String(),
			DayName:  DayName(d.Weekday()),
			Datetime: d.Time(),
		},
		Javanese: JavaneseInfo{
			Date:     j.Date,
			Month:    j.Month.String(),
			YearType: j.YearType.String(),
			Year:     j.Year,
			Windu:    j.Windu().String(),
		},
		Cycles: CycleInfo{
			Pasaran: p.String(),
			Wuku:    w.String(),
			WukuDay: wd.String(),
		},
		date:     d,
		offset:   offset,
		javanese: j,
		pasaran:  p,
		wuku:     w,
		wukuDay:  wd,
	}
	r.Formatted = Format(r)
	return r
}
