package calendar

import "time"

// gridWeeks is the number of week rows in a month view.
const gridWeeks = 6

// DayCell is one day of a month view.
type DayCell struct {
	Date          string `json:"date" yaml:"date"`
	Day           int    `json:"day" yaml:"day"`
	InMonth       bool   `json:"inMonth" yaml:"inMonth"`
	DayName       string `json:"dayName" yaml:"dayName"`
	Pasaran       string `json:"pasaran" yaml:"pasaran"`
	JavaneseDate  int    `json:"javaneseDate" yaml:"javaneseDate"`
	JavaneseMonth string `json:"javaneseMonth" yaml:"javaneseMonth"`
}

// Week is a Sunday-first row of a month view. A Wuku week also starts on
// Sunday, so every day of the row shares one Wuku.
type Week struct {
	Start string     `json:"start" yaml:"start"`
	Wuku  string     `json:"wuku" yaml:"wuku"`
	Days  [7]DayCell `json:"days" yaml:"days"`
}

// MonthView is a Gregorian month laid out as six weeks with Javanese detail.
type MonthView struct {
	Year         int        `json:"year" yaml:"year"`
	Month        time.Month `json:"month" yaml:"month"`
	Windu        string     `json:"windu" yaml:"windu"`
	JavaneseYear int        `json:"javaneseYear" yaml:"javaneseYear"`
	YearType     string     `json:"yearType" yaml:"yearType"`

	// MonthSpan lists, in order, the Javanese months touched by days of
	// the Gregorian month.
	MonthSpan []string `json:"monthSpan" yaml:"monthSpan"`
	Weeks     []Week   `json:"weeks" yaml:"weeks"`
}

// MonthGrid builds the month view for a Gregorian month. The grid starts
// on the Sunday on or before the first of the month.
func (c *Converter) MonthGrid(year int, month time.Month) (*MonthView, error) {
	first, err := NewDate(year, month, 1)
	if err != nil {
		return nil, err
	}

	header := c.build(first)
	view := &MonthView{
		Year:         year,
		Month:        month,
		Windu:        header.Javanese.Windu,
		JavaneseYear: header.Javanese.Year,
		YearType:     header.Javanese.YearType,
		Weeks:        make([]Week, 0, gridWeeks),
	}

	seen := make(map[string]bool)
	day := first.AddDays(-int(first.Weekday()))
	for w := 0; w < gridWeeks; w++ {
		week := Week{Start: day.String()}
		for i := 0; i < 7; i++ {
			r := c.build(day)
			if i == 0 {
				week.Wuku = r.Cycles.Wuku
			}

			inMonth := day.Month == month && day.Year == year
			week.Days[i] = DayCell{
				Date:          r.Gregorian.Date,
				Day:           day.Day,
				InMonth:       inMonth,
				DayName:       r.Gregorian.DayName,
				Pasaran:       r.Cycles.Pasaran,
				JavaneseDate:  r.Javanese.Date,
				JavaneseMonth: r.Javanese.Month,
			}

			if inMonth && !seen[r.Javanese.Month] {
				seen[r.Javanese.Month] = true
				view.MonthSpan = append(view.MonthSpan, r.Javanese.Month)
			}
			day = day.AddDays(1)
		}
		view.Weeks = append(view.Weeks, week)
	}

	return view, nil
}
