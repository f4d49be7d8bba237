package calendar

import "fmt"

// Format renders a result as
// "{date} {month} {year}, {dayName} {pasaran}, {yearType}, {windu}, {wuku} {wukuDay}".
func Format(r *Result) string {
	return fmt.Sprintf("%d %s %d, %s %s, %s, %s, %s %s",
		r.Javanese.Date, r.Javanese.Month, r.Javanese.Year,
		r.Gregorian.DayName, r.Cycles.Pasaran,
		r.Javanese.YearType,
		r.Javanese.Windu,
		r.Cycles.Wuku, r.Cycles.WukuDay,
	)
}
