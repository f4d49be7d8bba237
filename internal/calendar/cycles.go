package calendar

// mod returns a modulo n in [0, n).
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// floorDiv returns a divided by n rounded toward negative infinity. n > 0.
func floorDiv(a, n int) int {
	q := a / n
	if a%n < 0 {
		q--
	}
	return q
}

// PasaranAt returns the Pasaran day offset days from the anchor.
func PasaranAt(offset int) Pasaran {
	return Pasaran(mod(int(anchor.Pasaran)+offset, pasaranCount))
}

// WukuAt returns the Wuku week and day offset days from the anchor.
func WukuAt(offset int) (Wuku, WukuDay) {
	total := offset + int(anchor.Wuku)*wukuDayCount + int(anchor.WukuDay)
	pos := mod(total, wukuCycleDays)
	return Wuku(pos / wukuDayCount % wukuCount), WukuDay(pos % wukuDayCount)
}

// YearTypeOf returns the year type of a Javanese year number.
// Year types repeat every eight years in step with the anchor year.
func YearTypeOf(year int) YearType {
	return YearType(mod(int(anchor.Javanese.YearType)+year-anchor.Javanese.Year, yearTypeCount))
}
