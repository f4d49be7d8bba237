package calendar

import (
	"time"

	"github.com/carlosjhr64/jd"
)

// ReferenceAnchor binds one Gregorian date to a full Javanese state.
// All calendar arithmetic counts days from this point.
type ReferenceAnchor struct {
	Gregorian Date
	Javanese  JavaneseDate
	Pasaran   Pasaran
	Wuku      Wuku
	WukuDay   WukuDay
}

// The anchor: Tuesday 10 August 2021 is 1 Sura 1955 (Alip), Selasa Pon,
// in Wuku Kulawu.
var anchor = ReferenceAnchor{
	Gregorian: Date{Year: 2021, Month: time.August, Day: 10},
	Javanese: JavaneseDate{
		Date:     1,
		Month:    Sura,
		YearType: Alip,
		Year:     1955,
	},
	Pasaran: Pon,
	Wuku:    27, // Kulawu
	WukuDay: 2,  // Selasa
}

var anchorJulianDay = jd.YMD2J(anchor.Gregorian.Year, int(anchor.Gregorian.Month), anchor.Gregorian.Day)

// Anchor returns the reference anchor. The returned value is a copy.
func Anchor() ReferenceAnchor {
	return anchor
}
