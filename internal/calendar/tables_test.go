package calendar

import (
	"testing"
	"time"
)

func TestYearLength_SumOfMonths(t *testing.T) {
	for y := Alip; y <= Jimakir; y++ {
		sum := 0
		for m := Sura; m <= Besar; m++ {
			sum += MonthLength(m, y)
		}

		want := 354
		if y.IsLeap() {
			want = 355
		}
		if sum != want {
			t.Errorf("%s: sum of month lengths = %d, want %d", y, sum, want)
		}
		if YearLength(y) != want {
			t.Errorf("YearLength(%s) = %d, want %d", y, YearLength(y), want)
		}
	}
}

func TestMonthLength_LeapException(t *testing.T) {
	tests := []struct {
		month    Month
		yearType YearType
		want     int
	}{
		{Besar, Ehe, 30},
		{Besar, Dal, 30},
		{Besar, Jimakir, 30},
		{Besar, Alip, 29},
		{Besar, Je, 29},
		{Sura, Ehe, 30},
		{Sapar, Ehe, 29},
		{Dulkangidah, Alip, 30},
		{Sawal, Jimakir, 29},
	}

	for _, tt := range tests {
		t.Run(tt.month.String()+"/"+tt.yearType.String(), func(t *testing.T) {
			if got := MonthLength(tt.month, tt.yearType); got != tt.want {
				t.Errorf("MonthLength(%s, %s) = %d, want %d", tt.month, tt.yearType, got, tt.want)
			}
		})
	}
}

func TestLeapYearTypes(t *testing.T) {
	var leap []YearType
	for y := Alip; y <= Jimakir; y++ {
		if y.IsLeap() {
			leap = append(leap, y)
		}
	}
	if len(leap) != 3 || leap[0] != Ehe || leap[1] != Dal || leap[2] != Jimakir {
		t.Errorf("leap year types = %v, want [Ehe Dal Jimakir]", leap)
	}
}

func TestWinduCycleDays(t *testing.T) {
	sum := 0
	for y := Alip; y <= Jimakir; y++ {
		sum += YearLength(y)
	}
	if sum != winduCycleDays {
		t.Errorf("eight-year cycle = %d days, want %d", sum, winduCycleDays)
	}
}

func TestYearType_Windu(t *testing.T) {
	tests := []struct {
		yearType YearType
		want     string
	}{
		{Alip, "Adi"},
		{Ehe, "Adi"},
		{Jimawal, "Kuntara"},
		{Je, "Kuntara"},
		{Dal, "Sengara"},
		{Be, "Sengara"},
		{Wawu, "Sancaya"},
		{Jimakir, "Sancaya"},
	}

	for _, tt := range tests {
		if got := tt.yearType.Windu().String(); got != tt.want {
			t.Errorf("%s.Windu() = %q, want %q", tt.yearType, got, tt.want)
		}
	}
}

func TestDayName(t *testing.T) {
	tests := []struct {
		weekday time.Weekday
		want    string
	}{
		{time.Monday, "Senin"},
		{time.Tuesday, "Selasa"},
		{time.Wednesday, "Rabu"},
		{time.Thursday, "Kamis"},
		{time.Friday, "Jumat"},
		{time.Saturday, "Sabtu"},
		{time.Sunday, "Minggu"},
	}

	for _, tt := range tests {
		if got := DayName(tt.weekday); got != tt.want {
			t.Errorf("DayName(%s) = %q, want %q", tt.weekday, got, tt.want)
		}
	}
}

func TestString_OutOfRange(t *testing.T) {
	if got := YearType(9).String(); got != "YearType(9)" {
		t.Errorf("YearType(9).String() = %q", got)
	}
	if got := Month(-1).String(); got != "Month(-1)" {
		t.Errorf("Month(-1).String() = %q", got)
	}
	if got := Wuku(30).String(); got != "Wuku(30)" {
		t.Errorf("Wuku(30).String() = %q", got)
	}
}

func TestConstants(t *testing.T) {
	c := Constants()

	counts := map[string]struct{ got, want int }{
		"YearTypes":   {len(c.YearTypes), 8},
		"PasaranDays": {len(c.PasaranDays), 5},
		"WinduTypes":  {len(c.WinduTypes), 4},
		"Months":      {len(c.Months), 12},
		"DayNames":    {len(c.DayNames), 7},
		"WukuNames":   {len(c.WukuNames), 30},
		"WukuDays":    {len(c.WukuDays), 7},
	}
	for name, n := range counts {
		if n.got != n.want {
			t.Errorf("len(%s) = %d, want %d", name, n.got, n.want)
		}
	}

	if c.Months[3] != "Bakda Mulud" {
		t.Errorf("Months[3] = %q, want %q", c.Months[3], "Bakda Mulud")
	}
	if c.DayNames[0] != "Senin" || c.WukuDays[0] != "Ahad" {
		t.Errorf("DayNames[0] = %q, WukuDays[0] = %q", c.DayNames[0], c.WukuDays[0])
	}

	// Callers get copies
	c.Months[0] = "changed"
	if Constants().Months[0] != "Sura" {
		t.Error("Constants() shares its backing tables")
	}
}

func TestLookupNames(t *testing.T) {
	if got, ok := LookupDayName("  selasa "); !ok || got != "Selasa" {
		t.Errorf("LookupDayName(selasa) = %q, %v", got, ok)
	}
	if _, ok := LookupDayName("Tuesday"); ok {
		t.Error("LookupDayName(Tuesday) succeeded")
	}

	if got, ok := LookupPasaran("PON"); !ok || got != Pon {
		t.Errorf("LookupPasaran(PON) = %v, %v", got, ok)
	}
	if _, ok := LookupPasaran("Manis"); ok {
		t.Error("LookupPasaran(Manis) succeeded")
	}
}
