// Package calendar converts dates between the proleptic Gregorian calendar
// and the Javanese (Anno Javanico) calendar, and derives the Pasaran,
// Wuku and Windu cycles used in Javanese timekeeping.
//
// Every table in this package is fixed at compile time and never mutated,
// so all functions are safe for concurrent use.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Cycle sizes
const (
	yearTypeCount = 8
	monthCount    = 12
	pasaranCount  = 5
	wukuCount     = 30
	wukuDayCount  = 7
	winduCount    = 4

	// wukuCycleDays is the length of the full Wuku cycle (30 weeks of 7 days).
	wukuCycleDays = wukuCount * wukuDayCount

	// winduCycleDays is the length of one full eight-year cycle:
	// five common years of 354 days and three leap years of 355 days.
	winduCycleDays = 5*commonYearDays + 3*leapYearDays

	commonYearDays = 354
	leapYearDays   = 355
)

// =============================================================================
// Year types
// =============================================================================

// YearType is a position in the eight-year cycle.
type YearType int

const (
	Alip YearType = iota
	Ehe
	Jimawal
	Je
	Dal
	Be
	Wawu
	Jimakir
)

var yearTypeNames = [yearTypeCount]string{
	"Alip", "Ehe", "Jimawal", "Je", "Dal", "Be", "Wawu", "Jimakir",
}

func (y YearType) String() string {
	if y < 0 || y >= yearTypeCount {
		return fmt.Sprintf("YearType(%d)", int(y))
	}
	return yearTypeNames[y]
}

// IsLeap reports whether years of this type have 355 days.
// Ehe, Dal and Jimakir are the leap types.
func (y YearType) IsLeap() bool {
	switch y {
	case Ehe, Dal, Jimakir:
		return true
	}
	return false
}

// Windu returns the Windu label covering this year type.
// Each Windu covers two consecutive year types.
func (y YearType) Windu() Windu {
	return Windu(int(y) / 2)
}

// YearLength returns the number of days in a year of the given type.
func YearLength(y YearType) int {
	if y.IsLeap() {
		return leapYearDays
	}
	return commonYearDays
}

// =============================================================================
// Months
// =============================================================================

// Month is one of the twelve Javanese months, Sura first.
type Month int

const (
	Sura Month = iota
	Sapar
	Mulud
	BakdaMulud
	JumadilAwal
	JumadilAkir
	Rejeb
	Ruwah
	Pasa
	Sawal
	Dulkangidah
	Besar
)

var monthNames = [monthCount]string{
	"Sura", "Sapar", "Mulud", "Bakda Mulud", "Jumadil Awal", "Jumadil Akir",
	"Rejeb", "Ruwah", "Pasa", "Sawal", "Dulkangidah", "Besar",
}

// monthBaseDays holds month lengths for common years.
var monthBaseDays = [monthCount]int{30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 30, 29}

func (m Month) String() string {
	if !m.valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m]
}

func (m Month) valid() bool {
	return m >= Sura && m <= Besar
}

// MonthLength returns the number of days in month m of a year of type y.
// Besar gains a thirtieth day in leap years; no other month changes.
func MonthLength(m Month, y YearType) int {
	if m == Besar && y.IsLeap() {
		return 30
	}
	return monthBaseDays[m]
}

// =============================================================================
// Pasaran, Wuku, Windu and day names
// =============================================================================

// Pasaran is a day of the five-day market cycle.
type Pasaran int

const (
	Wage Pasaran = iota
	Kliwon
	Legi
	Pahing
	Pon
)

var pasaranNames = [pasaranCount]string{"Wage", "Kliwon", "Legi", "Pahing", "Pon"}

func (p Pasaran) String() string {
	if p < 0 || p >= pasaranCount {
		return fmt.Sprintf("Pasaran(%d)", int(p))
	}
	return pasaranNames[p]
}

// Wuku is one of the thirty named weeks of the 210-day cycle.
type Wuku int

var wukuNames = [wukuCount]string{
	"Sinta", "Landep", "Wukir", "Kurantil", "Tolu", "Gumbreg",
	"Warigalit", "Warigagung", "Julungwangi", "Sungsang", "Galungan",
	"Kuningan", "Langkir", "Mandasia", "Pujut", "Pahang", "Kuruwelut",
	"Mrakeh", "Tambir", "Madangkungan", "Maktal", "Wuye", "Manahil",
	"Prangbakat", "Bala", "Wugu", "Wayang", "Kulawu", "Dhukut", "Watugunung",
}

func (w Wuku) String() string {
	if w < 0 || w >= wukuCount {
		return fmt.Sprintf("Wuku(%d)", int(w))
	}
	return wukuNames[w]
}

// WukuDay is a day within a Wuku week. A Wuku week starts on Ahad (Sunday).
type WukuDay int

var wukuDayNames = [wukuDayCount]string{
	"Ahad", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}

func (d WukuDay) String() string {
	if d < 0 || d >= wukuDayCount {
		return fmt.Sprintf("WukuDay(%d)", int(d))
	}
	return wukuDayNames[d]
}

// Windu labels a pair of consecutive year types.
type Windu int

const (
	Adi Windu = iota
	Kuntara
	Sengara
	Sancaya
)

var winduNames = [winduCount]string{"Adi", "Kuntara", "Sengara", "Sancaya"}

func (w Windu) String() string {
	if w < 0 || w >= winduCount {
		return fmt.Sprintf("Windu(%d)", int(w))
	}
	return winduNames[w]
}

// dayNames are Gregorian day-of-week names, Monday first.
var dayNames = [7]string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu", "Minggu"}

// DayName returns the day-of-week name used in formatted results.
func DayName(wd time.Weekday) string {
	return dayNames[(int(wd)+6)%7]
}

// LookupDayName returns the canonical spelling of a day name, ignoring
// case and surrounding whitespace.
func LookupDayName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, n := range dayNames {
		if strings.EqualFold(n, name) {
			return n, true
		}
	}
	return "", false
}

// LookupPasaran resolves a Pasaran name, ignoring case and surrounding
// whitespace.
func LookupPasaran(name string) (Pasaran, bool) {
	name = strings.TrimSpace(name)
	for i, n := range pasaranNames {
		if strings.EqualFold(n, name) {
			return Pasaran(i), true
		}
	}
	return 0, false
}

// =============================================================================
// Constant export
// =============================================================================

// ConstantSet lists every label table, for consumers building selection widgets.
type ConstantSet struct {
	YearTypes   []string `json:"yearTypes" yaml:"yearTypes"`
	PasaranDays []string `json:"pasaranDays" yaml:"pasaranDays"`
	WinduTypes  []string `json:"winduTypes" yaml:"winduTypes"`
	Months      []string `json:"months" yaml:"months"`
	DayNames    []string `json:"dayNames" yaml:"dayNames"`
	WukuNames   []string `json:"wukuNames" yaml:"wukuNames"`
	WukuDays    []string `json:"wukuDays" yaml:"wukuDays"`
}

// Constants returns copies of all label tables. Callers may modify the result.
func Constants() ConstantSet {
	return ConstantSet{
		YearTypes:   append([]string(nil), yearTypeNames[:]...),
		PasaranDays: append([]string(nil), pasaranNames[:]...),
		WinduTypes:  append([]string(nil), winduNames[:]...),
		Months:      append([]string(nil), monthNames[:]...),
		DayNames:    append([]string(nil), dayNames[:]...),
		WukuNames:   append([]string(nil), wukuNames[:]...),
		WukuDays:    append([]string(nil), wukuDayNames[:]...),
	}
}
