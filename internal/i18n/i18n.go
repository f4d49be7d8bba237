// Package i18n localizes presentation labels for the API and CLI.
//
// Calendar names (months, Pasaran, Wuku and so on) are never translated;
// only the surrounding headings and Gregorian day and month names are.
package i18n

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported languages, default first.
var supported = []language.Tag{language.Indonesian, language.English}

var matcher = language.NewMatcher(supported)

// translation pairs an Indonesian and an English string.
type translation struct {
	id, en string
}

var labels = map[string]translation{
	"converter":       {"Konverter", "Converter"},
	"calendar":        {"Kalender", "Calendar"},
	"title":           {"Kalender Jawa", "Javanese Calendar"},
	"dateConverter":   {"Konverter Tanggal", "Date Converter"},
	"selectDate":      {"Pilih Tanggal", "Select Date"},
	"today":           {"Hari Ini", "Today"},
	"gregorianDate":   {"Tanggal Masehi", "Gregorian Date"},
	"javaneseDate":    {"Tanggal Jawa", "Javanese Date"},
	"cycles":          {"Siklus", "Cycles"},
	"wuku":            {"Wuku", "Wuku"},
	"pasaran":         {"Pasaran", "Pasaran"},
	"windu":           {"Windu", "Windu"},
	"weton":           {"Weton", "Weton"},
	"monthlyCalendar": {"Kalender Bulanan", "Monthly Calendar"},
	"selectMonth":     {"Pilih Bulan", "Select Month"},
	"javaneseYear":    {"Tahun Jawa", "Javanese Year"},
	"yearType":        {"Jenis Tahun", "Year Type"},
	"javaneseMonths":  {"Bulan Jawa", "Javanese Months"},
	"aboutCycles":     {"Memahami Siklus", "Understanding the Cycles"},
}

var weekdays = [7]translation{
	{"Minggu", "Sunday"},
	{"Senin", "Monday"},
	{"Selasa", "Tuesday"},
	{"Rabu", "Wednesday"},
	{"Kamis", "Thursday"},
	{"Jumat", "Friday"},
	{"Sabtu", "Saturday"},
}

var months = [12]translation{
	{"Januari", "January"},
	{"Februari", "February"},
	{"Maret", "March"},
	{"April", "April"},
	{"Mei", "May"},
	{"Juni", "June"},
	{"Juli", "July"},
	{"Agustus", "August"},
	{"September", "September"},
	{"Oktober", "October"},
	{"November", "November"},
	{"Desember", "December"},
}

var cat = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Indonesian))
	set := func(key string, tr translation) {
		// SetString only fails on malformed messages; ours are plain text.
		_ = b.SetString(language.Indonesian, key, tr.id)
		_ = b.SetString(language.English, key, tr.en)
	}

	for key, tr := range labels {
		set(key, tr)
	}
	for i, tr := range weekdays {
		set(weekdayKey(time.Weekday(i)), tr)
	}
	for i, tr := range months {
		set(monthKey(time.Month(i+1)), tr)
	}
	return b
}

func weekdayKey(wd time.Weekday) string {
	return "weekday." + strings.ToLower(wd.String())
}

func monthKey(m time.Month) string {
	return "month." + strings.ToLower(m.String())
}

// Default returns the default language.
func Default() language.Tag {
	return supported[0]
}

// Supported returns the supported languages, default first.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Match picks the best supported language for an Accept-Language header
// or a bare tag such as "en". Unparseable input gives the default.
func Match(accept string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, index, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default()
	}
	return supported[index]
}

// Printer returns a message printer for tag backed by the label catalog.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(cat))
}

// Label returns the localized label for key, or key itself if unknown.
func Label(tag language.Tag, key string) string {
	if _, ok := labels[key]; !ok {
		return key
	}
	return Printer(tag).Sprintf(key)
}

// Labels returns every UI label for tag.
func Labels(tag language.Tag) map[string]string {
	p := Printer(tag)
	out := make(map[string]string, len(labels))
	for key := range labels {
		out[key] = p.Sprintf(key)
	}
	return out
}

// LabelKeys returns the label keys in sorted order.
func LabelKeys() []string {
	keys := make([]string, 0, len(labels))
	for key := range labels {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// GregorianDayName returns the localized name of a weekday.
func GregorianDayName(tag language.Tag, wd time.Weekday) string {
	return Printer(tag).Sprintf(weekdayKey(wd))
}

// GregorianMonthName returns the localized name of a Gregorian month.
func GregorianMonthName(tag language.Tag, m time.Month) string {
	return Printer(tag).Sprintf(monthKey(m))
}
