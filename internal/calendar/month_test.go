package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestMonthGrid_August2021(t *testing.T) {
	view, err := NewConverter().MonthGrid(2021, time.August)
	if err != nil {
		t.Fatalf("MonthGrid() error = %v", err)
	}

	if len(view.Weeks) != 6 {
		t.Fatalf("len(Weeks) = %d, want 6", len(view.Weeks))
	}

	// 1 August 2021 is a Sunday, so the grid starts on the first.
	if view.Weeks[0].Start != "2021-08-01" {
		t.Errorf("Weeks[0].Start = %s, want 2021-08-01", view.Weeks[0].Start)
	}
	if view.Weeks[0].Wuku != "Wayang" || view.Weeks[1].Wuku != "Kulawu" {
		t.Errorf("Wuku rows = %s, %s; want Wayang, Kulawu", view.Weeks[0].Wuku, view.Weeks[1].Wuku)
	}

	anchorCell := view.Weeks[1].Days[2]
	if anchorCell.Date != "2021-08-10" || anchorCell.JavaneseDate != 1 || anchorCell.JavaneseMonth != "Sura" {
		t.Errorf("anchor cell = %+v", anchorCell)
	}
	if anchorCell.Pasaran != "Pon" || anchorCell.DayName != "Selasa" {
		t.Errorf("anchor cell pasaran/day = %s/%s", anchorCell.Pasaran, anchorCell.DayName)
	}

	if len(view.MonthSpan) != 2 || view.MonthSpan[0] != "Besar" || view.MonthSpan[1] != "Sura" {
		t.Errorf("MonthSpan = %v, want [Besar Sura]", view.MonthSpan)
	}

	if view.Windu != "Sancaya" || view.JavaneseYear != 1954 || view.YearType != "Jimakir" {
		t.Errorf("header = %s %d %s, want Sancaya 1954 Jimakir", view.Windu, view.JavaneseYear, view.YearType)
	}

	last := view.Weeks[5].Days[6]
	if last.Date != "2021-09-11" || last.InMonth {
		t.Errorf("last cell = %+v, want 2021-09-11 outside the month", last)
	}
	if !view.Weeks[4].Days[2].InMonth { // 31 August
		t.Errorf("2021-08-31 not marked in month")
	}
}

func TestMonthGrid_WeeksAreConsecutive(t *testing.T) {
	view, err := NewConverter().MonthGrid(2024, time.February)
	if err != nil {
		t.Fatalf("MonthGrid() error = %v", err)
	}

	// 1 February 2024 is a Thursday; the grid starts the Sunday before.
	if view.Weeks[0].Start != "2024-01-28" {
		t.Errorf("Weeks[0].Start = %s, want 2024-01-28", view.Weeks[0].Start)
	}

	c := Constants()
	index := func(name string) int {
		for i, n := range c.WukuNames {
			if n == name {
				return i
			}
		}
		t.Fatalf("unknown wuku %q", name)
		return -1
	}

	for i := 1; i < len(view.Weeks); i++ {
		prev, cur := index(view.Weeks[i-1].Wuku), index(view.Weeks[i].Wuku)
		if cur != (prev+1)%30 {
			t.Errorf("week %d Wuku %s does not follow %s", i, view.Weeks[i].Wuku, view.Weeks[i-1].Wuku)
		}
	}

	inMonth := 0
	for _, w := range view.Weeks {
		for _, d := range w.Days {
			if d.InMonth {
				inMonth++
			}
		}
	}
	if inMonth != 29 {
		t.Errorf("days in month = %d, want 29", inMonth)
	}
}

func TestMonthGrid_InvalidMonth(t *testing.T) {
	if _, err := NewConverter().MonthGrid(2021, time.Month(13)); !errors.Is(err, ErrInvalidCalendarDate) {
		t.Errorf("MonthGrid(month 13) error = %v, want ErrInvalidCalendarDate", err)
	}
}
