package calendar

import (
	"errors"
	"testing"
)

func TestWalkForward_Anchor(t *testing.T) {
	want := JavaneseDate{Date: 1, Month: Sura, YearType: Alip, Year: 1955}
	if got := WalkForward(0); got != want {
		t.Errorf("WalkForward(0) = %+v, want %+v", got, want)
	}
	if got := JavaneseAt(0); got != want {
		t.Errorf("JavaneseAt(0) = %+v, want %+v", got, want)
	}
}

func TestWalkForward_AroundAnchor(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		want   JavaneseDate
	}{
		{"day before", -1, JavaneseDate{30, Besar, Jimakir, 1954}},
		{"day after", 1, JavaneseDate{2, Sura, Alip, 1955}},
		{"end of Sura", 29, JavaneseDate{30, Sura, Alip, 1955}},
		{"start of Sapar", 30, JavaneseDate{1, Sapar, Alip, 1955}},
		{"nine days before", -9, JavaneseDate{22, Besar, Jimakir, 1954}},
		{"next year", 354, JavaneseDate{1, Sura, Ehe, 1956}},
		{"last day of Alip", 353, JavaneseDate{29, Besar, Alip, 1955}},
		{"last day of Ehe", 354 + 354, JavaneseDate{30, Besar, Ehe, 1956}},
		{"one cycle later", winduCycleDays, JavaneseDate{1, Sura, Alip, 1963}},
		{"one cycle earlier", -winduCycleDays, JavaneseDate{1, Sura, Alip, 1947}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WalkForward(tt.offset); got != tt.want {
				t.Errorf("WalkForward(%d) = %+v, want %+v", tt.offset, got, tt.want)
			}
			if got := JavaneseAt(tt.offset); got != tt.want {
				t.Errorf("JavaneseAt(%d) = %+v, want %+v", tt.offset, got, tt.want)
			}
		})
	}
}

// The day-by-day rule is the reference; block arithmetic must match it
// on every day of a wide range.
func TestJavaneseAt_MatchesStepping(t *testing.T) {
	const span = 40000

	s := anchorState()
	for i := 0; i < span; i++ {
		s.prev()
	}

	for offset := -span; offset <= span; offset++ {
		if got := JavaneseAt(offset); got != s.javanese() {
			t.Fatalf("JavaneseAt(%d) = %+v, stepping gives %+v", offset, got, s.javanese())
		}
		s.next()
	}
}

func TestOffsetOf_RoundTrip(t *testing.T) {
	for offset := -40000; offset <= 40000; offset++ {
		j := JavaneseAt(offset)
		got, err := OffsetOf(j.Date, j.Month, j.Year)
		if err != nil {
			t.Fatalf("OffsetOf(%v) error = %v", j, err)
		}
		if got != offset {
			t.Fatalf("OffsetOf(%v) = %d, want %d", j, got, offset)
		}
	}
}

func TestWalkToJavanese_MatchesOffsetOf(t *testing.T) {
	for offset := -20000; offset <= 20000; offset += 997 {
		j := WalkForward(offset)

		walked, err := WalkToJavanese(j.Date, j.Month, j.Year)
		if err != nil {
			t.Fatalf("WalkToJavanese(%v) error = %v", j, err)
		}
		if walked != offset {
			t.Errorf("WalkToJavanese(%v) = %d, want %d", j, walked, offset)
		}

		computed, err := OffsetOf(j.Date, j.Month, j.Year)
		if err != nil {
			t.Fatalf("OffsetOf(%v) error = %v", j, err)
		}
		if computed != walked {
			t.Errorf("OffsetOf(%v) = %d, WalkToJavanese = %d", j, computed, walked)
		}
	}
}

// Rolling back from the first of each month must land on the last day of
// the previous month, and rolling forward from there must return.
func TestMonthBoundaries(t *testing.T) {
	for _, year := range []int{1955, 1956, 1959, 1960} { // Alip, Ehe, Dal, Be
		for m := Sura; m <= Besar; m++ {
			start, err := OffsetOf(1, m, year)
			if err != nil {
				t.Fatalf("OffsetOf(1, %s, %d) error = %v", m, year, err)
			}

			prevMonth, prevYear := m-1, year
			if m == Sura {
				prevMonth, prevYear = Besar, year-1
			}
			want := JavaneseDate{
				Date:     MonthLength(prevMonth, YearTypeOf(prevYear)),
				Month:    prevMonth,
				YearType: YearTypeOf(prevYear),
				Year:     prevYear,
			}

			if got := JavaneseAt(start - 1); got != want {
				t.Errorf("day before 1 %s %d: JavaneseAt = %+v, want %+v", m, year, got, want)
			}
			if got := WalkForward(start - 1); got != want {
				t.Errorf("day before 1 %s %d: WalkForward = %+v, want %+v", m, year, got, want)
			}

			s := state{date: want.Date, month: want.Month, yearType: want.YearType, year: want.Year}
			s.next()
			if s.javanese() != (JavaneseDate{1, m, YearTypeOf(year), year}) {
				t.Errorf("day after %v = %+v, want 1 %s %d", want, s.javanese(), m, year)
			}
		}
	}
}

func TestYearWrap_LeapBesar(t *testing.T) {
	tests := []struct {
		year int
		want JavaneseDate
	}{
		{1956, JavaneseDate{29, Besar, Alip, 1955}},
		{1957, JavaneseDate{30, Besar, Ehe, 1956}},
		{1955, JavaneseDate{30, Besar, Jimakir, 1954}},
	}

	for _, tt := range tests {
		start, err := OffsetOf(1, Sura, tt.year)
		if err != nil {
			t.Fatalf("OffsetOf() error = %v", err)
		}
		if got := JavaneseAt(start - 1); got != tt.want {
			t.Errorf("day before 1 Sura %d = %+v, want %+v", tt.year, got, tt.want)
		}
	}
}

func TestOffsetOf_Validation(t *testing.T) {
	tests := []struct {
		name    string
		date    int
		month   Month
		year    int
		wantErr error
	}{
		{"valid", 15, Rejeb, 1955, nil},
		{"30 Sapar", 30, Sapar, 1955, ErrInvalidJavaneseDate},
		{"30 Besar in common year", 30, Besar, 1955, ErrInvalidJavaneseDate},
		{"30 Besar in leap year", 30, Besar, 1956, nil},
		{"31 Sura", 31, Sura, 1955, ErrInvalidJavaneseDate},
		{"day zero", 0, Sura, 1955, ErrInvalidJavaneseDate},
		{"negative day", -3, Sura, 1955, ErrInvalidJavaneseDate},
		{"month out of range", 1, Month(12), 1955, ErrInvalidJavaneseMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OffsetOf(tt.date, tt.month, tt.year)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("OffsetOf() error = %v, want %v", err, tt.wantErr)
			}

			_, err = WalkToJavanese(tt.date, tt.month, tt.year)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("WalkToJavanese() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input   string
		want    Month
		wantErr bool
	}{
		{"Sura", Sura, false},
		{"sura", Sura, false},
		{" Bakda Mulud ", BakdaMulud, false},
		{"JUMADIL AKIR", JumadilAkir, false},
		{"Besar", Besar, false},
		{"Suro", 0, true},
		{"BakdaMulud", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMonth(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidJavaneseMonth) {
					t.Errorf("ParseMonth(%q) error = %v, want ErrInvalidJavaneseMonth", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMonth(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMonth(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
