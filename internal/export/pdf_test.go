package export

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/zapponejosh/kalender-jawa/internal/calendar"
)

func monthView(t *testing.T, year int, month time.Month) *calendar.MonthView {
	t.Helper()
	view, err := calendar.NewConverter().MonthGrid(year, month)
	if err != nil {
		t.Fatalf("MonthGrid(%d, %s) error = %v", year, month, err)
	}
	return view
}

func TestWriteMonthPDF(t *testing.T) {
	tests := []struct {
		name string
		tag  language.Tag
	}{
		{"indonesian", language.Indonesian},
		{"english", language.English},
	}

	view := monthView(t, 2021, time.August)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteMonthPDF(view, tt.tag, &buf); err != nil {
				t.Fatalf("WriteMonthPDF() error = %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
				t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:min(8, buf.Len())])
			}
			if !bytes.Contains(buf.Bytes(), []byte("%%EOF")) {
				t.Error("output has no PDF trailer")
			}
		})
	}
}

func TestWriteMonthsPDF_Pages(t *testing.T) {
	views := []*calendar.MonthView{
		monthView(t, 2021, time.July),
		monthView(t, 2021, time.August),
		monthView(t, 2021, time.September),
	}

	var one, three bytes.Buffer
	if err := WriteMonthPDF(views[0], language.Indonesian, &one); err != nil {
		t.Fatalf("WriteMonthPDF() error = %v", err)
	}
	if err := WriteMonthsPDF(views, language.Indonesian, &three); err != nil {
		t.Fatalf("WriteMonthsPDF() error = %v", err)
	}
	if three.Len() <= one.Len() {
		t.Errorf("three-month PDF (%d bytes) not larger than one-month PDF (%d bytes)", three.Len(), one.Len())
	}
}

func TestWriteMonthsPDF_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMonthsPDF(nil, language.English, &buf); !errors.Is(err, ErrNoMonths) {
		t.Errorf("WriteMonthsPDF(nil) error = %v, want ErrNoMonths", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes on error", buf.Len())
	}
}

func TestWriteMonthPDF_NilView(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMonthPDF(nil, language.English, &buf); !errors.Is(err, ErrNoMonths) {
		t.Errorf("WriteMonthPDF(nil) error = %v, want ErrNoMonths", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes on error", buf.Len())
	}
}
