package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func fixedClock() time.Time {
	return time.Date(2021, time.August, 10, 9, 30, 0, 0, time.UTC)
}

// run executes the root command with plain, non-interactive output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd(WithClock(fixedClock), WithTerminal(false, false))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"explicit date", []string{"convert", "2021-08-10"}, "1 Sura 1955, Selasa Pon, Alip, Adi, Kulawu Selasa\n"},
		{"today", []string{"convert"}, "1 Sura 1955, Selasa Pon, Alip, Adi, Kulawu Selasa\n"},
		{"iterative", []string{"convert", "--iterative", "2022-07-30"}, "1 Sura 1956, Sabtu Pahing, Ehe, Adi, Mrakeh Sabtu\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvert_InvalidDate(t *testing.T) {
	for _, arg := range []string{"2021-13-01", "10-08-2021", "2023-02-29"} {
		if _, err := run(t, "convert", arg); err == nil {
			t.Errorf("convert %s: expected error", arg)
		}
	}
}

func TestConvert_Until(t *testing.T) {
	got, err := run(t, "convert", "2021-08-09", "--until", "2021-08-11")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "2021-08-09  30 Besar 1954") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "2021-08-11  2 Sura 1955") {
		t.Errorf("last line = %q", lines[2])
	}

	if _, err := run(t, "convert", "2021-08-11", "--until", "2021-08-09"); err == nil {
		t.Error("expected error for reversed range")
	}
}

func TestConvert_JSON(t *testing.T) {
	got, err := run(t, "convert", "2021-08-10", "-o", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var r struct {
		Gregorian struct {
			Date    string `json:"date"`
			DayName string `json:"dayName"`
		} `json:"gregorian"`
		Javanese struct {
			Date  int    `json:"date"`
			Month string `json:"month"`
			Year  int    `json:"year"`
		} `json:"javanese"`
		Cycles struct {
			Pasaran string `json:"pasaran"`
		} `json:"cycles"`
	}
	if err := json.Unmarshal([]byte(got), &r); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, got)
	}

	if r.Gregorian.Date != "2021-08-10" || r.Gregorian.DayName != "Selasa" {
		t.Errorf("gregorian = %+v", r.Gregorian)
	}
	if r.Javanese.Date != 1 || r.Javanese.Month != "Sura" || r.Javanese.Year != 1955 {
		t.Errorf("javanese = %+v", r.Javanese)
	}
	if r.Cycles.Pasaran != "Pon" {
		t.Errorf("pasaran = %q", r.Cycles.Pasaran)
	}
}

func TestConvert_YAML(t *testing.T) {
	got, err := run(t, "convert", "2021-08-10", "--output", "yaml")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var r map[string]any
	if err := yaml.Unmarshal([]byte(got), &r); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, got)
	}
	if r["formatted"] != "1 Sura 1955, Selasa Pon, Alip, Adi, Kulawu Selasa" {
		t.Errorf("formatted = %v", r["formatted"])
	}
}

func TestOutputFlag_Invalid(t *testing.T) {
	_, err := run(t, "convert", "-o", "xml")
	if err == nil || !strings.Contains(err.Error(), "xml") {
		t.Errorf("err = %v, want unknown output format", err)
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"anchor", []string{"--date", "1", "--month", "Sura", "--year", "1955"}, "1 Sura 1955, Selasa Pon"},
		{"case insensitive", []string{"--date", "1", "--month", "sura", "--year", "1956"}, "1 Sura 1956, Sabtu Pahing"},
		{"leap Besar", []string{"--date", "30", "--month", "Besar", "--year", "1956"}, "30 Besar 1956"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, append([]string{"reverse"}, tt.args...)...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("output = %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestReverse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing year", []string{"--date", "1", "--month", "Sura"}},
		{"unknown month", []string{"--date", "1", "--month", "Januari", "--year", "1955"}},
		{"day out of range", []string{"--date", "30", "--month", "Sapar", "--year", "1955"}},
		{"interactive without terminal", []string{"-i"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, append([]string{"reverse"}, tt.args...)...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestMonth(t *testing.T) {
	got, err := run(t, "month", "2021-08")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"Agustus 2021", "Tahun Jawa 1954", "Besar - Sura", "Kulawu", "1 Sura", "Minggu"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestMonth_DefaultsToCurrent(t *testing.T) {
	explicit, err := run(t, "month", "2021-08")
	if err != nil {
		t.Fatal(err)
	}
	current, err := run(t, "month")
	if err != nil {
		t.Fatal(err)
	}
	if explicit != current {
		t.Error("month without argument should show the clock's month")
	}
}

func TestMonth_English(t *testing.T) {
	got, err := run(t, "month", "2021-08", "--lang", "en")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(got, "August 2021") || !strings.Contains(got, "Javanese Year 1954") {
		t.Errorf("output not localized:\n%s", got)
	}
}

func TestMonth_PDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agustus.pdf")
	if _, err := run(t, "month", "2021-08", "--pdf", path); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("file does not start with a PDF header")
	}
}

func TestMonth_DefaultsAtYearEnd(t *testing.T) {
	// Just before midnight on New Year's Eve the year and month must come
	// from the same clock reading.
	calls := 0
	clock := func() time.Time {
		calls++
		if calls == 1 {
			return time.Date(2021, time.December, 31, 23, 59, 59, 0, time.UTC)
		}
		return time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	cmd := NewRootCmd(WithClock(clock), WithTerminal(false, false))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"month", "--lang", "en"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := out.String(); !strings.Contains(got, "December 2021") {
		t.Errorf("output should show December 2021:\n%s", got)
	}
}

func TestWritePDF_RemovesFileOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")

	if err := writePDF(path, &options{}, nil); err == nil {
		t.Fatal("expected error for a nil month view")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("partial PDF left at %s (stat error %v)", path, err)
	}
}

func TestMonth_PDFUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "agustus.pdf")
	if _, err := run(t, "month", "2021-08", "--pdf", path); err == nil {
		t.Error("expected error for a PDF path in a missing directory")
	}
}

func TestMonth_Invalid(t *testing.T) {
	for _, arg := range []string{"2021-13", "2021", "August"} {
		if _, err := run(t, "month", arg); err == nil {
			t.Errorf("month %s: expected error", arg)
		}
	}
}

func TestConstants(t *testing.T) {
	got, err := run(t, "constants")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Wage, Kliwon, Legi, Pahing, Pon", "Sinta", "Watugunung", "Alip", "Sancaya"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}

	got, err = run(t, "constants", "-o", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var c struct {
		WukuNames   []string `json:"wukuNames"`
		PasaranDays []string `json:"pasaranDays"`
	}
	if err := json.Unmarshal([]byte(got), &c); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(c.WukuNames) != 30 || len(c.PasaranDays) != 5 {
		t.Errorf("got %d wuku, %d pasaran", len(c.WukuNames), len(c.PasaranDays))
	}
}

func TestExplain(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"id", "# Memahami Siklus"},
		{"en", "# Understanding the Cycles"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			got, err := run(t, "explain", "--lang", tt.lang)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("output starts %q, want %q", firstLine(got), tt.want)
			}
			if !strings.Contains(got, "Watugunung") {
				t.Error("explain should list the Wuku")
			}
		})
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
