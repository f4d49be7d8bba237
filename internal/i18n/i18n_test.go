package i18n

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		accept string
		want   language.Tag
	}{
		{"", language.Indonesian},
		{"en", language.English},
		{"en-US,en;q=0.9", language.English},
		{"id-ID", language.Indonesian},
		{"fr", language.Indonesian},
		{"fr;q=0.9, en;q=0.5", language.English},
		{"!!!", language.Indonesian},
	}

	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			if got := Match(tt.accept); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.accept, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		key  string
		want string
	}{
		{language.Indonesian, "title", "Kalender Jawa"},
		{language.English, "title", "Javanese Calendar"},
		{language.English, "gregorianDate", "Gregorian Date"},
		{language.Indonesian, "yearType", "Jenis Tahun"},
		{language.English, "noSuchLabel", "noSuchLabel"},
	}

	for _, tt := range tests {
		if got := Label(tt.tag, tt.key); got != tt.want {
			t.Errorf("Label(%v, %q) = %q, want %q", tt.tag, tt.key, got, tt.want)
		}
	}
}

func TestLabels_CoverEveryKey(t *testing.T) {
	keys := LabelKeys()
	for _, tag := range Supported() {
		got := Labels(tag)
		if len(got) != len(keys) {
			t.Fatalf("Labels(%v) has %d entries, want %d", tag, len(got), len(keys))
		}
		for _, key := range keys {
			if got[key] == "" || got[key] == key {
				t.Errorf("Labels(%v)[%q] = %q, want a translation", tag, key, got[key])
			}
		}
	}

	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Fatalf("LabelKeys() not sorted: %v", keys)
		}
	}
}

func TestGregorianNames(t *testing.T) {
	if got := GregorianDayName(language.Indonesian, time.Tuesday); got != "Selasa" {
		t.Errorf("GregorianDayName(id, Tuesday) = %q, want Selasa", got)
	}
	if got := GregorianDayName(language.English, time.Sunday); got != "Sunday" {
		t.Errorf("GregorianDayName(en, Sunday) = %q, want Sunday", got)
	}
	if got := GregorianMonthName(language.Indonesian, time.August); got != "Agustus" {
		t.Errorf("GregorianMonthName(id, August) = %q, want Agustus", got)
	}
	if got := GregorianMonthName(language.English, time.December); got != "December" {
		t.Errorf("GregorianMonthName(en, December) = %q, want December", got)
	}
}

func TestDefault(t *testing.T) {
	if Default() != language.Indonesian {
		t.Errorf("Default() = %v, want id", Default())
	}
	s := Supported()
	s[0] = language.French
	if Supported()[0] != language.Indonesian {
		t.Error("Supported() exposes internal slice")
	}
}
