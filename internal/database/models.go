package database

import (
	"time"
)

// SavedDate is a labelled Gregorian date with its Javanese conversion.
type SavedDate struct {
	ID            int64     `json:"id"`
	Label         string    `json:"label"`
	GregorianDate string    `json:"gregorian_date"` // YYYY-MM-DD
	Javanese      string    `json:"javanese"`       // formatted conversion
	DayName       string    `json:"day_name"`       // Senin..Minggu
	Pasaran       string    `json:"pasaran"`        // Wage..Pon
	Wuku          string    `json:"wuku"`
	Notes         *string   `json:"notes"` // nullable
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Weton is the day name paired with the Pasaran, e.g. "Selasa Pon".
func (s *SavedDate) Weton() string {
	return s.DayName + " " + s.Pasaran
}

// SavedDatePage is one page of a saved-dates listing.
type SavedDatePage struct {
	Items  []SavedDate `json:"items"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

// Pagination bounds for ListSavedDates.
const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// NullString converts a possibly empty string to a nullable pointer.
func NullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
