package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// querier is the subset of *sql.DB and *sql.Tx the queries need, so the
// same code runs inside and outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Tries multiple formats and returns nil if parsing fails.
func parseTimestamp(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}

	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999",
	}
	for _, layout := range formats {
		if t, err := time.Parse(layout, ns.String); err == nil {
			return &t
		}
	}
	return nil
}

const savedDateColumns = `
	id, label, gregorian_date, javanese,
	day_name, pasaran, wuku, notes,
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSavedDate(row rowScanner) (*SavedDate, error) {
	var s SavedDate
	var notes, createdAtStr, updatedAtStr sql.NullString

	err := row.Scan(
		&s.ID,
		&s.Label,
		&s.GregorianDate,
		&s.Javanese,
		&s.DayName,
		&s.Pasaran,
		&s.Wuku,
		&notes,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	if notes.Valid {
		s.Notes = &notes.String
	}
	if t := parseTimestamp(createdAtStr); t != nil {
		s.CreatedAt = *t
	}
	if t := parseTimestamp(updatedAtStr); t != nil {
		s.UpdatedAt = *t
	}
	return &s, nil
}

func collectSavedDates(rows *sql.Rows) ([]SavedDate, error) {
	defer rows.Close()

	out := []SavedDate{}
	for rows.Next() {
		s, err := scanSavedDate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan saved date: %w", err)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saved dates: %w", err)
	}
	return out, nil
}

// =============================================================================
// Saved Date Queries
// =============================================================================

func createSavedDate(ctx context.Context, q querier, s *SavedDate) error {
	query := `
		INSERT INTO saved_dates (
			label, gregorian_date, javanese,
			day_name, pasaran, wuku, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := q.ExecContext(ctx, query,
		s.Label,
		s.GregorianDate,
		s.Javanese,
		s.DayName,
		s.Pasaran,
		s.Wuku,
		s.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert saved date: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get saved date id: %w", err)
	}
	s.ID = id

	now := time.Now().UTC().Truncate(time.Second)
	s.CreatedAt = now
	s.UpdatedAt = now
	return nil
}

// CreateSavedDate inserts s and sets its ID.
// Returns ErrDuplicate if the label is already used for that date.
func (db *DB) CreateSavedDate(ctx context.Context, s *SavedDate) error {
	return createSavedDate(ctx, db.DB, s)
}

// CreateSavedDate inserts s within the transaction.
func (tx *Tx) CreateSavedDate(ctx context.Context, s *SavedDate) error {
	return createSavedDate(ctx, tx.Tx, s)
}

// GetSavedDate retrieves a saved date by ID.
// Returns ErrNotFound if it doesn't exist.
func (db *DB) GetSavedDate(ctx context.Context, id int64) (*SavedDate, error) {
	query := `SELECT ` + savedDateColumns + ` FROM saved_dates WHERE id = ?`

	s, err := scanSavedDate(db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query saved date: %w", err)
	}
	return s, nil
}

// ListSavedDates returns saved dates ordered by Gregorian date, then label.
// A non-positive limit uses DefaultPageSize; limits above MaxPageSize
// are clamped.
func (db *DB) ListSavedDates(ctx context.Context, limit, offset int) (*SavedDatePage, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM saved_dates`).Scan(&total); err != nil {
		return nil, fmt.Errorf("count saved dates: %w", err)
	}

	query := `SELECT ` + savedDateColumns + `
		FROM saved_dates
		ORDER BY gregorian_date, label
		LIMIT ? OFFSET ?`

	rows, err := db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query saved dates: %w", err)
	}

	items, err := collectSavedDates(rows)
	if err != nil {
		return nil, err
	}

	return &SavedDatePage{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// ListSavedDatesByWeton returns every saved date falling on the given
// day name and Pasaran, e.g. ("Selasa", "Pon"). An empty argument
// matches any value.
func (db *DB) ListSavedDatesByWeton(ctx context.Context, dayName, pasaran string) ([]SavedDate, error) {
	query := `SELECT ` + savedDateColumns + `
		FROM saved_dates
		WHERE (? = '' OR day_name = ?)
		  AND (? = '' OR pasaran = ?)
		ORDER BY gregorian_date, label`

	rows, err := db.QueryContext(ctx, query, dayName, dayName, pasaran, pasaran)
	if err != nil {
		return nil, fmt.Errorf("query saved dates by weton: %w", err)
	}
	return collectSavedDates(rows)
}

// UpdateSavedDateNotes replaces the notes of a saved date.
// Returns ErrNotFound if it doesn't exist.
func (db *DB) UpdateSavedDateNotes(ctx context.Context, id int64, notes *string) error {
	query := `
		UPDATE saved_dates
		SET notes = ?, updated_at = datetime('now')
		WHERE id = ?
	`

	result, err := db.ExecContext(ctx, query, notes, id)
	if err != nil {
		return fmt.Errorf("update saved date: %w", err)
	}
	return checkAffected(result)
}

// DeleteSavedDate removes a saved date by ID.
// Returns ErrNotFound if it doesn't exist.
func (db *DB) DeleteSavedDate(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM saved_dates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete saved date: %w", err)
	}
	return checkAffected(result)
}

func checkAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// ImportSavedDates inserts all entries in a single transaction. Nothing
// is written if any entry fails; the error names the failing entry.
func (db *DB) ImportSavedDates(ctx context.Context, entries []SavedDate) (int, error) {
	err := db.WithTx(ctx, func(tx *Tx) error {
		for i := range entries {
			if err := tx.CreateSavedDate(ctx, &entries[i]); err != nil {
				return fmt.Errorf("entry %d (%s %s): %w",
					i, entries[i].Label, entries[i].GregorianDate, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	db.logger.Info("saved dates imported", slog.Int("count", len(entries)))
	return len(entries), nil
}
