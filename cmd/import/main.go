// Command import loads labelled dates from a JSON file into the saved-dates
// database, converting each one to the Javanese calendar on the way in.
//
// Usage:
//
//	go run ./cmd/import -json data/dates.json -db data/kalender.db
//
// The input is an array of objects:
//
//	[{"label": "Ulang tahun", "date": "1990-05-17", "notes": "optional"}]
//
// All entries are written in one transaction. A duplicate label and date
// pair aborts the whole import.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/zapponejosh/kalender-jawa/internal/api"
	"github.com/zapponejosh/kalender-jawa/internal/calendar"
	"github.com/zapponejosh/kalender-jawa/internal/database"
	"github.com/zapponejosh/kalender-jawa/internal/logger"
)

// entry is one record of the import file.
type entry struct {
	Label string `json:"label"`
	Date  string `json:"date"`
	Notes string `json:"notes"`
}

func main() {
	jsonPath := flag.String("json", "data/dates.json", "Path to JSON file")
	dbPath := flag.String("db", "data/kalender.db", "Path to SQLite database")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	level := "info"
	if *verbose {
		level = "debug"
	}
	log := logger.New(os.Stdout, level, "text")

	if err := run(*jsonPath, *dbPath, log); err != nil {
		log.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("import complete")
}

func run(jsonPath, dbPath string, log *slog.Logger) error {
	ctx := context.Background()
	start := time.Now()

	log.Info("reading JSON file", slog.String("path", jsonPath))
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("read JSON file: %w", err)
	}

	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}

	saved, err := convertEntries(entries, calendar.NewConverter(), log)
	if err != nil {
		return err
	}

	log.Info("opening database", slog.String("path", dbPath))
	db, err := database.Open(database.DefaultConfig(dbPath), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	applied, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	log.Info("migrations complete", slog.Int("applied", applied))

	count, err := db.ImportSavedDates(ctx, saved)
	if err != nil {
		return fmt.Errorf("import data: %w", err)
	}

	stats, err := db.Stats(ctx)
	if err != nil {
		return fmt.Errorf("count saved dates: %w", err)
	}

	elapsed := time.Since(start)
	log.Info("import verified",
		slog.Int("imported", count),
		slog.Int("total", stats.SavedDates),
		slog.Int("wetons", stats.Wetons),
		slog.Duration("elapsed", elapsed),
	)

	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("Dates imported:  %d\n", count)
	fmt.Printf("Dates stored:    %d\n", stats.SavedDates)
	fmt.Printf("Distinct wetons: %d\n", stats.Wetons)
	fmt.Printf("Time elapsed:    %v\n", elapsed.Round(time.Millisecond))
	return nil
}

// convertEntries validates and converts every entry before anything is
// written, so a bad date fails the import up front.
func convertEntries(entries []entry, conv *calendar.Converter, log *slog.Logger) ([]database.SavedDate, error) {
	saved := make([]database.SavedDate, 0, len(entries))
	for i, e := range entries {
		if e.Label == "" {
			return nil, fmt.Errorf("entry %d: label is required", i)
		}
		result, err := conv.Convert(e.Date)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.Label, err)
		}

		saved = append(saved, *api.NewSavedDate(e.Label, result, e.Notes))
		log.Debug("converted",
			slog.String("label", e.Label),
			slog.String("javanese", result.Formatted),
		)
	}
	return saved, nil
}
