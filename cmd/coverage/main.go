package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/zapponejosh/kalender-jawa/internal/calendar"
)

// APIResponse matches the API response structure
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type conversion struct {
	Gregorian struct {
		Date string `json:"date"`
	} `json:"gregorian"`
	Formatted string `json:"formatted"`
}

type rangeResponse struct {
	Days []conversion `json:"days"`
}

// TestResult holds the result for a single date
type TestResult struct {
	Date     string `json:"date"`
	Success  bool   `json:"success"`
	Month    string `json:"javanese_month"`
	Got      string `json:"got,omitempty"`
	Expected string `json:"expected"`
	Error    string `json:"error,omitempty"`
}

// MonthStats tracks statistics for each Javanese month
type MonthStats struct {
	Month       string
	TotalDays   int
	FailedDays  int
	FailedDates []string
}

// Analysis summarizes a run.
type Analysis struct {
	TotalTested int
	TotalFailed int
	ByMonth     map[string]*MonthStats
	Failures    []TestResult
}

// chunkDays stays under the server's default MAX_RANGE_DAYS.
const chunkDays = 90

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	startYear := flag.Int("start", 2020, "Start year")
	years := flag.Int("years", 8, "Number of years to test")
	verbose := flag.Bool("v", false, "Verbose output (show each chunk)")
	outputFile := flag.String("o", "", "Output results to JSON file")
	flag.Parse()

	endYear := *startYear + *years - 1

	fmt.Println("================================================================")
	fmt.Println("Kalender Jawa API - Full Coverage Test")
	fmt.Println("================================================================")
	fmt.Printf("Base URL:    %s\n", *baseURL)
	fmt.Printf("Date Range:  %d-01-01 to %d-12-31\n", *startYear, endYear)
	fmt.Printf("Reference:   day-by-day walker\n")
	fmt.Println()

	client := &http.Client{Timeout: 30 * time.Second}
	if _, err := client.Get(*baseURL + "/health"); err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}

	start, err := calendar.NewDate(*startYear, time.January, 1)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	end, err := calendar.NewDate(endYear, time.December, 31)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	results := testAllDates(client, *baseURL, start, end, *verbose)
	analysis := analyzeResults(results)

	printSummary(analysis)
	printFailuresByMonth(analysis)

	if *outputFile != "" {
		saveResults(*outputFile, results, analysis)
	}

	if analysis.TotalFailed > 0 {
		os.Exit(1)
	}
}

// testAllDates fetches the span in range chunks and compares each day with
// the iterative converter.
func testAllDates(client *http.Client, baseURL string, start, end calendar.Date, verbose bool) []TestResult {
	reference := calendar.NewConverter(calendar.WithIterativeStepping())
	total := calendar.DaysFromAnchor(end) - calendar.DaysFromAnchor(start) + 1
	fmt.Printf("Testing %d days...\n\n", total)

	results := make([]TestResult, 0, total)
	for from := start; !end.Before(from); from = from.AddDays(chunkDays) {
		to := from.AddDays(chunkDays - 1)
		if end.Before(to) {
			to = end
		}

		expected, err := reference.Range(from, to)
		if err != nil {
			fmt.Printf("reference range %s..%s: %v\n", from, to, err)
			os.Exit(1)
		}

		got, err := fetchRange(client, baseURL, from, to)
		for i, want := range expected {
			r := TestResult{
				Date:     want.Gregorian.Date,
				Month:    want.Javanese.Month,
				Expected: want.Formatted,
			}
			switch {
			case err != nil:
				r.Error = err.Error()
			case i >= len(got):
				r.Error = "missing from response"
			default:
				r.Got = got[i].Formatted
				r.Success = got[i].Gregorian.Date == want.Gregorian.Date && r.Got == r.Expected
			}
			results = append(results, r)
		}

		if verbose {
			fmt.Printf("  %s .. %s  %d days\n", from, to, len(expected))
		} else {
			fmt.Printf("\rProgress: %d/%d", len(results), total)
		}
	}
	fmt.Println()
	return results
}

func fetchRange(client *http.Client, baseURL string, from, to calendar.Date) ([]conversion, error) {
	url := fmt.Sprintf("%s/api/v1/convert/range?start=%s&end=%s", baseURL, from, to)
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if !apiResp.Success {
		if apiResp.Error != nil {
			return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, apiResp.Error.Message)
		}
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var rng rangeResponse
	if err := json.Unmarshal(apiResp.Data, &rng); err != nil {
		return nil, fmt.Errorf("parse data: %w", err)
	}
	return rng.Days, nil
}

func analyzeResults(results []TestResult) *Analysis {
	a := &Analysis{ByMonth: make(map[string]*MonthStats)}

	for _, r := range results {
		a.TotalTested++

		stats, ok := a.ByMonth[r.Month]
		if !ok {
			stats = &MonthStats{Month: r.Month}
			a.ByMonth[r.Month] = stats
		}
		stats.TotalDays++

		if !r.Success {
			a.TotalFailed++
			stats.FailedDays++
			stats.FailedDates = append(stats.FailedDates, r.Date)
			a.Failures = append(a.Failures, r)
		}
	}
	return a
}

func printSummary(a *Analysis) {
	fmt.Println()
	fmt.Println("================================================================")
	fmt.Println("Summary")
	fmt.Println("================================================================")
	fmt.Printf("  Days tested: %d\n", a.TotalTested)
	fmt.Printf("  Mismatches:  %d\n", a.TotalFailed)
	if a.TotalTested > 0 {
		fmt.Printf("  Agreement:   %.2f%%\n", 100*float64(a.TotalTested-a.TotalFailed)/float64(a.TotalTested))
	}
	fmt.Println()
}

func printFailuresByMonth(a *Analysis) {
	if a.TotalFailed == 0 {
		fmt.Println("All dates match the reference walker! ✓")
		return
	}

	months := make([]*MonthStats, 0, len(a.ByMonth))
	for _, s := range a.ByMonth {
		if s.FailedDays > 0 {
			months = append(months, s)
		}
	}
	sort.Slice(months, func(i, j int) bool { return months[i].FailedDays > months[j].FailedDays })

	fmt.Println("Mismatches by Javanese month:")
	for _, s := range months {
		fmt.Printf("  %-14s %4d / %4d\n", s.Month, s.FailedDays, s.TotalDays)
	}
	fmt.Println()

	limit := min(len(a.Failures), 20)
	fmt.Printf("First %d mismatches:\n", limit)
	for _, r := range a.Failures[:limit] {
		if r.Error != "" {
			fmt.Printf("  %s  error: %s\n", r.Date, r.Error)
			continue
		}
		fmt.Printf("  %s\n    got:      %s\n    expected: %s\n", r.Date, r.Got, r.Expected)
	}
}

func saveResults(filename string, results []TestResult, a *Analysis) {
	out := struct {
		GeneratedAt string       `json:"generated_at"`
		Tested      int          `json:"tested"`
		Failed      int          `json:"failed"`
		Failures    []TestResult `json:"failures"`
		Results     []TestResult `json:"results"`
	}{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Tested:      a.TotalTested,
		Failed:      a.TotalFailed,
		Failures:    a.Failures,
		Results:     results,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Printf("Error encoding results: %v\n", err)
		return
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		fmt.Printf("Error writing %s: %v\n", filename, err)
		return
	}
	fmt.Printf("\nResults written to %s\n", filename)
}
