package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Conversion mirrors one conversion result.
type Conversion struct {
	Gregorian struct {
		Date    string `json:"date"`
		DayName string `json:"dayName"`
	} `json:"gregorian"`
	Javanese struct {
		Date     int    `json:"date"`
		Month    string `json:"month"`
		YearType string `json:"yearType"`
		Year     int    `json:"year"`
		Windu    string `json:"windu"`
	} `json:"javanese"`
	Cycles struct {
		Pasaran string `json:"pasaran"`
		Wuku    string `json:"wuku"`
		WukuDay string `json:"wukuDay"`
	} `json:"cycles"`
	Formatted string `json:"formatted"`
}

// RangeResponse is the response for /convert/range
type RangeResponse struct {
	Start string       `json:"start"`
	End   string       `json:"end"`
	Days  []Conversion `json:"days"`
}

// HealthResponse is the response for /health
type HealthResponse struct {
	Status   string `json:"status"`
	Stepping string `json:"stepping"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("Kalender Jawa API Test Suite")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)
	fmt.Println()

	tr.testHealth()
	tr.testKnownDates()
	tr.testReverse()
	tr.testRange()
	tr.testErrors()
	tr.testMonth()

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	resp, _, err := tr.call(http.MethodGet, "/health", nil)
	if err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	var health HealthResponse
	if err := json.Unmarshal(resp.Data, &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}
	if health.Status != "healthy" {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
		return
	}
	tr.recordSuccess(fmt.Sprintf("healthy (%s stepping)", health.Stepping))
}

func (tr *TestRunner) testKnownDates() {
	tr.printSection("Known Dates")

	cases := []struct {
		date string
		want string
	}{
		{"2021-08-10", "1 Sura 1955, Selasa Pon, Alip, Adi, Kulawu Selasa"},
		{"2021-08-09", "30 Besar 1954, Senin Pahing, Jimakir, Sancaya, Kulawu Senin"},
		{"2022-07-30", "1 Sura 1956, Sabtu Pahing, Ehe, Adi, Mrakeh Sabtu"},
	}

	for _, tc := range cases {
		resp, _, err := tr.call(http.MethodGet, "/api/v1/convert/"+tc.date, nil)
		if err != nil {
			tr.recordError(tc.date, err.Error())
			continue
		}

		var c Conversion
		if err := json.Unmarshal(resp.Data, &c); err != nil {
			tr.recordError(tc.date, err.Error())
			continue
		}
		if c.Formatted != tc.want {
			tr.recordError(tc.date, fmt.Sprintf("Expected '%s', got '%s'", tc.want, c.Formatted))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s → %s", tc.date, c.Formatted))
	}
}

func (tr *TestRunner) testReverse() {
	tr.printSection("Reverse Conversion")

	body := map[string]any{"date": 1, "month": "sura", "year": 1955}
	resp, _, err := tr.call(http.MethodPost, "/api/v1/convert/reverse", body)
	if err != nil {
		tr.recordError("Reverse", err.Error())
		return
	}

	var c Conversion
	if err := json.Unmarshal(resp.Data, &c); err != nil {
		tr.recordError("Reverse", err.Error())
		return
	}
	if c.Gregorian.Date != "2021-08-10" {
		tr.recordError("Reverse", fmt.Sprintf("Expected 2021-08-10, got %s", c.Gregorian.Date))
		return
	}
	tr.recordSuccess("1 Sura 1955 → 2021-08-10")
}

func (tr *TestRunner) testRange() {
	tr.printSection("Date Range")

	resp, _, err := tr.call(http.MethodGet, "/api/v1/convert/range?start=2021-08-08&end=2021-08-14", nil)
	if err != nil {
		tr.recordError("Range (week)", err.Error())
		return
	}

	var rng RangeResponse
	if err := json.Unmarshal(resp.Data, &rng); err != nil {
		tr.recordError("Range (week)", err.Error())
		return
	}
	if len(rng.Days) != 7 {
		tr.recordError("Range (week)", fmt.Sprintf("Expected 7 days, got %d", len(rng.Days)))
		return
	}
	tr.recordSuccess("7 consecutive days")

	if tr.verbose {
		for _, d := range rng.Days {
			fmt.Printf("    %s  %s\n", d.Gregorian.Date, d.Formatted)
		}
		fmt.Println()
	}
}

func (tr *TestRunner) testErrors() {
	tr.printSection("Error Codes")

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		code   string
	}{
		{"slashes", http.MethodGet, "/api/v1/convert/2021/08/10", nil, "NOT_FOUND"},
		{"bad format", http.MethodGet, "/api/v1/convert/10-08-2021", nil, "INVALID_DATE_FORMAT"},
		{"not a date", http.MethodGet, "/api/v1/convert/2023-02-29", nil, "INVALID_CALENDAR_DATE"},
		{"reversed range", http.MethodGet, "/api/v1/convert/range?start=2021-08-14&end=2021-08-08", nil, "BAD_REQUEST"},
		{"unknown month", http.MethodPost, "/api/v1/convert/reverse", map[string]any{"date": 1, "month": "Januari", "year": 1955}, "INVALID_JAVANESE_MONTH"},
		{"day too large", http.MethodPost, "/api/v1/convert/reverse", map[string]any{"date": 30, "month": "Sapar", "year": 1955}, "INVALID_JAVANESE_DATE"},
	}

	for _, tc := range cases {
		resp, status, err := tr.call(tc.method, tc.path, tc.body)
		if err == nil {
			tr.recordError(tc.name, "Expected an error response")
			continue
		}
		if resp == nil || resp.Error == nil || resp.Error.Code != tc.code {
			tr.recordError(tc.name, fmt.Sprintf("Expected %s, got %v", tc.code, err))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s → %d %s", tc.name, status, tc.code))
	}
}

func (tr *TestRunner) testMonth() {
	tr.printSection("Month Calendar")

	if _, _, err := tr.call(http.MethodGet, "/api/v1/calendar/2021-08?lang=en", nil); err != nil {
		tr.recordError("Month", err.Error())
	} else {
		tr.recordSuccess("August 2021 grid")
	}

	httpResp, err := tr.client.Get(tr.baseURL + "/api/v1/calendar/2021-08/pdf")
	if err != nil {
		tr.recordError("Month PDF", err.Error())
		return
	}
	defer httpResp.Body.Close()

	if ct := httpResp.Header.Get("Content-Type"); ct != "application/pdf" {
		tr.recordError("Month PDF", fmt.Sprintf("Content-Type %s", ct))
		return
	}
	tr.recordSuccess("August 2021 PDF")
}

// =============================================================================
// Helpers
// =============================================================================

// call sends a request and decodes the envelope. A non-success envelope is
// returned together with an error.
func (tr *TestRunner) call(method, path string, body any) (*APIResponse, int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, tr.baseURL+path, reader)
	if err != nil {
		return nil, 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tr.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("parse response: %w", err)
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Code + ": " + apiResp.Error.Message
		}
		return &apiResp, resp.StatusCode, fmt.Errorf("HTTP %d: %s", resp.StatusCode, errMsg)
	}

	return &apiResp, resp.StatusCode, nil
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Println("Summary")
	fmt.Println("==============================================")
	fmt.Printf("  Passed: %d\n", tr.successCount)
	fmt.Printf("  Failed: %d\n", tr.errorCount)
	fmt.Println()

	if tr.errorCount > 0 {
		fmt.Println("Failures:")
		for _, err := range tr.errors {
			fmt.Printf("  • %s\n", err)
		}
		fmt.Println()
		fmt.Printf("Tests completed with %d failure(s)\n", tr.errorCount)
		return
	}
	fmt.Println("All tests passed! ✓")
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	verbose := flag.Bool("v", false, "Verbose output (show each day of a range)")
	flag.Parse()

	client := &http.Client{Timeout: 2 * time.Second}
	if _, err := client.Get(*baseURL + "/health"); err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}

	runner := NewTestRunner(*baseURL, *verbose)
	runner.Run()

	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
