package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/zapponejosh/kalender-jawa/internal/calendar"
)

// This script lists where each Javanese month begins within a Gregorian
// year, plus the Wuku boundaries, for checking against printed calendars.

func main() {
	year := flag.Int("year", time.Now().Year(), "Gregorian year to list")
	wuku := flag.Bool("wuku", false, "Also list the first day of every Wuku")
	iterative := flag.Bool("iterative", false, "Step day by day instead of by eight-year blocks")
	flag.Parse()

	var opts []calendar.Option
	if *iterative {
		opts = append(opts, calendar.WithIterativeStepping())
	}
	conv := calendar.NewConverter(opts...)

	start, end, err := yearBounds(*year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dategen: %v\n", err)
		os.Exit(1)
	}

	days, err := conv.Range(start, end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dategen: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== Javanese Month Starts in %d ===\n\n", *year)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Gregorian\tJavanese\tYear Type\tWeton")
	for _, r := range days {
		if r.Javanese.Date != 1 {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s %d\t%s\t%s\n",
			r.Gregorian.Date, r.Javanese.Month, r.Javanese.Year, r.Javanese.YearType, r.Weton())
	}
	tw.Flush()

	if !*wuku {
		return
	}

	fmt.Printf("\n=== Wuku Starts in %d ===\n\n", *year)
	tw = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Gregorian\tWuku\tJavanese")
	for _, r := range days {
		if r.Date().Weekday() != time.Sunday {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%d %s %d\n",
			r.Gregorian.Date, r.Cycles.Wuku, r.Javanese.Date, r.Javanese.Month, r.Javanese.Year)
	}
	tw.Flush()

	fmt.Printf("\nTotal days: %d\n", len(days))
}

// yearBounds returns 1 January and 31 December of year.
func yearBounds(year int) (start, end calendar.Date, err error) {
	if start, err = calendar.NewDate(year, time.January, 1); err != nil {
		return start, end, err
	}
	end, err = calendar.NewDate(year, time.December, 31)
	return start, end, err
}
