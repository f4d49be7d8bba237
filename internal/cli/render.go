package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/kalender-jawa/internal/calendar"
	"github.com/zapponejosh/kalender-jawa/internal/i18n"
)

// Batik browns and golds.
var (
	primary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#7A4A1E", Dark: "#D9A35F"})
	border  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1C4B0", Dark: "#5C4A36"})
	muted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6B7280"})
	accent  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"})
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border.GetForeground()).
		Padding(0, 2)
}

// card renders labelled rows inside a rounded border with a title.
func card(title string, rows [][2]string) string {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r[0]))
	}

	var body strings.Builder
	body.WriteString(primary.Bold(true).Render(title))
	body.WriteString("\n")
	for _, r := range rows {
		body.WriteString("\n")
		body.WriteString(muted.Render(r[0] + strings.Repeat(" ", width-lipgloss.Width(r[0]))))
		body.WriteString("  ")
		body.WriteString(r[1])
	}
	return cardStyle().Render(body.String())
}

// writeStructured writes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writeResult prints one conversion in the selected format.
func writeResult(w io.Writer, o *options, r *calendar.Result) error {
	if o.output != OutputText {
		return writeStructured(w, o.output, r)
	}

	if !o.styled(w) {
		_, err := fmt.Fprintln(w, r.Formatted)
		return err
	}

	tag := o.language()
	label := func(key string) string { return i18n.Label(tag, key) }
	d := r.Date()

	gregorian := fmt.Sprintf("%s, %d %s %d",
		i18n.GregorianDayName(tag, d.Weekday()), d.Day, i18n.GregorianMonthName(tag, d.Month), d.Year)
	javanese := fmt.Sprintf("%d %s %d", r.Javanese.Date, r.Javanese.Month, r.Javanese.Year)

	rows := [][2]string{
		{label("gregorianDate"), gregorian},
		{label("javaneseDate"), accent.Bold(true).Render(javanese)},
		{label("weton"), r.Weton()},
		{label("yearType"), r.Javanese.YearType},
		{label("windu"), r.Javanese.Windu},
		{label("wuku"), r.Cycles.Wuku + " " + r.Cycles.WukuDay},
	}
	_, err := fmt.Fprintln(w, card(label("title"), rows))
	return err
}

// writeMonth prints a month grid in the selected format.
func writeMonth(w io.Writer, o *options, view *calendar.MonthView) error {
	tag := o.language()
	if o.output != OutputText {
		return writeStructured(w, o.output, view)
	}

	title := fmt.Sprintf("%s %d", i18n.GregorianMonthName(tag, view.Month), view.Year)
	header := fmt.Sprintf("%s %d, %s, %s %s  (%s)",
		i18n.Label(tag, "javaneseYear"), view.JavaneseYear,
		view.YearType,
		i18n.Label(tag, "windu"), view.Windu,
		strings.Join(view.MonthSpan, " - "))

	grid := monthGrid(view, tag, o.styled(w))
	if !o.styled(w) {
		_, err := fmt.Fprintf(w, "%s\n%s\n\n%s", title, header, grid)
		return err
	}

	body := primary.Bold(true).Render(title) + "\n" + muted.Render(header) + "\n\n" + grid
	_, err := fmt.Fprintln(w, cardStyle().Render(body))
	return err
}

const (
	wukuColumn = 12
	dayColumn  = 16
)

// monthGrid lays the weeks out as two text lines per row: the Gregorian
// day with its Pasaran, then the Javanese date.
func monthGrid(view *calendar.MonthView, tag language.Tag, styled bool) string {
	var b strings.Builder

	b.WriteString(pad(i18n.Label(tag, "wuku"), wukuColumn))
	for i := 0; i < 7; i++ {
		b.WriteString(pad(view.Weeks[0].Days[i].DayName, dayColumn))
	}
	b.WriteString("\n")

	for _, week := range view.Weeks {
		var top, bottom strings.Builder
		top.WriteString(pad(week.Wuku, wukuColumn))
		bottom.WriteString(pad("", wukuColumn))

		for _, cell := range week.Days {
			day := pad(fmt.Sprintf("%2d %s", cell.Day, cell.Pasaran), dayColumn)
			jav := pad(fmt.Sprintf("%2d %s", cell.JavaneseDate, cell.JavaneseMonth), dayColumn)
			if styled && !cell.InMonth {
				day, jav = muted.Render(day), muted.Render(jav)
			}
			top.WriteString(day)
			bottom.WriteString(jav)
		}

		b.WriteString(strings.TrimRight(top.String(), " "))
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(bottom.String(), " "))
		b.WriteString("\n")
	}
	return b.String()
}

// pad right-pads s to width, truncating if it is longer.
func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width-1] + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
