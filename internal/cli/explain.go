package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/zapponejosh/kalender-jawa/internal/calendar"
	"github.com/zapponejosh/kalender-jawa/internal/i18n"
)

const explainID = `Kalender Jawa menggabungkan beberapa siklus yang berjalan bersamaan.

## Pasaran

Pekan lima hari: %s. Gabungan hari Masehi dan Pasaran disebut *weton*,
misalnya Selasa Pon. Weton yang sama berulang setiap 35 hari.

## Wuku

Tiga puluh pekan tujuh hari, total 210 hari. Urutan Wuku: %s.

## Tahun dan Windu

Setiap tahun Jawa memiliki jenis tahun dari siklus delapan tahun: %s.
Delapan tahun membentuk satu windu, dan empat windu berputar: %s.

## Bulan

Dua belas bulan berganti panjang 30 dan 29 hari: %s.
Bulan terakhir mendapat satu hari tambahan pada tahun kabisat.
`

const explainEN = `The Javanese calendar runs several cycles side by side.

## Pasaran

A five-day market week: %s. The Gregorian weekday together with the
Pasaran is the *weton*, for example Selasa Pon. Each weton recurs every 35 days.

## Wuku

Thirty seven-day weeks, 210 days in all. The Wuku in order: %s.

## Years and Windu

Every Javanese year takes its type from an eight-year cycle: %s.
Eight years make one windu, and four windu rotate: %s.

## Months

Twelve months alternating between 30 and 29 days: %s.
The last month gains a day in leap years.
`

// explainMarkdown fills the cycle description for tag with the live tables.
func explainMarkdown(tag language.Tag) string {
	c := calendar.Constants()
	text := explainID
	if base, _ := tag.Base(); base.String() == "en" {
		text = explainEN
	}

	join := func(names []string) string { return strings.Join(names, ", ") }
	title := "# " + i18n.Label(tag, "aboutCycles") + "\n\n"
	return title + fmt.Sprintf(text,
		join(c.PasaranDays), join(c.WukuNames), join(c.YearTypes), join(c.WinduTypes), join(c.Months))
}

func newExplainCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: "Describe the Pasaran, Wuku, year and Windu cycles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			md := explainMarkdown(o.language())

			if !o.styled(out) {
				_, err := fmt.Fprint(out, md)
				return err
			}

			r, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle("dark"),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				return fmt.Errorf("markdown renderer: %w", err)
			}
			rendered, err := r.Render(md)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, rendered)
			return err
		},
	}
}
