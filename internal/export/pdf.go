// Package export renders month views as printable PDF calendars.
// Each page holds one Gregorian month: a header bar with the month and
// its Javanese year, then a Sunday-first grid where every row is tagged
// with its Wuku and every cell shows the Pasaran and Javanese date.
package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/language"

	"github.com/zapponejosh/kalender-jawa/internal/calendar"
	"github.com/zapponejosh/kalender-jawa/internal/i18n"
)

// ErrNoMonths is returned when there is nothing to render.
var ErrNoMonths = errors.New("no months to render")

// WriteMonthPDF writes a single-page PDF calendar for view to w, with
// headings in the language tag.
func WriteMonthPDF(view *calendar.MonthView, tag language.Tag, w io.Writer) error {
	return WriteMonthsPDF([]*calendar.MonthView{view}, tag, w)
}

// WriteMonthsPDF writes one page per month view to w.
func WriteMonthsPDF(views []*calendar.MonthView, tag language.Tag, w io.Writer) error {
	if len(views) == 0 {
		return ErrNoMonths
	}
	for i, v := range views {
		if v == nil {
			return fmt.Errorf("%w: view %d is nil", ErrNoMonths, i)
		}
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(false, 12)
	pdf.AliasNbPages("{nb}")
	pdf.SetTitle(i18n.Label(tag, "monthlyCalendar"), false)

	for _, view := range views {
		if view == nil {
			return ErrNoMonths
		}
		pdf.AddPage()
		drawMonthPage(pdf, view, tag)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}

func drawMonthPage(pdf *fpdf.Fpdf, view *calendar.MonthView, tag language.Tag) {
	pageW, pageH := pdf.GetPageSize()
	marginL, marginT, marginR, marginB := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	// ── Header bar ───────────────────────────────────────────────────────────
	pdf.SetFillColor(92, 54, 20)
	pdf.Rect(marginL, marginT, contentW, 12, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginL+3, marginT+2)
	title := i18n.GregorianMonthName(tag, view.Month) + " " + strconv.Itoa(view.Year)
	pdf.CellFormat(contentW/2, 8, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW/2-6, 8, javaneseHeader(view, tag), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	y := marginT + 15

	// Javanese months touched by this Gregorian month
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetXY(marginL, y)
	pdf.CellFormat(contentW, 5, i18n.Label(tag, "javaneseMonths")+": "+strings.Join(view.MonthSpan, " - "), "", 1, "L", false, 0, "")
	y += 7

	// ── Grid ────────────────────────────────────────────────────────────────
	wukuW := 24.0
	colW := (contentW - wukuW) / 7
	headH := 7.0
	footH := 6.0
	rowH := (pageH - marginB - footH - y - headH) / float64(len(view.Weeks))

	pdf.SetFillColor(92, 54, 20)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 8.5)
	pdf.SetXY(marginL, y)
	pdf.CellFormat(wukuW, headH, i18n.Label(tag, "wuku"), "1", 0, "C", true, 0, "")
	for i := 0; i < 7; i++ {
		wd := time.Weekday(i)
		label := i18n.GregorianDayName(tag, wd)
		if javanese := calendar.DayName(wd); javanese != label {
			label += " / " + javanese
		}
		pdf.CellFormat(colW, headH, label, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
	y += headH

	for _, week := range view.Weeks {
		pdf.SetFillColor(245, 238, 228)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetXY(marginL, y)
		pdf.CellFormat(wukuW, rowH, week.Wuku, "1", 0, "C", true, 0, "")

		for i, cell := range week.Days {
			x := marginL + wukuW + float64(i)*colW
			drawDayCell(pdf, cell, x, y, colW, rowH)
		}
		y += rowH
	}

	// ── Footer ─────────────────────────────────────────────────────────────────
	pdf.SetXY(marginL, pageH-marginB-footH+1)
	pdf.SetFont("Helvetica", "I", 7.5)
	pdf.SetTextColor(130, 130, 130)
	pdf.CellFormat(contentW/2, 5, i18n.Label(tag, "title"), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 5, strconv.Itoa(pdf.PageNo())+" / {nb}", "", 0, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func drawDayCell(pdf *fpdf.Fpdf, cell calendar.DayCell, x, y, w, h float64) {
	if cell.InMonth {
		pdf.SetFillColor(255, 255, 255)
		pdf.SetTextColor(0, 0, 0)
	} else {
		pdf.SetFillColor(242, 242, 242)
		pdf.SetTextColor(160, 160, 160)
	}
	pdf.Rect(x, y, w, h, "FD")

	// Gregorian day, top left
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetXY(x+1.5, y+1.5)
	pdf.CellFormat(w/2, 6, strconv.Itoa(cell.Day), "", 0, "L", false, 0, "")

	// Pasaran, top right
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(x+w/2, y+1.5)
	pdf.CellFormat(w/2-1.5, 6, cell.Pasaran, "", 0, "R", false, 0, "")

	// Javanese date, bottom
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(x+1.5, y+h-6.5)
	pdf.CellFormat(w-3, 5, strconv.Itoa(cell.JavaneseDate)+" "+cell.JavaneseMonth, "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// javaneseHeader is e.g. "Tahun Jawa 1954 / Jimakir / Sancaya".
func javaneseHeader(view *calendar.MonthView, tag language.Tag) string {
	return fmt.Sprintf("%s %d / %s / %s %s",
		i18n.Label(tag, "javaneseYear"), view.JavaneseYear,
		view.YearType,
		i18n.Label(tag, "windu"), view.Windu)
}
