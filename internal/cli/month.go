package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/kalender-jawa/internal/calendar"
	"github.com/zapponejosh/kalender-jawa/internal/export"
)

func newMonthCmd(o *options) *cobra.Command {
	var pdfPath string

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show a month with Pasaran, Wuku and Javanese dates",
		Long: `Show a Gregorian month as a Sunday-first grid. Each row is one Wuku
week; each day shows its Pasaran and Javanese date.

With --pdf the grid is also written as a printable PDF.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv := o.converter()

			now := o.now()
			year, month := now.Year(), now.Month()
			if len(args) > 0 {
				y, m, err := calendar.ParseMonthString(args[0])
				if err != nil {
					return err
				}
				year, month = y, m
			}

			view, err := conv.MonthGrid(year, month)
			if err != nil {
				return err
			}

			if pdfPath != "" {
				if err := writePDF(pdfPath, o, view); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", pdfPath)
			}
			return writeMonth(cmd.OutOrStdout(), o, view)
		},
	}

	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also write the month as a PDF to this file")
	return cmd
}

// writePDF renders view to path. A failed render leaves no file behind.
func writePDF(path string, o *options, view *calendar.MonthView) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create pdf: %w", err)
	}

	err = export.WriteMonthPDF(view, o.language(), f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
