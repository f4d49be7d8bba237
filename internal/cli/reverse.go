package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/zapponejosh/kalender-jawa/internal/calendar"
	"github.com/zapponejosh/kalender-jawa/internal/i18n"
)

func newReverseCmd(o *options) *cobra.Command {
	var in calendar.JavaneseInput
	var interactive bool

	cmd := &cobra.Command{
		Use:   "reverse",
		Short: "Convert a Javanese date to Gregorian",
		Long: `Convert a Javanese date (day, month name, year) back to the
Gregorian calendar. Month names are matched case-insensitively.

Examples:
  kalender reverse --date 1 --month Sura --year 1955
  kalender reverse -i`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if !o.interactive() {
					return errors.New("--interactive needs a terminal on stdin")
				}
				if err := promptJavanese(o, &in); err != nil {
					return err
				}
			} else if !cmd.Flags().Changed("month") || !cmd.Flags().Changed("year") || !cmd.Flags().Changed("date") {
				return errors.New("--date, --month and --year are required (or use -i)")
			}

			result, err := o.converter().FromJavanese(in)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), o, result)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&in.Date, "date", 0, "day of the Javanese month (1-30)")
	flags.StringVar(&in.Month, "month", "", "Javanese month name, e.g. Sura")
	flags.IntVar(&in.Year, "year", 0, "Javanese year, e.g. 1955")
	flags.BoolVarP(&interactive, "interactive", "i", false, "prompt for the date")
	return cmd
}

// promptJavanese asks for the Javanese date with a huh form, pre-filled
// from any flags already given.
func promptJavanese(o *options, in *calendar.JavaneseInput) error {
	tag := o.language()

	if in.Month == "" {
		in.Month = calendar.Sura.String()
	}
	dateStr := strconv.Itoa(max(in.Date, 1))
	yearStr := ""
	if in.Year != 0 {
		yearStr = strconv.Itoa(in.Year)
	}

	positive := func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return errors.New("enter a positive number")
		}
		return nil
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(i18n.Label(tag, "javaneseMonths")).
			Options(huh.NewOptions(calendar.Constants().Months...)...).
			Value(&in.Month),
		huh.NewInput().
			Title(i18n.Label(tag, "javaneseDate")).
			Validate(positive).
			Value(&dateStr),
		huh.NewInput().
			Title(i18n.Label(tag, "javaneseYear")).
			Placeholder("1955").
			Validate(positive).
			Value(&yearStr),
	))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errors.New("cancelled")
		}
		return fmt.Errorf("prompt: %w", err)
	}

	// Validated above
	in.Date, _ = strconv.Atoi(dateStr)
	in.Year, _ = strconv.Atoi(yearStr)
	return nil
}
