package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/kalender-jawa/internal/calendar"
)

func newConvertCmd(o *options) *cobra.Command {
	var until string

	cmd := &cobra.Command{
		Use:   "convert [YYYY-MM-DD]",
		Short: "Convert a Gregorian date (default today)",
		Long: `Convert a Gregorian date to the Javanese calendar.

Without an argument the current local date is converted. With --until,
every day from the date through the --until date is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv := o.converter()
			out := cmd.OutOrStdout()

			var result *calendar.Result
			if len(args) == 0 {
				result = conv.Today()
			} else {
				r, err := conv.Convert(args[0])
				if err != nil {
					return err
				}
				result = r
			}

			if until == "" {
				return writeResult(out, o, result)
			}

			end, err := calendar.ParseDateString(until)
			if err != nil {
				return fmt.Errorf("--until: %w", err)
			}
			results, err := conv.Range(result.Date(), end)
			if err != nil {
				return err
			}

			if o.output != OutputText {
				return writeStructured(out, o.output, results)
			}
			for _, r := range results {
				if _, err := fmt.Fprintf(out, "%s  %s\n", r.Gregorian.Date, r.Formatted); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&until, "until", "", "convert every day through this date (YYYY-MM-DD)")
	return cmd
}
