package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/kalender-jawa/internal/calendar"
)

func newConstantsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "List the names used by every cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := calendar.Constants()
			out := cmd.OutOrStdout()

			if o.output != OutputText {
				return writeStructured(out, o.output, c)
			}

			rows := []struct {
				name  string
				names []string
			}{
				{"Year types", c.YearTypes},
				{"Windu", c.WinduTypes},
				{"Months", c.Months},
				{"Pasaran", c.PasaranDays},
				{"Day names", c.DayNames},
				{"Wuku days", c.WukuDays},
				{"Wuku", c.WukuNames},
			}
			for _, r := range rows {
				if _, err := fmt.Fprintf(out, "%-11s %s\n", r.name+":", strings.Join(r.names, ", ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
