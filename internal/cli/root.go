// Package cli implements the kalender command-line tool.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/zapponejosh/kalender-jawa/internal/calendar"
	"github.com/zapponejosh/kalender-jawa/internal/i18n"
)

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// options holds the persistent flags and the hooks tests override.
type options struct {
	output    string
	lang      string
	iterative bool

	now         func() time.Time
	interactive func() bool // stdin is a terminal
	styled      func(w io.Writer) bool
}

func (o *options) converter() *calendar.Converter {
	opts := []calendar.Option{calendar.WithClock(o.now)}
	if o.iterative {
		opts = append(opts, calendar.WithIterativeStepping())
	}
	return calendar.NewConverter(opts...)
}

func (o *options) language() language.Tag {
	if o.lang == "" {
		return i18n.Default()
	}
	return i18n.Match(o.lang)
}

// Option customizes the root command. Used by tests.
type Option func(*options)

// WithClock fixes the clock used for "today".
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithTerminal overrides terminal detection for prompts and styling.
func WithTerminal(interactive, styled bool) Option {
	return func(o *options) {
		o.interactive = func() bool { return interactive }
		o.styled = func(io.Writer) bool { return styled }
	}
}

// NewRootCmd builds the kalender command tree.
func NewRootCmd(opts ...Option) *cobra.Command {
	o := &options{
		now:         time.Now,
		interactive: func() bool { return isTerminal(os.Stdin) },
		styled:      isTerminal,
	}
	for _, opt := range opts {
		opt(o)
	}

	root := &cobra.Command{
		Use:   "kalender",
		Short: "Javanese calendar conversions",
		Long: `kalender converts Gregorian dates to the Javanese calendar and back.

Each conversion reports the Javanese date, month and year, the year type
and Windu, the five-day Pasaran and the Wuku week.

Examples:
  kalender convert 2021-08-10
  kalender reverse --date 1 --month Sura --year 1955
  kalender month 2021-08 --pdf agustus.pdf
  kalender convert --output yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch o.output {
			case OutputText, OutputJSON, OutputYAML:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (use text, json or yaml)", o.output)
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&o.output, "output", "o", OutputText, "output format: text, json or yaml")
	flags.StringVar(&o.lang, "lang", os.Getenv("DEFAULT_LANG"), "label language: id or en")
	flags.BoolVar(&o.iterative, "iterative", os.Getenv("STEPPING") == "iterative", "step day by day instead of by eight-year blocks")

	root.AddCommand(
		newConvertCmd(o),
		newReverseCmd(o),
		newMonthCmd(o),
		newConstantsCmd(o),
		newExplainCmd(o),
	)
	return root
}

// Execute runs the kalender command.
func Execute() error {
	return NewRootCmd().Execute()
}
