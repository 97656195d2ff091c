package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeBiancalana/widgetkit/internal/dates"
)

const isoLayout = "2006-01-02"

// now is the clock shortcuts such as "tomorrow" are resolved against.
var now = time.Now

var dateCmd = &cobra.Command{
	Use:   "date",
	Short: "Parse and format DD/MM/YYYY dates like the date picker",
}

var dateParseCmd = &cobra.Command{
	Use:   "parse <date>",
	Short: "Validate a date and print it as YYYY-MM-DD",
	Long: `Accepts what the date field accepts (DD/MM/YYYY) plus a few shortcuts:
today (t), tomorrow (tm), mon..sun, +3d, +2w and YYYY-MM-DD.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := dates.ParseRelative(args[0], now())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), d.Time().Format(isoLayout))
		return err
	},
}

var dateFormatCmd = &cobra.Command{
	Use:   "format <YYYY-MM-DD>",
	Short: "Print a date the way the date picker displays it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := time.Parse(isoLayout, args[0])
		if err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", args[0], err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), dates.Format(dates.FromTime(t)))
		return err
	},
}

var dateMaskCmd = &cobra.Command{
	Use:   "mask <keystrokes>",
	Short: "Show what the date field displays for raw keystrokes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), dates.MaskDigits(args[0]))
		return err
	},
}

func init() {
	dateCmd.AddCommand(dateParseCmd)
	dateCmd.AddCommand(dateFormatCmd)
	dateCmd.AddCommand(dateMaskCmd)
}
