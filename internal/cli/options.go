package cli

import (
	"github.com/spf13/cobra"

	"github.com/MikeBiancalana/widgetkit/internal/tui/components"
)

var optionsFormatFlag string

var optionsCmd = &cobra.Command{
	Use:   "options <file>",
	Short: "Print the normalized options of a YAML options file",
	Long: `Reads an options file the way Select and AutocompleteSelect do and prints
the resulting list. The file is either a list of {value, label} entries or a
mapping whose keys become labels (NEW_YORK: nyc gives "New York").`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parseFormat(optionsFormatFlag)
		if err != nil {
			return err
		}
		src, err := components.LoadOptionsFile(args[0])
		if err != nil {
			return err
		}
		return formatOptions(cmd.OutOrStdout(), components.NormalizeOptions(src), format)
	},
}

func init() {
	optionsCmd.Flags().StringVar(&optionsFormatFlag, "format", "text", "output format (text, json, tsv, csv)")
}
