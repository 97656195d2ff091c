package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MikeBiancalana/widgetkit/internal/tui/components"
)

var (
	pagesCountFlag  int
	pagesPageFlag   int
	pagesFormatFlag string
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Print the pagination window",
	Long: `Prints the page buttons a Pagination shows for --count pages with --page
current, the current page in brackets:

  $ wk pages --count 20 --page 10
  1 ... 9 [10] 11 ... 20`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parseFormat(pagesFormatFlag)
		if err != nil {
			return err
		}
		if pagesCountFlag < 1 {
			return fmt.Errorf("--count must be at least 1, got %d", pagesCountFlag)
		}
		if pagesPageFlag < 1 || pagesPageFlag > pagesCountFlag {
			return fmt.Errorf("--page must be between 1 and %d, got %d", pagesCountFlag, pagesPageFlag)
		}
		tokens := components.ComputeWindow(pagesCountFlag, pagesPageFlag)
		return formatWindow(cmd.OutOrStdout(), pagesCountFlag, pagesPageFlag, tokens, format)
	},
}

func init() {
	pagesCmd.Flags().IntVar(&pagesCountFlag, "count", 10, "number of pages")
	pagesCmd.Flags().IntVar(&pagesPageFlag, "page", 1, "current page")
	pagesCmd.Flags().StringVar(&pagesFormatFlag, "format", "text", "output format (text, json)")
}
