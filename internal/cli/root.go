package cli

import (
	"github.com/spf13/cobra"

	"github.com/MikeBiancalana/widgetkit/internal/config"
	"github.com/MikeBiancalana/widgetkit/internal/logger"
	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

var (
	settings   *config.Settings
	configFlag string
)

// RootCmd is the root command for the CLI
var RootCmd = &cobra.Command{
	Use:   "wk",
	Short: "widgetkit - terminal form widgets",
	Long: `widgetkit is a kit of terminal form widgets: date picker, calendar,
select, autocomplete, pagination, dialog and friends.

Run without a command to browse them in the interactive gallery.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	Args:              cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGallery(cmd, nil)
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "settings file (default ~/.widgetkit/config.yaml)")

	RootCmd.AddCommand(galleryCmd)
	RootCmd.AddCommand(pagesCmd)
	RootCmd.AddCommand(dateCmd)
	RootCmd.AddCommand(optionsCmd)
}

// loadSettings reads the settings file and applies the color mode before
// any command runs.
func loadSettings(cmd *cobra.Command, args []string) error {
	s, err := config.LoadSettings(configFlag)
	if err != nil {
		return err
	}
	settings = s
	theme.ApplyColorMode(s.Color)
	logger.Debug("settings ready", "locale", s.Locale, "color", s.Color)
	return nil
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}
