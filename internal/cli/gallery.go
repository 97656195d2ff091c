package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MikeBiancalana/widgetkit/internal/locale"
	"github.com/MikeBiancalana/widgetkit/internal/logger"
	"github.com/MikeBiancalana/widgetkit/internal/tui"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery [component]",
	Short: "Browse the widgets interactively",
	Long: `Opens the widget gallery. The optional argument picks the first page:
` + strings.Join(pageNames(), ", ") + `.

Without an argument on an interactive terminal, a prompt asks for it.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: pageNames(),
	RunE:      runGallery,
}

func pageNames() []string {
	pages := tui.Pages()
	names := make([]string, len(pages))
	for i, p := range pages {
		names[i] = string(p)
	}
	return names
}

// startPage resolves the page to open: the argument when given, the prompt
// when allowed, the first page otherwise.
func startPage(args []string, prompt func() (tui.Page, error)) (tui.Page, error) {
	if len(args) > 0 {
		return tui.ParsePage(args[0])
	}
	if prompt == nil {
		return tui.Pages()[0], nil
	}
	return prompt()
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// promptPage asks which widget to open first
func promptPage() (tui.Page, error) {
	var choice string
	lang := ""
	if settings != nil {
		lang = settings.Locale
	}
	options := make([]huh.Option[string], 0, len(tui.Pages()))
	for _, p := range tui.Pages() {
		options = append(options, huh.NewOption(p.Title(), string(p)))
	}

	err := huh.NewSelect[string]().
		Title(locale.New(lang).T(locale.GalleryPrompt)).
		Options(options...).
		Value(&choice).
		Run()
	if err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}
	return tui.ParsePage(choice)
}

func runGallery(cmd *cobra.Command, args []string) error {
	var prompt func() (tui.Page, error)
	if isInteractive() {
		prompt = promptPage
	}
	start, err := startPage(args, prompt)
	if err != nil {
		return err
	}

	// stderr belongs to the alt screen from here on.
	if err := logger.InitializeWithConfig(logger.Config{
		Level:   logger.GetLevel().String(),
		Format:  logger.GetFormat(),
		TUIMode: true,
	}); err != nil {
		return err
	}
	defer logger.Close()

	model := tui.NewModel(settings, tui.Options{Start: start})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}
