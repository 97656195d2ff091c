package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MikeBiancalana/widgetkit/internal/config"
	"github.com/MikeBiancalana/widgetkit/internal/dates"
	"github.com/MikeBiancalana/widgetkit/internal/locale"
	"github.com/MikeBiancalana/widgetkit/internal/logger"
	"github.com/MikeBiancalana/widgetkit/internal/perf"
	"github.com/MikeBiancalana/widgetkit/internal/tui/components"
	"github.com/MikeBiancalana/widgetkit/internal/tui/dom"
	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
	"github.com/MikeBiancalana/widgetkit/internal/watch"
)

// slowRender is the render time above which a frame is logged as slow.
const slowRender = 16 * time.Millisecond

// Options tune a gallery session.
type Options struct {
	// Start is the page shown first.
	Start Page
	// Now is the clock handed to date widgets; time.Now when nil.
	Now func() time.Time
}

// values are owned by the gallery, never by the widgets: every widget
// reports changes through its callback and gets the new value back.
type values struct {
	date         *dates.Date
	selectCity   string
	city         string
	fuzzyCity    string
	page         int
	dialogSize   string
	darkBackdrop bool
	email        string
	password     string
	amount       string
	terms        bool
	plan         string
	tab          string
	submitted    bool
	formError    string
	closedAlerts map[theme.Severity]bool
}

// Model is the widget gallery. Messages go to the widgets of the current
// page first, then to the document so outside-click and Escape listeners
// run.
//
// Widget callbacks run inside Update. Anything that must not see the
// message being dispatched (a dialog opened by a click would otherwise
// receive that click as an outside click) is queued as a command.
type Model struct {
	settings *config.Settings
	doc      *dom.Document
	now      func() time.Time
	log      *slog.Logger
	tr       *locale.Translator

	keys     keyMap
	help     help.Model
	showHelp bool

	width            int
	height           int
	layout           Layout
	terminalTooSmall bool

	page  int
	pages []page
	focus int

	values  values
	options components.OptionSource
	watcher *watch.Watcher
	pending []tea.Cmd

	renders   *perf.Recorder
	bar       *components.StatusBar
	status    string
	lastError error

	w widgets
}

// NewModel creates a gallery model. A broken options file is reported in
// the status bar and the built-in list is used instead.
func NewModel(settings *config.Settings, opts Options) *Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	log := logger.GetLogger().With("component", "gallery")
	tr := locale.New(settings.Locale)

	m := &Model{
		settings: settings,
		doc:      dom.New(),
		now:      opts.Now,
		log:      log,
		tr:       tr,
		keys:     newKeyMap(tr),
		help:     help.New(),
		page:     pageIndex(opts.Start),
		focus:    -1,
		options:  defaultCities,
		renders:  perf.NewRecorder("render", log, slowRender),
		bar:      components.NewStatusBar(settings.Locale),
		values: values{
			page:         1,
			dialogSize:   string(components.DialogSizeDefault),
			tab:          "infos",
			closedAlerts: map[theme.Severity]bool{},
		},
	}

	if settings.OptionsFile != "" {
		if src, err := components.LoadOptionsFile(settings.OptionsFile); err != nil {
			m.lastError = err
			log.Warn("options file not loaded", "path", settings.OptionsFile, "error", err)
		} else {
			m.options = src
		}
		if w, err := watch.NewWatcher(settings.OptionsFile); err != nil {
			log.Warn("options file not watched", "error", err)
		} else {
			m.watcher = w
		}
	}

	m.buildWidgets()
	m.pages = m.buildPages()
	m.layout = CalculateLayout(0, 0, false)
	return m
}

// Init starts the options watcher.
func (m *Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	if err := m.watcher.Start(); err != nil {
		m.log.Warn("options watcher not started", "error", err)
		m.watcher.Stop()
		m.watcher = nil
		return func() tea.Msg { return errMsg{err} }
	}
	return m.waitForOptionsChange()
}

// Update handles messages and updates the model
// This function is a simple dispatcher that routes messages to
// dedicated handler methods organized in handlers.go and keyboard.go
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case optionsChangedMsg:
		return m.handleOptionsChanged(msg)

	case dialogOpenMsg:
		return m.handleDialogOpen()

	case submitDoneMsg:
		return m.handleSubmitDone()

	case errMsg:
		return m.handleError(msg)

	default:
		return m, m.broadcast(msg)
	}
}

// CurrentPage returns the page on screen.
func (m *Model) CurrentPage() Page { return m.pages[m.page].id }

// Document returns the document the widgets share.
func (m *Model) Document() *dom.Document { return m.doc }

// Renders returns the render timings.
func (m *Model) Renders() *perf.Recorder { return m.renders }

func (m *Model) modalOpen() bool { return m.w.dialog.IsOpen() }

// queue schedules cmd to run after the current message is fully handled.
func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

// flush returns cmds plus everything queued by callbacks.
func (m *Model) flush(cmds ...tea.Cmd) tea.Cmd {
	cmds = append(cmds, m.pending...)
	m.pending = nil
	return tea.Batch(cmds...)
}

// View renders the TUI
func (m *Model) View() string {
	defer m.renders.Start()()

	if m.width == 0 {
		return m.tr.T(locale.GalleryLoading)
	}
	if m.terminalTooSmall {
		return m.terminalTooSmallView()
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		m.renderBody(),
		m.renderStatus(),
		m.renderHelp(),
	)

	// The dialog renders over the whole viewport, backdrop included.
	if overlays := m.doc.Overlays(); len(overlays) > 0 {
		return overlays[len(overlays)-1]
	}
	return base
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(theme.Orange).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(theme.Neutral50)
)

func (m *Model) renderHeader() string {
	title := titleStyle.Render("widgetkit") + statusStyle.Render(" · "+m.CurrentPage().Title())
	m.w.nav.SetOrigin(0, 1)
	return title + "\n" + m.w.nav.View()
}

// renderBody stacks the widgets of the current page, one blank line apart,
// telling each one where it lands so its hit regions match the screen.
func (m *Model) renderBody() string {
	l := m.layout
	y := l.BodyTop
	var blocks []string
	for _, e := range m.pages[m.page].entries {
		if e.place != nil {
			e.place.SetOrigin(l.BodyLeft, y)
		}
		v := e.view()
		if v == "" {
			continue
		}
		blocks = append(blocks, v)
		y += lipgloss.Height(v) + 1
	}
	body := lipgloss.NewStyle().MarginLeft(l.BodyLeft).Render(strings.Join(blocks, "\n\n"))
	return lipgloss.NewStyle().Height(l.BodyHeight).MaxHeight(l.BodyHeight).Render(body)
}

func (m *Model) renderStatus() string {
	m.bar.SetWidth(m.width)
	m.bar.SetMessage(m.status)
	m.bar.SetError(m.lastError)
	if logger.GetLevel() <= slog.LevelDebug {
		m.bar.SetDetail(m.renders.Summary())
	}
	return m.bar.View()
}

func (m *Model) renderHelp() string {
	m.help.ShowAll = m.showHelp
	return m.help.View(m.keys)
}

func (m *Model) terminalTooSmallView() string {
	minimum := m.tr.Tf(locale.GalleryMinimumSize, map[string]any{"Width": MinTerminalWidth, "Height": MinTerminalHeight})
	msg := lipgloss.NewStyle().Foreground(theme.Red).Render(m.tr.T(locale.GalleryTooSmall)) + "\n" +
		statusStyle.Render(minimum)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}
