package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MikeBiancalana/widgetkit/internal/dates"
	"github.com/MikeBiancalana/widgetkit/internal/locale"
	"github.com/MikeBiancalana/widgetkit/internal/tui/components"
	"github.com/MikeBiancalana/widgetkit/internal/tui/mouse"
	"github.com/MikeBiancalana/widgetkit/internal/tui/theme"
)

// Page identifies one screen of the gallery.
type Page string

const (
	PageCalendar     Page = "calendar"
	PageDatePicker   Page = "datepicker"
	PageSelect       Page = "select"
	PageAutocomplete Page = "autocomplete"
	PagePagination   Page = "pagination"
	PageOverlays     Page = "overlays"
	PageForm         Page = "form"
	PageDisplay      Page = "display"
	PageAlerts       Page = "alerts"
)

var pageOrder = []Page{
	PageCalendar, PageDatePicker, PageSelect, PageAutocomplete, PagePagination,
	PageOverlays, PageForm, PageDisplay, PageAlerts,
}

var pageTitles = map[Page]string{
	PageCalendar:     "Calendar",
	PageDatePicker:   "DatePicker",
	PageSelect:       "Select",
	PageAutocomplete: "Autocomplete",
	PagePagination:   "Pagination",
	PageOverlays:     "Dialog & Tooltip",
	PageForm:         "Form",
	PageDisplay:      "Display",
	PageAlerts:       "Alerts",
}

// Pages lists every gallery page in display order.
func Pages() []Page {
	out := make([]Page, len(pageOrder))
	copy(out, pageOrder)
	return out
}

// Title returns the name shown in the page tabs.
func (p Page) Title() string {
	if t, ok := pageTitles[p]; ok {
		return t
	}
	return string(p)
}

// ParsePage resolves a page name, case-insensitively.
func ParsePage(s string) (Page, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, p := range pageOrder {
		if string(p) == want {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown component %q", s)
}

func pageIndex(p Page) int {
	for i, q := range pageOrder {
		if q == p {
			return i
		}
	}
	return 0
}

// placed is what the gallery needs from an interactive widget to lay it out
// and hit-test it.
type placed interface {
	SetOrigin(x, y int)
	Bounds() mouse.Rect
	TitleAt(x, y int) string
}

// entry is one widget of a page, adapted to a common shape since every
// widget's Update returns its own type.
type entry struct {
	name   string
	place  placed
	view   func() string
	update func(tea.Msg) tea.Cmd
	focus  func() tea.Cmd
	blur   func() tea.Cmd
	// selfFocus marks widgets that take focus from their own click handling.
	selfFocus bool
}

func (e *entry) focusable() bool { return e.focus != nil }

// flagWidget covers widgets whose focus is a plain flag.
type flagWidget interface {
	placed
	Focus()
	Blur()
}

func static(name string, view func() string) *entry {
	return &entry{name: name, view: view, update: func(tea.Msg) tea.Cmd { return nil }}
}

func flagged(name string, w flagWidget, view func() string, update func(tea.Msg) tea.Cmd) *entry {
	return &entry{
		name:   name,
		place:  w,
		view:   view,
		update: update,
		focus:  func() tea.Cmd { w.Focus(); return nil },
		blur:   func() tea.Cmd { w.Blur(); return nil },
	}
}

type page struct {
	id      Page
	entries []*entry
}

// defaultCities feeds the option widgets when no options file is set.
var defaultCities = components.Mapping{
	{Key: "PARIS", Value: "paris"},
	{Key: "LYON", Value: "lyon"},
	{Key: "MARSEILLE", Value: "marseille"},
	{Key: "SAINT_ETIENNE", Value: "saint-etienne"},
	{Key: "AIX_EN_PROVENCE", Value: "aix-en-provence"},
	{Key: "NEW_YORK", Value: "new-york"},
	{Key: "LOS_ANGELES", Value: "los-angeles"},
	{Key: "MONTREAL", Value: "montreal"},
}

func dialogSizes(tr *locale.Translator) []components.Tab {
	return []components.Tab{
		{Label: tr.T(locale.GallerySizeSm), Value: string(components.DialogSizeSm)},
		{Label: tr.T(locale.GallerySizeDefault), Value: string(components.DialogSizeDefault)},
		{Label: tr.T(locale.GallerySizeLg), Value: string(components.DialogSizeLg)},
		{Label: tr.T(locale.GallerySizeXl), Value: string(components.DialogSizeXl)},
		{Label: tr.T(locale.GallerySizeFull), Value: string(components.DialogSizeFull)},
	}
}

func formSteps(tr *locale.Translator) []components.Step {
	return []components.Step{
		{Label: tr.T(locale.GalleryStepProfile)}, {Label: tr.T(locale.GalleryStepAddress)},
		{Label: tr.T(locale.GalleryStepPayment)}, {Label: tr.T(locale.GalleryStepConfirm)},
	}
}

var alertSeverities = []theme.Severity{
	theme.SeverityInfo, theme.SeveritySuccess, theme.SeverityWarning, theme.SeverityError,
}

// widgets are built once; pages only reference them.
type widgets struct {
	nav *components.Tabs

	calendar      *components.Calendar
	datePicker    *components.DatePicker
	selectBox     *components.Select
	autocomplete  *components.AutocompleteSelect
	fuzzy         *components.AutocompleteSelect
	pagination    *components.Pagination
	dialog        *components.Dialog
	dialogSize    *components.Tabs
	darkBackdrop  *components.Checkbox
	dialogButton  *components.Button
	tooltip       *components.Tooltip
	email         *components.FormField
	password      *components.FormField
	amount        *components.FormField
	terms         *components.Checkbox
	planMonthly   *components.Radio
	planYearly    *components.Radio
	submit        *components.Button
	stepper       *components.Stepper
	stepPrev      *components.IconButton
	stepNext      *components.IconButton
	displayTabs   *components.Tabs
	alerts        []*components.Alert
	restoreAlerts *components.Button
}

func (m *Model) buildWidgets() {
	lang := m.settings.Locale
	tr := m.tr
	w := &m.w

	navTabs := make([]components.Tab, len(pageOrder))
	for i, p := range pageOrder {
		navTabs[i] = components.Tab{Label: p.Title(), Value: string(p)}
	}
	w.nav = components.NewTabs(components.TabsProps{
		Tabs:          navTabs,
		Value:         string(pageOrder[m.page]),
		OnValueChange: func(v string) { m.queue(m.switchTo(pageIndex(Page(v)))) },
	})

	w.calendar = components.NewCalendar(components.CalendarProps{
		DateValue: m.values.date,
		OnDateValueChange: func(d dates.Date) {
			m.setDate(&d)
		},
		Lang: lang,
		Now:  m.now,
	})
	w.datePicker = components.NewDatePicker(m.doc, components.DatePickerProps{
		Label:             tr.T(locale.GalleryDateLabel),
		HelperText:        tr.T(locale.GalleryDateHelp),
		Required:          true,
		DateValue:         m.values.date,
		OnDateValueChange: m.setDate,
		Lang:              lang,
		Now:               m.now,
	})

	w.selectBox = components.NewSelect(m.doc, components.SelectProps{
		Label:      tr.T(locale.GalleryCityLabel),
		HelperText: tr.T(locale.GallerySelectHelp),
		Options:    components.NormalizeOptions(m.options),
		OnValueChange: func(v string) {
			m.values.selectCity = v
			w.selectBox.SetValue(v)
		},
		Lang: lang,
	})
	w.autocomplete = components.NewAutocompleteSelect(m.doc, components.AutocompleteSelectProps{
		Label:      tr.T(locale.GalleryCityLabel),
		HelperText: tr.T(locale.GalleryAutocompleteHelp),
		Options:    m.options,
		BlurGrace:  m.settings.BlurGrace,
		OnValueChange: func(v string) {
			m.values.city = v
			w.autocomplete.SetValue(v)
		},
		OnClear: func() {
			m.values.city = ""
			w.autocomplete.SetValue("")
		},
		Lang: lang,
	})
	w.fuzzy = components.NewAutocompleteSelect(m.doc, components.AutocompleteSelectProps{
		Label:       tr.T(locale.GalleryFuzzyLabel),
		HelperText:  tr.T(locale.GalleryFuzzyHelp),
		Options:     m.options,
		FilterFuzzy: true,
		BlurGrace:   m.settings.BlurGrace,
		OnValueChange: func(v string) {
			m.values.fuzzyCity = v
			w.fuzzy.SetValue(v)
		},
		OnClear: func() {
			m.values.fuzzyCity = ""
			w.fuzzy.SetValue("")
		},
		Lang: lang,
	})

	w.pagination = components.NewPagination(components.PaginationProps{
		Count: m.settings.PageCount,
		Page:  m.values.page,
		OnPageChange: func(p int) {
			m.values.page = p
			w.pagination.SetPage(p)
		},
		Lang: lang,
	})

	w.dialog = components.NewDialog(m.doc, components.DialogProps{
		Title:       tr.T(locale.GalleryDialogTitle),
		Body:        tr.T(locale.GalleryDialogBody),
		Size:        components.DialogSize(m.values.dialogSize),
		OnClose:     m.closeDialog,
		ContainerID: m.settings.PortalContainer,
	})
	w.dialogSize = components.NewTabs(components.TabsProps{
		Tabs:  dialogSizes(tr),
		Value: m.values.dialogSize,
		OnValueChange: func(v string) {
			m.values.dialogSize = v
			w.dialogSize.SetValue(v)
			w.dialog.SetSize(components.DialogSize(v))
		},
	})
	w.darkBackdrop = components.NewCheckbox(components.CheckboxProps{
		Label: tr.T(locale.GalleryDarkBackdrop),
		OnCheckedChange: func(checked bool) {
			m.values.darkBackdrop = checked
			w.darkBackdrop.SetChecked(checked)
			if checked {
				w.dialog.SetBackdrop(components.BackdropDark)
			} else {
				w.dialog.SetBackdrop(components.BackdropDefault)
			}
		},
	})
	w.dialogButton = components.NewButton(components.ButtonProps{
		Label:   tr.T(locale.GalleryOpenDialog),
		EndIcon: "↗",
		OnClick: func() { m.queue(func() tea.Msg { return dialogOpenMsg{} }) },
		Lang:    lang,
	})
	w.tooltip = components.NewTooltip(m.doc, components.TooltipProps{
		Content:  tr.T(locale.GalleryTooltipText),
		Position: components.TooltipRight,
		Lang:     lang,
	})

	w.email = components.NewFormField(components.FormFieldProps{
		Label:       tr.T(locale.GalleryEmailLabel),
		Placeholder: tr.T(locale.GalleryEmailPlaceholder),
		Required:    true,
		OnValueChange: func(v string) {
			m.values.email = v
			w.email.SetValue(v)
		},
		Lang: lang,
	})
	w.password = components.NewFormField(components.FormFieldProps{
		Label:      tr.T(locale.GalleryPasswordLabel),
		HelperText: tr.T(locale.GalleryPasswordHelp),
		Required:   true,
		Type:       components.FieldPassword,
		OnValueChange: func(v string) {
			m.values.password = v
			w.password.SetValue(v)
		},
		Lang: lang,
	})
	w.amount = components.NewFormField(components.FormFieldProps{
		Label:        tr.T(locale.GalleryAmountLabel),
		EndAdornment: "€",
		OnValueChange: func(v string) {
			m.values.amount = v
			w.amount.SetValue(v)
		},
		Lang: lang,
	})
	w.terms = components.NewCheckbox(components.CheckboxProps{
		Label: tr.T(locale.GalleryTerms),
		OnCheckedChange: func(checked bool) {
			m.values.terms = checked
			w.terms.SetChecked(checked)
		},
	})
	w.planMonthly = components.NewRadio(components.RadioProps{
		Label:           tr.T(locale.GalleryPlanMonthly),
		Card:            true,
		Image:           "▤",
		OnCheckedChange: func(bool) { m.setPlan("monthly") },
	})
	w.planYearly = components.NewRadio(components.RadioProps{
		Label:           tr.T(locale.GalleryPlanYearly),
		Card:            true,
		Image:           "▦",
		OnCheckedChange: func(bool) { m.setPlan("yearly") },
	})
	w.submit = components.NewButton(components.ButtonProps{
		Label:   tr.T(locale.GallerySubmit),
		OnClick: func() { m.queue(m.submitForm()) },
		Lang:    lang,
	})

	w.stepper = &components.Stepper{Steps: formSteps(tr)}
	w.stepPrev = components.NewIconButton(components.IconButtonProps{
		Icon: "◀", Alt: tr.T(locale.GalleryStepPrev), Variant: components.ButtonSecondary,
		OnClick: func() { w.stepper.Prev() },
	})
	w.stepNext = components.NewIconButton(components.IconButtonProps{
		Icon: "▶", Alt: tr.T(locale.GalleryStepNext),
		OnClick: func() { w.stepper.Next() },
	})
	w.displayTabs = components.NewTabs(components.TabsProps{
		Tabs: []components.Tab{
			{Label: tr.T(locale.GalleryTabInfos), Value: "infos"},
			{Label: tr.T(locale.GalleryTabDocs), Value: "docs"},
			{Label: tr.T(locale.GalleryTabHistory), Value: "history"},
		},
		Value: "infos",
		OnValueChange: func(v string) {
			m.values.tab = v
			w.displayTabs.SetValue(v)
		},
		FullWidth: true,
	})

	alertTexts := map[theme.Severity][2]string{
		theme.SeverityInfo:    {locale.GalleryAlertInfoTitle, locale.GalleryAlertInfoBody},
		theme.SeveritySuccess: {locale.GalleryAlertSuccessTitle, locale.GalleryAlertSuccessBody},
		theme.SeverityWarning: {locale.GalleryAlertWarningTitle, locale.GalleryAlertWarningBody},
		theme.SeverityError:   {locale.GalleryAlertErrorTitle, locale.GalleryAlertErrorBody},
	}
	w.alerts = make([]*components.Alert, len(alertSeverities))
	for i, sev := range alertSeverities {
		text := alertTexts[sev]
		w.alerts[i] = components.NewAlert(components.AlertProps{
			Severity:    sev,
			Title:       tr.T(text[0]),
			Description: tr.T(text[1]),
			Markdown:    sev == theme.SeverityWarning,
			FullWidth:   true,
			Closable:    sev != theme.SeverityError,
			OnClose:     func() { m.values.closedAlerts[sev] = true },
			Lang:        lang,
		})
	}
	w.restoreAlerts = components.NewButton(components.ButtonProps{
		Label:   tr.T(locale.GalleryRestoreAlerts),
		Variant: components.ButtonTertiary,
		OnClick: func() { m.values.closedAlerts = map[theme.Severity]bool{} },
		Lang:    lang,
	})
}

func (m *Model) buildPages() []page {
	w := &m.w
	selection := func() string {
		if m.values.date == nil {
			return theme.MutedStyle.Render(m.tr.T(locale.GalleryNoDate))
		}
		return m.tr.Tf(locale.GallerySelectedDate, map[string]any{"Date": dates.Format(*m.values.date)})
	}

	pages := []page{
		{id: PageCalendar, entries: []*entry{
			flagged("calendar", w.calendar, w.calendar.View, func(msg tea.Msg) tea.Cmd {
				_, cmd := w.calendar.Update(msg)
				return cmd
			}),
			static("selection", selection),
		}},
		{id: PageDatePicker, entries: []*entry{
			{
				name:      "datepicker",
				place:     w.datePicker,
				view:      w.datePicker.View,
				update:    func(msg tea.Msg) tea.Cmd { _, cmd := w.datePicker.Update(msg); return cmd },
				focus:     w.datePicker.Focus,
				blur:      func() tea.Cmd { w.datePicker.Blur(); return nil },
				selfFocus: true,
			},
			static("selection", selection),
		}},
		{id: PageSelect, entries: []*entry{
			{
				name:      "select",
				place:     w.selectBox,
				view:      w.selectBox.View,
				update:    func(msg tea.Msg) tea.Cmd { _, cmd := w.selectBox.Update(msg); return cmd },
				focus:     func() tea.Cmd { w.selectBox.Focus(); return nil },
				blur:      func() tea.Cmd { w.selectBox.Blur(); return nil },
				selfFocus: true,
			},
			static("value", func() string { return m.valueLine(m.values.selectCity) }),
		}},
		{id: PageAutocomplete, entries: []*entry{
			autocompleteEntry("autocomplete", w.autocomplete),
			static("value", func() string { return m.valueLine(m.values.city) }),
			autocompleteEntry("fuzzy", w.fuzzy),
			static("fuzzy-value", func() string { return m.valueLine(m.values.fuzzyCity) }),
		}},
		{id: PagePagination, entries: []*entry{
			flagged("pagination", w.pagination, w.pagination.View, func(msg tea.Msg) tea.Cmd {
				_, cmd := w.pagination.Update(msg)
				return cmd
			}),
			static("window", func() string {
				return theme.MutedStyle.Render(m.tr.Tf(locale.GalleryPageOf, map[string]any{
					"Page":   m.values.page,
					"Count":  m.settings.PageCount,
					"Window": components.ComputeWindow(m.settings.PageCount, m.values.page),
				}))
			}),
		}},
		{id: PageOverlays, entries: []*entry{
			flagged("dialog-size", w.dialogSize, w.dialogSize.View, func(msg tea.Msg) tea.Cmd {
				_, cmd := w.dialogSize.Update(msg)
				return cmd
			}),
			flagged("backdrop", w.darkBackdrop, w.darkBackdrop.View, func(msg tea.Msg) tea.Cmd {
				_, cmd := w.darkBackdrop.Update(msg)
				return cmd
			}),
			buttonEntry("open-dialog", w.dialogButton),
			{
				name:      "tooltip",
				place:     w.tooltip,
				view:      w.tooltip.View,
				update:    func(msg tea.Msg) tea.Cmd { _, cmd := w.tooltip.Update(msg); return cmd },
				focus:     func() tea.Cmd { w.tooltip.Focus(); return nil },
				blur:      func() tea.Cmd { w.tooltip.Blur(); return nil },
				selfFocus: true,
			},
		}},
		{id: PageForm, entries: []*entry{
			formFieldEntry("email", w.email),
			formFieldEntry("password", w.password),
			formFieldEntry("amount", w.amount),
			flagged("terms", w.terms, w.terms.View, func(msg tea.Msg) tea.Cmd {
				_, cmd := w.terms.Update(msg)
				return cmd
			}),
			flagged("plan-monthly", w.planMonthly, w.planMonthly.View, func(msg tea.Msg) tea.Cmd {
				_, cmd := w.planMonthly.Update(msg)
				return cmd
			}),
			flagged("plan-yearly", w.planYearly, w.planYearly.View, func(msg tea.Msg) tea.Cmd {
				_, cmd := w.planYearly.Update(msg)
				return cmd
			}),
			buttonEntry("submit", w.submit),
			static("result", m.formResult),
		}},
		{id: PageDisplay, entries: []*entry{
			static("chips", m.chipsRow),
			static("divider", func() string {
				return components.Divider{Length: m.layout.BodyWidth}.View()
			}),
			static("stepper", w.stepper.View),
			iconButtonEntry("step-prev", w.stepPrev),
			iconButtonEntry("step-next", w.stepNext),
			flagged("tabs", w.displayTabs, w.displayTabs.View, func(msg tea.Msg) tea.Cmd {
				_, cmd := w.displayTabs.Update(msg)
				return cmd
			}),
		}},
	}

	alerts := page{id: PageAlerts}
	for i, a := range w.alerts {
		sev := alertSeverities[i]
		view := func() string {
			if m.values.closedAlerts[sev] {
				return ""
			}
			return a.View()
		}
		alerts.entries = append(alerts.entries, flagged("alert-"+string(sev), a, view, func(msg tea.Msg) tea.Cmd {
			if m.values.closedAlerts[sev] {
				return nil
			}
			_, cmd := a.Update(msg)
			return cmd
		}))
	}
	alerts.entries = append(alerts.entries, buttonEntry("restore-alerts", w.restoreAlerts))
	return append(pages, alerts)
}

func autocompleteEntry(name string, a *components.AutocompleteSelect) *entry {
	return &entry{
		name:      name,
		place:     a,
		view:      a.View,
		update:    func(msg tea.Msg) tea.Cmd { _, cmd := a.Update(msg); return cmd },
		focus:     a.Focus,
		blur:      a.Blur,
		selfFocus: true,
	}
}

func formFieldEntry(name string, f *components.FormField) *entry {
	return &entry{
		name:   name,
		place:  f,
		view:   f.View,
		update: func(msg tea.Msg) tea.Cmd { _, cmd := f.Update(msg); return cmd },
		focus:  f.Focus,
		blur:   func() tea.Cmd { f.Blur(); return nil },
	}
}

func buttonEntry(name string, b *components.Button) *entry {
	return flagged(name, b, b.View, func(msg tea.Msg) tea.Cmd {
		_, cmd := b.Update(msg)
		return cmd
	})
}

func iconButtonEntry(name string, b *components.IconButton) *entry {
	return flagged(name, b, b.View, func(msg tea.Msg) tea.Cmd {
		_, cmd := b.Update(msg)
		return cmd
	})
}

func (m *Model) valueLine(v string) string {
	if v == "" {
		return theme.MutedStyle.Render(m.tr.T(locale.GalleryNoValue))
	}
	return m.tr.Tf(locale.GalleryValue, map[string]any{"Value": v})
}

func (m *Model) chipsRow() string {
	var chips []string
	for _, sev := range alertSeverities {
		chips = append(chips, components.NewChip(components.ChipProps{Label: string(sev), Severity: sev}).View(), " ")
	}
	chips = append(chips, components.NewChip(components.ChipProps{Label: m.tr.T(locale.GalleryDraft), Variant: components.ChipOutlined}).View())
	return lipgloss.JoinHorizontal(lipgloss.Center, chips...)
}
