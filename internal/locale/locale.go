// Package locale translates the fixed strings widgets render: month and
// weekday names, placeholders and the titles of interactive parts.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/MikeBiancalana/widgetkit/internal/logger"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	French  = "fr"
	English = "en"
	Default = French
)

// Message ids shared by every locale file.
const (
	CalendarPrevMonth = "CalendarPrevMonth"
	CalendarNextMonth = "CalendarNextMonth"
	CalendarPrevYears = "CalendarPrevYears"
	CalendarNextYears = "CalendarNextYears"
	CalendarShowYears = "CalendarShowYears"
	DatePlaceholder   = "DatePlaceholder"
	DateOpenCalendar  = "DateOpenCalendar"
	SelectPlaceholder = "SelectPlaceholder"
	ListOpen          = "ListOpen"
	ListClose         = "ListClose"
	ListEmpty         = "ListEmpty"
	ClearSelection    = "ClearSelection"
	PageFirst         = "PageFirst"
	PagePrev          = "PagePrev"
	PageNext          = "PageNext"
	PageLast          = "PageLast"
	Close             = "Close"
	Loading           = "Loading"
	TooltipShow       = "TooltipShow"
	TooltipHide       = "TooltipHide"
	PasswordShow      = "PasswordShow"
	PasswordHide      = "PasswordHide"
)

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	languages  []string
)

func loadBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.French)
		b.RegisterUnmarshalFunc("json", json.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			logger.Error("locales not readable", "component", "locale", "error", err)
			bundle = b
			return
		}
		for _, entry := range entries {
			name := entry.Name()
			code := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
			if code == "" || code == name {
				continue
			}
			if _, err := b.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
				logger.Error("locale load failed", "component", "locale", "file", name, "error", err)
				continue
			}
			languages = append(languages, code)
		}
		bundle = b
	})
	return bundle
}

// Supported returns the language codes with a message file.
func Supported() []string {
	loadBundle()
	out := make([]string, len(languages))
	copy(out, languages)
	return out
}

// Translator resolves message ids for one language. The zero value is not
// usable; build one with New.
type Translator struct {
	lang      string
	localizer *i18n.Localizer
	cache     map[string]string
}

// New returns a translator for lang. Unknown languages fall back to French.
func New(lang string) *Translator {
	b := loadBundle()
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		lang = Default
	}
	return &Translator{
		lang:      lang,
		localizer: i18n.NewLocalizer(b, lang, Default),
		cache:     make(map[string]string),
	}
}

// Lang returns the requested language code.
func (t *Translator) Lang() string {
	return t.lang
}

// T translates id. A missing id is returned unchanged.
func (t *Translator) T(id string) string {
	if msg, ok := t.cache[id]; ok {
		return msg
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		logger.Debug("translation missing", "component", "locale", "key", id, "error", err)
		return id
	}
	t.cache[id] = msg
	return msg
}

// Tf translates id and fills its template fields from data. Results are not
// cached.
func (t *Translator) Tf(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		logger.Debug("translation missing", "component", "locale", "key", id, "error", err)
		return id
	}
	return msg
}

// Month returns the full month name.
func (t *Translator) Month(m time.Month) string {
	return t.T(fmt.Sprintf("Month%d", int(m)))
}

// WeekdaysMondayFirst returns the seven two-letter column headers of a
// Monday-first calendar.
func (t *Translator) WeekdaysMondayFirst() []string {
	days := make([]string, 7)
	for i := range days {
		days[i] = t.T(fmt.Sprintf("Weekday%d", i+1))
	}
	return days
}
