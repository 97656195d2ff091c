package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/MikeBiancalana/widgetkit/internal/logger"
)

// ErrInvalidSettings is returned when a loaded setting fails validation.
var ErrInvalidSettings = errors.New("invalid settings")

// Color modes accepted by the color setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings are the user-tunable knobs of the widget gallery.
type Settings struct {
	// Locale selects calendar and widget labels.
	Locale string `mapstructure:"locale" validate:"oneof=fr en"`

	// BlurGrace is how long a widget waits after losing focus before
	// checking whether focus left it for good.
	BlurGrace time.Duration `mapstructure:"blur_grace" validate:"min=10ms,max=2s"`

	// PortalContainer is the mount point overlays attach to.
	PortalContainer string `mapstructure:"portal_container" validate:"required"`

	// OptionsFile feeds the gallery's Select and AutocompleteSelect. Empty
	// means the built-in city list.
	OptionsFile string `mapstructure:"options_file"`

	Color string `mapstructure:"color" validate:"oneof=auto always never"`

	// PageCount is the page total shown by the gallery's Pagination.
	PageCount int `mapstructure:"page_count" validate:"min=1,max=100000"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() *Settings {
	return &Settings{
		Locale:          "fr",
		BlurGrace:       100 * time.Millisecond,
		PortalContainer: "portal-menu-container",
		Color:           ColorAuto,
		PageCount:       10,
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// LoadSettings reads settings from path, falling back to ConfigPath() when
// path is empty. A missing default file is not an error; a missing explicit
// file is. WIDGETKIT_* environment variables override file values.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("WIDGETKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		p, err := ConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		logger.Debug("settings loaded", "path", path)
	} else if explicit {
		return nil, fmt.Errorf("config file not found: %w", err)
	}

	cfg := DefaultSettings()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Locale = strings.ToLower(cfg.Locale)
	cfg.Color = strings.ToLower(cfg.Color)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault("locale", d.Locale)
	v.SetDefault("blur_grace", d.BlurGrace)
	v.SetDefault("portal_container", d.PortalContainer)
	v.SetDefault("options_file", d.OptionsFile)
	v.SetDefault("color", d.Color)
	v.SetDefault("page_count", d.PageCount)
}

// Validate checks every field against its constraints.
func (s *Settings) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: settings are nil", ErrInvalidSettings)
	}
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return fmt.Errorf("%w: %s failed validation for tag '%s'", ErrInvalidSettings, settingName(fe), fe.Tag())
	}
	return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
}

// settingName maps a struct field back to its config key (BlurGrace -> blur_grace).
func settingName(fe validator.FieldError) string {
	name := fe.StructField()
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
