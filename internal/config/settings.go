package config

import (
	"fyne.io/fyne/v2"
)

// ThemeVariant selects the colour scheme.
type ThemeVariant string

const (
	ThemeSystem ThemeVariant = "system"
	ThemeLight  ThemeVariant = "light"
	ThemeDark   ThemeVariant = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage       = "app_language"
	KeyThemeVariant   = "theme_variant"
	KeyExpandOnLaunch = "expand_on_launch"
)

// Default values
const (
	DefaultLanguage       = "system"
	DefaultThemeVariant   = ThemeSystem
	DefaultExpandOnLaunch = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetThemeVariant returns the configured theme variant
func (s *Settings) GetThemeVariant() ThemeVariant {
	variant := ThemeVariant(s.app.Preferences().String(KeyThemeVariant))
	switch variant {
	case ThemeSystem, ThemeLight, ThemeDark:
		return variant
	}
	s.SetThemeVariant(DefaultThemeVariant)
	return DefaultThemeVariant
}

// SetThemeVariant sets the theme variant; unknown values fall back to the default
func (s *Settings) SetThemeVariant(variant ThemeVariant) {
	switch variant {
	case ThemeSystem, ThemeLight, ThemeDark:
	default:
		variant = DefaultThemeVariant
	}
	s.app.Preferences().SetString(KeyThemeVariant, string(variant))
}

// GetThemeVariantOptions returns available theme variants
func (s *Settings) GetThemeVariantOptions() []ThemeVariant {
	return []ThemeVariant{ThemeSystem, ThemeLight, ThemeDark}
}

// GetExpandOnLaunch returns whether albums start expanded in the titles outline
func (s *Settings) GetExpandOnLaunch() bool {
	return s.app.Preferences().BoolWithFallback(KeyExpandOnLaunch, DefaultExpandOnLaunch)
}

// SetExpandOnLaunch sets whether albums start expanded
func (s *Settings) SetExpandOnLaunch(expand bool) {
	s.app.Preferences().SetBool(KeyExpandOnLaunch, expand)
}
