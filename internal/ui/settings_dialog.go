package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/tayrics/tayrics/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// display label <-> stored value
	languageCodes map[string]string
	themeValues   map[string]config.ThemeVariant

	// UI components
	languageSelect *widget.Select
	themeSelect    *widget.Select
	expandCheck    *widget.Check
}

// NewSettingsDialog creates a new settings dialog; onSaved runs after values
// are stored
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
		themeValues:   make(map[string]config.ThemeVariant),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection, sorted by display name
	languageOptions := []string{}
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		languageOptions = append(languageOptions, label)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Theme selection
	themeOptions := []string{}
	for _, variant := range sd.settings.GetThemeVariantOptions() {
		label := sd.themeLabel(variant)
		sd.themeValues[label] = variant
		themeOptions = append(themeOptions, label)
	}
	sd.themeSelect = widget.NewSelect(themeOptions, nil)

	sd.expandCheck = widget.NewCheck(sd.localization.GetText(KeyExpandOnLaunch), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyTheme)+":"),
		sd.themeSelect,

		widget.NewSeparator(),
		sd.expandCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(360, 300))
}

func (sd *SettingsDialog) themeLabel(variant config.ThemeVariant) string {
	switch variant {
	case config.ThemeLight:
		return sd.localization.GetText(KeyThemeLight)
	case config.ThemeDark:
		return sd.localization.GetText(KeyThemeDark)
	default:
		return sd.localization.GetText(KeyThemeSystem)
	}
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.themeSelect.SetSelected(sd.themeLabel(sd.settings.GetThemeVariant()))
	sd.expandCheck.SetChecked(sd.settings.GetExpandOnLaunch())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
	if variant, ok := sd.themeValues[sd.themeSelect.Selected]; ok {
		sd.settings.SetThemeVariant(variant)
	}
	sd.settings.SetExpandOnLaunch(sd.expandCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
