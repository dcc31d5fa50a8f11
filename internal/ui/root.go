package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"github.com/tayrics/tayrics/internal/config"
	"github.com/tayrics/tayrics/internal/model"
	"github.com/tayrics/tayrics/internal/present"
)

// CoverLibrary resolves and supplies cover images
type CoverLibrary interface {
	present.CoverResolver
	CoverSource
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	snapshot present.Snapshot

	header     *canvas.Text
	gallery    *CoverGallery
	outline    *TitlesOutline
	emptyLabel *widget.Label

	logger *log.Entry
}

// NewRootUI builds the screen for catalog and applies the initial snapshot
func NewRootUI(window fyne.Window, app fyne.App, catalog *model.Catalog, covers CoverLibrary) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(),
		snapshot:     present.Build(catalog, covers),
		logger:       log.WithFields(log.Fields{"module": "root-ui"}),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI(covers)

	ui.logger.WithFields(log.Fields{
		"covers": len(ui.snapshot.Covers),
		"rows":   ui.snapshot.Titles.Len(),
	}).Info("initial snapshot applied")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI(covers CoverSource) {
	ui.createMenu()

	margin := ui.mobile.GetLayoutMargin()

	// Large title header
	ui.header = canvas.NewText(ui.localization.GetText(KeyAppTitle), themeColor(theme.ColorNameForeground))
	ui.header.TextSize = LargeTitleSize
	ui.header.TextStyle = fyne.TextStyle{Bold: true}
	headerRow := container.New(layout.NewCustomPaddedLayout(margin, 0, margin, margin), ui.header)

	ui.gallery = NewCoverGallery(ui.snapshot.Covers, covers, ui.mobile)

	ui.outline = NewTitlesOutline(ui.snapshot.Titles, margin)
	if ui.settings.GetExpandOnLaunch() {
		ui.outline.ExpandAll()
	}

	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyNoAlbums))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter

	var center fyne.CanvasObject = ui.outline.Container()
	if ui.snapshot.IsEmpty() {
		center = container.NewCenter(ui.emptyLabel)
	}

	content := container.NewBorder(
		container.NewVBox(headerRow, ui.gallery.Container()), // top
		nil, // bottom
		nil, // left
		nil, // right
		center,
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	expandItem := fyne.NewMenuItem(ui.localization.GetText(KeyExpandAll), func() {
		ui.outline.ExpandAll()
	})
	collapseItem := fyne.NewMenuItem(ui.localization.GetText(KeyCollapseAll), func() {
		ui.outline.CollapseAll()
	})

	// Language submenu, in a stable order
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		fyne.NewMenu(ui.localization.GetText(KeyView), expandItem, collapseItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language and theme
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.header.Text = ui.localization.GetText(KeyAppTitle)
	ui.header.Color = themeColor(theme.ColorNameForeground)
	ui.header.Refresh()

	ui.emptyLabel.SetText(ui.localization.GetText(KeyNoAlbums))
	ui.outline.RefreshTheme()
}

// applySettings re-reads stored settings after the dialog saved them
func (ui *RootUI) applySettings() {
	ui.app.Settings().SetTheme(NewGroupedTheme(ui.settings.GetThemeVariant()))
	ui.localization.SetLanguage(ui.settings.GetLanguage())

	ui.refreshUITexts()
	ui.createMenu()
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.applySettings).Show()
}

// Snapshot returns the display state the screen was built from
func (ui *RootUI) Snapshot() present.Snapshot {
	return ui.snapshot
}

// Gallery returns the cover gallery
func (ui *RootUI) Gallery() *CoverGallery {
	return ui.gallery
}

// Outline returns the titles outline
func (ui *RootUI) Outline() *TitlesOutline {
	return ui.outline
}
