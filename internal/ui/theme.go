package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/tayrics/tayrics/internal/config"
)

// Theme color names specific to this app
const (
	ColorNameCoverBorder fyne.ThemeColorName = "tayricsCoverBorder"
	ColorNameGroupedCard fyne.ThemeColorName = "tayricsGroupedCard"
)

// GroupedTheme is a grouped-list look: a tinted page background with cards on
// top, and compact sizes. A fixed variant overrides the system preference.
type GroupedTheme struct {
	variant config.ThemeVariant
}

// NewGroupedTheme creates the theme for the given variant
func NewGroupedTheme(variant config.ThemeVariant) fyne.Theme {
	return &GroupedTheme{variant: variant}
}

// Color returns theme colors
func (t *GroupedTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch t.variant {
	case config.ThemeLight:
		variant = theme.VariantLight
	case config.ThemeDark:
		variant = theme.VariantDark
	}
	dark := variant == theme.VariantDark

	switch name {
	case theme.ColorNameBackground:
		if dark {
			return color.RGBA{R: 0, G: 0, B: 0, A: 255}
		}
		return color.RGBA{R: 242, G: 242, B: 247, A: 255} // grouped background
	case ColorNameGroupedCard:
		if dark {
			return color.RGBA{R: 28, G: 28, B: 30, A: 255}
		}
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case ColorNameCoverBorder:
		if dark {
			return color.RGBA{R: 72, G: 72, B: 74, A: 255}
		}
		return color.RGBA{R: 199, G: 199, B: 204, A: 255} // gray 3
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameForeground:
		if dark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *GroupedTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *GroupedTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *GroupedTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameScrollBar:
		return 12 // Reduced from default 16
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return LargeTitleSize
	case theme.SizeNameSelectionRadius:
		return 2 // Reduced from default 3
	}

	return theme.DefaultTheme().Size(name)
}

// themeColor resolves name against the running app's theme and variant
func themeColor(name fyne.ThemeColorName) color.Color {
	app := fyne.CurrentApp()
	if app == nil {
		return theme.DefaultTheme().Color(name, theme.VariantLight)
	}
	return app.Settings().Theme().Color(name, app.Settings().ThemeVariant())
}
