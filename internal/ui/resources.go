package ui

import (
	"fyne.io/fyne/v2"

	"github.com/tayrics/tayrics/internal/assets"
)

const (
	AppIcon = "tayrics.png"
)

// AppIconResource returns the bundled application icon
func AppIconResource() fyne.Resource {
	return fyne.NewStaticResource(AppIcon, assets.Icon())
}
