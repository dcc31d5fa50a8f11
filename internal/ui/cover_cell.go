package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/tayrics/tayrics/internal/present"
)

// coverCell shows one album cover with rounded corners and a hairline border.
// Tapping flashes a highlight that fades out; nothing stays selected.
type coverCell struct {
	widget.BaseWidget

	item present.CoverItem
	edge float32

	image     *canvas.Image
	highlight *canvas.Rectangle
	border    *canvas.Rectangle
	fade      *fyne.Animation

	gestures     *GestureHandler
	onTapped     func(present.CoverItem)
	onTouchStart func()
	onSwipe      func(GestureType)
}

func newCoverCell(item present.CoverItem, img image.Image, edge float32) *coverCell {
	c := &coverCell{item: item, edge: edge}

	c.image = canvas.NewImageFromImage(img)
	c.image.FillMode = canvas.ImageFillContain
	c.image.SetMinSize(fyne.NewSquareSize(edge))

	c.highlight = canvas.NewRectangle(color.Transparent)
	c.highlight.CornerRadius = CoverCornerRadius

	c.border = canvas.NewRectangle(color.Transparent)
	c.border.CornerRadius = CoverCornerRadius
	c.border.StrokeWidth = CoverBorderWidth
	c.border.StrokeColor = themeColor(ColorNameCoverBorder)

	c.gestures = NewGestureHandler(c.onGesture)

	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer implements fyne.Widget
func (c *coverCell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(c.image, c.highlight, c.border))
}

// MinSize keeps every cell square at the gallery edge length
func (c *coverCell) MinSize() fyne.Size {
	return fyne.NewSquareSize(c.edge)
}

// Refresh re-reads theme colors
func (c *coverCell) Refresh() {
	c.border.StrokeColor = themeColor(ColorNameCoverBorder)
	c.BaseWidget.Refresh()
}

// Tapped implements fyne.Tappable
func (c *coverCell) Tapped(*fyne.PointEvent) {
	c.flash()
	if c.onTapped != nil {
		c.onTapped(c.item)
	}
}

// TouchDown implements mobile.Touchable
func (c *coverCell) TouchDown(event *mobile.TouchEvent) {
	if c.onTouchStart != nil {
		c.onTouchStart()
	}
	c.gestures.TouchDown(event)
}

// TouchUp implements mobile.Touchable
func (c *coverCell) TouchUp(event *mobile.TouchEvent) {
	c.gestures.TouchUp(event)
}

// TouchCancel implements mobile.Touchable
func (c *coverCell) TouchCancel(event *mobile.TouchEvent) {
	c.gestures.TouchCancel(event)
}

func (c *coverCell) onGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeLeft, GestureSwipeRight:
		if c.onSwipe != nil {
			c.onSwipe(gesture)
		}
	}
}

// flash shows the selection color and fades it back to transparent
func (c *coverCell) flash() {
	if c.fade != nil {
		c.fade.Stop()
	}
	c.fade = canvas.NewColorRGBAAnimation(themeColor(theme.ColorNameSelection), color.Transparent, SelectionFade,
		func(col color.Color) {
			c.highlight.FillColor = col
			c.highlight.Refresh()
		})
	c.fade.Start()
}
