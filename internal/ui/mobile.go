package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides device-dependent sizing
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{device: fyne.CurrentDevice()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device != nil && m.device.IsMobile()
}

// GetLayoutMargin returns the leading/trailing margin for edge-aligned content
func (m *MobileUI) GetLayoutMargin() float32 {
	if m.IsMobileDevice() {
		return 20 // Larger margin for mobile
	}
	return 10 // Standard margin for desktop
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	if m.device == nil {
		return false
	}
	orientation := m.device.Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// GetCoverEdge returns the cover cell edge; landscape phones get smaller cells
// so more covers fit the shorter screen
func (m *MobileUI) GetCoverEdge() float32 {
	if m.IsMobileDevice() && m.IsLandscape() {
		return CoverEdge * 0.75
	}
	return CoverEdge
}
