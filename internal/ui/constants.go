package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	DashPlaceholder = "—"
)

// Cover gallery sizing
const (
	CoverEdge         float32 = 140
	CoverSpacing      float32 = 8
	CoverInsetTop     float32 = 16
	CoverInsetBottom  float32 = 10
	CoverCornerRadius float32 = 8
	CoverBorderWidth  float32 = 1
)

// Titles outline sizing
const (
	GroupCornerRadius float32 = 10
	GroupInset        float32 = 8
)

// Header sizing
const (
	LargeTitleSize float32 = 30
)

// Window defaults (portrait, phone-like)
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 780
)

// Timings
const (
	// SnapDebounce is how long scrolling must pause before the gallery
	// settles on a cover boundary.
	SnapDebounce = 120 * time.Millisecond

	// SelectionFade is the duration of the deselect transition.
	SelectionFade = 250 * time.Millisecond
)
