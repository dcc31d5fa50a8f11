package ui

// Package ui contains the Fyne-based user interface for the application. It
// renders the cover gallery and the titles outline from a present.Snapshot
// and runs unchanged on desktop and mobile. All UI strings are localized via
// Localization.
