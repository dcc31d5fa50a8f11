package model

// Package model defines the catalog data structures shown by the app: albums,
// their songs, and the read-only catalog that owns them. Values are immutable
// once decoded and carry content-derived identities for the view layer.
