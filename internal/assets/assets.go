// Package assets holds the read-only files bundled into the binary: the
// catalog document, the album cover images and the application icon.
package assets

import (
	"embed"
	"io/fs"
)

const (
	// DataFile is the catalog document at the root of FS.
	DataFile = "Tayrics-Data.json"

	// CoversDir holds one image per album-cover-name.
	CoversDir = "covers"

	iconFile = "icon.png"
)

//go:embed Tayrics-Data.json icon.png covers
var bundle embed.FS

// FS returns the whole bundle.
func FS() fs.FS {
	return bundle
}

// Covers returns the cover image namespace rooted at CoversDir.
func Covers() fs.FS {
	sub, err := fs.Sub(bundle, CoversDir)
	if err != nil {
		// only reachable with an invalid constant path
		panic(err)
	}
	return sub
}

// Icon returns the application icon as PNG bytes.
func Icon() []byte {
	data, err := bundle.ReadFile(iconFile)
	if err != nil {
		return nil
	}
	return data
}
