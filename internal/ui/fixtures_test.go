package ui

import (
	"image"

	"github.com/tayrics/tayrics/internal/model"
)

// stubCovers resolves only the names it was given
type stubCovers map[string]bool

func (s stubCovers) Has(name string) bool {
	return s[name]
}

func (s stubCovers) Lookup(name string) (image.Image, bool) {
	if !s[name] {
		return nil, false
	}
	return image.NewRGBA(image.Rect(0, 0, 8, 8)), true
}

func testCatalog() *model.Catalog {
	return model.NewCatalog([]model.Album{
		{
			Order:          2,
			Name:           "Fearless",
			CoverImageName: "fearless",
			Songs: []model.Song{
				{TrackNumber: 1, Name: "Fearless", Length: 241},
				{TrackNumber: 2, Name: "Fifteen", Length: 294},
			},
		},
		{Order: 1, Name: "Taylor Swift", CoverImageName: "taylor-swift"},
		{
			Order:          3,
			Name:           "Speak Now",
			CoverImageName: "speak-now",
			Songs: []model.Song{
				{TrackNumber: 1, Name: "Mine", Length: 230.5},
			},
		},
	})
}

func allCovers() stubCovers {
	return stubCovers{"fearless": true, "taylor-swift": true, "speak-now": true}
}
