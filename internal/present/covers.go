package present

import (
	"cmp"
	"slices"

	"github.com/tayrics/tayrics/internal/model"
)

// CoverResolver reports whether a cover image name can be displayed.
type CoverResolver interface {
	Has(name string) bool
}

// CoverItem is a display-only pairing of an album's rank and its cover.
type CoverItem struct {
	DisplayOrder   int
	CoverImageName string
	AlbumName      string
}

// CoverItems returns one item per album whose cover resolves, ascending by
// display order. Albums sharing an order keep their catalog order. A nil
// resolver accepts every cover.
func CoverItems(catalog *model.Catalog, resolver CoverResolver) []CoverItem {
	albums := catalog.Albums()
	items := make([]CoverItem, 0, len(albums))
	for _, album := range albums {
		if resolver != nil && !resolver.Has(album.CoverImageName) {
			continue
		}
		items = append(items, CoverItem{
			DisplayOrder:   album.Order,
			CoverImageName: album.CoverImageName,
			AlbumName:      album.Name,
		})
	}

	slices.SortStableFunc(items, func(a, b CoverItem) int {
		return cmp.Compare(a.DisplayOrder, b.DisplayOrder)
	})
	return items
}
