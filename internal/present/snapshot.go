package present

import "github.com/tayrics/tayrics/internal/model"

// Snapshot is the complete display state for one screen.
type Snapshot struct {
	Covers []CoverItem
	Titles *Outline
}

// Build derives both display collections from catalog.
func Build(catalog *model.Catalog, resolver CoverResolver) Snapshot {
	return Snapshot{
		Covers: CoverItems(catalog, resolver),
		Titles: BuildOutline(catalog),
	}
}

// Sections returns the group order of the snapshot.
func (s Snapshot) Sections() []Section {
	return Sections()
}

// IsEmpty reports whether both groups are empty.
func (s Snapshot) IsEmpty() bool {
	return len(s.Covers) == 0 && (s.Titles == nil || s.Titles.Len() == 0)
}
