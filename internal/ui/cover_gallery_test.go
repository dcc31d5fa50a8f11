package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/tayrics/tayrics/internal/present"
)

func TestCoverGallery_SkipsUnresolvedCovers(t *testing.T) {
	test.NewApp()

	items := []present.CoverItem{
		{DisplayOrder: 1, CoverImageName: "taylor-swift"},
		{DisplayOrder: 2, CoverImageName: "missing"},
		{DisplayOrder: 3, CoverImageName: "speak-now"},
	}
	g := NewCoverGallery(items, allCovers(), NewMobileUI())

	if g.Len() != 2 {
		t.Fatalf("Expected 2 covers, got %d", g.Len())
	}
	got := g.Items()
	if got[0].CoverImageName != "taylor-swift" || got[1].CoverImageName != "speak-now" {
		t.Errorf("Unexpected cover order %v", got)
	}
	if !g.Container().Visible() {
		t.Error("Expected gallery to be visible")
	}
}

func TestCoverGallery_EmptyIsHidden(t *testing.T) {
	test.NewApp()

	g := NewCoverGallery(nil, allCovers(), NewMobileUI())
	if g.Len() != 0 || g.CurrentIndex() != 0 {
		t.Errorf("Expected empty gallery, got %d covers", g.Len())
	}
	if g.Container().Visible() {
		t.Error("Expected empty gallery to be hidden")
	}
}

func manyCovers(n int) ([]present.CoverItem, stubCovers) {
	items := make([]present.CoverItem, n)
	covers := stubCovers{}
	for i := range items {
		name := string(rune('a' + i))
		items[i] = present.CoverItem{DisplayOrder: i + 1, CoverImageName: name}
		covers[name] = true
	}
	return items, covers
}

func TestCoverGallery_PagingAndSnap(t *testing.T) {
	test.NewApp()

	items, covers := manyCovers(6)
	g := NewCoverGallery(items, covers, NewMobileUI())
	w := test.NewWindow(g.Container())
	defer w.Close()
	w.Resize(fyne.NewSize(300, 200))

	stride := g.row.stride()
	if g.maxOffset() <= 2*stride {
		t.Fatalf("Expected room to scroll past two covers, max offset %v", g.maxOffset())
	}

	g.PageBy(1)
	if g.scroll.Offset.X != stride || g.CurrentIndex() != 1 {
		t.Errorf("Expected offset %v after paging, got %v", stride, g.scroll.Offset.X)
	}

	g.PageBy(-5)
	if g.scroll.Offset.X != 0 {
		t.Errorf("Expected paging back to stop at 0, got %v", g.scroll.Offset.X)
	}

	g.scroll.Offset.X = stride * 1.3
	g.SnapToBoundary()
	if g.scroll.Offset.X != stride {
		t.Errorf("Expected snap back to %v, got %v", stride, g.scroll.Offset.X)
	}

	g.scroll.Offset.X = stride * 1.6
	g.SnapToBoundary()
	if g.scroll.Offset.X != 2*stride {
		t.Errorf("Expected snap forward to %v, got %v", 2*stride, g.scroll.Offset.X)
	}

	g.PageBy(100)
	if g.scroll.Offset.X != g.maxOffset() {
		t.Errorf("Expected paging forward to stop at %v, got %v", g.maxOffset(), g.scroll.Offset.X)
	}
}

func TestCoverGallery_SwipePagesFromTouchOrigin(t *testing.T) {
	test.NewApp()

	items, covers := manyCovers(6)
	g := NewCoverGallery(items, covers, NewMobileUI())
	w := test.NewWindow(g.Container())
	defer w.Close()
	w.Resize(fyne.NewSize(300, 200))

	stride := g.row.stride()
	cell := g.cells[0]

	cell.TouchDown(touchAt(100, 50))
	// the scroll drag moved the strip part way already
	g.scroll.Offset.X = stride * 0.7
	cell.TouchUp(touchAt(10, 50))

	if g.scroll.Offset.X != stride {
		t.Errorf("Expected swipe left to land on %v, got %v", stride, g.scroll.Offset.X)
	}

	cell.TouchDown(touchAt(10, 50))
	cell.TouchUp(touchAt(120, 50))
	if g.scroll.Offset.X != 0 {
		t.Errorf("Expected swipe right to return to 0, got %v", g.scroll.Offset.X)
	}
}

func TestCoverGallery_TapReportsCover(t *testing.T) {
	test.NewApp()

	items, covers := manyCovers(3)
	g := NewCoverGallery(items, covers, NewMobileUI())

	var tapped []present.CoverItem
	g.OnCoverTapped = func(item present.CoverItem) { tapped = append(tapped, item) }

	test.Tap(g.cells[1])

	if len(tapped) != 1 || tapped[0] != items[1] {
		t.Errorf("Expected tap on %v, got %v", items[1], tapped)
	}
}
