package ui

import (
	"image"
	"math"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	log "github.com/sirupsen/logrus"

	"github.com/tayrics/tayrics/internal/present"
)

// CoverSource supplies the image for a cover name
type CoverSource interface {
	Lookup(name string) (image.Image, bool)
}

// CoverGallery is the horizontally scrolling strip of album covers. Scrolling
// settles with a cover's leading edge at the start of the strip.
type CoverGallery struct {
	items  []present.CoverItem
	cells  []*coverCell
	row    *coverRowLayout
	margin float32

	content *fyne.Container
	scroll  *container.Scroll

	snapMutex sync.Mutex
	snapTimer *time.Timer

	// offset when the current touch began; swipes page from here so the
	// scroll drag and the swipe do not add up
	touchOrigin float32

	// OnCoverTapped is called after a cover's tap highlight starts
	OnCoverTapped func(present.CoverItem)

	logger *log.Entry
}

// NewCoverGallery creates the gallery for items, already sorted for display
func NewCoverGallery(items []present.CoverItem, source CoverSource, mobileUI *MobileUI) *CoverGallery {
	g := &CoverGallery{
		row:    &coverRowLayout{edge: mobileUI.GetCoverEdge(), spacing: CoverSpacing},
		margin: mobileUI.GetLayoutMargin(),
		logger: log.WithFields(log.Fields{"module": "cover-gallery"}),
	}

	objects := make([]fyne.CanvasObject, 0, len(items))
	for _, item := range items {
		img, ok := source.Lookup(item.CoverImageName)
		if !ok {
			g.logger.WithField("cover", item.CoverImageName).Debug("skipping unresolved cover")
			continue
		}
		cell := newCoverCell(item, img, g.row.edge)
		cell.onTapped = g.onCellTapped
		cell.onTouchStart = g.onCellTouchStart
		cell.onSwipe = g.onCellSwipe
		g.items = append(g.items, item)
		g.cells = append(g.cells, cell)
		objects = append(objects, cell)
	}

	g.content = container.New(
		layout.NewCustomPaddedLayout(CoverInsetTop, CoverInsetBottom, g.margin, g.margin),
		container.New(g.row, objects...),
	)
	g.scroll = container.NewHScroll(g.content)
	g.scroll.OnScrolled = func(fyne.Position) { g.scheduleSnap() }

	if len(g.cells) == 0 {
		g.scroll.Hide()
	}
	return g
}

// Container returns the gallery's canvas object
func (g *CoverGallery) Container() fyne.CanvasObject {
	return g.scroll
}

// Items returns the covers shown, in display order
func (g *CoverGallery) Items() []present.CoverItem {
	return append([]present.CoverItem(nil), g.items...)
}

// Len returns the number of covers shown
func (g *CoverGallery) Len() int {
	return len(g.cells)
}

// CurrentIndex returns the index of the cover nearest the leading edge
func (g *CoverGallery) CurrentIndex() int {
	if len(g.cells) == 0 {
		return 0
	}
	index := int(math.Round(float64(g.scroll.Offset.X / g.row.stride())))
	if index >= len(g.cells) {
		index = len(g.cells) - 1
	}
	return index
}

// PageBy scrolls delta covers forward (positive) or back (negative)
func (g *CoverGallery) PageBy(delta int) {
	g.scrollTo(pageOffset(g.scroll.Offset.X, g.row.stride(), g.maxOffset(), delta))
}

// SnapToBoundary settles the strip on the nearest cover boundary
func (g *CoverGallery) SnapToBoundary() {
	g.scrollTo(snapOffset(g.scroll.Offset.X, g.row.stride(), g.maxOffset()))
}

func (g *CoverGallery) maxOffset() float32 {
	return g.content.MinSize().Width - g.scroll.Size().Width
}

func (g *CoverGallery) scrollTo(x float32) {
	if math.Abs(float64(g.scroll.Offset.X-x)) < 0.5 {
		return
	}
	g.scroll.Offset = fyne.NewPos(x, g.scroll.Offset.Y)
	g.scroll.Refresh()
}

// scheduleSnap snaps once scrolling has paused for SnapDebounce
func (g *CoverGallery) scheduleSnap() {
	g.snapMutex.Lock()
	defer g.snapMutex.Unlock()

	if g.snapTimer != nil {
		g.snapTimer.Stop()
	}
	g.snapTimer = time.AfterFunc(SnapDebounce, func() {
		fyne.Do(g.SnapToBoundary)
	})
}

func (g *CoverGallery) onCellTapped(item present.CoverItem) {
	g.logger.WithField("cover", item.CoverImageName).Debug("cover tapped")
	if g.OnCoverTapped != nil {
		g.OnCoverTapped(item)
	}
}

func (g *CoverGallery) onCellTouchStart() {
	g.touchOrigin = g.scroll.Offset.X
}

func (g *CoverGallery) onCellSwipe(gesture GestureType) {
	delta := 0
	switch gesture {
	case GestureSwipeLeft:
		delta = 1
	case GestureSwipeRight:
		delta = -1
	default:
		return
	}
	g.scrollTo(pageOffset(g.touchOrigin, g.row.stride(), g.maxOffset(), delta))
}
