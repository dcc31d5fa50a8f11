package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"github.com/tayrics/tayrics/internal/present"
)

// TitlesOutline renders albums as expandable rows with their songs nested
// underneath, on a grouped card background. Selection never sticks: a tapped
// row is cleared again after deselectDelay.
type TitlesOutline struct {
	outline *present.Outline
	tree    *widget.Tree

	background *canvas.Rectangle
	container  *fyne.Container

	deselectDelay time.Duration
	selected      widget.TreeNodeID

	logger *log.Entry
}

// NewTitlesOutline creates the outline view; every album starts collapsed
func NewTitlesOutline(outline *present.Outline, margin float32) *TitlesOutline {
	t := &TitlesOutline{
		outline:       outline,
		deselectDelay: SelectionFade,
		logger:        log.WithFields(log.Fields{"module": "titles-outline"}),
	}

	t.tree = widget.NewTree(
		outline.ChildIDs,
		outline.IsBranch,
		t.createNode,
		t.updateNode,
	)
	t.tree.OnSelected = t.onSelected
	t.tree.OnUnselected = t.onUnselected

	t.background = canvas.NewRectangle(themeColor(ColorNameGroupedCard))
	t.background.CornerRadius = GroupCornerRadius

	t.container = container.New(
		layout.NewCustomPaddedLayout(0, GroupInset, margin, margin),
		container.NewStack(t.background, t.tree),
	)
	return t
}

// Container returns the outline's canvas object
func (t *TitlesOutline) Container() fyne.CanvasObject {
	return t.container
}

// Tree exposes the underlying tree widget
func (t *TitlesOutline) Tree() *widget.Tree {
	return t.tree
}

// ExpandAll opens every album
func (t *TitlesOutline) ExpandAll() {
	t.tree.OpenAllBranches()
}

// CollapseAll closes every album
func (t *TitlesOutline) CollapseAll() {
	t.tree.CloseAllBranches()
}

// Selected returns the row currently highlighted, or "" when none
func (t *TitlesOutline) Selected() widget.TreeNodeID {
	return t.selected
}

// RefreshTheme re-reads theme colors for the card background
func (t *TitlesOutline) RefreshTheme() {
	t.background.FillColor = themeColor(ColorNameGroupedCard)
	t.background.Refresh()
	t.tree.Refresh()
}

func (t *TitlesOutline) createNode(branch bool) fyne.CanvasObject {
	if branch {
		label := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		label.Truncation = fyne.TextTruncateEllipsis
		return label
	}
	return NewSongRow()
}

func (t *TitlesOutline) updateNode(id widget.TreeNodeID, branch bool, obj fyne.CanvasObject) {
	node, ok := t.outline.Node(id)
	if !ok {
		t.logger.Warnf("updateNode called with unknown id %q", id)
		return
	}

	switch row := obj.(type) {
	case *widget.Label:
		row.SetText(node.Album.Name)
	case *SongRow:
		row.SetSong(node.Song)
	default:
		t.logger.Warnf("unexpected row type %T for %s node", obj, node.Kind)
	}
}

func (t *TitlesOutline) onSelected(id widget.TreeNodeID) {
	t.selected = id

	if node, ok := t.outline.Node(id); ok {
		t.logger.WithFields(log.Fields{"kind": node.Kind.String()}).Debug("row selected")
		if node.Kind == present.NodeAlbum {
			t.tree.ToggleBranch(id)
		}
	}

	if t.deselectDelay <= 0 {
		t.tree.Unselect(id)
		return
	}
	time.AfterFunc(t.deselectDelay, func() {
		fyne.Do(func() { t.tree.Unselect(id) })
	})
}

func (t *TitlesOutline) onUnselected(id widget.TreeNodeID) {
	if t.selected == id {
		t.selected = ""
	}
}
