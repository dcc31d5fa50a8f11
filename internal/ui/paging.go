package ui

import (
	"math"

	"fyne.io/fyne/v2"
)

// coverRowLayout places square cells left to right with a fixed gap.
type coverRowLayout struct {
	edge    float32
	spacing float32
}

func (l *coverRowLayout) Layout(objects []fyne.CanvasObject, _ fyne.Size) {
	x := float32(0)
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		o.Move(fyne.NewPos(x, 0))
		o.Resize(fyne.NewSquareSize(l.edge))
		x += l.stride()
	}
}

func (l *coverRowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	n := 0
	for _, o := range objects {
		if o.Visible() {
			n++
		}
	}
	if n == 0 {
		return fyne.NewSize(0, 0)
	}
	return fyne.NewSize(float32(n)*l.edge+float32(n-1)*l.spacing, l.edge)
}

func (l *coverRowLayout) stride() float32 {
	return l.edge + l.spacing
}

// snapOffset returns the scroll offset that puts the nearest cell's leading
// edge at the start of the viewport, clamped to [0, maxOffset].
func snapOffset(offset, stride, maxOffset float32) float32 {
	if stride <= 0 {
		return clampOffset(offset, maxOffset)
	}
	index := math.Round(float64(offset / stride))
	return clampOffset(float32(index)*stride, maxOffset)
}

// pageOffset moves delta cells from the cell nearest to offset.
func pageOffset(offset, stride, maxOffset float32, delta int) float32 {
	if stride <= 0 {
		return clampOffset(offset, maxOffset)
	}
	index := int(math.Round(float64(offset/stride))) + delta
	return clampOffset(float32(index)*stride, maxOffset)
}

func clampOffset(offset, maxOffset float32) float32 {
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset < 0 {
		return 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	return offset
}
