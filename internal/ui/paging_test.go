package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

func TestSnapOffset(t *testing.T) {
	const stride, maxOffset = 148, 600

	tests := []struct {
		offset   float32
		expected float32
	}{
		{0, 0},
		{-20, 0},
		{70, 0},
		{75, 148},
		{200, 148},
		{230, 296},
		{590, 592},
		{599, 592},
		{900, 600},
	}

	for _, test := range tests {
		result := snapOffset(test.offset, stride, maxOffset)
		if result != test.expected {
			t.Errorf("snapOffset(%v) = %v, expected %v", test.offset, result, test.expected)
		}
	}
}

func TestSnapOffset_ContentNarrowerThanViewport(t *testing.T) {
	if got := snapOffset(40, 148, -100); got != 0 {
		t.Errorf("Expected 0 when nothing can scroll, got %v", got)
	}
	if got := snapOffset(40, 0, 100); got != 40 {
		t.Errorf("Expected offset unchanged for zero stride, got %v", got)
	}
}

func TestPageOffset(t *testing.T) {
	const stride, maxOffset = 148, 600

	tests := []struct {
		offset   float32
		delta    int
		expected float32
	}{
		{0, 1, 148},
		{0, -1, 0},
		{148, 1, 296},
		{160, 1, 296},
		{296, -1, 148},
		{444, 1, 592},
		{592, 1, 600},
		{0, 10, 600},
	}

	for _, test := range tests {
		result := pageOffset(test.offset, stride, maxOffset, test.delta)
		if result != test.expected {
			t.Errorf("pageOffset(%v, %d) = %v, expected %v", test.offset, test.delta, result, test.expected)
		}
	}
}

func TestCoverRowLayout(t *testing.T) {
	l := &coverRowLayout{edge: 100, spacing: 8}

	a := canvas.NewRectangle(nil)
	b := canvas.NewRectangle(nil)
	hidden := canvas.NewRectangle(nil)
	hidden.Hide()
	c := canvas.NewRectangle(nil)
	objects := []fyne.CanvasObject{a, b, hidden, c}

	if got := l.MinSize(objects); got != fyne.NewSize(316, 100) {
		t.Errorf("MinSize() = %v, expected 316x100", got)
	}
	if got := l.MinSize(nil); got != fyne.NewSize(0, 0) {
		t.Errorf("MinSize() of no objects = %v, expected zero", got)
	}

	l.Layout(objects, fyne.NewSize(500, 100))
	if b.Position().X != 108 || c.Position().X != 216 {
		t.Errorf("Unexpected positions b=%v c=%v", b.Position(), c.Position())
	}
	if c.Size() != fyne.NewSquareSize(100) {
		t.Errorf("Expected square cells, got %v", c.Size())
	}
}
