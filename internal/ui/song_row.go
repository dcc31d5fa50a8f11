package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/tayrics/tayrics/internal/model"
)

// SongRow shows a song name with its duration beside it and a trailing
// disclosure chevron
type SongRow struct {
	widget.BaseWidget

	song model.Song

	nameLabel     *widget.Label
	durationLabel *widget.Label
	chevron       *widget.Icon
}

// NewSongRow creates an empty song row used as a tree template
func NewSongRow() *SongRow {
	r := &SongRow{
		nameLabel:     widget.NewLabel(""),
		durationLabel: widget.NewLabel(DashPlaceholder),
		chevron:       widget.NewIcon(theme.NavigateNextIcon()),
	}
	r.nameLabel.Truncation = fyne.TextTruncateEllipsis
	r.durationLabel.Alignment = fyne.TextAlignTrailing
	r.durationLabel.Importance = widget.LowImportance

	r.ExtendBaseWidget(r)
	return r
}

// SetSong updates the row to display song
func (r *SongRow) SetSong(song model.Song) {
	r.song = song
	r.nameLabel.SetText(song.Name)
	r.durationLabel.SetText(song.FormattedLength())
}

// Song returns the song currently displayed
func (r *SongRow) Song() model.Song {
	return r.song
}

// CreateRenderer implements fyne.Widget
func (r *SongRow) CreateRenderer() fyne.WidgetRenderer {
	trailing := container.NewHBox(r.durationLabel, r.chevron)
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, nil, trailing, r.nameLabel))
}
