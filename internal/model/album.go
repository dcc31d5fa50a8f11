package model

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	albumNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("tayrics:album"))
	songNamespace  = uuid.NewSHA1(uuid.NameSpaceURL, []byte("tayrics:song"))
)

// Album is one entry of the catalog with its ordered track list.
//
// Order is the display rank used to sort covers. Songs keep the order of the
// source document and are never re-sorted by track number.
type Album struct {
	Order          int
	Name           string
	CoverImageName string
	Songs          []Song
}

// ID returns an identity derived from every field of the album, songs included.
func (a Album) ID() uuid.UUID {
	var b strings.Builder
	b.WriteString(strconv.Itoa(a.Order))
	b.WriteByte(0)
	b.WriteString(a.Name)
	b.WriteByte(0)
	b.WriteString(a.CoverImageName)
	for _, song := range a.Songs {
		b.WriteByte(0)
		b.WriteString(song.ID().String())
	}
	return uuid.NewSHA1(albumNamespace, []byte(b.String()))
}

// Equal reports whether both albums carry identical field values.
func (a Album) Equal(other Album) bool {
	if a.Order != other.Order || a.Name != other.Name || a.CoverImageName != other.CoverImageName {
		return false
	}
	if len(a.Songs) != len(other.Songs) {
		return false
	}
	for i := range a.Songs {
		if !a.Songs[i].Equal(other.Songs[i]) {
			return false
		}
	}
	return true
}

// TotalLength returns the summed length of all songs in seconds.
func (a Album) TotalLength() float64 {
	var total float64
	for _, song := range a.Songs {
		total += song.Length
	}
	return total
}

// clone returns a deep copy so the catalog never hands out shared slices.
func (a Album) clone() Album {
	out := a
	if a.Songs != nil {
		out.Songs = make([]Song, len(a.Songs))
		copy(out.Songs, a.Songs)
	}
	return out
}
