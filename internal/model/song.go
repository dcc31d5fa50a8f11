package model

import (
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
)

// LengthPlaceholder is shown when a song length cannot be rendered.
const LengthPlaceholder = "—"

// MaxFormattedLength is the longest length, in seconds, FormattedLength
// renders; anything longer would overflow the clock arithmetic.
const MaxFormattedLength = math.MaxInt32

// Song is a single track of an album.
type Song struct {
	TrackNumber   int
	Name          string
	Length        float64 // seconds
	AppleMusicURL string  // decoded and kept, not acted on by any view
}

// ID returns an identity derived from every field of the song.
func (s Song) ID() uuid.UUID {
	return uuid.NewSHA1(songNamespace, []byte(s.key()))
}

// Equal reports whether both songs carry identical field values.
func (s Song) Equal(other Song) bool {
	return s.TrackNumber == other.TrackNumber &&
		s.Name == other.Name &&
		s.Length == other.Length &&
		s.AppleMusicURL == other.AppleMusicURL
}

// FormattedLength returns the length as m:ss, or h:mm:ss for an hour or more.
func (s Song) FormattedLength() string {
	if math.IsNaN(s.Length) || math.IsInf(s.Length, 0) || s.Length < 0 || s.Length > MaxFormattedLength {
		return LengthPlaceholder
	}

	total := int(math.Round(s.Length))
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func (s Song) key() string {
	return strconv.Itoa(s.TrackNumber) + "\x00" +
		s.Name + "\x00" +
		strconv.FormatFloat(s.Length, 'g', -1, 64) + "\x00" +
		s.AppleMusicURL
}
