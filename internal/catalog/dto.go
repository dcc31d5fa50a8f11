package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/tayrics/tayrics/internal/model"
)

// jsonAlbum mirrors one element of the catalog array. Pointer fields let
// validation tell a missing key from a zero value.
type jsonAlbum struct {
	Order          *int
	Name           *string
	CoverImageName *string
	Songs          *[]jsonSong
}

type jsonSong struct {
	TrackNumber   *int
	Name          *string
	Length        *float64
	AppleMusicURL *string
}

// UnmarshalJSON matches keys exactly. Struct tags would also accept
// "ALBUM-NUMBER" or "Album-Title".
func (ja *jsonAlbum) UnmarshalJSON(data []byte) error {
	return decodeFields(data, map[string]any{
		"album-number":     &ja.Order,
		"album-title":      &ja.Name,
		"album-cover-name": &ja.CoverImageName,
		"songs":            &ja.Songs,
	})
}

// UnmarshalJSON matches keys exactly.
func (js *jsonSong) UnmarshalJSON(data []byte) error {
	return decodeFields(data, map[string]any{
		"track-number":    &js.TrackNumber,
		"name":            &js.Name,
		"length":          &js.Length,
		"apple-music-url": &js.AppleMusicURL,
	})
}

// decodeFields decodes the object in data and stores each key listed in
// fields into its target. Absent keys leave the target nil; other keys are
// ignored.
func decodeFields(data []byte, fields map[string]any) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, target := range fields {
		value, ok := raw[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, target); err != nil {
			return err
		}
	}
	return nil
}

// toAlbum validates required keys and converts to a model.Album.
func (ja *jsonAlbum) toAlbum(index int) (model.Album, error) {
	if ja == nil {
		return model.Album{}, fmt.Errorf("%w: album %d is null", ErrSchema, index)
	}
	switch {
	case ja.Order == nil:
		return model.Album{}, missingKey(index, "album-number")
	case ja.Name == nil:
		return model.Album{}, missingKey(index, "album-title")
	case ja.CoverImageName == nil:
		return model.Album{}, missingKey(index, "album-cover-name")
	case ja.Songs == nil:
		return model.Album{}, missingKey(index, "songs")
	}

	album := model.Album{
		Order:          *ja.Order,
		Name:           *ja.Name,
		CoverImageName: *ja.CoverImageName,
		Songs:          make([]model.Song, 0, len(*ja.Songs)),
	}
	for i, js := range *ja.Songs {
		song, err := js.toSong(index, i)
		if err != nil {
			return model.Album{}, err
		}
		album.Songs = append(album.Songs, song)
	}
	return album, nil
}

func (js *jsonSong) toSong(albumIndex, songIndex int) (model.Song, error) {
	where := fmt.Sprintf("album %d song %d", albumIndex, songIndex)
	if js == nil {
		return model.Song{}, fmt.Errorf("%w: %s is null", ErrSchema, where)
	}
	required := []struct {
		key     string
		present bool
	}{
		{"track-number", js.TrackNumber != nil},
		{"name", js.Name != nil},
		{"length", js.Length != nil},
		{"apple-music-url", js.AppleMusicURL != nil},
	}
	for _, r := range required {
		if !r.present {
			return model.Song{}, fmt.Errorf("%w: %s: missing key %q", ErrSchema, where, r.key)
		}
	}

	return model.Song{
		TrackNumber:   *js.TrackNumber,
		Name:          *js.Name,
		Length:        *js.Length,
		AppleMusicURL: *js.AppleMusicURL,
	}, nil
}

func missingKey(index int, key string) error {
	return fmt.Errorf("%w: album %d: missing key %q", ErrSchema, index, key)
}
