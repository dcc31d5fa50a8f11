package catalog

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/tayrics/tayrics/internal/model"
)

const twoAlbums = `[
  {
    "album-number": 2,
    "album-title": "B",
    "album-cover-name": "b",
    "songs": [
      {"track-number": 1, "name": "X", "length": 180.0, "apple-music-url": "https://music.apple.com/x"},
      {"track-number": 3, "name": "Z", "length": 61.5, "apple-music-url": ""},
      {"track-number": 2, "name": "Y", "length": 90, "apple-music-url": "https://music.apple.com/y"}
    ]
  },
  {
    "album-number": 1,
    "album-title": "A",
    "album-cover-name": "a",
    "songs": [],
    "unknown-key": true
  }
]`

func TestDecode_KeyMapping(t *testing.T) {
	catalog, err := Decode([]byte(twoAlbums))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	albums := catalog.Albums()
	if len(albums) != 2 {
		t.Fatalf("Expected 2 albums, got %d", len(albums))
	}

	b := albums[0]
	if b.Order != 2 || b.Name != "B" || b.CoverImageName != "b" {
		t.Errorf("Unexpected first album: %+v", b)
	}
	want := model.Song{TrackNumber: 1, Name: "X", Length: 180, AppleMusicURL: "https://music.apple.com/x"}
	if !b.Songs[0].Equal(want) {
		t.Errorf("Expected first song %+v, got %+v", want, b.Songs[0])
	}

	// Source order is kept, not track-number order.
	var names []string
	for _, s := range b.Songs {
		names = append(names, s.Name)
	}
	if got := names[0] + names[1] + names[2]; got != "XZY" {
		t.Errorf("Expected songs in source order XZY, got %s", got)
	}

	if a := albums[1]; a.Order != 1 || len(a.Songs) != 0 {
		t.Errorf("Unexpected second album: %+v", a)
	}
}

func TestDecode_EmptyArray(t *testing.T) {
	catalog, err := Decode([]byte(" [ ] "))
	if err != nil {
		t.Fatalf("Decode of empty array failed: %v", err)
	}
	if catalog.Len() != 0 {
		t.Errorf("Expected empty catalog, got %d albums", catalog.Len())
	}
}

func TestDecode_Faults(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{"syntax error", `[{"album-number": 1,`, ErrMalformed},
		{"trailing garbage", `[] x`, ErrMalformed},
		{"empty document", ``, ErrMalformed},
		{"null document", `null`, ErrSchema},
		{"object document", `{}`, ErrSchema},
		{"wrong type", `[{"album-number": "one", "album-title": "A", "album-cover-name": "a", "songs": []}]`, ErrSchema},
		{"fractional order", `[{"album-number": 1.5, "album-title": "A", "album-cover-name": "a", "songs": []}]`, ErrSchema},
		{"null album", `[null]`, ErrSchema},
		{"missing album-number", `[{"album-title": "A", "album-cover-name": "a", "songs": []}]`, ErrSchema},
		{"missing album-title", `[{"album-number": 1, "album-cover-name": "a", "songs": []}]`, ErrSchema},
		{"missing album-cover-name", `[{"album-number": 1, "album-title": "A", "songs": []}]`, ErrSchema},
		{"missing songs", `[{"album-number": 1, "album-title": "A", "album-cover-name": "a"}]`, ErrSchema},
		{"null songs", `[{"album-number": 1, "album-title": "A", "album-cover-name": "a", "songs": null}]`, ErrSchema},
		{"missing length", `[{"album-number": 1, "album-title": "A", "album-cover-name": "a", "songs": [
			{"track-number": 1, "name": "X", "apple-music-url": ""}]}]`, ErrSchema},
		{"missing apple-music-url", `[{"album-number": 1, "album-title": "A", "album-cover-name": "a", "songs": [
			{"track-number": 1, "name": "X", "length": 1}]}]`, ErrSchema},
		{"string length", `[{"album-number": 1, "album-title": "A", "album-cover-name": "a", "songs": [
			{"track-number": 1, "name": "X", "length": "3:00", "apple-music-url": ""}]}]`, ErrSchema},
		{"upper-case album keys", `[{"ALBUM-NUMBER": 1, "Album-Title": "A", "album-cover-name": "a", "songs": []}]`, ErrSchema},
		{"mixed-case album-cover-name", `[{"album-number": 1, "album-title": "A", "Album-Cover-Name": "a", "songs": []}]`, ErrSchema},
		{"mixed-case songs", `[{"album-number": 1, "album-title": "A", "album-cover-name": "a", "Songs": []}]`, ErrSchema},
		{"upper-case song keys", `[{"album-number": 1, "album-title": "A", "album-cover-name": "a", "songs": [
			{"TRACK-NUMBER": 1, "Name": "X", "LENGTH": 1, "Apple-Music-Url": ""}]}]`, ErrSchema},
		{"mixed-case name", `[{"album-number": 1, "album-title": "A", "album-cover-name": "a", "songs": [
			{"track-number": 1, "Name": "X", "length": 1, "apple-music-url": ""}]}]`, ErrSchema},
		{"album is a number", `[1]`, ErrSchema},
		{"song is a string", `[{"album-number": 1, "album-title": "A", "album-cover-name": "a", "songs": ["X"]}]`, ErrSchema},
		{"null song", `[{"album-number": 1, "album-title": "A", "album-cover-name": "a", "songs": [null]}]`, ErrSchema},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			catalog, err := Decode([]byte(test.input))
			if err == nil {
				t.Fatalf("Expected error, got catalog with %d albums", catalog.Len())
			}
			if !errors.Is(err, test.expected) {
				t.Errorf("Expected %v, got %v", test.expected, err)
			}
		})
	}
}

func TestLoad_Faults(t *testing.T) {
	fsys := fstest.MapFS{
		"good.json":     {Data: []byte(twoAlbums)},
		"bad.json":      {Data: []byte(`[`)},
		"dir/data.json": {Data: []byte(`[]`)},
	}

	if _, err := Load(fsys, "missing.json"); !errors.Is(err, ErrResourceMissing) {
		t.Errorf("Expected ErrResourceMissing, got %v", err)
	}
	if _, err := Load(fsys, "dir"); !errors.Is(err, ErrUnreadable) {
		t.Errorf("Expected ErrUnreadable, got %v", err)
	}
	if _, err := Load(fsys, "bad.json"); !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}

	catalog, err := Load(fsys, "good.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if catalog.Len() != 2 {
		t.Errorf("Expected 2 albums, got %d", catalog.Len())
	}
}

func TestLoadBundled(t *testing.T) {
	catalog, err := LoadBundled()
	if err != nil {
		t.Fatalf("Bundled catalog failed to load: %v", err)
	}
	if catalog.Len() == 0 {
		t.Fatal("Bundled catalog is empty")
	}

	seen := make(map[int]bool)
	for _, album := range catalog.Albums() {
		if seen[album.Order] {
			t.Errorf("Duplicate album-number %d in bundled catalog", album.Order)
		}
		seen[album.Order] = true
		if len(album.Songs) == 0 {
			t.Errorf("Album %q has no songs", album.Name)
		}
	}
}

func TestMustLoad(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("MustLoad panicked on the bundled catalog: %v", r)
		}
	}()
	if MustLoad().Len() == 0 {
		t.Error("MustLoad returned an empty catalog")
	}
}
