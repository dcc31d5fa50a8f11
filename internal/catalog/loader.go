package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	log "github.com/sirupsen/logrus"

	"github.com/tayrics/tayrics/internal/assets"
	"github.com/tayrics/tayrics/internal/model"
)

var logger = log.WithFields(log.Fields{"module": "catalog"})

// Load reads name from fsys and decodes it into a catalog.
//
// The returned error wraps one of ErrResourceMissing, ErrUnreadable,
// ErrMalformed or ErrSchema. Callers are expected to abort startup on error.
func Load(fsys fs.FS, name string) (*model.Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrResourceMissing, name, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, name, err)
	}

	catalog, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	logger.WithFields(log.Fields{
		"file":   name,
		"albums": catalog.Len(),
		"songs":  catalog.SongCount(),
	}).Debug("catalog loaded")
	return catalog, nil
}

// LoadBundled loads the catalog document shipped with the application.
func LoadBundled() (*model.Catalog, error) {
	return Load(assets.FS(), assets.DataFile)
}

// MustLoad is like LoadBundled but panics on failure.
func MustLoad() *model.Catalog {
	catalog, err := LoadBundled()
	if err != nil {
		panic(err)
	}
	return catalog
}

// Decode converts a catalog document into a model.Catalog.
func Decode(data []byte) (*model.Catalog, error) {
	var raw []*jsonAlbum
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: %v", ErrSchema, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: top level is not an array", ErrSchema)
	}

	albums := make([]model.Album, 0, len(raw))
	for i, ja := range raw {
		album, err := ja.toAlbum(i)
		if err != nil {
			return nil, err
		}
		albums = append(albums, album)
	}
	return model.NewCatalog(albums), nil
}
