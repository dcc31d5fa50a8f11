// Package artwork resolves album cover names against a bundled image
// namespace and prepares square thumbnails for display.
package artwork

import (
	"image"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"io/fs"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// DefaultThumbnailSize is the edge length, in pixels, of prepared covers.
const DefaultThumbnailSize = 320

// Extensions tried, in order, after the name as given.
var Extensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// Library looks covers up by name. Lookups are memoised, including misses.
type Library struct {
	fsys   fs.FS
	size   int
	logger *log.Entry

	mu    sync.Mutex
	cache map[string]image.Image
}

// NewLibrary creates a library over fsys producing size×size thumbnails.
// A non-positive size selects DefaultThumbnailSize.
func NewLibrary(fsys fs.FS, size int) *Library {
	if size <= 0 {
		size = DefaultThumbnailSize
	}
	return &Library{
		fsys:   fsys,
		size:   size,
		logger: log.WithFields(log.Fields{"module": "artwork"}),
		cache:  make(map[string]image.Image),
	}
}

// Size returns the thumbnail edge length.
func (l *Library) Size() int {
	return l.size
}

// Lookup returns the thumbnail for name. ok is false when no candidate file
// exists or none of them decodes.
func (l *Library) Lookup(name string) (img image.Image, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cached, found := l.cache[name]; found {
		return cached, cached != nil
	}

	img = l.resolve(name)
	l.cache[name] = img
	return img, img != nil
}

// Has reports whether name resolves to a usable image.
func (l *Library) Has(name string) bool {
	_, ok := l.Lookup(name)
	return ok
}

func (l *Library) resolve(name string) image.Image {
	for _, candidate := range candidates(name) {
		f, err := l.fsys.Open(candidate)
		if err != nil {
			continue
		}
		src, format, err := image.Decode(f)
		f.Close()
		if err != nil {
			l.logger.WithFields(log.Fields{"cover": name, "file": candidate}).Debugf("undecodable cover: %v", err)
			continue
		}
		l.logger.WithFields(log.Fields{"cover": name, "file": candidate, "format": format}).Debug("cover resolved")
		return Thumbnail(src, l.size)
	}

	l.logger.WithField("cover", name).Debug("cover not found")
	return nil
}

func candidates(name string) []string {
	if name == "" || !fs.ValidPath(name) {
		return nil
	}
	// a dot does not make an extension: "vol.1" still needs ".png"
	out := make([]string, 0, len(Extensions)+1)
	out = append(out, name)
	for _, ext := range Extensions {
		out = append(out, name+ext)
	}
	return out
}

// Thumbnail scales src to fit inside a size×size square, centred on a
// transparent background. The aspect ratio is preserved.
func Thumbnail(src image.Image, size int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return dst
	}

	fitW, fitH := size, size
	if w > h {
		fitH = h * size / w
	} else if h > w {
		fitW = w * size / h
	}
	if fitW < 1 {
		fitW = 1
	}
	if fitH < 1 {
		fitH = 1
	}

	x := (size - fitW) / 2
	y := (size - fitH) / 2
	draw.CatmullRom.Scale(dst, image.Rect(x, y, x+fitW, y+fitH), src, b, draw.Over, nil)
	return dst
}
