package model

// Catalog is the full, read-only set of albums for a session.
type Catalog struct {
	albums []Album
}

// NewCatalog takes a private copy of albums in the given order.
func NewCatalog(albums []Album) *Catalog {
	c := &Catalog{albums: make([]Album, len(albums))}
	for i, album := range albums {
		c.albums[i] = album.clone()
	}
	return c
}

// Albums returns the albums in catalog order. The result is a copy.
func (c *Catalog) Albums() []Album {
	if c == nil {
		return nil
	}
	out := make([]Album, len(c.albums))
	for i, album := range c.albums {
		out[i] = album.clone()
	}
	return out
}

// Len returns the number of albums.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.albums)
}

// SongCount returns the number of songs across all albums.
func (c *Catalog) SongCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, album := range c.albums {
		n += len(album.Songs)
	}
	return n
}
