package present

import (
	"fmt"

	"github.com/tayrics/tayrics/internal/model"
)

// RootID is the parent of every album node, matching the Fyne tree root.
const RootID = ""

// NodeKind tells album rows from song rows.
type NodeKind int

const (
	NodeAlbum NodeKind = iota
	NodeSong
)

// String returns a short name for the kind.
func (k NodeKind) String() string {
	switch k {
	case NodeAlbum:
		return "album"
	case NodeSong:
		return "song"
	default:
		return "unknown"
	}
}

// Node is one row of the titles outline.
type Node struct {
	ID     string
	Parent string
	Kind   NodeKind
	Album  model.Album // set for NodeAlbum and, as the parent, for NodeSong
	Song   model.Song  // set for NodeSong
}

// Outline is the two-level album/song tree. It is immutable once built.
type Outline struct {
	roots    []string
	children map[string][]string
	nodes    map[string]Node
}

// BuildOutline inserts, for each album in catalog order, the album node
// followed by its songs in catalog song order as children.
//
// Node IDs derive from content identity, so rebuilding from the same catalog
// yields the same IDs. Repeated content gets a "#n" suffix to stay unique.
func BuildOutline(catalog *model.Catalog) *Outline {
	o := &Outline{
		children: make(map[string][]string),
		nodes:    make(map[string]Node),
	}

	for _, album := range catalog.Albums() {
		albumID := o.uniqueID(album.ID().String())
		o.roots = append(o.roots, albumID)
		o.nodes[albumID] = Node{ID: albumID, Parent: RootID, Kind: NodeAlbum, Album: album}

		children := make([]string, 0, len(album.Songs))
		for _, song := range album.Songs {
			songID := o.uniqueID(albumID + "/" + song.ID().String())
			children = append(children, songID)
			o.nodes[songID] = Node{ID: songID, Parent: albumID, Kind: NodeSong, Album: album, Song: song}
		}
		o.children[albumID] = children
	}
	return o
}

func (o *Outline) uniqueID(base string) string {
	id := base
	for n := 2; ; n++ {
		if _, taken := o.nodes[id]; !taken {
			return id
		}
		id = fmt.Sprintf("%s#%d", base, n)
	}
}

// Roots returns the album node IDs in catalog order.
func (o *Outline) Roots() []string {
	return append([]string(nil), o.roots...)
}

// ChildIDs returns the children of id. RootID yields the album nodes; a song
// or unknown ID yields nil.
func (o *Outline) ChildIDs(id string) []string {
	if id == RootID {
		return o.Roots()
	}
	children, ok := o.children[id]
	if !ok {
		return nil
	}
	return append([]string(nil), children...)
}

// IsBranch reports whether id can hold children: the root and album nodes.
func (o *Outline) IsBranch(id string) bool {
	if id == RootID {
		return true
	}
	node, ok := o.nodes[id]
	return ok && node.Kind == NodeAlbum
}

// Node returns the node for id.
func (o *Outline) Node(id string) (Node, bool) {
	node, ok := o.nodes[id]
	return node, ok
}

// Len returns the number of nodes, albums and songs together.
func (o *Outline) Len() int {
	return len(o.nodes)
}

// Flatten returns every node in display order: each album immediately
// followed by its songs.
func (o *Outline) Flatten() []Node {
	out := make([]Node, 0, len(o.nodes))
	for _, albumID := range o.roots {
		out = append(out, o.nodes[albumID])
		for _, songID := range o.children[albumID] {
			out = append(out, o.nodes[songID])
		}
	}
	return out
}

// Visible returns the nodes shown when only the albums in open are expanded.
func (o *Outline) Visible(open func(albumID string) bool) []Node {
	out := make([]Node, 0, len(o.roots))
	for _, albumID := range o.roots {
		out = append(out, o.nodes[albumID])
		if open == nil || !open(albumID) {
			continue
		}
		for _, songID := range o.children[albumID] {
			out = append(out, o.nodes[songID])
		}
	}
	return out
}
