// Package collection holds the typed gallery configuration: which folders
// make up each page, in which order, and any hand-curated image order or
// notes. The configuration is a single YAML document rewritten whole on
// every save; all edits are in-memory operations on the loaded model.
package collection

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/visyura/notna-archives.art/internal/gallery"
)

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrGalleryNotFound    = errors.New("gallery not found")
	ErrDuplicateID        = errors.New("gallery id already exists")
	ErrBadOrder           = errors.New("order is not a permutation of the galleries")
)

// Gallery is one gallery's configuration record. Folder is the stable key;
// everything derived from it (id, title) can be overridden explicitly.
type Gallery struct {
	Folder      string   `yaml:"folder"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	AspectRatio string   `yaml:"aspectRatio,omitempty"`
	ID          string   `yaml:"id,omitempty"`
	CustomOrder []string `yaml:"customOrder,omitempty"`
	CustomNotes []string `yaml:"customNotes,omitempty"`
}

// GalleryID returns the explicit id when set, otherwise the slug derived
// from the folder name.
func (g Gallery) GalleryID() string {
	if g.ID != "" {
		return g.ID
	}
	return gallery.Slug(g.Folder)
}

// Collection is an ordered set of galleries sharing a base directory and a
// generated manifest file. Order is display order.
type Collection struct {
	BaseDir   string    `yaml:"baseDir"`
	DataFile  string    `yaml:"dataFile"`
	Galleries []Gallery `yaml:"galleries"`
}

// Config is the whole gallery configuration document.
type Config struct {
	Collections []Collection `yaml:"collections"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save rewrites the configuration file in full.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Collection returns the collection with the given base directory.
func (c *Config) Collection(baseDir string) (*Collection, error) {
	for i := range c.Collections {
		if c.Collections[i].BaseDir == baseDir {
			return &c.Collections[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, baseDir)
}

// IDs returns every gallery id in display order.
func (col *Collection) IDs() []string {
	ids := make([]string, len(col.Galleries))
	for i, g := range col.Galleries {
		ids[i] = g.GalleryID()
	}
	return ids
}

// Summary pairs a gallery id with its display title, for menus.
type Summary struct {
	ID    string
	Title string
}

// Summaries returns id and title for every gallery in display order.
func (col *Collection) Summaries() []Summary {
	out := make([]Summary, len(col.Galleries))
	for i, g := range col.Galleries {
		out[i] = Summary{ID: g.GalleryID(), Title: g.Title}
	}
	return out
}

// Find returns the gallery whose folder matches.
func (col *Collection) Find(folder string) (*Gallery, error) {
	for i := range col.Galleries {
		if col.Galleries[i].Folder == folder {
			return &col.Galleries[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrGalleryNotFound, folder)
}

// InsertAt places g at the given position: 0 means first, n means after
// the nth existing gallery, anything past the end is clamped to append.
// The id must not collide with an existing gallery.
func (col *Collection) InsertAt(g Gallery, position int) error {
	id := g.GalleryID()
	for _, existing := range col.Galleries {
		if existing.GalleryID() == id {
			return fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
	}

	if position < 0 {
		position = 0
	}
	if position > len(col.Galleries) {
		position = len(col.Galleries)
	}

	col.Galleries = append(col.Galleries, Gallery{})
	copy(col.Galleries[position+1:], col.Galleries[position:])
	col.Galleries[position] = g
	return nil
}

// Reorder rearranges the galleries by the given 0-based index permutation.
// Records themselves are untouched, only their order changes.
func (col *Collection) Reorder(order []int) error {
	if len(order) != len(col.Galleries) {
		return ErrBadOrder
	}
	seen := make(map[int]bool, len(order))
	for _, i := range order {
		if i < 0 || i >= len(col.Galleries) || seen[i] {
			return ErrBadOrder
		}
		seen[i] = true
	}

	reordered := make([]Gallery, len(col.Galleries))
	for to, from := range order {
		reordered[to] = col.Galleries[from]
	}
	col.Galleries = reordered
	return nil
}

// Move relocates the gallery at index from to index to, shifting the rest.
func (col *Collection) Move(from, to int) error {
	n := len(col.Galleries)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrBadOrder
	}
	g := col.Galleries[from]
	col.Galleries = append(col.Galleries[:from], col.Galleries[from+1:]...)
	rest := append([]Gallery{}, col.Galleries[to:]...)
	col.Galleries = append(append(col.Galleries[:to:to], g), rest...)
	return nil
}

// SetImageOrder records an explicit image order for the gallery with the
// given folder, replacing any previous one.
func (col *Collection) SetImageOrder(folder string, order []string) error {
	g, err := col.Find(folder)
	if err != nil {
		return err
	}
	g.CustomOrder = append([]string(nil), order...)
	return nil
}
