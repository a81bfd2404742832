// Package manifest turns a collection's configuration plus the current
// folder contents into the generated gallery data file the front end
// loads. The manifest is machine-owned: every run rewrites it in full,
// and unchanged inputs produce byte-identical output.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/visyura/notna-archives.art/internal/collection"
	"github.com/visyura/notna-archives.art/internal/gallery"
)

// Entry is one gallery as rendered into the manifest.
type Entry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Notes       []string `json:"notes"`
	ImageCount  int      `json:"imageCount"`
}

// Build resolves every gallery of the collection against the folders under
// root. Galleries whose folder is missing or empty are skipped with a
// warning instead of failing the batch. Explicit custom orders are taken
// as-is; a filename that no longer exists on disk is warned about but
// still emitted.
func Build(root string, col *collection.Collection, warnf func(format string, args ...any)) []Entry {
	if warnf == nil {
		warnf = func(string, ...any) {}
	}

	entries := make([]Entry, 0, len(col.Galleries))
	for _, g := range col.Galleries {
		folder := filepath.Join(root, col.BaseDir, g.Folder)
		files, err := gallery.ScanImages(folder)
		if err != nil {
			warnf("skipping %s - folder not found", g.Folder)
			continue
		}
		if len(files) == 0 {
			warnf("skipping %s - no images found", g.Folder)
			continue
		}

		ordered := files
		if len(g.CustomOrder) > 0 {
			ordered = g.CustomOrder
			onDisk := make(map[string]bool, len(files))
			for _, f := range files {
				onDisk[f] = true
			}
			for _, f := range ordered {
				if !onDisk[f] {
					warnf("%s: custom order references missing file %s", g.Folder, f)
				}
			}
		}

		images := make([]string, len(ordered))
		for i, f := range ordered {
			images[i] = g.Folder + "/" + f
		}

		notes := g.CustomNotes
		if len(notes) == 0 {
			notes = deriveNotes(ordered)
		}

		entries = append(entries, Entry{
			ID:          g.GalleryID(),
			Title:       g.Title,
			Description: g.Description,
			Images:      images,
			Notes:       notes,
			ImageCount:  len(images),
		})
	}
	return entries
}

// Render serializes entries as one JSON array, newline-terminated.
func Render(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// Write regenerates the collection's manifest file under root.
func Write(root string, col *collection.Collection, warnf func(format string, args ...any)) error {
	data, err := Render(Build(root, col, warnf))
	if err != nil {
		return err
	}
	path := filepath.Join(root, filepath.FromSlash(col.DataFile))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest %s: %w", col.DataFile, err)
	}
	return nil
}

// deriveNotes builds one note per image from its filename stem, with
// hyphens and underscores turned into spaces.
func deriveNotes(files []string) []string {
	notes := make([]string, len(files))
	for i, f := range files {
		stem := strings.TrimSuffix(f, filepath.Ext(f))
		notes[i] = strings.NewReplacer("-", " ", "_", " ").Replace(stem)
	}
	return notes
}
