package manifest

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/visyura/notna-archives.art/internal/collection"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// Two folders: "a" rendered in scan order with derived notes, "b" with an
// explicit order and explicit notes.
func setupCollection(t *testing.T) (string, *collection.Collection) {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "photography", "a", "sun-rise_01.jpg"))
	writeFile(t, filepath.Join(root, "photography", "a", "moon.png"))
	for _, f := range []string{"a.png", "b.png", "c.png"} {
		writeFile(t, filepath.Join(root, "photography", "b", f))
	}

	col := &collection.Collection{
		BaseDir:  "photography",
		DataFile: "photography/galleries-data.json",
		Galleries: []collection.Gallery{
			{Folder: "a", Title: "A"},
			{
				Folder:      "b",
				Title:       "B",
				CustomOrder: []string{"c.png", "a.png", "b.png"},
				CustomNotes: []string{"N1", "N2", "N3"},
			},
		},
	}
	return root, col
}

func TestBuildResolvesOrderAndNotes(t *testing.T) {
	root, col := setupCollection(t)
	entries := Build(root, col, nil)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	a := entries[0]
	if !reflect.DeepEqual(a.Images, []string{"a/moon.png", "a/sun-rise_01.jpg"}) {
		t.Fatalf("unexpected scan-order images: %v", a.Images)
	}
	if !reflect.DeepEqual(a.Notes, []string{"moon", "sun rise 01"}) {
		t.Fatalf("unexpected derived notes: %v", a.Notes)
	}

	b := entries[1]
	if !reflect.DeepEqual(b.Images, []string{"b/c.png", "b/a.png", "b/b.png"}) {
		t.Fatalf("unexpected custom-order images: %v", b.Images)
	}
	if !reflect.DeepEqual(b.Notes, []string{"N1", "N2", "N3"}) {
		t.Fatalf("unexpected custom notes: %v", b.Notes)
	}

	for _, e := range entries {
		if len(e.Notes) != len(e.Images) {
			t.Fatalf("%s: notes and images misaligned", e.ID)
		}
		if e.ImageCount != len(e.Images) {
			t.Fatalf("%s: wrong image count", e.ID)
		}
	}
}

func TestBuildSkipsMissingAndEmptyFolders(t *testing.T) {
	root, col := setupCollection(t)
	if err := os.MkdirAll(filepath.Join(root, "photography", "empty"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	col.Galleries = append(col.Galleries,
		collection.Gallery{Folder: "gone", Title: "Gone"},
		collection.Gallery{Folder: "empty", Title: "Empty"},
	)

	var warnings []string
	entries := Build(root, col, func(format string, args ...any) {
		warnings = append(warnings, format)
	})
	if len(entries) != 2 {
		t.Fatalf("expected skipped folders to be dropped, got %d entries", len(entries))
	}
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", warnings)
	}
}

func TestBuildWarnsOnMissingOverrideFile(t *testing.T) {
	root, col := setupCollection(t)
	col.Galleries[1].CustomOrder = []string{"c.png", "ghost.png"}
	col.Galleries[1].CustomNotes = []string{"N1", "N2"}

	var warned bool
	entries := Build(root, col, func(format string, args ...any) { warned = true })
	if !warned {
		t.Fatalf("expected a warning for the missing override file")
	}
	// permissive: the entry is still emitted as configured
	if !reflect.DeepEqual(entries[1].Images, []string{"b/c.png", "b/ghost.png"}) {
		t.Fatalf("expected override kept verbatim, got %v", entries[1].Images)
	}
}

func TestWriteIsIdempotent(t *testing.T) {
	root, col := setupCollection(t)
	if err := Write(root, col, nil); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	path := filepath.Join(root, "photography", "galleries-data.json")
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if err := Write(root, col, nil); err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("expected byte-identical manifests across runs")
	}
	if !strings.HasSuffix(string(first), "\n") {
		t.Fatalf("expected trailing newline")
	}
}

func TestRenderEmptyCollection(t *testing.T) {
	data, err := Render(nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", data)
	}
}
