package stars

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "stars-data.json"))
	data, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(data.Stars) != 0 {
		t.Fatalf("expected empty set, got %v", data.Stars)
	}
}

func TestUpsertAppendsAndReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stars-data.json")
	store := NewStore(path)

	first, err := store.Upsert(Star{X: 0.2, Y: 0.4, Text: "hello"})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if first.ID == "" {
		t.Fatalf("expected generated id")
	}

	if _, err := store.Upsert(Star{ID: "fixed", X: 1, Y: 2, Text: "pinned"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	updated, err := store.Upsert(Star{ID: first.ID, X: 0.5, Y: 0.5, Text: "moved"})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if updated.Text != "moved" {
		t.Fatalf("expected updated star, got %+v", updated)
	}

	data, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(data.Stars) != 2 {
		t.Fatalf("expected 2 stars, got %d", len(data.Stars))
	}
	for _, s := range data.Stars {
		if s.ID == first.ID && s.Text != "moved" {
			t.Fatalf("expected upsert to replace, got %+v", s)
		}
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stars-data.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := NewStore(path).Load(); err == nil {
		t.Fatalf("expected error for corrupt file")
	}
}
