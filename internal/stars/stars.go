// Package stars persists the little annotation stars visitors can pin on
// the site. Storage is a single pretty-printed JSON file rewritten whole
// on every save.
package stars

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Star is one pinned annotation.
type Star struct {
	ID   string  `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

// Data is the on-disk document shape.
type Data struct {
	Stars []Star `json:"stars"`
}

// Store reads and writes the stars file. Safe for concurrent handlers.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the given file path. The file does
// not have to exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns all stars. A missing file is an empty set, not an error.
func (s *Store) Load() (Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (Data, error) {
	data := Data{Stars: []Star{}}
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return data, nil
	}
	if err != nil {
		return data, fmt.Errorf("read stars file: %w", err)
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return data, fmt.Errorf("parse stars file: %w", err)
	}
	if data.Stars == nil {
		data.Stars = []Star{}
	}
	return data, nil
}

// Upsert updates the star with a matching id or appends a new one. A blank
// id gets generated. Returns the stored star.
func (s *Store) Upsert(star Star) (Star, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return Star{}, err
	}

	if star.ID == "" {
		star.ID = uuid.NewString()
	}

	replaced := false
	for i := range data.Stars {
		if data.Stars[i].ID == star.ID {
			data.Stars[i] = star
			replaced = true
			break
		}
	}
	if !replaced {
		data.Stars = append(data.Stars, star)
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return Star{}, fmt.Errorf("encode stars file: %w", err)
	}
	if err := os.WriteFile(s.path, append(raw, '\n'), 0644); err != nil {
		return Star{}, fmt.Errorf("write stars file: %w", err)
	}
	return star, nil
}
