package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LISTEN_ADDR", "GIN_MODE", "SITE_ROOT", "STARS_FILE", "GALLERIES_CONFIG"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "3000" || cfg.ListenAddr != ":3000" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.StarsFile != "stars-data.json" {
		t.Fatalf("expected stars file under site root, got %s", cfg.StarsFile)
	}
	if cfg.GalleriesConfig != "galleries.yaml" {
		t.Fatalf("expected galleries config under site root, got %s", cfg.GalleriesConfig)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8090")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("SITE_ROOT", "/srv/site")
	t.Setenv("STARS_FILE", "")
	t.Setenv("GALLERIES_CONFIG", "")
	t.Setenv("GIN_MODE", "debug")

	cfg := Load()
	if cfg.ListenAddr != ":8090" {
		t.Fatalf("expected listen addr derived from port, got %s", cfg.ListenAddr)
	}
	if cfg.StarsFile != filepath.Join("/srv/site", "stars-data.json") {
		t.Fatalf("unexpected stars file: %s", cfg.StarsFile)
	}
	if cfg.GinMode != "debug" {
		t.Fatalf("unexpected gin mode: %s", cfg.GinMode)
	}
}
