package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AppConfig collects everything the site server and the gallery tools need.
type AppConfig struct {
	ListenAddr      string
	Port            string
	GinMode         string
	SiteRoot        string // directory holding the static site and the gallery folders
	StarsFile       string
	GalleriesConfig string // the YAML gallery configuration
}

// Load reads the configuration from environment variables, with safe
// defaults for anything missing.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "3000"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	siteRoot := strings.TrimSpace(os.Getenv("SITE_ROOT"))
	if siteRoot == "" {
		siteRoot = "."
	}

	starsFile := strings.TrimSpace(os.Getenv("STARS_FILE"))
	if starsFile == "" {
		starsFile = filepath.Join(siteRoot, "stars-data.json")
	}

	galleriesConfig := strings.TrimSpace(os.Getenv("GALLERIES_CONFIG"))
	if galleriesConfig == "" {
		galleriesConfig = filepath.Join(siteRoot, "galleries.yaml")
	}

	return AppConfig{
		ListenAddr:      listenAddr,
		Port:            port,
		GinMode:         ginMode,
		SiteRoot:        siteRoot,
		StarsFile:       starsFile,
		GalleriesConfig: galleriesConfig,
	}
}
